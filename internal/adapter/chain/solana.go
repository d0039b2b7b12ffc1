// Package chain submits settlement transfers to a Solana-compatible
// JSON-RPC node.
package chain

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"charity-donation-service/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/rs/zerolog"
)

// systemProgramID is the native program that executes value transfers.
const systemProgramID = "11111111111111111111111111111111"

// transferInstruction is the system program's transfer discriminator.
const transferInstruction = uint32(2)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.ChainClient over JSON-RPC.
type Client struct {
	rpcURL          string
	httpClient      HTTPClient
	confirmInterval time.Duration
	log             zerolog.Logger
}

// NewClient creates a chain client with a request timeout and a polling
// interval for confirmation checks.
func NewClient(rpcURL string, timeout, confirmInterval time.Duration, log zerolog.Logger) *Client {
	return &Client{
		rpcURL:          rpcURL,
		httpClient:      &http.Client{Timeout: timeout},
		confirmInterval: confirmInterval,
		log:             log,
	}
}

// NewClientWithHTTP creates a chain client with a custom HTTP client.
func NewClientWithHTTP(rpcURL string, httpClient HTTPClient, confirmInterval time.Duration, log zerolog.Logger) *Client {
	return &Client{
		rpcURL:          rpcURL,
		httpClient:      httpClient,
		confirmInterval: confirmInterval,
		log:             log,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC request and decodes the result into out.
func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("marshal rpc request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build rpc request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("rpc %s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("rpc %s read: %w", method, err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return fmt.Errorf("rpc %s decode: %w", method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("rpc %s: %s (code %d)", method, rpcResp.Error.Message, rpcResp.Error.Code)
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("rpc %s result: %w", method, err)
		}
	}
	return nil
}

// Balance returns the lamport balance for an address.
func (c *Client) Balance(ctx context.Context, address string) (uint64, error) {
	var result struct {
		Value uint64 `json:"value"`
	}
	if err := c.call(ctx, "getBalance", []any{address}, &result); err != nil {
		return 0, err
	}
	return result.Value, nil
}

// latestBlockhash fetches the recent blockhash a transaction must reference.
func (c *Client) latestBlockhash(ctx context.Context) (string, error) {
	var result struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}
	if err := c.call(ctx, "getLatestBlockhash", []any{map[string]string{"commitment": "finalized"}}, &result); err != nil {
		return "", err
	}
	if result.Value.Blockhash == "" {
		return "", fmt.Errorf("empty blockhash from node")
	}
	return result.Value.Blockhash, nil
}

// Transfer builds, signs and submits a system transfer. The transaction is
// serialized by hand: one signer, legacy message format, a single system
// program instruction.
func (c *Client) Transfer(ctx context.Context, key ed25519.PrivateKey, to string, lamports uint64) (string, error) {
	blockhash, err := c.latestBlockhash(ctx)
	if err != nil {
		return "", err
	}

	message, err := buildTransferMessage(key.Public().(ed25519.PublicKey), to, blockhash, lamports)
	if err != nil {
		return "", err
	}

	signature := ed25519.Sign(key, message)

	var tx bytes.Buffer
	tx.Write(encodeCompactU16(1))
	tx.Write(signature)
	tx.Write(message)

	var sigStr string
	err = c.call(ctx, "sendTransaction",
		[]any{base64.StdEncoding.EncodeToString(tx.Bytes()), map[string]string{"encoding": "base64"}},
		&sigStr)
	if err != nil {
		return "", err
	}

	c.log.Info().
		Str("signature", sigStr).
		Str("to", to).
		Uint64("lamports", lamports).
		Msg("transfer submitted")
	return sigStr, nil
}

// buildTransferMessage serializes a legacy transaction message carrying one
// system transfer instruction.
func buildTransferMessage(from ed25519.PublicKey, to, blockhash string, lamports uint64) ([]byte, error) {
	toBytes := base58.Decode(to)
	if len(toBytes) != ed25519.PublicKeySize {
		return nil, apperror.Validation(fmt.Sprintf("invalid destination address: %s", to))
	}
	programBytes := base58.Decode(systemProgramID)
	blockhashBytes := base58.Decode(blockhash)
	if len(blockhashBytes) != 32 {
		return nil, fmt.Errorf("invalid blockhash: %s", blockhash)
	}

	var msg bytes.Buffer

	// Header: 1 required signature, 0 readonly signed, 1 readonly unsigned
	// (the system program).
	msg.Write([]byte{1, 0, 1})

	// Account keys: fee payer, destination, system program.
	msg.Write(encodeCompactU16(3))
	msg.Write(from)
	msg.Write(toBytes)
	msg.Write(programBytes)

	msg.Write(blockhashBytes)

	// One instruction: program index 2, accounts [0, 1], data is the
	// transfer discriminator followed by the lamport amount.
	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:4], transferInstruction)
	binary.LittleEndian.PutUint64(data[4:12], lamports)

	msg.Write(encodeCompactU16(1))
	msg.WriteByte(2)
	msg.Write(encodeCompactU16(2))
	msg.Write([]byte{0, 1})
	msg.Write(encodeCompactU16(len(data)))
	msg.Write(data)

	return msg.Bytes(), nil
}

// encodeCompactU16 encodes a length in the chain's compact-u16 format.
func encodeCompactU16(n int) []byte {
	var out []byte
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n == 0 {
			out = append(out, b)
			return out
		}
		out = append(out, b|0x80)
	}
}

// signatureStatus mirrors one entry of getSignatureStatuses.
type signatureStatus struct {
	ConfirmationStatus string          `json:"confirmationStatus"`
	Err                json.RawMessage `json:"err"`
}

// WaitForConfirmation polls the node until the signature reaches confirmed
// or finalized commitment, fails on-chain, or ctx expires.
func (c *Client) WaitForConfirmation(ctx context.Context, signature string) error {
	ticker := time.NewTicker(c.confirmInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("confirmation wait: %w", ctx.Err())
		case <-ticker.C:
		}

		var result struct {
			Value []*signatureStatus `json:"value"`
		}
		err := c.call(ctx, "getSignatureStatuses", []any{[]string{signature}}, &result)
		if err != nil {
			c.log.Warn().Err(err).Str("signature", signature).Msg("status poll failed")
			continue
		}
		if len(result.Value) == 0 || result.Value[0] == nil {
			continue
		}

		status := result.Value[0]
		if status.Err != nil && string(status.Err) != "null" {
			return fmt.Errorf("transaction failed on chain: %s", status.Err)
		}
		switch status.ConfirmationStatus {
		case "confirmed", "finalized":
			return nil
		}
	}
}
