package chain

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBlockhash = "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N"

func testKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return ed25519.NewKeyFromSeed(seed)
}

// rpcHandler routes JSON-RPC methods to canned responders.
type rpcHandler struct {
	t        *testing.T
	handlers map[string]func(params []json.RawMessage) (any, *rpcError)
	calls    map[string]int
}

func newRPCHandler(t *testing.T) *rpcHandler {
	return &rpcHandler{
		t:        t,
		handlers: make(map[string]func(params []json.RawMessage) (any, *rpcError)),
		calls:    make(map[string]int),
	}
}

func (h *rpcHandler) on(method string, fn func(params []json.RawMessage) (any, *rpcError)) {
	h.handlers[method] = fn
}

func (h *rpcHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	require.NoError(h.t, err)

	var req struct {
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	require.NoError(h.t, json.Unmarshal(body, &req))

	h.calls[req.Method]++
	fn, ok := h.handlers[req.Method]
	require.True(h.t, ok, "unexpected rpc method %s", req.Method)

	result, rpcErr := fn(req.Params)
	resp := map[string]any{"jsonrpc": "2.0", "id": 1}
	if rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func newTestClient(t *testing.T, handler *rpcHandler) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, 10*time.Millisecond, zerolog.New(io.Discard))
}

func TestClient_Balance(t *testing.T) {
	handler := newRPCHandler(t)
	handler.on("getBalance", func(params []json.RawMessage) (any, *rpcError) {
		var address string
		require.NoError(t, json.Unmarshal(params[0], &address))
		assert.Equal(t, "So11111111111111111111111111111111111111112", address)
		return map[string]any{"context": map[string]any{"slot": 1}, "value": 2_500_000_000}, nil
	})

	client := newTestClient(t, handler)
	balance, err := client.Balance(context.Background(), "So11111111111111111111111111111111111111112")

	require.NoError(t, err)
	assert.Equal(t, uint64(2_500_000_000), balance)
}

func TestClient_Balance_RPCError(t *testing.T) {
	handler := newRPCHandler(t)
	handler.on("getBalance", func(params []json.RawMessage) (any, *rpcError) {
		return nil, &rpcError{Code: -32602, Message: "Invalid param: WrongSize"}
	})

	client := newTestClient(t, handler)
	_, err := client.Balance(context.Background(), "bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid param")
}

func TestClient_Transfer(t *testing.T) {
	key := testKey(t)
	to := base58.Encode(make([]byte, ed25519.PublicKeySize))
	wantSig := "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"

	handler := newRPCHandler(t)
	handler.on("getLatestBlockhash", func(params []json.RawMessage) (any, *rpcError) {
		return map[string]any{"value": map[string]any{"blockhash": testBlockhash}}, nil
	})
	handler.on("sendTransaction", func(params []json.RawMessage) (any, *rpcError) {
		var encoded string
		require.NoError(t, json.Unmarshal(params[0], &encoded))
		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)

		// One signature, then the message.
		require.Equal(t, byte(1), raw[0])
		sig := raw[1 : 1+ed25519.SignatureSize]
		message := raw[1+ed25519.SignatureSize:]
		assert.True(t, ed25519.Verify(key.Public().(ed25519.PublicKey), message, sig))

		// Header and account table.
		assert.Equal(t, []byte{1, 0, 1}, message[0:3])
		require.Equal(t, byte(3), message[3])
		assert.Equal(t, []byte(key.Public().(ed25519.PublicKey)), message[4:36])
		assert.Equal(t, base58.Decode(to), message[36:68])
		assert.Equal(t, base58.Decode(systemProgramID), message[68:100])
		assert.Equal(t, base58.Decode(testBlockhash), message[100:132])

		return wantSig, nil
	})

	client := newTestClient(t, handler)
	sig, err := client.Transfer(context.Background(), key, to, 500_000_000)

	require.NoError(t, err)
	assert.Equal(t, wantSig, sig)
	assert.Equal(t, 1, handler.calls["getLatestBlockhash"])
	assert.Equal(t, 1, handler.calls["sendTransaction"])
}

func TestClient_Transfer_InvalidDestination(t *testing.T) {
	handler := newRPCHandler(t)
	handler.on("getLatestBlockhash", func(params []json.RawMessage) (any, *rpcError) {
		return map[string]any{"value": map[string]any{"blockhash": testBlockhash}}, nil
	})

	client := newTestClient(t, handler)
	_, err := client.Transfer(context.Background(), testKey(t), "not-an-address", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid destination address")
}

func TestClient_Transfer_NodeRejects(t *testing.T) {
	handler := newRPCHandler(t)
	handler.on("getLatestBlockhash", func(params []json.RawMessage) (any, *rpcError) {
		return map[string]any{"value": map[string]any{"blockhash": testBlockhash}}, nil
	})
	handler.on("sendTransaction", func(params []json.RawMessage) (any, *rpcError) {
		return nil, &rpcError{Code: -32003, Message: "Transaction signature verification failure"}
	})

	client := newTestClient(t, handler)
	_, err := client.Transfer(context.Background(), testKey(t), base58.Encode(make([]byte, 32)), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature verification failure")
}

func TestClient_WaitForConfirmation(t *testing.T) {
	polls := 0
	handler := newRPCHandler(t)
	handler.on("getSignatureStatuses", func(params []json.RawMessage) (any, *rpcError) {
		polls++
		if polls < 3 {
			return map[string]any{"value": []any{nil}}, nil
		}
		return map[string]any{"value": []any{
			map[string]any{"confirmationStatus": "confirmed", "err": nil},
		}}, nil
	})

	client := newTestClient(t, handler)
	err := client.WaitForConfirmation(context.Background(), "sig")

	require.NoError(t, err)
	assert.Equal(t, 3, polls)
}

func TestClient_WaitForConfirmation_OnChainFailure(t *testing.T) {
	handler := newRPCHandler(t)
	handler.on("getSignatureStatuses", func(params []json.RawMessage) (any, *rpcError) {
		return map[string]any{"value": []any{
			map[string]any{"confirmationStatus": "processed", "err": map[string]any{"InstructionError": []any{0, "Custom"}}},
		}}, nil
	})

	client := newTestClient(t, handler)
	err := client.WaitForConfirmation(context.Background(), "sig")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed on chain")
}

func TestClient_WaitForConfirmation_ContextExpires(t *testing.T) {
	handler := newRPCHandler(t)
	handler.on("getSignatureStatuses", func(params []json.RawMessage) (any, *rpcError) {
		return map[string]any{"value": []any{nil}}, nil
	})

	client := newTestClient(t, handler)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.WaitForConfirmation(ctx, "sig")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
