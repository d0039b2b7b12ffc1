package service

import (
	"context"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"
)

const defaultListLimit = 50
const maxListLimit = 500

// reportingService implements ports.ReportingService.
type reportingService struct {
	txRepo       ports.TransactionRepository
	donationRepo ports.DonationRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	txRepo ports.TransactionRepository,
	donationRepo ports.DonationRepository,
) ports.ReportingService {
	return &reportingService{
		txRepo:       txRepo,
		donationRepo: donationRepo,
	}
}

// ListTransactions returns the newest tracked donation transactions.
func (s *reportingService) ListTransactions(ctx context.Context, limit int) ([]domain.DonationTransaction, error) {
	txns, err := s.txRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return txns, nil
}

// ListDonations returns the newest legacy donation records.
func (s *reportingService) ListDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	donations, err := s.donationRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return donations, nil
}

// Stats returns the dashboard aggregates.
func (s *reportingService) Stats(ctx context.Context) (*ports.DonationStats, error) {
	stats, err := s.donationRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return stats, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
