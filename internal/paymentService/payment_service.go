package payment

import (
	"context"
	"fmt"
	"strings"

	"sealed-auction/internal/audit"
	"sealed-auction/internal/biddingerrors"
	"sealed-auction/internal/models"
	"sealed-auction/internal/repository"
	"sealed-auction/utils"

	"github.com/shopspring/decimal"
)

// PaymentService records that a winning bid was paid. Settlement happens elsewhere.
type PaymentService struct {
	repo  repository.PaymentStore
	bids  repository.BidStore
	audit audit.Recorder
	now   utils.Clock
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(repo repository.PaymentStore, bids repository.BidStore, recorder audit.Recorder) *PaymentService {
	return &PaymentService{repo: repo, bids: bids, audit: recorder, now: utils.UTCNow}
}

// Record stores a payment against a bid of the given auction
func (s *PaymentService) Record(ctx context.Context, auctionID, bidID, payerID string, amount decimal.Decimal) (models.Payment, error) {
	required := []struct{ field, value string }{
		{"auction_id", auctionID},
		{"bid_id", bidID},
		{"payer_id", payerID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return models.Payment{}, fmt.Errorf("service: %w - %s required", biddingerrors.ErrInvalidPayment, r.field)
		}
	}
	if !amount.IsPositive() {
		return models.Payment{}, fmt.Errorf("service: %w - amount must be positive, got %s", biddingerrors.ErrInvalidPayment, amount)
	}

	bid, err := s.bids.GetBid(ctx, bidID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to record payment for bid %s: %w", bidID, err)
	}
	if bid.AuctionID != auctionID {
		return models.Payment{}, fmt.Errorf("service: %w - bid %s does not belong to auction %s", biddingerrors.ErrInvalidPayment, bidID, auctionID)
	}

	p, err := s.repo.RecordPayment(ctx, models.Payment{
		ID:         utils.GenerateID(),
		AuctionID:  auctionID,
		BidID:      bidID,
		PayerID:    payerID,
		AmountPaid: amount,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to record payment for bid %s: %w", bidID, err)
	}

	s.audit.Record(ctx, models.EntityPayment, p.ID, audit.ActionRecord, map[string]any{
		"auction_id": auctionID,
		"bid_id":     bidID,
		"payer_id":   payerID,
		"amount":     amount.String(),
	})
	return p, nil
}
