package bidding

//go:generate mockgen -destination=mock_auction.go -package=bidding sealed-auction/internal/biddingService AuctionLifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sealed-auction/internal/audit"
	"sealed-auction/internal/biddingerrors"
	"sealed-auction/internal/models"
	"sealed-auction/internal/repository"
	"sealed-auction/utils"

	"github.com/shopspring/decimal"
)

// AuctionLifecycle is the part of the auction service the bid lifecycle depends on
type AuctionLifecycle interface {
	Get(ctx context.Context, auctionID string) (models.Auction, error)
	Close(ctx context.Context, auctionID string) (models.Auction, error)
}

// BiddingService runs the sealed-bid protocol: place, reveal, declare winner
type BiddingService struct {
	repo     repository.BidStore
	auctions AuctionLifecycle
	audit    audit.Recorder
	now      utils.Clock
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock overrides the clock used for the bidding window check and bid timestamps
func WithClock(clock utils.Clock) Option {
	return func(s *BiddingService) {
		s.now = clock
	}
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.BidStore, auctions AuctionLifecycle, recorder audit.Recorder, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:     repo,
		auctions: auctions,
		audit:    recorder,
		now:      utils.UTCNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceSealed records a sealed commitment while now is inside the auction
// window. The closed flag is not consulted: only the window gates bidding.
func (s *BiddingService) PlaceSealed(ctx context.Context, auctionID, bidderID, commitment string) (models.Bid, error) {
	if strings.TrimSpace(commitment) == "" {
		return models.Bid{}, fmt.Errorf("service: %w", biddingerrors.ErrCommitmentRequired)
	}

	auction, err := s.auctions.Get(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on auction %s: %w", auctionID, err)
	}

	now := s.now()
	if !auction.AcceptsBidsAt(now) {
		return models.Bid{}, fmt.Errorf("service: %w - window is %s to %s", biddingerrors.ErrAuctionNotOpen,
			auction.StartTime.Format(time.RFC3339), auction.EndTime.Format(time.RFC3339))
	}

	bid := models.NewSealedBid(utils.GenerateID(), auctionID, bidderID, commitment, now)
	created, err := s.repo.CreateSealedBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on auction %s by bidder %s: %w", auctionID, bidderID, err)
	}

	s.audit.Record(ctx, models.EntityBid, created.ID, audit.ActionCreateSealed, map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
	})
	return created, nil
}

// Reveal discloses the amount of a sealed bid. The amount is trusted as given:
// it is not checked against the commitment.
func (s *BiddingService) Reveal(ctx context.Context, bidID string, amount decimal.Decimal) (models.Bid, error) {
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - got %s", biddingerrors.ErrNonPositiveAmount, amount)
	}

	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to reveal bid %s: %w", bidID, err)
	}
	if bid.Revealed {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s", biddingerrors.ErrBidAlreadyRevealed, bidID)
	}

	revealed, err := s.repo.RevealBid(ctx, bidID, amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to reveal bid %s: %w", bidID, err)
	}

	s.audit.Record(ctx, models.EntityBid, bidID, audit.ActionReveal, map[string]any{"amount": amount.String()})
	return revealed, nil
}

// ListPublic returns bid metadata for an auction without commitments or amounts
func (s *BiddingService) ListPublic(ctx context.Context, auctionID string) ([]models.PublicBid, error) {
	bids, err := s.repo.ListPublicBids(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// ListRevealed returns the revealed bids of an auction, highest amount first
func (s *BiddingService) ListRevealed(ctx context.Context, auctionID string) ([]models.Bid, error) {
	bids, err := s.repo.ListRevealedBids(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list revealed bids for auction %s: %w", auctionID, err)
	}
	return RankRevealed(bids), nil
}

// DeclareWinner closes the auction if it is still open, then picks the best
// revealed bid. It returns nil when there are no revealed bids or the best one
// is below the reserve price. Calling it again is safe: the close is skipped
// and the declaration is re-evaluated and re-audited.
func (s *BiddingService) DeclareWinner(ctx context.Context, auctionID string) (*models.Winner, error) {
	auction, err := s.auctions.Get(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to declare winner for auction %s: %w", auctionID, err)
	}

	if !auction.IsClosed {
		if _, err := s.auctions.Close(ctx, auctionID); err != nil {
			return nil, fmt.Errorf("service: failed to close auction %s: %w", auctionID, err)
		}
	}

	revealed, err := s.repo.ListRevealedBids(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list revealed bids for auction %s: %w", auctionID, err)
	}

	ranked := RankRevealed(revealed)
	if len(ranked) == 0 {
		return nil, nil
	}

	top := ranked[0]
	if top.Amount.LessThan(auction.ReservePrice) {
		return nil, nil
	}

	winner := &models.Winner{BidID: top.ID, BidderID: top.BidderID, Amount: *top.Amount}
	s.audit.Record(ctx, models.EntityAuction, auctionID, audit.ActionDeclareWinner, map[string]any{
		"bid_id":    winner.BidID,
		"bidder_id": winner.BidderID,
		"amount":    winner.Amount.String(),
	})
	return winner, nil
}
