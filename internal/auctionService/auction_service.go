package auction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sealed-auction/internal/audit"
	"sealed-auction/internal/biddingerrors"
	"sealed-auction/internal/cache"
	"sealed-auction/internal/models"
	"sealed-auction/internal/repository"
	"sealed-auction/utils"

	"github.com/shopspring/decimal"
)

// AuctionService owns the auction lifecycle: create, look up, list open, close
type AuctionService struct {
	repo     repository.AuctionStore
	audit    audit.Recorder
	cache    cache.Cache
	cacheTTL time.Duration
	now      utils.Clock
}

// Option configures an AuctionService
type Option func(*AuctionService)

// WithCache enables read-through caching of single auction lookups
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *AuctionService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithClock overrides the clock used for creation timestamps
func WithClock(clock utils.Clock) Option {
	return func(s *AuctionService) {
		s.now = clock
	}
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionStore, recorder audit.Recorder, opts ...Option) *AuctionService {
	s := &AuctionService{
		repo:  repo,
		audit: recorder,
		now:   utils.UTCNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and persists a new auction
func (s *AuctionService) Create(ctx context.Context, title, description string, reservePrice decimal.Decimal, start, end time.Time, creatorID string) (models.Auction, error) {
	if !end.After(start) {
		return models.Auction{}, fmt.Errorf("service: %w - start %s, end %s", biddingerrors.ErrInvalidAuctionWindow,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	if reservePrice.IsNegative() {
		return models.Auction{}, fmt.Errorf("service: %w - got %s", biddingerrors.ErrNegativeReserve, reservePrice)
	}

	auction := models.Auction{
		ID:           utils.GenerateID(),
		Title:        title,
		Description:  description,
		ReservePrice: reservePrice,
		StartTime:    start.UTC(),
		EndTime:      end.UTC(),
		CreatedBy:    creatorID,
		CreatedAt:    s.now(),
	}

	created, err := s.repo.CreateAuction(ctx, auction)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %q: %w", title, err)
	}

	s.audit.Record(ctx, models.EntityAuction, created.ID, audit.ActionCreate, map[string]any{"title": title})
	return created, nil
}

// Get returns an auction by ID
func (s *AuctionService) Get(ctx context.Context, auctionID string) (models.Auction, error) {
	if strings.TrimSpace(auctionID) == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrAuctionNotFound)
	}

	if cached, ok := s.fromCache(ctx, auctionID); ok {
		return cached, nil
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	s.toCache(ctx, auction)
	return auction, nil
}

// ListOpen returns every auction that has not been closed, in storage order.
// Auctions outside their bidding window are included until someone closes them.
func (s *AuctionService) ListOpen(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.repo.ListOpenAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open auctions: %w", err)
	}
	return auctions, nil
}

// Close marks an auction closed. Every call is audited, including repeats.
func (s *AuctionService) Close(ctx context.Context, auctionID string) (models.Auction, error) {
	if strings.TrimSpace(auctionID) == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrAuctionNotFound)
	}

	closed, err := s.repo.CloseAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to close auction %s: %w", auctionID, err)
	}

	s.audit.Record(ctx, models.EntityAuction, auctionID, audit.ActionClose, nil)
	s.evict(ctx, auctionID)
	return closed, nil
}

func (s *AuctionService) fromCache(ctx context.Context, auctionID string) (models.Auction, bool) {
	if s.cache == nil {
		return models.Auction{}, false
	}

	var auction models.Auction
	err := s.cache.GetJSON(ctx, cache.AuctionKey(auctionID), &auction)
	if err == nil {
		return auction, true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		utils.Warn("auction cache read failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
	}
	return models.Auction{}, false
}

func (s *AuctionService) toCache(ctx context.Context, auction models.Auction) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, cache.AuctionKey(auction.ID), auction, s.cacheTTL); err != nil {
		utils.Warn("auction cache write failed", map[string]any{"auction_id": auction.ID, "error": err.Error()})
	}
}

func (s *AuctionService) evict(ctx context.Context, auctionID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.AuctionKey(auctionID)); err != nil {
		utils.Warn("auction cache eviction failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
	}
}
