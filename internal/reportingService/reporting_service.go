package reporting

import (
	"context"
	"fmt"

	"sealed-auction/internal/models"
)

// AuctionReader looks up a single auction
type AuctionReader interface {
	Get(ctx context.Context, auctionID string) (models.Auction, error)
}

// BidReader lists the bids of an auction
type BidReader interface {
	ListPublic(ctx context.Context, auctionID string) ([]models.PublicBid, error)
	ListRevealed(ctx context.Context, auctionID string) ([]models.Bid, error)
}

// ReportingService builds read-only summaries of auctions
type ReportingService struct {
	auctions AuctionReader
	bids     BidReader
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(auctions AuctionReader, bids BidReader) *ReportingService {
	return &ReportingService{auctions: auctions, bids: bids}
}

// Summary reports bid counts and the highest revealed bid of an auction
func (s *ReportingService) Summary(ctx context.Context, auctionID string) (models.AuctionReport, error) {
	auction, err := s.auctions.Get(ctx, auctionID)
	if err != nil {
		return models.AuctionReport{}, fmt.Errorf("service: failed to summarize auction %s: %w", auctionID, err)
	}

	public, err := s.bids.ListPublic(ctx, auctionID)
	if err != nil {
		return models.AuctionReport{}, fmt.Errorf("service: failed to summarize auction %s: %w", auctionID, err)
	}
	revealed, err := s.bids.ListRevealed(ctx, auctionID)
	if err != nil {
		return models.AuctionReport{}, fmt.Errorf("service: failed to summarize auction %s: %w", auctionID, err)
	}

	report := models.AuctionReport{
		Auction:       auction,
		TotalBids:     len(public),
		TotalRevealed: len(revealed),
	}
	if len(revealed) > 0 {
		highest := revealed[0]
		report.Highest = &highest
	}
	return report, nil
}
