package handler

//go:generate mockgen -destination=mock_services.go -package=handler sealed-auction/services/bidding/handler AuctionServiceInterface,BiddingServiceInterface,UserServiceInterface,PaymentServiceInterface,ReportingServiceInterface

import (
	"context"
	"time"

	model "sealed-auction/internal/models"

	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	Create(ctx context.Context, title, description string, reservePrice decimal.Decimal, start, end time.Time, creatorID string) (model.Auction, error)
	Get(ctx context.Context, auctionID string) (model.Auction, error)
	ListOpen(ctx context.Context) ([]model.Auction, error)
	Close(ctx context.Context, auctionID string) (model.Auction, error)
}

type BiddingServiceInterface interface {
	PlaceSealed(ctx context.Context, auctionID, bidderID, commitment string) (model.Bid, error)
	Reveal(ctx context.Context, bidID string, amount decimal.Decimal) (model.Bid, error)
	ListPublic(ctx context.Context, auctionID string) ([]model.PublicBid, error)
	ListRevealed(ctx context.Context, auctionID string) ([]model.Bid, error)
	DeclareWinner(ctx context.Context, auctionID string) (*model.Winner, error)
}

type UserServiceInterface interface {
	Register(ctx context.Context, name, email string) (model.User, error)
	Get(ctx context.Context, userID string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type PaymentServiceInterface interface {
	Record(ctx context.Context, auctionID, bidID, payerID string, amount decimal.Decimal) (model.Payment, error)
}

type ReportingServiceInterface interface {
	Summary(ctx context.Context, auctionID string) (model.AuctionReport, error)
}
