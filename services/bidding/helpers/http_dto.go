package helpers

import (
	"time"

	"sealed-auction/internal/biddingerrors"
	model "sealed-auction/internal/models"

	"github.com/shopspring/decimal"
)

// Request DTOs

type RegisterUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// CreateAuctionRequest takes either an explicit start_time/end_time pair or a
// window relative to now (start_in_minutes, duration_minutes).
type CreateAuctionRequest struct {
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	ReservePrice    decimal.Decimal `json:"reserve_price"`
	CreatedBy       string          `json:"created_by" binding:"required"`
	StartTime       *time.Time      `json:"start_time"`
	EndTime         *time.Time      `json:"end_time"`
	StartInMinutes  int             `json:"start_in_minutes" binding:"gte=0"`
	DurationMinutes int             `json:"duration_minutes"`
}

// Window resolves the bidding window of the request against now.
// Sending only one of start_time/end_time is rejected.
func (r CreateAuctionRequest) Window(now time.Time) (time.Time, time.Time, error) {
	switch {
	case r.StartTime != nil && r.EndTime != nil:
		return r.StartTime.UTC(), r.EndTime.UTC(), nil
	case r.StartTime != nil || r.EndTime != nil:
		return time.Time{}, time.Time{}, biddingerrors.ErrIncompleteWindow
	}
	start := now.Add(time.Duration(r.StartInMinutes) * time.Minute)
	return start, start.Add(time.Duration(r.DurationMinutes) * time.Minute), nil
}

type PlaceSealedBidRequest struct {
	BidderID   string `json:"bidder_id" binding:"required"`
	Commitment string `json:"commitment"`
}

type RevealBidRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type RecordPaymentRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	BidID     string          `json:"bid_id" binding:"required"`
	PayerID   string          `json:"payer_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// Response DTOs

type UserResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID    string          `json:"auction_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ReservePrice decimal.Decimal `json:"reserve_price"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	CreatedBy    string          `json:"created_by"`
	IsClosed     bool            `json:"is_closed"`
	CreatedAt    string          `json:"created_at"`
}

// SealedBidResponse never carries the commitment or amount
type SealedBidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	BidderID  string `json:"bidder_id"`
	Revealed  bool   `json:"revealed"`
	CreatedAt string `json:"created_at"`
}

type PublicBidResponse struct {
	BidID     string `json:"bid_id"`
	BidderID  string `json:"bidder_id"`
	CreatedAt string `json:"created_at"`
}

type RevealedBidResponse struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

type WinnerResponse struct {
	BidID    string          `json:"bid_id"`
	BidderID string          `json:"bidder_id"`
	Amount   decimal.Decimal `json:"amount"`
}

type PaymentResponse struct {
	PaymentID  string          `json:"payment_id"`
	AuctionID  string          `json:"auction_id"`
	BidID      string          `json:"bid_id"`
	PayerID    string          `json:"payer_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	CreatedAt  string          `json:"created_at"`
}

type ReportResponse struct {
	Auction       AuctionResponse      `json:"auction"`
	TotalBids     int                  `json:"total_bids"`
	TotalRevealed int                  `json:"total_revealed"`
	Highest       *RevealedBidResponse `json:"highest"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func ToUserResponse(u model.User) UserResponse {
	return UserResponse{UserID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: formatTime(u.CreatedAt)}
}

func ToAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:    a.ID,
		Title:        a.Title,
		Description:  a.Description,
		ReservePrice: a.ReservePrice,
		StartTime:    formatTime(a.StartTime),
		EndTime:      formatTime(a.EndTime),
		CreatedBy:    a.CreatedBy,
		IsClosed:     a.IsClosed,
		CreatedAt:    formatTime(a.CreatedAt),
	}
}

func ToSealedBidResponse(b model.Bid) SealedBidResponse {
	return SealedBidResponse{
		BidID:     b.ID,
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		Revealed:  b.Revealed,
		CreatedAt: formatTime(b.CreatedAt),
	}
}

func ToPublicBidResponse(b model.PublicBid) PublicBidResponse {
	return PublicBidResponse{BidID: b.ID, BidderID: b.BidderID, CreatedAt: formatTime(b.CreatedAt)}
}

// ToRevealedBidResponse expects a revealed bid; a sealed one reports a zero amount
func ToRevealedBidResponse(b model.Bid) RevealedBidResponse {
	resp := RevealedBidResponse{
		BidID:     b.ID,
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		CreatedAt: formatTime(b.CreatedAt),
	}
	if b.Amount != nil {
		resp.Amount = *b.Amount
	}
	return resp
}

func ToWinnerResponse(w model.Winner) WinnerResponse {
	return WinnerResponse{BidID: w.BidID, BidderID: w.BidderID, Amount: w.Amount}
}

func ToPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.ID,
		AuctionID:  p.AuctionID,
		BidID:      p.BidID,
		PayerID:    p.PayerID,
		AmountPaid: p.AmountPaid,
		CreatedAt:  formatTime(p.CreatedAt),
	}
}

func ToReportResponse(r model.AuctionReport) ReportResponse {
	resp := ReportResponse{
		Auction:       ToAuctionResponse(r.Auction),
		TotalBids:     r.TotalBids,
		TotalRevealed: r.TotalRevealed,
	}
	if r.Highest != nil {
		highest := ToRevealedBidResponse(*r.Highest)
		resp.Highest = &highest
	}
	return resp
}
