package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Audit entity kinds
const (
	EntityAuction = "auction"
	EntityBid     = "bid"
	EntityUser    = "user"
	EntityPayment = "payment"
)

// ErrBidInvariant is returned when a bid's amount and revealed flag disagree
var ErrBidInvariant = errors.New("bid amount must be present if and only if revealed")

// User represents a registered participant
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Auction represents a sealed-bid auction with a reserve price and a bidding window
type Auction struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ReservePrice decimal.Decimal `json:"reserve_price"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	CreatedBy    string          `json:"created_by"`
	IsClosed     bool            `json:"is_closed"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AcceptsBidsAt reports whether t falls inside [StartTime, EndTime]
func (a Auction) AcceptsBidsAt(t time.Time) bool {
	return !t.Before(a.StartTime) && !t.After(a.EndTime)
}

// Bid is a sealed commitment that may later be revealed with an amount.
// Amount is nil until Reveal is called.
type Bid struct {
	ID         string           `json:"id"`
	AuctionID  string           `json:"auction_id"`
	BidderID   string           `json:"bidder_id"`
	Commitment string           `json:"commitment"`
	Amount     *decimal.Decimal `json:"amount"`
	Revealed   bool             `json:"revealed"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewSealedBid builds a bid in the sealed state
func NewSealedBid(id, auctionID, bidderID, commitment string, createdAt time.Time) Bid {
	return Bid{
		ID:         id,
		AuctionID:  auctionID,
		BidderID:   bidderID,
		Commitment: commitment,
		CreatedAt:  createdAt,
	}
}

// Reveal moves the bid to the revealed state. It reports false if the bid was already revealed.
func (b *Bid) Reveal(amount decimal.Decimal) bool {
	if b.Revealed {
		return false
	}
	b.Amount = &amount
	b.Revealed = true
	return true
}

// Validate checks the amount/revealed invariant
func (b Bid) Validate() error {
	if (b.Amount != nil) != b.Revealed {
		return ErrBidInvariant
	}
	return nil
}

// Public strips the commitment and amount from a bid
func (b Bid) Public() PublicBid {
	return PublicBid{ID: b.ID, BidderID: b.BidderID, CreatedAt: b.CreatedAt}
}

// PublicBid exposes that a bid exists without leaking its commitment or amount
type PublicBid struct {
	ID        string    `json:"bid_id"`
	BidderID  string    `json:"bidder_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Winner is the outcome of a successful winner declaration
type Winner struct {
	BidID    string          `json:"bid_id"`
	BidderID string          `json:"bidder_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// AuditEvent is an append-only record of a state change
type AuditEvent struct {
	ID        string         `json:"id"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entity_id"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}

// Payment records that a payer settled a winning bid outside the system
type Payment struct {
	ID         string          `json:"id"`
	AuctionID  string          `json:"auction_id"`
	BidID      string          `json:"bid_id"`
	PayerID    string          `json:"payer_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AuctionReport summarizes bidding activity on an auction
type AuctionReport struct {
	Auction       Auction `json:"auction"`
	TotalBids     int     `json:"total_bids"`
	TotalRevealed int     `json:"total_revealed"`
	Highest       *Bid    `json:"highest"`
}
