package repository

//go:generate mockgen -destination=mock_repository.go -package=repository sealed-auction/internal/repository AuctionStore,BidStore,PaymentStore,UserStore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"sealed-auction/internal/biddingerrors"
	model "sealed-auction/internal/models"

	"github.com/shopspring/decimal"
)

// AuctionStore persists auction records
type AuctionStore interface {
	CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListOpenAuctions(ctx context.Context) ([]model.Auction, error)
	CloseAuction(ctx context.Context, auctionID string) (model.Auction, error)
}

// BidStore persists bid records
type BidStore interface {
	CreateSealedBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	RevealBid(ctx context.Context, bidID string, amount decimal.Decimal) (model.Bid, error)
	ListPublicBids(ctx context.Context, auctionID string) ([]model.PublicBid, error)
	ListRevealedBids(ctx context.Context, auctionID string) ([]model.Bid, error)
}

// UserStore persists registered users
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, userID string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// PaymentStore persists payment records
type PaymentStore interface {
	RecordPayment(ctx context.Context, payment model.Payment) (model.Payment, error)
}

// AuditLog is an append-only event log
type AuditLog interface {
	AppendAudit(ctx context.Context, event model.AuditEvent) error
}

// Store is implemented by every storage engine
type Store interface {
	AuctionStore
	BidStore
	UserStore
	PaymentStore
	AuditLog
}

// MemoryRepo is an in-memory implementation of every store.
// The mutex keeps the maps memory-safe; it does not make multi-step operations atomic.
type MemoryRepo struct {
	mu sync.RWMutex

	auctions     map[string]model.Auction
	auctionOrder []string

	bids         map[string]model.Bid
	auctionBids  map[string][]string // key: auctionID -> value: bid IDs in insertion order
	users        map[string]model.User
	userOrder    []string
	usersByEmail map[string]string // key: email -> value: userID
	payments     map[string]model.Payment
	auditEvents  []model.AuditEvent
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:     make(map[string]model.Auction),
		bids:         make(map[string]model.Bid),
		auctionBids:  make(map[string][]string),
		users:        make(map[string]model.User),
		usersByEmail: make(map[string]string),
		payments:     make(map[string]model.Payment),
	}
}

// CreateAuction stores a new auction
func (r *MemoryRepo) CreateAuction(_ context.Context, auction model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auctions[auction.ID]; exists {
		return model.Auction{}, fmt.Errorf("create auction %s: duplicate id", auction.ID)
	}
	r.auctions[auction.ID] = auction
	r.auctionOrder = append(r.auctionOrder, auction.ID)
	return auction, nil
}

// GetAuction returns an auction by ID
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListOpenAuctions returns auctions that have not been closed, in insertion order
func (r *MemoryRepo) ListOpenAuctions(_ context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	open := make([]model.Auction, 0, len(r.auctionOrder))
	for _, id := range r.auctionOrder {
		if a := r.auctions[id]; !a.IsClosed {
			open = append(open, a)
		}
	}
	return open, nil
}

// CloseAuction sets the closed flag on an auction
func (r *MemoryRepo) CloseAuction(_ context.Context, auctionID string) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("close auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	auction.IsClosed = true
	r.auctions[auctionID] = auction
	return auction, nil
}

// CreateSealedBid stores a new sealed bid
func (r *MemoryRepo) CreateSealedBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return model.Bid{}, fmt.Errorf("create bid for auction %s: %w", bid.AuctionID, biddingerrors.ErrAuctionNotFound)
	}
	if err := bid.Validate(); err != nil {
		return model.Bid{}, fmt.Errorf("create bid %s: %w", bid.ID, err)
	}

	r.bids[bid.ID] = bid
	r.auctionBids[bid.AuctionID] = append(r.auctionBids[bid.AuctionID], bid.ID)
	return bid, nil
}

// GetBid returns a bid by ID
func (r *MemoryRepo) GetBid(_ context.Context, bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	return bid, nil
}

// RevealBid stores the revealed amount of a sealed bid
func (r *MemoryRepo) RevealBid(_ context.Context, bidID string, amount decimal.Decimal) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("reveal bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	if !bid.Reveal(amount) {
		return model.Bid{}, fmt.Errorf("reveal bid %s: %w", bidID, biddingerrors.ErrBidAlreadyRevealed)
	}
	r.bids[bidID] = bid
	return bid, nil
}

// ListPublicBids returns bid metadata for an auction in insertion order
func (r *MemoryRepo) ListPublicBids(_ context.Context, auctionID string) ([]model.PublicBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.auctionBids[auctionID]
	public := make([]model.PublicBid, 0, len(ids))
	for _, id := range ids {
		public = append(public, r.bids[id].Public())
	}
	return public, nil
}

// ListRevealedBids returns revealed bids for an auction, highest amount first
func (r *MemoryRepo) ListRevealedBids(_ context.Context, auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	revealed := make([]model.Bid, 0)
	for _, id := range r.auctionBids[auctionID] {
		if b := r.bids[id]; b.Revealed {
			revealed = append(revealed, b)
		}
	}
	sort.SliceStable(revealed, func(i, j int) bool {
		return revealed[i].Amount.GreaterThan(*revealed[j].Amount)
	})
	return revealed, nil
}

// CreateUser stores a new user. Emails are unique.
func (r *MemoryRepo) CreateUser(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existingID, ok := r.usersByEmail[user.Email]; ok {
		return model.User{}, fmt.Errorf("create user: email %s already registered as %s", user.Email, existingID)
	}
	r.users[user.ID] = user
	r.userOrder = append(r.userOrder, user.ID)
	r.usersByEmail[user.Email] = user.ID
	return user, nil
}

// GetUser returns a user by ID
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns the user registered with email
func (r *MemoryRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.usersByEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, biddingerrors.ErrUserNotFound)
	}
	return r.users[id], nil
}

// ListUsers returns every user in registration order
func (r *MemoryRepo) ListUsers(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		users = append(users, r.users[id])
	}
	return users, nil
}

// RecordPayment stores a payment record
func (r *MemoryRepo) RecordPayment(_ context.Context, payment model.Payment) (model.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[payment.ID] = payment
	return payment, nil
}

// AppendAudit appends an event to the audit log
func (r *MemoryRepo) AppendAudit(_ context.Context, event model.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auditEvents = append(r.auditEvents, event)
	return nil
}

// AuditEvents returns a copy of the audit log. This method is intended for tests only.
func (r *MemoryRepo) AuditEvents() []model.AuditEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.AuditEvent(nil), r.auditEvents...)
}

// Payments returns a copy of every stored payment. This method is intended for tests only.
func (r *MemoryRepo) Payments() []model.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]model.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		payments = append(payments, p)
	}
	return payments
}

// AddAuction seeds an auction without going through the service. This method is intended for tests only.
func (r *MemoryRepo) AddAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.auctions[auction.ID]; !exists {
		r.auctionOrder = append(r.auctionOrder, auction.ID)
	}
	r.auctions[auction.ID] = auction
}
