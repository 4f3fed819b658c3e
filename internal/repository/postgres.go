package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sealed-auction/internal/biddingerrors"
	model "sealed-auction/internal/models"

	"github.com/shopspring/decimal"
)

// PostgresRepo implements every store on top of PostgreSQL.
// The schema is created by the goose migrations in internal/database.
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo creates a PostgreSQL-backed repository
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const auctionColumns = `id, title, description, reserve_price, start_time, end_time, created_by, is_closed, created_at`

const bidColumns = `id, auction_id, bidder_id, commitment, amount, revealed, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuction(row rowScanner) (model.Auction, error) {
	var a model.Auction
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.ReservePrice,
		&a.StartTime,
		&a.EndTime,
		&a.CreatedBy,
		&a.IsClosed,
		&a.CreatedAt,
	)
	a.StartTime = a.StartTime.UTC()
	a.EndTime = a.EndTime.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	return a, err
}

func scanBid(row rowScanner) (model.Bid, error) {
	var (
		b      model.Bid
		amount decimal.NullDecimal
	)
	err := row.Scan(
		&b.ID,
		&b.AuctionID,
		&b.BidderID,
		&b.Commitment,
		&amount,
		&b.Revealed,
		&b.CreatedAt,
	)
	if err != nil {
		return model.Bid{}, err
	}
	if amount.Valid {
		b.Amount = &amount.Decimal
	}
	b.CreatedAt = b.CreatedAt.UTC()
	return b, b.Validate()
}

// CreateAuction inserts a new auction
func (r *PostgresRepo) CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error) {
	query := `
		INSERT INTO auctions (id, title, description, reserve_price, start_time, end_time, created_by, is_closed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + auctionColumns

	created, err := scanAuction(r.db.QueryRowContext(ctx, query,
		auction.ID,
		auction.Title,
		auction.Description,
		auction.ReservePrice,
		auction.StartTime,
		auction.EndTime,
		auction.CreatedBy,
		auction.IsClosed,
		auction.CreatedAt,
	))
	if err != nil {
		return model.Auction{}, fmt.Errorf("failed to create auction: %w", err)
	}
	return created, nil
}

// GetAuction finds an auction by ID
func (r *PostgresRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`

	auction, err := scanAuction(r.db.QueryRowContext(ctx, query, auctionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("failed to find auction: %w", err)
	}
	return auction, nil
}

// ListOpenAuctions returns auctions that have not been closed
func (r *PostgresRepo) ListOpenAuctions(ctx context.Context) ([]model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE is_closed = FALSE`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open auctions: %w", err)
	}
	defer rows.Close()

	auctions := make([]model.Auction, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auction: %w", err)
		}
		auctions = append(auctions, a)
	}
	return auctions, rows.Err()
}

// CloseAuction sets the closed flag on an auction
func (r *PostgresRepo) CloseAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	query := `UPDATE auctions SET is_closed = TRUE WHERE id = $1 RETURNING ` + auctionColumns

	auction, err := scanAuction(r.db.QueryRowContext(ctx, query, auctionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("close auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("failed to close auction: %w", err)
	}
	return auction, nil
}

// CreateSealedBid inserts a bid in the sealed state
func (r *PostgresRepo) CreateSealedBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	if err := bid.Validate(); err != nil {
		return model.Bid{}, fmt.Errorf("create bid %s: %w", bid.ID, err)
	}

	query := `
		INSERT INTO bids (id, auction_id, bidder_id, commitment, amount, revealed, created_at)
		VALUES ($1, $2, $3, $4, NULL, FALSE, $5)
		RETURNING ` + bidColumns

	created, err := scanBid(r.db.QueryRowContext(ctx, query,
		bid.ID,
		bid.AuctionID,
		bid.BidderID,
		bid.Commitment,
		bid.CreatedAt,
	))
	if err != nil {
		return model.Bid{}, fmt.Errorf("failed to create bid: %w", err)
	}
	return created, nil
}

// GetBid finds a bid by ID
func (r *PostgresRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`

	bid, err := scanBid(r.db.QueryRowContext(ctx, query, bidID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("failed to find bid: %w", err)
	}
	return bid, nil
}

// RevealBid stores the amount of a sealed bid. The update only matches
// sealed rows so two concurrent reveals cannot both succeed.
func (r *PostgresRepo) RevealBid(ctx context.Context, bidID string, amount decimal.Decimal) (model.Bid, error) {
	query := `
		UPDATE bids SET amount = $2, revealed = TRUE
		WHERE id = $1 AND revealed = FALSE
		RETURNING ` + bidColumns

	bid, err := scanBid(r.db.QueryRowContext(ctx, query, bidID, amount))
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetBid(ctx, bidID); getErr != nil {
			return model.Bid{}, getErr
		}
		return model.Bid{}, fmt.Errorf("reveal bid %s: %w", bidID, biddingerrors.ErrBidAlreadyRevealed)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("failed to reveal bid: %w", err)
	}
	return bid, nil
}

// ListPublicBids returns bid metadata for an auction
func (r *PostgresRepo) ListPublicBids(ctx context.Context, auctionID string) ([]model.PublicBid, error) {
	query := `SELECT id, bidder_id, created_at FROM bids WHERE auction_id = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	defer rows.Close()

	bids := make([]model.PublicBid, 0)
	for rows.Next() {
		var b model.PublicBid
		if err := rows.Scan(&b.ID, &b.BidderID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bid: %w", err)
		}
		b.CreatedAt = b.CreatedAt.UTC()
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// ListRevealedBids returns revealed bids for an auction, highest amount first
func (r *PostgresRepo) ListRevealedBids(ctx context.Context, auctionID string) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE auction_id = $1 AND revealed = TRUE ORDER BY amount DESC`

	rows, err := r.db.QueryContext(ctx, query, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list revealed bids: %w", err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// CreateUser inserts a new user
func (r *PostgresRepo) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query := `
		INSERT INTO users (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, created_at
	`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, user.ID, user.Name, user.Email, user.CreatedAt).
		Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

// GetUser finds a user by ID
func (r *PostgresRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	return r.findUser(ctx, `SELECT id, name, email, created_at FROM users WHERE id = $1`, userID)
}

// GetUserByEmail finds a user by email
func (r *PostgresRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.findUser(ctx, `SELECT id, name, email, created_at FROM users WHERE email = $1`, email)
}

func (r *PostgresRepo) findUser(ctx context.Context, query, arg string) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("find user %s: %w", arg, biddingerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

// ListUsers returns every registered user
func (r *PostgresRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.CreatedAt = u.CreatedAt.UTC()
		users = append(users, u)
	}
	return users, rows.Err()
}

// RecordPayment inserts a payment record
func (r *PostgresRepo) RecordPayment(ctx context.Context, payment model.Payment) (model.Payment, error) {
	query := `
		INSERT INTO payments (id, auction_id, bid_id, payer_id, amount_paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.AuctionID,
		payment.BidID,
		payment.PayerID,
		payment.AmountPaid,
		payment.CreatedAt,
	)
	if err != nil {
		return model.Payment{}, fmt.Errorf("failed to record payment: %w", err)
	}
	return payment, nil
}

// AppendAudit inserts an audit event
func (r *PostgresRepo) AppendAudit(ctx context.Context, event model.AuditEvent) error {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal audit details: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO audit_log (id, entity, entity_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, event.ID, event.Entity, event.EntityID, event.Action, string(details), event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}
	return nil
}
