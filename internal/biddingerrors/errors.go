package biddingerrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below wraps exactly one of them.
var (
	ErrValidation = errors.New("validation error")
	ErrState      = errors.New("state error")
)

// Lookup errors
var (
	ErrAuctionNotFound = fmt.Errorf("%w: auction not found", ErrValidation)
	ErrBidNotFound     = fmt.Errorf("%w: bid not found", ErrValidation)
	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrValidation)
)

// Input validation errors
var (
	ErrInvalidAuctionWindow = fmt.Errorf("%w: end must be after start", ErrValidation)
	ErrIncompleteWindow     = fmt.Errorf("%w: start_time and end_time must be given together", ErrValidation)
	ErrNegativeReserve      = fmt.Errorf("%w: reserve price must not be negative", ErrValidation)
	ErrCommitmentRequired   = fmt.Errorf("%w: commitment required", ErrValidation)
	ErrNonPositiveAmount    = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrNameRequired         = fmt.Errorf("%w: name required", ErrValidation)
	ErrEmailRequired        = fmt.Errorf("%w: email required", ErrValidation)
	ErrInvalidPayment       = fmt.Errorf("%w: invalid payment", ErrValidation)
)

// Illegal transitions
var (
	ErrAuctionNotOpen     = fmt.Errorf("%w: auction not open for bidding", ErrState)
	ErrBidAlreadyRevealed = fmt.Errorf("%w: bid already revealed", ErrState)
)
