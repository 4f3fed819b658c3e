package bidding

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	auction "sealed-auction/internal/auctionService"
	"sealed-auction/internal/audit"
	"sealed-auction/internal/biddingerrors"
	model "sealed-auction/internal/models"
	"sealed-auction/internal/repository"
	"sealed-auction/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.SetOutput(io.Discard)
}

var (
	windowStart = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	windowEnd   = windowStart.Add(time.Hour)
)

func openAuction(id string) model.Auction {
	return model.Auction{
		ID:           id,
		Title:        "Lamp",
		ReservePrice: decimal.NewFromInt(100),
		StartTime:    windowStart,
		EndTime:      windowEnd,
	}
}

// Tests PlaceSealed validation order and window checks
func TestBiddingService_PlaceSealed(t *testing.T) {
	tests := []struct {
		name          string
		commitment    string
		now           time.Time
		mockSetup     func(repo *repository.MockBidStore, auctions *MockAuctionLifecycle, rec *audit.MockRecorder)
		expectError   bool
		expectedError error
		expectedKind  error
	}{
		{
			name:       "valid_bid_inside_window",
			commitment: "sha256:abc",
			now:        windowStart.Add(30 * time.Minute),
			mockSetup: func(repo *repository.MockBidStore, auctions *MockAuctionLifecycle, rec *audit.MockRecorder) {
				auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(openAuction("auction-1"), nil)
				repo.EXPECT().CreateSealedBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Bid) (model.Bid, error) { return b, nil })
				rec.EXPECT().Record(gomock.Any(), model.EntityBid, gomock.Any(), audit.ActionCreateSealed,
					map[string]any{"auction_id": "auction-1", "bidder_id": "bidder-1"})
			},
		},
		{
			name:       "exactly_at_start",
			commitment: "c",
			now:        windowStart,
			mockSetup: func(repo *repository.MockBidStore, auctions *MockAuctionLifecycle, rec *audit.MockRecorder) {
				auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(openAuction("auction-1"), nil)
				repo.EXPECT().CreateSealedBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Bid) (model.Bid, error) { return b, nil })
				rec.EXPECT().Record(gomock.Any(), model.EntityBid, gomock.Any(), audit.ActionCreateSealed, gomock.Any())
			},
		},
		{
			name:       "exactly_at_end",
			commitment: "c",
			now:        windowEnd,
			mockSetup: func(repo *repository.MockBidStore, auctions *MockAuctionLifecycle, rec *audit.MockRecorder) {
				auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(openAuction("auction-1"), nil)
				repo.EXPECT().CreateSealedBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Bid) (model.Bid, error) { return b, nil })
				rec.EXPECT().Record(gomock.Any(), model.EntityBid, gomock.Any(), audit.ActionCreateSealed, gomock.Any())
			},
		},
		{
			name:          "blank_commitment_checked_first",
			commitment:    "   ",
			now:           windowStart,
			mockSetup:     func(*repository.MockBidStore, *MockAuctionLifecycle, *audit.MockRecorder) {},
			expectError:   true,
			expectedError: biddingerrors.ErrCommitmentRequired,
			expectedKind:  biddingerrors.ErrValidation,
		},
		{
			name:       "auction_not_found",
			commitment: "c",
			now:        windowStart,
			mockSetup: func(_ *repository.MockBidStore, auctions *MockAuctionLifecycle, _ *audit.MockRecorder) {
				auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(model.Auction{}, biddingerrors.ErrAuctionNotFound)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrAuctionNotFound,
		},
		{
			name:       "one_second_before_start",
			commitment: "c",
			now:        windowStart.Add(-time.Second),
			mockSetup: func(_ *repository.MockBidStore, auctions *MockAuctionLifecycle, _ *audit.MockRecorder) {
				auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(openAuction("auction-1"), nil)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrAuctionNotOpen,
			expectedKind:  biddingerrors.ErrState,
		},
		{
			name:       "one_second_after_end",
			commitment: "c",
			now:        windowEnd.Add(time.Second),
			mockSetup: func(_ *repository.MockBidStore, auctions *MockAuctionLifecycle, _ *audit.MockRecorder) {
				auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(openAuction("auction-1"), nil)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrAuctionNotOpen,
			expectedKind:  biddingerrors.ErrState,
		},
		{
			name:       "repo_fails",
			commitment: "c",
			now:        windowStart,
			mockSetup: func(repo *repository.MockBidStore, auctions *MockAuctionLifecycle, _ *audit.MockRecorder) {
				auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(openAuction("auction-1"), nil)
				repo.EXPECT().CreateSealedBid(gomock.Any(), gomock.Any()).Return(model.Bid{}, errors.New("db down"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository.NewMockBidStore(ctrl)
			auctions := NewMockAuctionLifecycle(ctrl)
			rec := audit.NewMockRecorder(ctrl)
			tc.mockSetup(repo, auctions, rec)

			service := NewBiddingService(repo, auctions, rec, WithClock(func() time.Time { return tc.now }))
			bid, err := service.PlaceSealed(context.Background(), "auction-1", "bidder-1", tc.commitment)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				if tc.expectedKind != nil {
					require.True(t, errors.Is(err, tc.expectedKind), "expected kind: %v, got: %v", tc.expectedKind, err)
				}
				return
			}

			require.NoError(t, err)
			_, parseErr := uuid.Parse(bid.ID)
			require.NoError(t, parseErr, "bid ID should be a valid UUID")
			require.Equal(t, "auction-1", bid.AuctionID)
			require.Equal(t, "bidder-1", bid.BidderID)
			require.Equal(t, tc.commitment, bid.Commitment)
			require.False(t, bid.Revealed)
			require.Nil(t, bid.Amount)
			require.Equal(t, tc.now, bid.CreatedAt)
		})
	}
}

// Tests Reveal validation order and store outcomes
func TestBiddingService_Reveal(t *testing.T) {
	sealed := model.NewSealedBid("bid-1", "auction-1", "bidder-1", "c", windowStart)
	alreadyRevealed := sealed
	alreadyRevealed.Reveal(decimal.NewFromInt(10))

	tests := []struct {
		name          string
		amount        decimal.Decimal
		mockSetup     func(repo *repository.MockBidStore, rec *audit.MockRecorder)
		expectError   bool
		expectedError error
	}{
		{
			name:   "valid_reveal",
			amount: decimal.RequireFromString("150.25"),
			mockSetup: func(repo *repository.MockBidStore, rec *audit.MockRecorder) {
				repo.EXPECT().GetBid(gomock.Any(), "bid-1").Return(sealed, nil)
				repo.EXPECT().RevealBid(gomock.Any(), "bid-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal) (model.Bid, error) {
						b := sealed
						b.Reveal(amount)
						return b, nil
					})
				rec.EXPECT().Record(gomock.Any(), model.EntityBid, "bid-1", audit.ActionReveal, map[string]any{"amount": "150.25"})
			},
		},
		{
			name:          "zero_amount",
			amount:        decimal.Zero,
			mockSetup:     func(*repository.MockBidStore, *audit.MockRecorder) {},
			expectError:   true,
			expectedError: biddingerrors.ErrNonPositiveAmount,
		},
		{
			name:          "negative_amount",
			amount:        decimal.NewFromInt(-5),
			mockSetup:     func(*repository.MockBidStore, *audit.MockRecorder) {},
			expectError:   true,
			expectedError: biddingerrors.ErrNonPositiveAmount,
		},
		{
			name:   "bid_not_found",
			amount: decimal.NewFromInt(10),
			mockSetup: func(repo *repository.MockBidStore, _ *audit.MockRecorder) {
				repo.EXPECT().GetBid(gomock.Any(), "bid-1").Return(model.Bid{}, biddingerrors.ErrBidNotFound)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrBidNotFound,
		},
		{
			name:   "already_revealed",
			amount: decimal.NewFromInt(20),
			mockSetup: func(repo *repository.MockBidStore, _ *audit.MockRecorder) {
				repo.EXPECT().GetBid(gomock.Any(), "bid-1").Return(alreadyRevealed, nil)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrBidAlreadyRevealed,
		},
		{
			name:   "revealed_concurrently",
			amount: decimal.NewFromInt(20),
			mockSetup: func(repo *repository.MockBidStore, _ *audit.MockRecorder) {
				repo.EXPECT().GetBid(gomock.Any(), "bid-1").Return(sealed, nil)
				repo.EXPECT().RevealBid(gomock.Any(), "bid-1", gomock.Any()).Return(model.Bid{}, biddingerrors.ErrBidAlreadyRevealed)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrBidAlreadyRevealed,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository.NewMockBidStore(ctrl)
			rec := audit.NewMockRecorder(ctrl)
			tc.mockSetup(repo, rec)

			service := NewBiddingService(repo, NewMockAuctionLifecycle(ctrl), rec)
			bid, err := service.Reveal(context.Background(), "bid-1", tc.amount)

			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.True(t, bid.Revealed)
			require.True(t, tc.amount.Equal(*bid.Amount))
		})
	}
}

// Tests DeclareWinner against mocked collaborators
func TestBiddingService_DeclareWinner_Mocked(t *testing.T) {
	t.Run("auction_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := NewMockAuctionLifecycle(ctrl)
		auctions.EXPECT().Get(gomock.Any(), "missing").Return(model.Auction{}, biddingerrors.ErrAuctionNotFound)

		service := NewBiddingService(repository.NewMockBidStore(ctrl), auctions, audit.NewMockRecorder(ctrl))
		winner, err := service.DeclareWinner(context.Background(), "missing")
		require.True(t, errors.Is(err, biddingerrors.ErrAuctionNotFound))
		require.Nil(t, winner)
	})

	t.Run("close_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auctions := NewMockAuctionLifecycle(ctrl)
		auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(openAuction("auction-1"), nil)
		auctions.EXPECT().Close(gomock.Any(), "auction-1").Return(model.Auction{}, errors.New("db down"))

		service := NewBiddingService(repository.NewMockBidStore(ctrl), auctions, audit.NewMockRecorder(ctrl))
		_, err := service.DeclareWinner(context.Background(), "auction-1")
		require.Error(t, err)
	})

	t.Run("closed_auction_is_not_closed_again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		closed := openAuction("auction-1")
		closed.IsClosed = true
		top := model.NewSealedBid("bid-1", "auction-1", "bidder-1", "c", windowStart)
		top.Reveal(decimal.NewFromInt(120))

		auctions := NewMockAuctionLifecycle(ctrl)
		repo := repository.NewMockBidStore(ctrl)
		rec := audit.NewMockRecorder(ctrl)
		auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(closed, nil)
		repo.EXPECT().ListRevealedBids(gomock.Any(), "auction-1").Return([]model.Bid{top}, nil)
		rec.EXPECT().Record(gomock.Any(), model.EntityAuction, "auction-1", audit.ActionDeclareWinner,
			map[string]any{"bid_id": "bid-1", "bidder_id": "bidder-1", "amount": "120"})

		service := NewBiddingService(repo, auctions, rec)
		winner, err := service.DeclareWinner(context.Background(), "auction-1")
		require.NoError(t, err)
		require.Equal(t, "bid-1", winner.BidID)
	})

	t.Run("list_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		closed := openAuction("auction-1")
		closed.IsClosed = true
		auctions := NewMockAuctionLifecycle(ctrl)
		repo := repository.NewMockBidStore(ctrl)
		auctions.EXPECT().Get(gomock.Any(), "auction-1").Return(closed, nil)
		repo.EXPECT().ListRevealedBids(gomock.Any(), "auction-1").Return(nil, errors.New("db down"))

		service := NewBiddingService(repo, auctions, audit.NewMockRecorder(ctrl))
		_, err := service.DeclareWinner(context.Background(), "auction-1")
		require.Error(t, err)
	})
}

// testClock is a settable clock shared by the services in a scenario
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type scenario struct {
	repo     *repository.MemoryRepo
	auctions *auction.AuctionService
	bidding  *BiddingService
	clock    *testClock
	auction  model.Auction
}

// newScenario wires real services over the memory repo with an auction
// open for the hour starting at windowStart
func newScenario(t *testing.T, reserve string) *scenario {
	t.Helper()

	repo := repository.NewMemoryRepo()
	recorder := audit.NewStoreRecorder(repo)
	clock := &testClock{now: windowStart}

	auctions := auction.NewAuctionService(repo, recorder, auction.WithClock(clock.Now))
	bidding := NewBiddingService(repo, auctions, recorder, WithClock(clock.Now))

	a, err := auctions.Create(context.Background(), "Lamp", "brass", decimal.RequireFromString(reserve),
		windowStart, windowEnd, "seller-1")
	require.NoError(t, err)

	return &scenario{repo: repo, auctions: auctions, bidding: bidding, clock: clock, auction: a}
}

func (s *scenario) sealAndReveal(t *testing.T, bidder, amount string, at time.Time) model.Bid {
	t.Helper()

	s.clock.Set(at)
	bid, err := s.bidding.PlaceSealed(context.Background(), s.auction.ID, bidder, "commit-"+bidder)
	require.NoError(t, err)
	revealed, err := s.bidding.Reveal(context.Background(), bid.ID, decimal.RequireFromString(amount))
	require.NoError(t, err)
	return revealed
}

func (s *scenario) actions(entity string) []string {
	var actions []string
	for _, e := range s.repo.AuditEvents() {
		if e.Entity == entity {
			actions = append(actions, e.Action)
		}
	}
	return actions
}

// Tests that equal amounts are won by the earlier sealed bid
func TestBiddingService_TieGoesToEarliestBid(t *testing.T) {
	s := newScenario(t, "100")
	ctx := context.Background()

	t0 := windowStart.Add(time.Minute)
	t1 := windowStart.Add(2 * time.Minute)

	// B seals first, A seals later; A reveals before B
	s.clock.Set(t0)
	bidB, err := s.bidding.PlaceSealed(ctx, s.auction.ID, "bidder-b", "commit-b")
	require.NoError(t, err)
	s.clock.Set(t1)
	bidA, err := s.bidding.PlaceSealed(ctx, s.auction.ID, "bidder-a", "commit-a")
	require.NoError(t, err)

	_, err = s.bidding.Reveal(ctx, bidA.ID, decimal.NewFromInt(150))
	require.NoError(t, err)
	_, err = s.bidding.Reveal(ctx, bidB.ID, decimal.NewFromInt(150))
	require.NoError(t, err)

	winner, err := s.bidding.DeclareWinner(ctx, s.auction.ID)
	require.NoError(t, err)
	require.NotNil(t, winner)
	require.Equal(t, bidB.ID, winner.BidID)
	require.Equal(t, "bidder-b", winner.BidderID)
	require.True(t, decimal.NewFromInt(150).Equal(winner.Amount))
}

// Tests the reserve price boundary
func TestBiddingService_DeclareWinner_Reserve(t *testing.T) {
	tests := []struct {
		name         string
		reserve      string
		amounts      []string
		expectWinner bool
		winnerAmount string
	}{
		{name: "single_bid_below_reserve", reserve: "100", amounts: []string{"99"}},
		{name: "one_cent_below_reserve", reserve: "100", amounts: []string{"99.99"}},
		{name: "equal_to_reserve_wins", reserve: "100", amounts: []string{"100"}, expectWinner: true, winnerAmount: "100"},
		{name: "zero_reserve", reserve: "0", amounts: []string{"0.01"}, expectWinner: true, winnerAmount: "0.01"},
		{name: "highest_above_reserve", reserve: "100", amounts: []string{"99", "250", "101"}, expectWinner: true, winnerAmount: "250"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newScenario(t, tc.reserve)
			for i, amount := range tc.amounts {
				s.sealAndReveal(t, "bidder-"+amount, amount, windowStart.Add(time.Duration(i)*time.Second))
			}

			winner, err := s.bidding.DeclareWinner(context.Background(), s.auction.ID)
			require.NoError(t, err)

			if !tc.expectWinner {
				require.Nil(t, winner)
				require.NotContains(t, s.actions(model.EntityAuction), audit.ActionDeclareWinner)
				return
			}
			require.NotNil(t, winner)
			require.True(t, decimal.RequireFromString(tc.winnerAmount).Equal(winner.Amount))
		})
	}
}

// Tests declaring an auction without revealed bids
func TestBiddingService_DeclareWinner_NoRevealedBids(t *testing.T) {
	s := newScenario(t, "10")
	ctx := context.Background()

	// sealed but never revealed
	_, err := s.bidding.PlaceSealed(ctx, s.auction.ID, "bidder-1", "commit")
	require.NoError(t, err)

	winner, err := s.bidding.DeclareWinner(ctx, s.auction.ID)
	require.NoError(t, err)
	require.Nil(t, winner)

	closed, err := s.auctions.Get(ctx, s.auction.ID)
	require.NoError(t, err)
	require.True(t, closed.IsClosed)

}

// Tests that only the time window gates bidding: closing does not
func TestBiddingService_PlaceSealed_AfterClose(t *testing.T) {
	s := newScenario(t, "10")
	ctx := context.Background()

	_, err := s.bidding.DeclareWinner(ctx, s.auction.ID)
	require.NoError(t, err)

	bid, err := s.bidding.PlaceSealed(ctx, s.auction.ID, "bidder-2", "commit")
	require.NoError(t, err)
	require.False(t, bid.Revealed)

	s.clock.Set(windowEnd.Add(time.Nanosecond))
	_, err = s.bidding.PlaceSealed(ctx, s.auction.ID, "bidder-3", "commit")
	require.True(t, errors.Is(err, biddingerrors.ErrAuctionNotOpen))
}

// Tests that a second declaration re-audits but does not close again
func TestBiddingService_DeclareWinner_Repeated(t *testing.T) {
	s := newScenario(t, "100")
	ctx := context.Background()
	s.sealAndReveal(t, "bidder-1", "120", windowStart)

	first, err := s.bidding.DeclareWinner(ctx, s.auction.ID)
	require.NoError(t, err)
	second, err := s.bidding.DeclareWinner(ctx, s.auction.ID)
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Equal(t, []string{
		audit.ActionCreate,
		audit.ActionClose,
		audit.ActionDeclareWinner,
		audit.ActionDeclareWinner,
	}, s.actions(model.EntityAuction))
}

// Tests that a bid can only be revealed once
func TestBiddingService_DoubleReveal(t *testing.T) {
	s := newScenario(t, "1")
	ctx := context.Background()

	bid := s.sealAndReveal(t, "bidder-1", "50", windowStart)

	_, err := s.bidding.Reveal(ctx, bid.ID, decimal.NewFromInt(75))
	require.True(t, errors.Is(err, biddingerrors.ErrBidAlreadyRevealed))
	require.True(t, errors.Is(err, biddingerrors.ErrState))

	stored, err := s.repo.GetBid(ctx, bid.ID)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(50).Equal(*stored.Amount))

	require.Equal(t, []string{audit.ActionCreateSealed, audit.ActionReveal}, s.actions(model.EntityBid))
}

// Tests that reveal is allowed after the window closes and after the auction is closed
func TestBiddingService_RevealOutsideWindow(t *testing.T) {
	s := newScenario(t, "1")
	ctx := context.Background()

	bid, err := s.bidding.PlaceSealed(ctx, s.auction.ID, "bidder-1", "commit")
	require.NoError(t, err)

	s.clock.Set(windowEnd.Add(24 * time.Hour))
	_, err = s.auctions.Close(ctx, s.auction.ID)
	require.NoError(t, err)

	revealed, err := s.bidding.Reveal(ctx, bid.ID, decimal.NewFromInt(3))
	require.NoError(t, err)
	require.True(t, revealed.Revealed)
}

// Tests the amount/revealed invariant and the public listing
func TestBiddingService_Listings(t *testing.T) {
	s := newScenario(t, "1")
	ctx := context.Background()

	s.clock.Set(windowStart)
	sealed, err := s.bidding.PlaceSealed(ctx, s.auction.ID, "bidder-1", "commit-1")
	require.NoError(t, err)
	low := s.sealAndReveal(t, "bidder-2", "5", windowStart.Add(time.Second))
	high := s.sealAndReveal(t, "bidder-3", "9.5", windowStart.Add(2*time.Second))

	public, err := s.bidding.ListPublic(ctx, s.auction.ID)
	require.NoError(t, err)
	require.Equal(t, []model.PublicBid{sealed.Public(), low.Public(), high.Public()}, public)

	revealed, err := s.bidding.ListRevealed(ctx, s.auction.ID)
	require.NoError(t, err)
	require.Len(t, revealed, 2)
	require.Equal(t, high.ID, revealed[0].ID)
	require.Equal(t, low.ID, revealed[1].ID)

	for _, id := range []string{sealed.ID, low.ID, high.ID} {
		b, err := s.repo.GetBid(ctx, id)
		require.NoError(t, err)
		require.NoError(t, b.Validate())
	}

	empty, err := s.bidding.ListPublic(ctx, "unknown-auction")
	require.NoError(t, err)
	require.Empty(t, empty)
}

// Tests concurrent sealed bids on one auction
func TestBiddingService_ConcurrentPlaceSealed(t *testing.T) {
	s := newScenario(t, "1")
	ctx := context.Background()

	const bidders = 50
	var wg sync.WaitGroup
	errs := make(chan error, bidders)
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.bidding.PlaceSealed(ctx, s.auction.ID, uuid.NewString(), "commit")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	public, err := s.bidding.ListPublic(ctx, s.auction.ID)
	require.NoError(t, err)
	require.Len(t, public, bidders)
}
