package bidding

import (
	"sort"

	"sealed-auction/internal/models"
)

// outranks reports whether a beats b: higher amount first, then earlier
// creation time, then lower bid ID so that no two distinct bids tie.
// Both bids must be revealed.
func outranks(a, b models.Bid) bool {
	if cmp := a.Amount.Cmp(*b.Amount); cmp != 0 {
		return cmp > 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// RankRevealed returns a sorted copy of bids, best first. Unrevealed bids are dropped.
// The result depends only on the set of bids, not on their input order.
func RankRevealed(bids []models.Bid) []models.Bid {
	ranked := make([]models.Bid, 0, len(bids))
	for _, b := range bids {
		if b.Revealed && b.Amount != nil {
			ranked = append(ranked, b)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		return outranks(ranked[i], ranked[j])
	})
	return ranked
}
