package tracker

import (
	"sort"
	"time"

	"github.com/umputun/tubefeed/pkg/domain"
)

// Upcoming is a pending feed item with its absolute scheduled instant
type Upcoming struct {
	Item domain.FeedItem `json:"item"`
	At   time.Time       `json:"at"`
}

// NextFeed returns the earliest pending item scheduled strictly after now. The instant of each item is
// built from the viewed date and the item timing in now's location, so the viewed date is used even when
// it is not today. Returns false if nothing is upcoming.
func NextFeed(items []domain.FeedItem, viewed domain.Date, now time.Time) (Upcoming, bool) {
	candidates := make([]Upcoming, 0, len(items))
	for _, item := range items {
		if item.Status != domain.StatusPending {
			continue
		}
		at := viewed.At(item.Timing, now.Location())
		if !at.After(now) {
			continue
		}
		candidates = append(candidates, Upcoming{Item: item, At: at})
	}
	if len(candidates) == 0 {
		return Upcoming{}, false
	}

	// all candidates share the viewed date
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Item.Timing.Before(candidates[j].Item.Timing) })
	return candidates[0], true
}
