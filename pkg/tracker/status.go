package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/umputun/tubefeed/pkg/domain"
)

// ErrInvalidTransition returned for status changes the machine does not allow
var ErrInvalidTransition = errors.New("invalid status transition")

// Transition checks whether a feed item may move from one status to another.
// Pending can become administered or skipped, both can return to pending, and re-applying the current
// status is accepted. Administered and skipped never switch directly.
func Transition(from, to domain.Status) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: unknown status %q -> %q", ErrInvalidTransition, from, to)
	}
	if from == to || from == domain.StatusPending || to == domain.StatusPending {
		return nil
	}
	switch from {
	case domain.StatusAdministered:
		return fmt.Errorf("%w: item is already marked as administered", ErrInvalidTransition)
	default:
		return fmt.Errorf("%w: item is already marked as skipped", ErrInvalidTransition)
	}
}

// Apply moves item to status "to" keeping administered_at set only for administered items.
// A repeated administration keeps the original administration time.
func Apply(item *domain.FeedItem, to domain.Status, now time.Time) error {
	if err := Transition(item.Status, to); err != nil {
		return err
	}
	if to == domain.StatusAdministered {
		if item.Status != domain.StatusAdministered || item.AdministeredAt == nil {
			ts := now
			item.AdministeredAt = &ts
		}
	} else {
		item.AdministeredAt = nil
	}
	item.Status = to
	return nil
}
