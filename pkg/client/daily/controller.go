// Package daily keeps the state of the daily tracker screen: the viewed date, its feed items and the formula
// library, loading and per-item busy flags and the last error. All changes go through the backend and are
// followed by a re-fetch, local copies are never patched in place.
package daily

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/tubefeed/pkg/client"
	"github.com/umputun/tubefeed/pkg/domain"
	"github.com/umputun/tubefeed/pkg/tracker"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API

// MaxDaysAway limits navigation to this many days before or after today
const MaxDaysAway = 30

// ErrOutOfRange returned when navigating past the allowed date window
var ErrOutOfRange = errors.New("date is outside of the allowed range")

// ErrBusy returned when an action is already in flight for the item
var ErrBusy = errors.New("action already in progress")

// API is the subset of the REST client used by the controller
type API interface {
	FeedItems(ctx context.Context, date domain.Date) ([]client.FeedItem, error)
	Formulas(ctx context.Context) ([]domain.FoodFormula, error)
	SetStatus(ctx context.Context, id int64, status domain.Status) (*client.FeedItem, error)
	CreateFeedItem(ctx context.Context, req client.ItemRequest) (*client.FeedItem, error)
	UpdateFeedItem(ctx context.Context, id int64, req client.ItemRequest) (*client.FeedItem, error)
	DeleteFeedItem(ctx context.Context, id int64) error
}

// View is an immutable snapshot of the tracker state
type View struct {
	Date     domain.Date
	Items    []client.FeedItem
	Formulas []domain.FoodFormula
	Loading  bool           // date load in flight, the whole surface is disabled
	Busy     map[int64]bool // items with an action in flight
	Err      error
	Summary  tracker.Summary
	Next     *tracker.Upcoming // nil if nothing is upcoming
	CanPrev  bool
	CanNext  bool
}

// Controller owns the daily tracker state. Safe for concurrent use.
type Controller struct {
	api API
	now func() time.Time

	mu       sync.Mutex
	date     domain.Date // requested date, differs from loaded while a load is in flight
	loaded   domain.Date // date of items, zero until the first successful load
	items    []client.FeedItem
	formulas []domain.FoodFormula
	loading  bool
	busy     map[int64]bool
	err      error
	seq      uint64 // incremented on each load, only the latest load applies its result
}

// New makes controller viewing today. now is used for "today" and the next feed, time.Now if nil.
func New(api API, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{api: api, now: now, date: domain.DateOf(now()), busy: map[int64]bool{}}
}

// View returns the current state with derived summary and next feed
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := View{
		Date:     c.date,
		Items:    append([]client.FeedItem(nil), c.items...),
		Formulas: append([]domain.FoodFormula(nil), c.formulas...),
		Loading:  c.loading,
		Busy:     make(map[int64]bool, len(c.busy)),
		Err:      c.err,
	}
	for id := range c.busy {
		res.Busy[id] = true
	}

	items := make([]domain.FeedItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item.FeedItem)
	}
	res.Summary = tracker.Summarize(items)
	// timings are combined with the date they were loaded for, never with a pending target date
	if !c.loaded.IsZero() {
		if next, ok := tracker.NextFeed(items, c.loaded, c.now()); ok {
			res.Next = &next
		}
	}

	today := domain.DateOf(c.now())
	res.CanPrev = c.date.After(today.AddDays(-MaxDaysAway))
	res.CanNext = c.date.Before(today.AddDays(MaxDaysAway))
	return res
}

// Load switches to date and fetches its items and the formula list together.
// A load superseded by a newer one before it completes is discarded and returns nil.
// On failure the view goes back to the last loaded date with its items.
func (c *Controller) Load(ctx context.Context, date domain.Date) error {
	if err := c.checkRange(date); err != nil {
		return err
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.date = date
	c.loading = true
	c.err = nil
	c.mu.Unlock()

	var items []client.FeedItem
	var formulas []domain.FoodFormula
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		items, err = c.api.FeedItems(gctx, date)
		return err
	})
	g.Go(func() (err error) {
		formulas, err = c.api.Formulas(gctx)
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		lgr.Printf("[DEBUG] discard stale load of %s", date)
		return nil
	}
	c.loading = false
	if err != nil {
		c.err = fmt.Errorf("load %s: %w", date, err)
		if !c.loaded.IsZero() {
			c.date = c.loaded
		}
		return c.err
	}
	c.items, c.formulas, c.loaded = items, formulas, date
	return nil
}

// Reload re-fetches the current date
func (c *Controller) Reload(ctx context.Context) error {
	return c.Load(ctx, c.currentDate())
}

// PrevDay moves one day back
func (c *Controller) PrevDay(ctx context.Context) error {
	return c.Load(ctx, c.currentDate().AddDays(-1))
}

// NextDay moves one day forward
func (c *Controller) NextDay(ctx context.Context) error {
	return c.Load(ctx, c.currentDate().AddDays(1))
}

// Today moves to the current date
func (c *Controller) Today(ctx context.Context) error {
	return c.Load(ctx, domain.DateOf(c.now()))
}

// MarkAdministered records item as given and re-fetches the day
func (c *Controller) MarkAdministered(ctx context.Context, id int64) error {
	return c.SetStatus(ctx, id, domain.StatusAdministered)
}

// MarkSkipped records item as skipped and re-fetches the day
func (c *Controller) MarkSkipped(ctx context.Context, id int64) error {
	return c.SetStatus(ctx, id, domain.StatusSkipped)
}

// MarkPending resets item and re-fetches the day
func (c *Controller) MarkPending(ctx context.Context, id int64) error {
	return c.SetStatus(ctx, id, domain.StatusPending)
}

// SetStatus changes item status. On failure the local state is left as is and the error is exposed in View.
func (c *Controller) SetStatus(ctx context.Context, id int64, status domain.Status) error {
	return c.itemAction(ctx, id, func() error {
		_, err := c.api.SetStatus(ctx, id, status)
		return err
	})
}

// Delete removes item and re-fetches the day
func (c *Controller) Delete(ctx context.Context, id int64) error {
	return c.itemAction(ctx, id, func() error {
		return c.api.DeleteFeedItem(ctx, id)
	})
}

// Update replaces editable fields of item and re-fetches the day
func (c *Controller) Update(ctx context.Context, id int64, req client.ItemRequest) error {
	return c.itemAction(ctx, id, func() error {
		_, err := c.api.UpdateFeedItem(ctx, id, req)
		return err
	})
}

// Add creates an ad-hoc item on the viewed date unless the request has its own date
func (c *Controller) Add(ctx context.Context, req client.ItemRequest) error {
	if req.Item.ScheduledDate.IsZero() {
		req.Item.ScheduledDate = c.currentDate()
	}
	if _, err := c.api.CreateFeedItem(ctx, req); err != nil {
		c.setErr(err)
		return err
	}
	return c.Reload(ctx)
}

// AddFromFormula creates an ad-hoc item pre-filled from a loaded formula. Fields set in draft are kept.
func (c *Controller) AddFromFormula(ctx context.Context, formulaID int64, draft domain.FeedItem) error {
	f, ok := c.formula(formulaID)
	if !ok {
		err := &client.Error{Kind: client.KindPrecondition, Msg: fmt.Sprintf("formula %d is not loaded", formulaID)}
		c.setErr(err)
		return err
	}
	return c.Add(ctx, client.ItemRequest{Item: tracker.Prefill(draft, f)})
}

// ClearError dismisses the current error
func (c *Controller) ClearError() {
	c.setErr(nil)
}

// itemAction runs fn with the item busy flag set, then re-fetches the day on success
func (c *Controller) itemAction(ctx context.Context, id int64, fn func() error) error {
	if id <= 0 {
		err := &client.Error{Kind: client.KindPrecondition, Msg: "feed item id is required"}
		c.setErr(err)
		return err
	}

	c.mu.Lock()
	if c.busy[id] {
		c.mu.Unlock()
		return &client.Error{Kind: client.KindPrecondition, Msg: fmt.Sprintf("feed item %d", id), Err: ErrBusy}
	}
	c.busy[id] = true
	c.mu.Unlock()

	err := fn()

	c.mu.Lock()
	delete(c.busy, id)
	if err != nil {
		c.err = err
	}
	c.mu.Unlock()

	if err != nil {
		return err
	}
	return c.Reload(ctx)
}

func (c *Controller) checkRange(date domain.Date) error {
	today := domain.DateOf(c.now())
	if date.IsZero() || date.Before(today.AddDays(-MaxDaysAway)) || date.After(today.AddDays(MaxDaysAway)) {
		return &client.Error{Kind: client.KindPrecondition, Msg: fmt.Sprintf("date %s", date), Err: ErrOutOfRange}
	}
	return nil
}

func (c *Controller) currentDate() domain.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.date
}

func (c *Controller) formula(id int64) (domain.FoodFormula, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.formulas {
		if f.ID == id {
			return f, true
		}
	}
	return domain.FoodFormula{}, false
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}
