// Package scheduler runs periodic housekeeping of the media store: images no feed item references any more
// are removed once they are older than the configured age.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/tubefeed/pkg/media"
)

//go:generate moq -out mocks/image_refs.go -pkg mocks -skip-ensure -fmt goimports . ImageRefs
//go:generate moq -out mocks/image_files.go -pkg mocks -skip-ensure -fmt goimports . ImageFiles

// ImageRefs provides names of images still referenced by feed items
type ImageRefs interface {
	ImageNames(ctx context.Context) ([]string, error)
}

// ImageFiles lists and removes stored images
type ImageFiles interface {
	List() ([]media.File, error)
	Remove(name string) error
}

// Config holds scheduler configuration
type Config struct {
	CleanupInterval time.Duration
	CleanupAge      time.Duration // fresh uploads may not be attached to an item yet
}

// Scheduler removes orphaned images in background
type Scheduler struct {
	refs            ImageRefs
	files           ImageFiles
	cleanupInterval time.Duration
	cleanupAge      time.Duration
	now             func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(refs ImageRefs, files ImageFiles, cfg Config) *Scheduler {
	if cfg.CleanupInterval == 0 {
		cfg.CleanupInterval = 6 * time.Hour
	}
	if cfg.CleanupAge == 0 {
		cfg.CleanupAge = time.Hour
	}
	return &Scheduler{
		refs:            refs,
		files:           files,
		cleanupInterval: cfg.CleanupInterval,
		cleanupAge:      cfg.CleanupAge,
		now:             time.Now,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.cleanupWorker(ctx)

	lgr.Printf("[INFO] scheduler started with cleanup interval %v, cleanup age %v", s.cleanupInterval, s.cleanupAge)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	// run immediately on start
	s.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanup(ctx)
		}
	}
}

func (s *Scheduler) cleanup(ctx context.Context) {
	removed, err := s.CleanupNow(ctx)
	if err != nil {
		lgr.Printf("[ERROR] image cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		lgr.Printf("[INFO] removed %d unreferenced images", removed)
	}
}

// CleanupNow removes unreferenced images older than the cleanup age and returns how many were removed.
// Failure to remove a single image is logged and doesn't stop the rest.
func (s *Scheduler) CleanupNow(ctx context.Context) (int, error) {
	// files are listed before references, an image attached in between is seen as referenced
	files, err := s.files.List()
	if err != nil {
		return 0, fmt.Errorf("list images: %w", err)
	}
	names, err := s.refs.ImageNames(ctx)
	if err != nil {
		return 0, fmt.Errorf("get referenced images: %w", err)
	}

	used := make(map[string]bool, len(names))
	for _, n := range names {
		used[n] = true
	}

	threshold := s.now().Add(-s.cleanupAge)
	removed := 0
	for _, f := range files {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if used[f.Name] || f.ModTime.After(threshold) {
			continue
		}
		if err := s.files.Remove(f.Name); err != nil {
			lgr.Printf("[WARN] failed to remove image %s: %v", f.Name, err)
			continue
		}
		lgr.Printf("[DEBUG] removed unreferenced image %s", f.Name)
		removed++
	}
	return removed, nil
}
