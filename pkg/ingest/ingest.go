// Package ingest pulls recent items from the news source, classifies their titles and
// upserts them into the store. A run is bounded by a limit, cancellable between items,
// and concurrent callers share a single in-flight run.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/hackynews/hackynews/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/run_recorder.go -pkg mocks -skip-ensure -fmt goimports . RunRecorder

// ErrInvalidLimit is returned when sync is called with a non-positive limit
var ErrInvalidLimit = errors.New("limit must be positive")

const (
	syncKey        = "sync"
	reclassifyKey  = "reclassify"
	reclassifyPage = 200
)

// Fetcher provides ids of recent items and single items by id
type Fetcher interface {
	NewItemIDs(ctx context.Context) []int64
	Item(ctx context.Context, id int64) (*domain.Item, error)
}

// Classifier assigns a category to a title
type Classifier interface {
	Classify(ctx context.Context, title string) domain.Category
}

// Store persists classified items
type Store interface {
	Ping(ctx context.Context) error
	UpsertItem(ctx context.Context, item *domain.ClassifiedItem) error
	ItemTitles(ctx context.Context, afterID int64, limit int) ([]domain.ClassifiedItem, error)
	UpdateCategory(ctx context.Context, id int64, title string, category domain.Category) (bool, error)
}

// RunRecorder keeps the summary of the last completed sync
type RunRecorder interface {
	SaveSyncRun(ctx context.Context, run domain.SyncRun) error
}

// Params holds syncer dependencies and throttling settings
type Params struct {
	Fetcher       Fetcher
	Classifier    Classifier
	Store         Store
	Recorder      RunRecorder // optional
	ThrottleEvery int         // pause after this many processed ids, 0 disables
	ThrottleDelay time.Duration
}

// Syncer orchestrates fetch, classify and upsert passes
type Syncer struct {
	Params
	group singleflight.Group
}

// New makes a syncer
func New(params Params) *Syncer {
	return &Syncer{Params: params}
}

// Sync runs one bounded pass over the most recent ids. Callers arriving while a pass is
// in flight join it and get its summary, their own limit is ignored in that case.
func (s *Syncer) Sync(ctx context.Context, limit int) (domain.SyncRun, error) {
	if limit <= 0 {
		return domain.SyncRun{}, fmt.Errorf("sync with limit %d: %w", limit, ErrInvalidLimit)
	}

	ch := s.group.DoChan(syncKey, func() (any, error) {
		// the pass itself is not bound to ctx, it stops between ids once the originating caller is done
		return s.sync(context.WithoutCancel(ctx), ctx.Done(), limit)
	})

	select {
	case res := <-ch:
		run, _ := res.Val.(domain.SyncRun)
		if res.Shared {
			lgr.Printf("[DEBUG] joined in-flight sync, stored %d", run.Stored)
		}
		return run, res.Err
	case <-ctx.Done():
		return domain.SyncRun{}, ctx.Err()
	}
}

// sync does the actual pass. The run stops between ids once done is closed.
func (s *Syncer) sync(ctx context.Context, done <-chan struct{}, limit int) (domain.SyncRun, error) {
	run := domain.SyncRun{StartedAt: time.Now()}

	if err := s.Store.Ping(ctx); err != nil {
		return run, fmt.Errorf("store unavailable: %w", err)
	}

	ids := s.Fetcher.NewItemIDs(ctx)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	run.Requested = len(ids)
	lgr.Printf("[INFO] sync started, %d ids", len(ids))

	candidates := 0
	var lastStoreErr error
	for _, id := range ids {
		if run.Processed > 0 && s.ThrottleEvery > 0 && run.Processed%s.ThrottleEvery == 0 {
			s.pause(done)
		}

		if isDone(done) {
			run.Duration = time.Since(run.StartedAt)
			lgr.Printf("[INFO] sync canceled after %d of %d ids, stored %d", run.Processed, run.Requested, run.Stored)
			return run, context.Canceled
		}

		run.Processed++
		item, err := s.Fetcher.Item(ctx, id)
		if err != nil {
			lgr.Printf("[DEBUG] skip item %d: %v", id, err)
			run.Skipped++
			continue
		}
		if item == nil || strings.TrimSpace(item.Title) == "" {
			run.Skipped++
			continue
		}

		candidates++
		ci := &domain.ClassifiedItem{Item: *item, Category: s.Classifier.Classify(ctx, item.Title)}
		if err := s.Store.UpsertItem(ctx, ci); err != nil {
			lgr.Printf("[WARN] failed to store item %d: %v", id, err)
			run.Failed++
			lastStoreErr = err
			continue
		}
		run.Stored++
		lgr.Printf("[DEBUG] stored item %d as %s: %s", id, ci.Category, ci.Title)
	}
	run.Duration = time.Since(run.StartedAt)

	if candidates > 0 && run.Stored == 0 {
		return run, fmt.Errorf("all %d upserts failed: %w", candidates, lastStoreErr)
	}

	lgr.Printf("[INFO] sync completed in %v: requested %d, processed %d, stored %d, skipped %d, failed %d",
		run.Duration.Round(time.Millisecond), run.Requested, run.Processed, run.Stored, run.Skipped, run.Failed)

	if s.Recorder != nil {
		if err := s.Recorder.SaveSyncRun(ctx, run); err != nil {
			lgr.Printf("[WARN] failed to save sync summary: %v", err)
		}
	}
	return run, nil
}

// Reclassify runs the classifier over every stored title and updates categories that changed.
// Returns the number of updated items.
func (s *Syncer) Reclassify(ctx context.Context) (int, error) {
	ch := s.group.DoChan(reclassifyKey, func() (any, error) {
		return s.reclassify(context.WithoutCancel(ctx), ctx.Done())
	})

	select {
	case res := <-ch:
		changed, _ := res.Val.(int)
		return changed, res.Err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (s *Syncer) reclassify(ctx context.Context, done <-chan struct{}) (int, error) {
	if err := s.Store.Ping(ctx); err != nil {
		return 0, fmt.Errorf("store unavailable: %w", err)
	}

	var changed, seen int
	var afterID int64
	for {
		page, err := s.Store.ItemTitles(ctx, afterID, reclassifyPage)
		if err != nil {
			return changed, fmt.Errorf("load titles after %d: %w", afterID, err)
		}
		if len(page) == 0 {
			break
		}

		for _, item := range page {
			if isDone(done) {
				return changed, context.Canceled
			}
			seen++
			cat := s.Classifier.Classify(ctx, item.Title)
			if cat == item.Category {
				continue
			}
			ok, err := s.Store.UpdateCategory(ctx, item.ID, item.Title, cat)
			if err != nil {
				lgr.Printf("[WARN] failed to update category for item %d: %v", item.ID, err)
				continue
			}
			if !ok {
				lgr.Printf("[DEBUG] item %d changed during reclassify, skipped", item.ID)
				continue
			}
			changed++
		}

		afterID = page[len(page)-1].ID
		if len(page) < reclassifyPage {
			break
		}
	}

	lgr.Printf("[INFO] reclassified %d items, %d changed", seen, changed)
	return changed, nil
}

// pause waits for the throttle delay or until done is closed
func (s *Syncer) pause(done <-chan struct{}) {
	if s.ThrottleDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.ThrottleDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-done:
	}
}

func isDone(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}
