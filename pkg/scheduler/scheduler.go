// Package scheduler runs the sync on start and then on a cron schedule, without overlapping runs.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/hackynews/hackynews/pkg/domain"
)

//go:generate moq -out mocks/syncer.go -pkg mocks -skip-ensure -fmt goimports . Syncer

// Syncer runs a bounded sync pass
type Syncer interface {
	Sync(ctx context.Context, limit int) (domain.SyncRun, error)
}

// Params holds scheduler dependencies and settings
type Params struct {
	Syncer   Syncer
	Schedule string // cron expression or descriptor, e.g. "@every 15m"
	Limit    int    // items per periodic pass
}

// Scheduler runs sync once on start and then on a cron schedule.
// A tick is skipped while the previous pass is still running.
type Scheduler struct {
	syncer Syncer
	limit  int
	cron   *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler makes a scheduler, the schedule expression is validated here
func NewScheduler(params Params) (*Scheduler, error) {
	if params.Limit <= 0 {
		return nil, fmt.Errorf("invalid sync limit %d", params.Limit)
	}

	logger := cron.PrintfLogger(cronLogger{})
	s := &Scheduler{
		syncer: params.Syncer,
		limit:  params.Limit,
		cron:   cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
	}
	if _, err := s.cron.AddFunc(params.Schedule, s.runSync); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", params.Schedule, err)
	}
	return s, nil
}

// Start runs the initial sync in background and starts the cron
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runSync()
	}()

	s.cron.Start()
	lgr.Printf("[INFO] scheduler started, limit %d", s.limit)
}

// Stop cancels running sync and waits for it to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	<-s.cron.Stop().Done()
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) runSync() {
	if s.ctx.Err() != nil {
		return
	}
	run, err := s.syncer.Sync(s.ctx, s.limit)
	if err != nil {
		lgr.Printf("[WARN] periodic sync failed: %v", err)
		return
	}
	lgr.Printf("[DEBUG] periodic sync stored %d of %d", run.Stored, run.Requested)
}

// cronLogger sends cron messages to lgr at debug level
type cronLogger struct{}

func (cronLogger) Printf(format string, args ...any) {
	lgr.Printf("[DEBUG] cron: "+format, args...)
}
