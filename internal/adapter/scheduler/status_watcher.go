package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// RunningLister reports the ids of running campaigns in ascending order.
// port.CampaignUseCase satisfies it.
type RunningLister interface {
	RunningCampaigns(ctx context.Context) ([]int64, error)
}

// Transition is the difference between two consecutive observations of the
// running campaign set.
type Transition struct {
	Started []int64
	Stopped []int64
}

// Empty reports whether nothing changed.
func (t Transition) Empty() bool {
	return len(t.Started) == 0 && len(t.Stopped) == 0
}

// StatusWatcher periodically evaluates campaigns and logs the ones that
// started or stopped running since the previous tick.
type StatusWatcher struct {
	cronEngine *cron.Cron
	source     RunningLister
	logger     *slog.Logger
	schedule   string
	timeout    time.Duration

	mu       sync.Mutex
	observed bool
	running  []int64
}

// NewStatusWatcher creates a watcher firing on schedule, a robfig/cron
// expression evaluated in loc.
func NewStatusWatcher(source RunningLister, logger *slog.Logger, schedule string, loc *time.Location) *StatusWatcher {
	if loc == nil {
		loc = time.UTC
	}
	return &StatusWatcher{
		cronEngine: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		source:   source,
		logger:   logger,
		schedule: schedule,
		timeout:  30 * time.Second,
	}
}

// Start registers the job and starts the cron engine.
func (s *StatusWatcher) Start() error {
	_, err := s.cronEngine.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if _, err := s.Tick(ctx); err != nil {
			s.logger.Error("status watcher tick failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return fmt.Errorf("add status watcher job %q: %w", s.schedule, err)
	}
	s.cronEngine.Start()
	s.logger.Info("status watcher started", slog.String("schedule", s.schedule))
	return nil
}

// Stop stops the engine and waits for a running tick to finish.
func (s *StatusWatcher) Stop() {
	<-s.cronEngine.Stop().Done()
	s.logger.Info("status watcher stopped")
}

// Tick evaluates the running set once and returns the transition since the
// previous tick. The first tick only records a baseline.
func (s *StatusWatcher) Tick(ctx context.Context) (Transition, error) {
	ids, err := s.source.RunningCampaigns(ctx)
	if err != nil {
		return Transition{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.observed {
		s.observed = true
		s.running = ids
		s.logger.InfoContext(ctx, "campaigns running", slog.Any("ids", ids))
		return Transition{}, nil
	}

	t := Transition{
		Started: difference(ids, s.running),
		Stopped: difference(s.running, ids),
	}
	s.running = ids
	if !t.Empty() {
		s.logger.InfoContext(ctx, "campaign status changed",
			slog.Any("started", t.Started),
			slog.Any("stopped", t.Stopped),
		)
	}
	return t, nil
}

// difference returns the ids of a missing from b, keeping a's order.
func difference(a, b []int64) []int64 {
	var out []int64
	for _, id := range a {
		if !slices.Contains(b, id) {
			out = append(out, id)
		}
	}
	return out
}
