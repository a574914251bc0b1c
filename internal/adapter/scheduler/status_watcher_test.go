package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	results [][]int64
	err     error
	calls   int
}

func (s *stubLister) RunningCampaigns(context.Context) ([]int64, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := s.results[s.calls%len(s.results)]
	s.calls++
	return ids, nil
}

func newWatcher(src RunningLister) *StatusWatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStatusWatcher(src, logger, "@every 1m", time.UTC)
}

func TestTickReportsTransitions(t *testing.T) {
	src := &stubLister{results: [][]int64{{1, 2}, {2, 3, 4}, {2, 3, 4}}}
	w := newWatcher(src)
	ctx := context.Background()

	first, err := w.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, first.Empty())

	second, err := w.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, second.Started)
	assert.Equal(t, []int64{1}, second.Stopped)

	third, err := w.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, third.Empty())
}

func TestTickError(t *testing.T) {
	boom := errors.New("db down")
	w := newWatcher(&stubLister{err: boom})

	_, err := w.Tick(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := NewStatusWatcher(&stubLister{results: [][]int64{nil}}, logger, "not a schedule", nil)
	assert.Error(t, w.Start())
}

func TestStartStop(t *testing.T) {
	w := newWatcher(&stubLister{results: [][]int64{nil}})
	require.NoError(t, w.Start())
	w.Stop()
}
