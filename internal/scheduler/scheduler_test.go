package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls    atomic.Int32
	err      error
	deadline atomic.Bool
}

func (r *countingRefresher) Refresh(ctx context.Context) (int64, error) {
	r.calls.Add(1)
	_, ok := ctx.Deadline()
	r.deadline.Store(ok)
	return 250, r.err
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New("every now and then", &countingRefresher{}, 0)
	assert.Error(t, err)
}

func TestScheduler_RunOnce(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		timeout      time.Duration
		wantDeadline bool
	}{
		{name: "success with timeout", timeout: time.Minute, wantDeadline: true},
		{name: "failure is swallowed", err: errors.New("provider down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &countingRefresher{err: tt.err}
			s, err := New("@hourly", r, tt.timeout)
			require.NoError(t, err)

			s.runOnce()

			assert.Equal(t, int32(1), r.calls.Load())
			assert.Equal(t, tt.wantDeadline, r.deadline.Load())
		})
	}
}

func TestScheduler_StartStop(t *testing.T) {
	r := &countingRefresher{}
	s, err := New("@every 1s", r, 0)
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return r.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	calls := r.calls.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, calls, r.calls.Load(), "no ticks after Stop")
}
