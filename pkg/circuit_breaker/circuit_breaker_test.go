package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errFail = errors.New("broker down")

func ok() error   { return nil }
func fail() error { return errFail }

type transition struct{ from, to Status }

func newTestBreaker(cfg Config) (*circuitBreaker, *time.Time, *[]transition) {
	var (
		now     = time.Now()
		changes []transition
	)
	cb := New(cfg, WithStateListener(func(from, to Status) {
		changes = append(changes, transition{from, to})
	})).(*circuitBreaker)
	cb.now = func() time.Time { return now }
	return cb, &now, &changes
}

func TestCircuitBreaker_Call(t *testing.T) {
	t.Parallel()
	cb, now, changes := newTestBreaker(Config{
		RecordLength:     10,
		Timeout:          time.Second,
		Percentile:       0.3,
		RecoveryRequests: 2,
	})

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	// three failures in a window of ten reach the 30% threshold
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(fail), errFail)
	}
	require.Equal(t, Open, cb.State())

	calls := 0
	require.ErrorIs(t, cb.Call(func() error { calls++; return nil }), ErrOpenCB)
	require.Zero(t, calls)

	// half-open probe fails and reopens
	*now = now.Add(2 * time.Second)
	require.ErrorIs(t, cb.Call(fail), errFail)
	require.Equal(t, Open, cb.State())

	// half-open probes succeed and close
	*now = now.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())

	require.Equal(t, []transition{
		{Closed, Open},
		{Open, HalfOpen},
		{HalfOpen, Open},
		{Open, HalfOpen},
		{HalfOpen, Closed},
	}, *changes)
}

func TestCircuitBreaker_WindowSlides(t *testing.T) {
	t.Parallel()
	cb, _, _ := newTestBreaker(Config{RecordLength: 4, Timeout: time.Hour, Percentile: 0.5, RecoveryRequests: 1})

	// failures spread further apart than the window never accumulate
	for i := 0; i < 12; i++ {
		if i%4 == 0 {
			require.Error(t, cb.Call(fail))
		} else {
			require.NoError(t, cb.Call(ok))
		}
		require.Equal(t, Closed, cb.State(), "call %d", i)
	}
	require.Equal(t, 1, cb.failures)

	// overwrites the oldest failure, still one in the window
	require.Error(t, cb.Call(fail))
	require.Equal(t, Closed, cb.State())
	require.Error(t, cb.Call(fail))
	require.Equal(t, Open, cb.State())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	t.Parallel()
	cb := New(Config{RecordLength: 1, Timeout: time.Hour, Percentile: 1, RecoveryRequests: 1})

	require.Error(t, cb.Call(fail))
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(ok))
}

func TestStatus_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "closed", Closed.String())
	require.Equal(t, "open", Open.String())
	require.Equal(t, "half-open", HalfOpen.String())
	require.Equal(t, "unknown", Status(0).String())
}
