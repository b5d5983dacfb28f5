package simulator

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snackshop/models"
	"snackshop/settings"
)

// fixedRandom returns its values in order, repeating the last one
type fixedRandom struct {
	values []float64
	calls  int
}

func (r *fixedRandom) Float64() float64 {
	v := r.values[min(r.calls, len(r.values)-1)]
	r.calls++
	return v
}

type recordingSleeper struct {
	slept  []time.Duration
	during func()
	err    error
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.slept = append(s.slept, d)
	if s.during != nil {
		s.during()
	}
	return s.err
}

func TestGuard_AllOff(t *testing.T) {
	rnd := &fixedRandom{values: []float64{0}}
	sleeper := &recordingSleeper{}
	sim := New(settings.New(models.Settings{}), WithRandom(rnd), WithSleeper(sleeper))

	for i := 0; i < 50; i++ {
		require.NoError(t, sim.Guard(context.Background(), "list_snacks"))
	}
	assert.Empty(t, sleeper.slept)
	assert.Zero(t, rnd.calls, "no draws when both flags are off")
}

func TestGuard_LatencyRange(t *testing.T) {
	tests := []struct {
		draw float64
		want time.Duration
	}{
		{0, 350 * time.Millisecond},
		{0.5, 575 * time.Millisecond},
		{0.75, 687500 * time.Microsecond},
	}
	for _, tt := range tests {
		sleeper := &recordingSleeper{}
		sim := New(settings.New(models.Settings{SimulateLatency: true}),
			WithRandom(&fixedRandom{values: []float64{tt.draw}}), WithSleeper(sleeper))

		require.NoError(t, sim.Guard(context.Background(), "checkout"))
		require.Len(t, sleeper.slept, 1)
		assert.Equal(t, tt.want, sleeper.slept[0])
		assert.GreaterOrEqual(t, sleeper.slept[0], MinLatency)
		assert.Less(t, sleeper.slept[0], MaxLatency)
	}
}

func TestGuard_InjectedFailure(t *testing.T) {
	store := settings.New(models.Settings{SimulateErrors: true})

	sim := New(store, WithRandom(&fixedRandom{values: []float64{0.19}}), WithSleeper(&recordingSleeper{}))
	err := sim.Guard(context.Background(), "get_snack")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.Contains(t, err.Error(), "get_snack")

	sim = New(store, WithRandom(&fixedRandom{values: []float64{0.20}}), WithSleeper(&recordingSleeper{}))
	assert.NoError(t, sim.Guard(context.Background(), "get_snack"))
}

func TestGuard_LatencyBeforeFailure(t *testing.T) {
	sleeper := &recordingSleeper{}
	sim := New(settings.New(models.Settings{SimulateLatency: true, SimulateErrors: true}),
		WithRandom(&fixedRandom{values: []float64{0.5, 0.01}}), WithSleeper(sleeper))

	err := sim.Guard(context.Background(), "checkout")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Len(t, sleeper.slept, 1, "failed call still waits")
}

func TestGuard_ToggleDuringCallDoesNotApply(t *testing.T) {
	store := settings.New(models.Settings{SimulateLatency: true})
	sleeper := &recordingSleeper{during: func() { store.ToggleSimulateErrors() }}
	sim := New(store, WithRandom(&fixedRandom{values: []float64{0}}), WithSleeper(sleeper))

	require.NoError(t, sim.Guard(context.Background(), "list_snacks"))
	assert.True(t, store.SimulateErrors())
}

func TestGuard_SleepInterrupted(t *testing.T) {
	sleeper := &recordingSleeper{err: context.Canceled}
	sim := New(settings.New(models.Settings{SimulateLatency: true}), WithSleeper(sleeper))

	err := sim.Guard(context.Background(), "list_snacks")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGuard_FailureRateConverges(t *testing.T) {
	const calls = 10000
	sim := New(settings.New(models.Settings{SimulateErrors: true}),
		WithRandom(rand.New(rand.NewPCG(42, 7))))

	failures := 0
	for i := 0; i < calls; i++ {
		if err := sim.Guard(context.Background(), "list_snacks"); err != nil {
			require.ErrorIs(t, err, ErrServiceUnavailable)
			failures++
		}
	}
	rate := float64(failures) / calls
	assert.InDelta(t, FailureRate, rate, 0.02)
}

func TestGuard_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	sim := New(settings.New(models.Settings{SimulateLatency: true, SimulateErrors: true}),
		WithRandom(&fixedRandom{values: []float64{0, 0.1, 0, 0.9}}),
		WithSleeper(&recordingSleeper{}),
		WithMetrics(metrics))

	assert.Error(t, sim.Guard(context.Background(), "checkout"))
	assert.NoError(t, sim.Guard(context.Background(), "checkout"))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Calls.WithLabelValues("checkout", outcomeInjectedError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Calls.WithLabelValues("checkout", outcomeOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.DelayMS))
}

func TestTimerSleeper_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := timerSleeper{}.Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
