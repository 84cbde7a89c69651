package debounce_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/samandr77/microservices/onboarding/pkg/debounce"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebouncer_LastTriggerWins(t *testing.T) {
	t.Parallel()

	d := debounce.New(30 * time.Millisecond)
	t.Cleanup(d.Stop)

	var (
		mu    sync.Mutex
		calls []string
	)

	for _, v := range []string{"a", "ab", "abc"} {
		d.Trigger("search", func() {
			mu.Lock()
			defer mu.Unlock()

			calls = append(calls, v)
		})
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(calls) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	require.Equal(t, []string{"abc"}, calls)
	require.False(t, d.Pending("search"))
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	d := debounce.New(10 * time.Millisecond)
	t.Cleanup(d.Stop)

	var a, b atomic.Int32

	d.Trigger("a", func() { a.Add(1) })
	d.Trigger("b", func() { b.Add(1) })

	require.Eventually(t, func() bool {
		return a.Load() == 1 && b.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncer_Cancel(t *testing.T) {
	t.Parallel()

	d := debounce.New(20 * time.Millisecond)
	t.Cleanup(d.Stop)

	var calls atomic.Int32

	d.Trigger("k", func() { calls.Add(1) })
	require.True(t, d.Pending("k"))
	require.True(t, d.Cancel("k"))
	require.False(t, d.Cancel("k"))

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	d := debounce.New(time.Hour)

	var calls atomic.Int32

	d.Trigger("x", func() { calls.Add(1) })
	d.Trigger("y", func() { calls.Add(1) })
	d.Stop()

	require.False(t, d.Pending("x"))
	require.False(t, d.Pending("y"))
	require.Zero(t, calls.Load())
}
