package ripple_test

import (
	"testing"

	"github.com/delaneyj/signalforge/ripple"
	"github.com/stretchr/testify/assert"
)

func noErrors(t *testing.T) *ripple.ReactiveSystem {
	t.Helper()
	return ripple.CreateReactiveSystem(func(from *ripple.EffectRunner, err error) {
		assert.FailNow(t, err.Error())
	})
}

// should read and write a plain signal
func TestSignalBasics(t *testing.T) {
	rs := noErrors(t)

	count := ripple.Signal(rs, 1)
	assert.Equal(t, 1, count.Value())
	assert.Equal(t, uint64(0), count.Version())

	count.SetValue(2)
	assert.Equal(t, 2, count.Value())
	assert.Equal(t, uint64(1), count.Version())
}

// should not bump the version when writing an equal value
func TestSignalWriteEqualityShortCircuit(t *testing.T) {
	rs := noErrors(t)

	count := ripple.Signal(rs, 3)
	runs := 0
	ripple.Effect(rs, func() (ripple.CleanupFunc, error) {
		count.Value()
		runs++
		return nil, nil
	})
	assert.Equal(t, 1, runs)

	count.SetValue(3)
	assert.Equal(t, uint64(0), count.Version())
	assert.Equal(t, 1, runs)
}

// should honor a custom per-signal equality
func TestSignalCustomEquality(t *testing.T) {
	rs := noErrors(t)

	almost := func(old, next float64) bool {
		diff := old - next
		return diff < 0.5 && diff > -0.5
	}
	temp := ripple.Signal(rs, 20.0, ripple.SignalWithEquals(almost))

	runs := 0
	ripple.Effect(rs, func() (ripple.CleanupFunc, error) {
		temp.Value()
		runs++
		return nil, nil
	})
	assert.Equal(t, 1, runs)

	temp.SetValue(20.2)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 20.0, temp.Peek())

	temp.SetValue(21.0)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 21.0, temp.Peek())
}

// should apply functional updates
func TestSignalUpdate(t *testing.T) {
	rs := noErrors(t)

	count := ripple.Signal(rs, 10)
	count.Update(func(old int) int { return old * 2 })
	assert.Equal(t, 20, count.Value())
}

// should not register an edge when peeking
func TestSignalPeekDoesNotTrack(t *testing.T) {
	rs := noErrors(t)

	src := ripple.Signal(rs, 0)
	runs := 0
	ripple.Effect(rs, func() (ripple.CleanupFunc, error) {
		src.Peek()
		runs++
		return nil, nil
	})
	assert.Equal(t, 1, runs)

	src.SetValue(1)
	assert.Equal(t, 1, runs)
}

// should notify subscribers on changes only, not on subscription
func TestSignalSubscribe(t *testing.T) {
	rs := noErrors(t)

	name := ripple.Signal(rs, "a")
	got := []string{}
	unsubscribe := name.Subscribe(func(v string) {
		got = append(got, v)
	})
	assert.Empty(t, got)

	name.SetValue("b")
	name.SetValue("b")
	name.SetValue("c")
	assert.Equal(t, []string{"b", "c"}, got)

	unsubscribe()
	name.SetValue("d")
	assert.Equal(t, []string{"b", "c"}, got)

	// safe to call twice
	unsubscribe()
}

// should coalesce subscriber notifications inside a batch
func TestSignalSubscribeBatch(t *testing.T) {
	rs := noErrors(t)

	s := ripple.Signal(rs, 0)
	got := []int{}
	s.Subscribe(func(v int) {
		got = append(got, v)
	})

	rs.Batch(func() {
		s.SetValue(1)
		s.SetValue(2)
		s.SetValue(3)
	})
	assert.Equal(t, []int{3}, got)
}
