package ripple_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/signalforge/ripple"
	"github.com/stretchr/testify/assert"
)

// should run the compute function exactly once per change
func TestComputedMemoizes(t *testing.T) {
	rs := noErrors(t)

	a := ripple.Signal(rs, 1)
	runs := 0
	b := ripple.Computed(rs, func(int) (int, error) {
		runs++
		return a.Value() * 2, nil
	})

	for i := 0; i < 3; i++ {
		v, err := b.Value()
		assert.NoError(t, err)
		assert.Equal(t, 2, v)
	}
	assert.Equal(t, 1, runs)

	a.SetValue(2)
	assert.Equal(t, 1, runs)

	v, err := b.Value()
	assert.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, 2, runs)
}

// should recompute each diamond node once per write
func TestDiamondSingleRecompute(t *testing.T) {
	rs := noErrors(t)

	a := ripple.Signal(rs, 1)
	bRuns, cRuns, dRuns := 0, 0, 0
	b := ripple.Computed(rs, func(int) (int, error) {
		bRuns++
		return a.Value() * 2, nil
	})
	c := ripple.Computed(rs, func(int) (int, error) {
		cRuns++
		return a.Value() * 3, nil
	})
	d := ripple.Computed2(rs, b, c, func(bv, cv int) (int, error) {
		dRuns++
		return bv + cv, nil
	})

	v, err := d.Value()
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, bRuns)
	assert.Equal(t, 1, cRuns)
	assert.Equal(t, 1, dRuns)

	a.SetValue(2)
	v, err = d.Value()
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, bRuns)
	assert.Equal(t, 2, cRuns)
	assert.Equal(t, 2, dRuns)
}

// should stop tracking a branch it no longer reads
func TestDynamicDependencyPruning(t *testing.T) {
	rs := noErrors(t)

	useX := ripple.Signal(rs, true)
	x := ripple.Signal(rs, "x")
	y := ripple.Signal(rs, "y")
	runs := 0
	pick := ripple.Computed(rs, func(string) (string, error) {
		runs++
		if useX.Value() {
			return x.Value(), nil
		}
		return y.Value(), nil
	})

	v, _ := pick.Value()
	assert.Equal(t, "x", v)
	assert.Equal(t, 1, runs)

	// the untaken branch never invalidates
	y.SetValue("yy")
	v, _ = pick.Value()
	assert.Equal(t, "x", v)
	assert.Equal(t, 1, runs)

	useX.SetValue(false)
	v, _ = pick.Value()
	assert.Equal(t, "yy", v)
	assert.Equal(t, 2, runs)

	// after switching, the abandoned branch stops invalidating
	x.SetValue("xx")
	v, _ = pick.Value()
	assert.Equal(t, "yy", v)
	assert.Equal(t, 2, runs)
}

// should pass the previously cached value into the compute function
func TestComputedOldValue(t *testing.T) {
	rs := noErrors(t)

	a := ripple.Signal(rs, 1)
	olds := []int{}
	acc := ripple.Computed(rs, func(oldValue int) (int, error) {
		olds = append(olds, oldValue)
		return oldValue + a.Value(), nil
	})

	v, _ := acc.Value()
	assert.Equal(t, 1, v)
	a.SetValue(2)
	v, _ = acc.Value()
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{0, 1}, olds)
}

// should stay dirty and retry after a failed recomputation
func TestComputedErrorLeavesDirty(t *testing.T) {
	rs := noErrors(t)

	errBoom := errors.New("boom")
	broken := ripple.Signal(rs, true)
	runs := 0
	c := ripple.Computed(rs, func(int) (int, error) {
		runs++
		if broken.Value() {
			return 0, errBoom
		}
		return 42, nil
	})

	_, err := c.Value()
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, runs)

	// every read retries while the node is dirty
	_, err = c.Value()
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, runs)

	// the failed run still tracked its reads, so the fix invalidates it
	broken.SetValue(false)
	v, err := c.Value()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	// and a successful run caches again
	v, err = c.Value()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 3, runs)
}

// should surface a direct self-read as ErrCycle
func TestComputedSelfCycle(t *testing.T) {
	rs := noErrors(t)

	var c *ripple.ReadonlySignal[int]
	c = ripple.Computed(rs, func(int) (int, error) {
		return c.Value()
	})

	_, err := c.Value()
	assert.ErrorIs(t, err, ripple.ErrCycle)
}

// should surface an indirect cycle as ErrCycle
func TestComputedIndirectCycle(t *testing.T) {
	rs := noErrors(t)

	var c1, c2 *ripple.ReadonlySignal[int]
	c1 = ripple.Computed(rs, func(int) (int, error) {
		return c2.Value()
	})
	c2 = ripple.Computed(rs, func(int) (int, error) {
		return c1.Value()
	})

	_, err := c1.Value()
	assert.ErrorIs(t, err, ripple.ErrCycle)
}

// should not bump the version when a recomputation lands on the same value
func TestComputedVersionStableOnSameValue(t *testing.T) {
	rs := noErrors(t)

	a := ripple.Signal(rs, 0)
	even := ripple.Computed(rs, func(bool) (bool, error) {
		return a.Value()%2 == 0, nil
	})

	_, err := even.Value()
	assert.NoError(t, err)
	v1 := even.Version()

	a.SetValue(2)
	_, err = even.Value()
	assert.NoError(t, err)
	assert.Equal(t, v1, even.Version())

	a.SetValue(3)
	_, err = even.Value()
	assert.NoError(t, err)
	assert.Equal(t, v1+1, even.Version())
}

// should notify computed subscribers only when the result changes
func TestComputedSubscribe(t *testing.T) {
	rs := noErrors(t)

	a := ripple.Signal(rs, 0)
	even := ripple.Computed(rs, func(bool) (bool, error) {
		return a.Value()%2 == 0, nil
	})

	got := []bool{}
	even.Subscribe(func(v bool) {
		got = append(got, v)
	})

	a.SetValue(2) // still even, same result
	a.SetValue(3) // odd
	a.SetValue(5) // still odd, same result
	a.SetValue(6) // even
	assert.Equal(t, []bool{false, true}, got)
}

// should chain generated tuple combinators
func TestTupleCombinators(t *testing.T) {
	rs := noErrors(t)

	x := ripple.Signal(rs, 1)
	y := ripple.Signal(rs, 2)
	z := ripple.Signal(rs, 3)
	sum := ripple.Computed3(rs, x, y, z, func(a, b, c int) (int, error) {
		return a + b + c, nil
	})
	doubled := ripple.Computed2(rs, sum, x, func(s, a int) (int, error) {
		return s*2 + a, nil
	})

	v, err := doubled.Value()
	assert.NoError(t, err)
	assert.Equal(t, 13, v)

	z.SetValue(10)
	v, err = doubled.Value()
	assert.NoError(t, err)
	assert.Equal(t, 27, v)
}

// should propagate an input error through a tuple combinator
func TestTupleCombinatorError(t *testing.T) {
	rs := noErrors(t)

	errBad := errors.New("bad input")
	a := ripple.Signal(rs, 1)
	failing := ripple.Computed(rs, func(int) (int, error) {
		return 0, errBad
	})
	sum := ripple.Computed2(rs, a, failing, func(av, fv int) (int, error) {
		return av + fv, nil
	})

	_, err := sum.Value()
	assert.ErrorIs(t, err, errBad)
}
