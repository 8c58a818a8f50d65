package fn_test

import (
	"testing"

	"github.com/on-the-ground/callable_go/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(a, b int) int { return a + b }

func mul(a, b int) int { return a * b }

// counter keeps its count in a value field, so copies are independent.
type counter struct {
	n int
}

func (c *counter) Call(step int) int {
	c.n += step
	return c.n
}

// history keeps its state behind a slice and deep-copies it on Clone.
type history struct {
	seen []string
}

func (h *history) Call(s string) int {
	h.seen = append(h.seen, s)
	return len(h.seen)
}

func (h history) Clone() history {
	return history{seen: append([]string(nil), h.seen...)}
}

type multiplier struct {
	factor int
}

func (m multiplier) Call(a, b int) int {
	return (a + b) * m.factor
}

type joiner struct {
	sep string
}

func (j joiner) Call(a, b, c string) string {
	return a + j.sep + b + j.sep + c
}

type constant struct {
	v string
}

func (c constant) Call() string { return c.v }

func TestFunc2_Scenario(t *testing.T) {
	w := fn.Of2(add)
	res, err := w.Call(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, res)

	next := fn.Of2(mul)
	w.Assign(&next)
	assert.Equal(t, 6, w.MustCall(2, 3))

	var w2 fn.Func2[int, int, int]
	_, err = w2.Call(1, 1)
	assert.ErrorIs(t, err, fn.ErrBadFunctionCall)

	w3 := w.Clone()
	w.Reset()
	assert.Equal(t, 20, w3.MustCall(4, 5))
}

func TestFunc2_SameResultAsDirectCall(t *testing.T) {
	raw := fn.Of2(add)
	bound := fn.Bind2[int, int, int](multiplier{factor: 3})

	for _, args := range [][2]int{{0, 0}, {1, 2}, {-4, 9}, {100, -100}} {
		assert.Equal(t, add(args[0], args[1]), raw.MustCall(args[0], args[1]))
		assert.Equal(t, multiplier{factor: 3}.Call(args[0], args[1]), bound.MustCall(args[0], args[1]))
	}
}

func TestFunc2_EmptyInvocation(t *testing.T) {
	var zero fn.Func2[int, int, int]
	assert.False(t, zero.Valid())

	res, err := zero.Call(1, 2)
	assert.ErrorIs(t, err, fn.ErrBadFunctionCall)
	assert.Equal(t, 0, res)
	assert.PanicsWithError(t, "bad function call", func() { zero.MustCall(1, 2) })

	nilFn := fn.Of2[int, int, int](nil)
	assert.False(t, nilFn.Valid())
	_, err = nilFn.Call(1, 2)
	assert.ErrorIs(t, err, fn.ErrBadFunctionCall)

	reset := fn.Bind2[int, int, int](multiplier{factor: 2})
	require.True(t, reset.Valid())
	reset.Reset()
	assert.False(t, reset.Valid())
	_, err = reset.Call(1, 2)
	assert.ErrorIs(t, err, fn.ErrBadFunctionCall)
}

func TestFunc1_CloneOfStatefulCallableIsIndependent(t *testing.T) {
	orig := fn.Bind1[int, int](counter{})
	assert.Equal(t, 1, orig.MustCall(1))
	assert.Equal(t, 2, orig.MustCall(1))

	cp := orig.Clone()
	assert.Equal(t, 12, cp.MustCall(10))
	assert.Equal(t, 3, orig.MustCall(1))
	assert.Equal(t, 13, cp.MustCall(1))
}

func TestFunc1_BindCapturesByValue(t *testing.T) {
	c := counter{n: 5}
	w := fn.Bind1[int, int](c)
	assert.Equal(t, 6, w.MustCall(1))
	assert.Equal(t, 5, c.n)
}

func TestFunc1_CloneUsesCloner(t *testing.T) {
	orig := fn.Bind1[string, int](history{})
	orig.MustCall("a")

	cp := orig.Clone()
	assert.Equal(t, 2, cp.MustCall("b"))
	assert.Equal(t, 2, orig.MustCall("c"))
	assert.Equal(t, 3, cp.MustCall("d"))
}

func TestFunc2_CloneOfRawSurvivesOriginal(t *testing.T) {
	orig := fn.Of2(add)
	cp := orig.Clone()

	next := fn.Of2(mul)
	orig.AssignMove(&next)
	assert.Equal(t, 12, orig.MustCall(3, 4))
	assert.Equal(t, 7, cp.MustCall(3, 4))

	orig.Reset()
	assert.Equal(t, 7, cp.MustCall(3, 4))
}

func TestFunc2_CloneOfEmptyIsEmpty(t *testing.T) {
	var empty fn.Func2[int, int, int]
	cp := empty.Clone()
	assert.False(t, cp.Valid())
}

func TestFunc2_Move(t *testing.T) {
	src := fn.Bind2[int, int, int](multiplier{factor: 2})
	dst := src.Move()

	assert.False(t, src.Valid())
	_, err := src.Call(1, 1)
	assert.ErrorIs(t, err, fn.ErrBadFunctionCall)
	assert.Equal(t, 10, dst.MustCall(2, 3))

	raw := fn.Of2(add)
	moved := raw.Move()
	assert.False(t, raw.Valid())
	assert.Equal(t, 5, moved.MustCall(2, 3))
}

func TestFunc2_AssignMove(t *testing.T) {
	dst := fn.Of2(add)
	src := fn.Bind2[int, int, int](multiplier{factor: 10})

	dst.AssignMove(&src)
	assert.False(t, src.Valid())
	assert.Equal(t, 50, dst.MustCall(2, 3))
}

func TestFunc2_SelfAssignment(t *testing.T) {
	w := fn.Bind2[int, int, int](multiplier{factor: 4})
	w.Assign(&w)
	assert.Equal(t, 20, w.MustCall(2, 3))

	w.AssignMove(&w)
	require.True(t, w.Valid())
	assert.Equal(t, 20, w.MustCall(2, 3))

	raw := fn.Of2(add)
	raw.Assign(&raw)
	raw.AssignMove(&raw)
	assert.Equal(t, 5, raw.MustCall(2, 3))
}

func TestFunc1_AssignKeepsSourceIntact(t *testing.T) {
	src := fn.Bind1[int, int](counter{})
	var dst fn.Func1[int, int]
	dst.Assign(&src)

	assert.Equal(t, 1, dst.MustCall(1))
	assert.Equal(t, 1, src.MustCall(1))
}

// fuse refuses to be copied once armed.
type fuse struct {
	armed *bool
}

func (f fuse) Call(x int) int { return x }

func (f fuse) Clone() fuse {
	if *f.armed {
		panic("fuse: clone refused")
	}
	return f
}

func TestFunc1_AssignLeavesDestinationOnFailedClone(t *testing.T) {
	armed := false
	src := fn.Bind1[int, int](fuse{armed: &armed})
	dst := fn.Of1(func(x int) int { return x * 7 })

	armed = true
	assert.PanicsWithValue(t, "fuse: clone refused", func() { dst.Assign(&src) })

	require.True(t, dst.Valid())
	assert.Equal(t, 14, dst.MustCall(2))
	assert.Equal(t, 2, src.MustCall(2))
}

func TestFunc1_CloneOfClosureSharesCapturedState(t *testing.T) {
	count := 0
	orig := fn.Of1(func(step int) int {
		count += step
		return count
	})
	cp := orig.Clone()

	assert.Equal(t, 1, orig.MustCall(1))
	assert.Equal(t, 2, cp.MustCall(1))
	assert.Equal(t, 3, orig.MustCall(1))
	assert.Equal(t, 3, count)
}

func TestFunc2_Swap(t *testing.T) {
	a := fn.Of2(add)
	b := fn.Bind2[int, int, int](multiplier{factor: 3})

	a.Swap(&b)
	assert.Equal(t, 15, a.MustCall(2, 3))
	assert.Equal(t, 5, b.MustCall(2, 3))

	fn.Swap(&a, &b)
	assert.Equal(t, 5, a.MustCall(2, 3))
	assert.Equal(t, 15, b.MustCall(2, 3))

	var empty fn.Func2[int, int, int]
	a.Swap(&empty)
	assert.False(t, a.Valid())
	assert.Equal(t, 5, empty.MustCall(2, 3))
}

func TestFunc2_Func(t *testing.T) {
	w := fn.Of2(add)
	plain := w.Func()
	assert.Equal(t, 5, plain(2, 3))

	w.Reset()
	assert.PanicsWithError(t, "bad function call", func() { plain(2, 3) })
}

func TestFunc2_CallablePanicPropagates(t *testing.T) {
	w := fn.Of2(func(a, b int) int { return a / b })
	assert.Panics(t, func() { w.MustCall(1, 0) })

	boom := fn.Of2(func(int, int) int { panic("boom") })
	assert.PanicsWithValue(t, "boom", func() { _, _ = boom.Call(1, 2) })
}

func TestFunc0(t *testing.T) {
	w := fn.Bind0[string](constant{v: "hi"})
	assert.Equal(t, "hi", w.MustCall())

	raw := fn.Of0(func() string { return "raw" })
	w.Swap(&raw)
	assert.Equal(t, "raw", w.MustCall())
	assert.Equal(t, "hi", raw.MustCall())

	var empty fn.Func0[string]
	_, err := empty.Call()
	assert.ErrorIs(t, err, fn.ErrBadFunctionCall)
}

func TestFunc3(t *testing.T) {
	w := fn.Bind3[string, string, string, string](joiner{sep: "-"})
	assert.Equal(t, "a-b-c", w.MustCall("a", "b", "c"))

	cp := w.Clone()
	moved := w.Move()
	assert.False(t, w.Valid())
	assert.Equal(t, "x-y-z", cp.MustCall("x", "y", "z"))
	assert.Equal(t, "x-y-z", moved.MustCall("x", "y", "z"))

	raw := fn.Of3(func(a, b, c int) int { return a*100 + b*10 + c })
	assert.Equal(t, 123, raw.MustCall(1, 2, 3))
}

func TestOf2_DoesNotAllocate(t *testing.T) {
	var sink int
	allocs := testing.AllocsPerRun(100, func() {
		w := fn.Of2(add)
		cp := w.Clone()
		sink += cp.MustCall(2, 3)
	})
	assert.Zero(t, allocs)
	assert.NotZero(t, sink)
}
