package fn

// Caller3 is implemented by callable objects of signature (A1, A2, A3) R.
type Caller3[A1, A2, A3, R any] interface {
	Call(A1, A2, A3) R
}

type callerPtr3[C, A1, A2, A3, R any] interface {
	*C
	Caller3[A1, A2, A3, R]
}

type adapter3[A1, A2, A3, R any] interface {
	invoke(A1, A2, A3) R
	clone() adapter3[A1, A2, A3, R]
}

// holder3 owns one copy of a callable object of type C.
type holder3[A1, A2, A3, R, C any, PC callerPtr3[C, A1, A2, A3, R]] struct {
	callee C
}

func (h *holder3[A1, A2, A3, R, C, PC]) invoke(a1 A1, a2 A2, a3 A3) R {
	return PC(&h.callee).Call(a1, a2, a3)
}

func (h *holder3[A1, A2, A3, R, C, PC]) clone() adapter3[A1, A2, A3, R] {
	return &holder3[A1, A2, A3, R, C, PC]{callee: duplicate(h.callee)}
}

// Func3 wraps a callable of signature func(A1, A2, A3) R. The zero value is empty.
type Func3[A1, A2, A3, R any] struct {
	_ noCopy
	state[func(A1, A2, A3) R, adapter3[A1, A2, A3, R]]
}

// Of3 wraps a plain func without allocating. A nil f yields an empty wrapper.
func Of3[A1, A2, A3, R any](f func(A1, A2, A3) R) Func3[A1, A2, A3, R] {
	if f == nil {
		return Func3[A1, A2, A3, R]{}
	}
	return Func3[A1, A2, A3, R]{state: rawState[func(A1, A2, A3) R, adapter3[A1, A2, A3, R]](f)}
}

// Bind3 captures a copy of c into a newly allocated adapter. C may implement
// Caller3 with either a value or a pointer receiver.
func Bind3[A1, A2, A3, R, C any, PC callerPtr3[C, A1, A2, A3, R]](c C) Func3[A1, A2, A3, R] {
	h := &holder3[A1, A2, A3, R, C, PC]{callee: duplicate(c)}
	return Func3[A1, A2, A3, R]{state: heldState[func(A1, A2, A3) R, adapter3[A1, A2, A3, R]](h)}
}

// Call invokes the bound callable. It returns ErrBadFunctionCall if f is empty.
func (f *Func3[A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) (R, error) {
	switch f.mode {
	case modeRaw:
		return f.raw(a1, a2, a3), nil
	case modeErased:
		return f.held.invoke(a1, a2, a3), nil
	}
	var zero R
	return zero, ErrBadFunctionCall
}

// MustCall is like Call but panics with ErrBadFunctionCall if f is empty.
func (f *Func3[A1, A2, A3, R]) MustCall(a1 A1, a2 A2, a3 A3) R {
	res, err := f.Call(a1, a2, a3)
	if err != nil {
		panic(err)
	}
	return res
}

// Func returns a plain func that invokes f through MustCall. It observes
// later changes to f.
func (f *Func3[A1, A2, A3, R]) Func() func(A1, A2, A3) R {
	return f.MustCall
}

// Clone returns an independent wrapper holding an equivalent callable.
func (f *Func3[A1, A2, A3, R]) Clone() Func3[A1, A2, A3, R] {
	return Func3[A1, A2, A3, R]{state: f.duplicate()}
}

// Move transfers the bound callable to the returned wrapper and leaves f empty.
func (f *Func3[A1, A2, A3, R]) Move() Func3[A1, A2, A3, R] {
	return Func3[A1, A2, A3, R]{state: f.take()}
}

// Assign replaces the callable of f by a clone of the one in other.
func (f *Func3[A1, A2, A3, R]) Assign(other *Func3[A1, A2, A3, R]) {
	f.assign(other.duplicate())
}

// AssignMove moves the callable of other into f and leaves other empty,
// unless other is f.
func (f *Func3[A1, A2, A3, R]) AssignMove(other *Func3[A1, A2, A3, R]) {
	f.assign(other.take())
}

// Swap exchanges the callables of f and other.
func (f *Func3[A1, A2, A3, R]) Swap(other *Func3[A1, A2, A3, R]) {
	f.swap(&other.state)
}
