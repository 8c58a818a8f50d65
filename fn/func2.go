package fn

// Caller2 is implemented by callable objects of signature (A1, A2) R.
type Caller2[A1, A2, R any] interface {
	Call(A1, A2) R
}

type callerPtr2[C, A1, A2, R any] interface {
	*C
	Caller2[A1, A2, R]
}

type adapter2[A1, A2, R any] interface {
	invoke(A1, A2) R
	clone() adapter2[A1, A2, R]
}

// holder2 owns one copy of a callable object of type C.
type holder2[A1, A2, R, C any, PC callerPtr2[C, A1, A2, R]] struct {
	callee C
}

func (h *holder2[A1, A2, R, C, PC]) invoke(a1 A1, a2 A2) R {
	return PC(&h.callee).Call(a1, a2)
}

func (h *holder2[A1, A2, R, C, PC]) clone() adapter2[A1, A2, R] {
	return &holder2[A1, A2, R, C, PC]{callee: duplicate(h.callee)}
}

// Func2 wraps a callable of signature func(A1, A2) R. The zero value is empty.
type Func2[A1, A2, R any] struct {
	_ noCopy
	state[func(A1, A2) R, adapter2[A1, A2, R]]
}

// Of2 wraps a plain func without allocating. A nil f yields an empty wrapper.
func Of2[A1, A2, R any](f func(A1, A2) R) Func2[A1, A2, R] {
	if f == nil {
		return Func2[A1, A2, R]{}
	}
	return Func2[A1, A2, R]{state: rawState[func(A1, A2) R, adapter2[A1, A2, R]](f)}
}

// Bind2 captures a copy of c into a newly allocated adapter. C may implement
// Caller2 with either a value or a pointer receiver.
func Bind2[A1, A2, R, C any, PC callerPtr2[C, A1, A2, R]](c C) Func2[A1, A2, R] {
	h := &holder2[A1, A2, R, C, PC]{callee: duplicate(c)}
	return Func2[A1, A2, R]{state: heldState[func(A1, A2) R, adapter2[A1, A2, R]](h)}
}

// Call invokes the bound callable. It returns ErrBadFunctionCall if f is empty.
func (f *Func2[A1, A2, R]) Call(a1 A1, a2 A2) (R, error) {
	switch f.mode {
	case modeRaw:
		return f.raw(a1, a2), nil
	case modeErased:
		return f.held.invoke(a1, a2), nil
	}
	var zero R
	return zero, ErrBadFunctionCall
}

// MustCall is like Call but panics with ErrBadFunctionCall if f is empty.
func (f *Func2[A1, A2, R]) MustCall(a1 A1, a2 A2) R {
	res, err := f.Call(a1, a2)
	if err != nil {
		panic(err)
	}
	return res
}

// Func returns a plain func that invokes f through MustCall. It observes
// later changes to f.
func (f *Func2[A1, A2, R]) Func() func(A1, A2) R {
	return f.MustCall
}

// Clone returns an independent wrapper holding an equivalent callable.
func (f *Func2[A1, A2, R]) Clone() Func2[A1, A2, R] {
	return Func2[A1, A2, R]{state: f.duplicate()}
}

// Move transfers the bound callable to the returned wrapper and leaves f empty.
func (f *Func2[A1, A2, R]) Move() Func2[A1, A2, R] {
	return Func2[A1, A2, R]{state: f.take()}
}

// Assign replaces the callable of f by a clone of the one in other.
func (f *Func2[A1, A2, R]) Assign(other *Func2[A1, A2, R]) {
	f.assign(other.duplicate())
}

// AssignMove moves the callable of other into f and leaves other empty,
// unless other is f.
func (f *Func2[A1, A2, R]) AssignMove(other *Func2[A1, A2, R]) {
	f.assign(other.take())
}

// Swap exchanges the callables of f and other.
func (f *Func2[A1, A2, R]) Swap(other *Func2[A1, A2, R]) {
	f.swap(&other.state)
}
