package fn

// Caller1 is implemented by callable objects of signature (A1) R.
type Caller1[A1, R any] interface {
	Call(A1) R
}

type callerPtr1[C, A1, R any] interface {
	*C
	Caller1[A1, R]
}

type adapter1[A1, R any] interface {
	invoke(A1) R
	clone() adapter1[A1, R]
}

// holder1 owns one copy of a callable object of type C.
type holder1[A1, R, C any, PC callerPtr1[C, A1, R]] struct {
	callee C
}

func (h *holder1[A1, R, C, PC]) invoke(a1 A1) R {
	return PC(&h.callee).Call(a1)
}

func (h *holder1[A1, R, C, PC]) clone() adapter1[A1, R] {
	return &holder1[A1, R, C, PC]{callee: duplicate(h.callee)}
}

// Func1 wraps a callable of signature func(A1) R. The zero value is empty.
type Func1[A1, R any] struct {
	_ noCopy
	state[func(A1) R, adapter1[A1, R]]
}

// Of1 wraps a plain func without allocating. A nil f yields an empty wrapper.
func Of1[A1, R any](f func(A1) R) Func1[A1, R] {
	if f == nil {
		return Func1[A1, R]{}
	}
	return Func1[A1, R]{state: rawState[func(A1) R, adapter1[A1, R]](f)}
}

// Bind1 captures a copy of c into a newly allocated adapter. C may implement
// Caller1 with either a value or a pointer receiver.
func Bind1[A1, R, C any, PC callerPtr1[C, A1, R]](c C) Func1[A1, R] {
	h := &holder1[A1, R, C, PC]{callee: duplicate(c)}
	return Func1[A1, R]{state: heldState[func(A1) R, adapter1[A1, R]](h)}
}

// Call invokes the bound callable. It returns ErrBadFunctionCall if f is empty.
func (f *Func1[A1, R]) Call(a1 A1) (R, error) {
	switch f.mode {
	case modeRaw:
		return f.raw(a1), nil
	case modeErased:
		return f.held.invoke(a1), nil
	}
	var zero R
	return zero, ErrBadFunctionCall
}

// MustCall is like Call but panics with ErrBadFunctionCall if f is empty.
func (f *Func1[A1, R]) MustCall(a1 A1) R {
	res, err := f.Call(a1)
	if err != nil {
		panic(err)
	}
	return res
}

// Func returns a plain func that invokes f through MustCall. It observes
// later changes to f.
func (f *Func1[A1, R]) Func() func(A1) R {
	return f.MustCall
}

// Clone returns an independent wrapper holding an equivalent callable.
func (f *Func1[A1, R]) Clone() Func1[A1, R] {
	return Func1[A1, R]{state: f.duplicate()}
}

// Move transfers the bound callable to the returned wrapper and leaves f empty.
func (f *Func1[A1, R]) Move() Func1[A1, R] {
	return Func1[A1, R]{state: f.take()}
}

// Assign replaces the callable of f by a clone of the one in other.
func (f *Func1[A1, R]) Assign(other *Func1[A1, R]) {
	f.assign(other.duplicate())
}

// AssignMove moves the callable of other into f and leaves other empty,
// unless other is f.
func (f *Func1[A1, R]) AssignMove(other *Func1[A1, R]) {
	f.assign(other.take())
}

// Swap exchanges the callables of f and other.
func (f *Func1[A1, R]) Swap(other *Func1[A1, R]) {
	f.swap(&other.state)
}
