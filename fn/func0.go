package fn

// Caller0 is implemented by callable objects taking no arguments.
type Caller0[R any] interface {
	Call() R
}

type callerPtr0[C, R any] interface {
	*C
	Caller0[R]
}

type adapter0[R any] interface {
	invoke() R
	clone() adapter0[R]
}

type holder0[R, C any, PC callerPtr0[C, R]] struct {
	callee C
}

func (h *holder0[R, C, PC]) invoke() R {
	return PC(&h.callee).Call()
}

func (h *holder0[R, C, PC]) clone() adapter0[R] {
	return &holder0[R, C, PC]{callee: duplicate(h.callee)}
}

// Func0 wraps a callable of signature func() R. The zero value is empty.
type Func0[R any] struct {
	_ noCopy
	state[func() R, adapter0[R]]
}

// Of0 wraps a plain func without allocating. A nil f yields an empty wrapper.
func Of0[R any](f func() R) Func0[R] {
	if f == nil {
		return Func0[R]{}
	}
	return Func0[R]{state: rawState[func() R, adapter0[R]](f)}
}

// Bind0 captures a copy of c into a newly allocated adapter.
func Bind0[R, C any, PC callerPtr0[C, R]](c C) Func0[R] {
	h := &holder0[R, C, PC]{callee: duplicate(c)}
	return Func0[R]{state: heldState[func() R, adapter0[R]](h)}
}

// Call invokes the bound callable. It returns ErrBadFunctionCall if f is empty.
func (f *Func0[R]) Call() (R, error) {
	switch f.mode {
	case modeRaw:
		return f.raw(), nil
	case modeErased:
		return f.held.invoke(), nil
	}
	var zero R
	return zero, ErrBadFunctionCall
}

// MustCall is like Call but panics with ErrBadFunctionCall if f is empty.
func (f *Func0[R]) MustCall() R {
	res, err := f.Call()
	if err != nil {
		panic(err)
	}
	return res
}

// Func returns a plain func that invokes f through MustCall. It observes
// later changes to f.
func (f *Func0[R]) Func() func() R {
	return f.MustCall
}

// Clone returns an independent wrapper holding an equivalent callable.
func (f *Func0[R]) Clone() Func0[R] {
	return Func0[R]{state: f.duplicate()}
}

// Move transfers the bound callable to the returned wrapper and leaves f empty.
func (f *Func0[R]) Move() Func0[R] {
	return Func0[R]{state: f.take()}
}

// Assign replaces the callable of f by a clone of the one in other.
func (f *Func0[R]) Assign(other *Func0[R]) {
	f.assign(other.duplicate())
}

// AssignMove moves the callable of other into f and leaves other empty,
// unless other is f.
func (f *Func0[R]) AssignMove(other *Func0[R]) {
	f.assign(other.take())
}

// Swap exchanges the callables of f and other.
func (f *Func0[R]) Swap(other *Func0[R]) {
	f.swap(&other.state)
}
