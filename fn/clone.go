package fn

// Cloner lets a callable object control how its captured state is copied
// when it is bound into a wrapper or when that wrapper is cloned.
//
// Clone must return a value that shares no mutable state with the receiver.
// Value and pointer receivers are both honoured.
type Cloner[C any] interface {
	Clone() C
}

// Swapper is implemented by pointers to every wrapper type.
type Swapper[T any] interface {
	Swap(other T)
}

// Swap exchanges the bound callables of a and b.
func Swap[T Swapper[T]](a, b T) {
	a.Swap(b)
}

func duplicate[C any](c C) C {
	if cl, ok := any(c).(Cloner[C]); ok {
		return cl.Clone()
	}
	if cl, ok := any(&c).(Cloner[C]); ok {
		return cl.Clone()
	}
	return c
}
