package fn

type mode uint8

const (
	modeEmpty mode = iota
	modeRaw
	modeErased
)

// adapter is the duplicate half of an erasure adapter. The invoke half is
// arity specific and lives on adapter0..adapter3.
type adapter[H any] interface {
	clone() H
}

// state is the tagged union behind every wrapper. raw and held are never
// both populated.
type state[F any, H adapter[H]] struct {
	mode mode
	raw  F
	held H
}

// Valid reports whether a callable is bound.
func (s *state[F, H]) Valid() bool {
	return s.mode != modeEmpty
}

// Reset unbinds the callable and releases the owned adapter, if any.
func (s *state[F, H]) Reset() {
	*s = state[F, H]{}
}

func rawState[F any, H adapter[H]](f F) state[F, H] {
	return state[F, H]{mode: modeRaw, raw: f}
}

func heldState[F any, H adapter[H]](h H) state[F, H] {
	return state[F, H]{mode: modeErased, held: h}
}

// duplicate returns an independent copy. Raw funcs are shared, adapters are
// cloned.
func (s *state[F, H]) duplicate() state[F, H] {
	if s.mode == modeErased {
		return heldState[F](s.held.clone())
	}
	return *s
}

// take moves the state out, leaving s empty.
func (s *state[F, H]) take() state[F, H] {
	moved := *s
	*s = state[F, H]{}
	return moved
}

func (s *state[F, H]) swap(other *state[F, H]) {
	*s, *other = *other, *s
}

// assign replaces s by next. next is fully built before s is touched.
func (s *state[F, H]) assign(next state[F, H]) {
	s.swap(&next)
}

// noCopy makes go vet report implicit copies of a wrapper.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
