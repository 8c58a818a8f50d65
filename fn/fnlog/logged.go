package fnlog

import (
	"time"

	"github.com/on-the-ground/callable_go/fn"
	"go.uber.org/zap"
)

type logged0[R any] struct {
	observer
	target fn.Func0[R]
}

func (l *logged0[R]) Call() R {
	defer l.observe(time.Now())
	return l.target.MustCall()
}

func (l *logged0[R]) Clone() logged0[R] {
	return logged0[R]{observer: l.renew(), target: l.target.Clone()}
}

// Log0 returns a wrapper that logs every call to a clone of target.
// An empty target yields an empty wrapper.
func Log0[R any](logger *zap.Logger, config Config, target *fn.Func0[R]) fn.Func0[R] {
	if !target.Valid() {
		return fn.Func0[R]{}
	}
	return fn.Bind0[R](logged0[R]{
		observer: newObserver(logger, config),
		target:   target.Clone(),
	})
}

type logged1[A1, R any] struct {
	observer
	target fn.Func1[A1, R]
}

func (l *logged1[A1, R]) Call(a1 A1) R {
	defer l.observe(time.Now())
	return l.target.MustCall(a1)
}

func (l *logged1[A1, R]) Clone() logged1[A1, R] {
	return logged1[A1, R]{observer: l.renew(), target: l.target.Clone()}
}

// Log1 returns a wrapper that logs every call to a clone of target.
// An empty target yields an empty wrapper.
func Log1[A1, R any](logger *zap.Logger, config Config, target *fn.Func1[A1, R]) fn.Func1[A1, R] {
	if !target.Valid() {
		return fn.Func1[A1, R]{}
	}
	return fn.Bind1[A1, R](logged1[A1, R]{
		observer: newObserver(logger, config),
		target:   target.Clone(),
	})
}

type logged2[A1, A2, R any] struct {
	observer
	target fn.Func2[A1, A2, R]
}

func (l *logged2[A1, A2, R]) Call(a1 A1, a2 A2) R {
	defer l.observe(time.Now())
	return l.target.MustCall(a1, a2)
}

func (l *logged2[A1, A2, R]) Clone() logged2[A1, A2, R] {
	return logged2[A1, A2, R]{observer: l.renew(), target: l.target.Clone()}
}

// Log2 returns a wrapper that logs every call to a clone of target.
// An empty target yields an empty wrapper.
func Log2[A1, A2, R any](logger *zap.Logger, config Config, target *fn.Func2[A1, A2, R]) fn.Func2[A1, A2, R] {
	if !target.Valid() {
		return fn.Func2[A1, A2, R]{}
	}
	return fn.Bind2[A1, A2, R](logged2[A1, A2, R]{
		observer: newObserver(logger, config),
		target:   target.Clone(),
	})
}

type logged3[A1, A2, A3, R any] struct {
	observer
	target fn.Func3[A1, A2, A3, R]
}

func (l *logged3[A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) R {
	defer l.observe(time.Now())
	return l.target.MustCall(a1, a2, a3)
}

func (l *logged3[A1, A2, A3, R]) Clone() logged3[A1, A2, A3, R] {
	return logged3[A1, A2, A3, R]{observer: l.renew(), target: l.target.Clone()}
}

// Log3 returns a wrapper that logs every call to a clone of target.
// An empty target yields an empty wrapper.
func Log3[A1, A2, A3, R any](logger *zap.Logger, config Config, target *fn.Func3[A1, A2, A3, R]) fn.Func3[A1, A2, A3, R] {
	if !target.Valid() {
		return fn.Func3[A1, A2, A3, R]{}
	}
	return fn.Bind3[A1, A2, A3, R](logged3[A1, A2, A3, R]{
		observer: newObserver(logger, config),
		target:   target.Clone(),
	})
}
