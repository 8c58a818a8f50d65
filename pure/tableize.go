package pure

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/callable_go/fn"
)

type ComparableOrStringer any
type ComparableOrString any

// stringerKey keys an argument by its String form. The digest rejects most
// mismatches before the text is compared; equality still needs the text.
type stringerKey struct {
	digest uint64
	text   string
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		s := stringer.String()
		return stringerKey{digest: xxhash.Sum64String(s), text: s}
	}
	return i
}

type table[O any] struct {
	memo *Trie[O]
}

func newTable[O any](maxTableSize uint32) table[O] {
	return table[O]{memo: NewTrie[O](maxTableSize)}
}

func (t table[O]) lookup(pureFn func() O, args ...ComparableOrStringer) O {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	v, ok := t.memo.Load(keys)
	if !ok {
		v = pureFn()
		t.memo.Store(keys, v)
	}
	return v
}

// empty returns a table of the same capacity with nothing memoized.
func (t table[O]) empty() table[O] {
	return newTable[O](t.memo.MaxSize())
}

type tableized1[I1, O1 any] struct {
	table[O1]
	pureFn fn.Func1[I1, O1]
}

func (t *tableized1[I1, O1]) Call(i1 I1) O1 {
	return t.lookup(func() O1 { return t.pureFn.MustCall(i1) }, i1)
}

func (t *tableized1[I1, O1]) Clone() tableized1[I1, O1] {
	return tableized1[I1, O1]{table: t.empty(), pureFn: t.pureFn.Clone()}
}

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn *fn.Func1[I1, O1],
	maxTableSize uint32,
) fn.Func1[I1, O1] {
	if !pureFn.Valid() {
		return fn.Func1[I1, O1]{}
	}
	return fn.Bind1[I1, O1](tableized1[I1, O1]{
		table:  newTable[O1](maxTableSize),
		pureFn: pureFn.Clone(),
	})
}

type tableized2[I1, I2, O1 any] struct {
	table[O1]
	pureFn fn.Func2[I1, I2, O1]
}

func (t *tableized2[I1, I2, O1]) Call(i1 I1, i2 I2) O1 {
	return t.lookup(func() O1 { return t.pureFn.MustCall(i1, i2) }, i1, i2)
}

func (t *tableized2[I1, I2, O1]) Clone() tableized2[I1, I2, O1] {
	return tableized2[I1, I2, O1]{table: t.empty(), pureFn: t.pureFn.Clone()}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn *fn.Func2[I1, I2, O1],
	maxTableSize uint32,
) fn.Func2[I1, I2, O1] {
	if !pureFn.Valid() {
		return fn.Func2[I1, I2, O1]{}
	}
	return fn.Bind2[I1, I2, O1](tableized2[I1, I2, O1]{
		table:  newTable[O1](maxTableSize),
		pureFn: pureFn.Clone(),
	})
}

type tableized3[I1, I2, I3, O1 any] struct {
	table[O1]
	pureFn fn.Func3[I1, I2, I3, O1]
}

func (t *tableized3[I1, I2, I3, O1]) Call(i1 I1, i2 I2, i3 I3) O1 {
	return t.lookup(func() O1 { return t.pureFn.MustCall(i1, i2, i3) }, i1, i2, i3)
}

func (t *tableized3[I1, I2, I3, O1]) Clone() tableized3[I1, I2, I3, O1] {
	return tableized3[I1, I2, I3, O1]{table: t.empty(), pureFn: t.pureFn.Clone()}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn *fn.Func3[I1, I2, I3, O1],
	maxTableSize uint32,
) fn.Func3[I1, I2, I3, O1] {
	if !pureFn.Valid() {
		return fn.Func3[I1, I2, I3, O1]{}
	}
	return fn.Bind3[I1, I2, I3, O1](tableized3[I1, I2, I3, O1]{
		table:  newTable[O1](maxTableSize),
		pureFn: pureFn.Clone(),
	})
}
