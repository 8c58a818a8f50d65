// Package fn provides owning, copyable wrappers around callables of a fixed
// signature.
//
// A wrapper accepts either a plain Go func or any value with a Call method of
// the matching signature, and hides which one it holds behind a single type.
// APIs can then take "something callable as (int, int) int" without being
// generic over every callable type.
//
//	add := fn.Of2(func(a, b int) int { return a + b })
//	sum, err := add.Call(2, 3) // 5, nil
//
// Go has no variadic generics, so signatures are expressed as an arity
// family:
//   - Func0[R]             ↔ func() R
//   - Func1[A1, R]         ↔ func(A1) R
//   - Func2[A1, A2, R]     ↔ func(A1, A2) R
//   - Func3[A1, A2, A3, R] ↔ func(A1, A2, A3) R
//
// # Representation
//
// A wrapper is empty, holds a func value inline (no allocation), or owns
// exactly one erasure adapter that stores a copy of a callable object. Plain
// funcs and closures always take the inline path; BindN always takes the
// owning path.
//
// # Ownership
//
// Wrappers carry a vet copylocks marker: assigning one wrapper variable to
// another is reported by go vet. Use Clone for a deep, independent duplicate
// and Move to transfer ownership (the source becomes empty). Assign,
// AssignMove and Swap mirror assignment and exchange.
//
// Captured callable objects are copied by value. If the type implements
// Cloner, its Clone method is used instead, so state reachable through
// pointers, slices or maps can be duplicated too.
//
// # Errors
//
// Calling an empty wrapper returns ErrBadFunctionCall from Call and panics
// with it from MustCall. Whatever the callable itself does, including panics,
// reaches the caller unchanged.
//
// Wrappers are not safe for concurrent mutation. Equality, hashing and string
// forms are deliberately not provided.
package fn
