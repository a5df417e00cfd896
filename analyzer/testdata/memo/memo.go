// Package memo is a minimal memoization helper used by the analysis tests.
package memo

// Memo re-runs f only when one of deps changes.
func Memo[T any](f func() T, deps ...any) T { return f() }

// Effect runs f when one of deps changes.
func Effect(f func(), deps ...any) { f() }

// Callback returns a memoized f, renewed when one of deps changes.
func Callback[F any](f F, deps ...any) F { return f }

// Ref returns a stable cell holding v.
func Ref[T any](v T) *T { return &v }

// State returns the current value and a stable setter.
func State[T any](v T) (T, func(T)) { return v, func(T) {} }
