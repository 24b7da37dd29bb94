package stdx

// Must0 panics when err is non-nil. It is used where an error indicates a
// programming mistake rather than a runtime condition, such as malformed
// package-level declarations.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking when err is non-nil. Its main use in this
// library is resolving canonical symbols at package load, where a failed
// lookup means the declaration tables themselves are wrong:
//
//	var StatusOnline = stdx.Must1(kind.Status.Lookup("online"))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Must2 returns both values, panicking when err is non-nil.
func Must2[T any, V any](t T, v V, err error) (T, V) {
	if err != nil {
		panic(err)
	}
	return t, v
}

// Zero returns the zero value of T. It reads better than declaring a help
// variable when a generic function needs to return "nothing" alongside an
// error.
func Zero[T any]() T {
	var zero T
	return zero
}
