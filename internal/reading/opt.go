// Package reading turns the raw text of each system data source into a
// typed reading. Parsers never fail: a line that does not match simply
// leaves the affected value unavailable.
package reading

// Opt is a value that may be unavailable.
type Opt[T any] struct {
	value T
	valid bool
}

// Some wraps an available value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, valid: true}
}

// None returns an unavailable value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is available.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.valid
}

// Valid reports whether the value is available.
func (o Opt[T]) Valid() bool {
	return o.valid
}

// Or returns the value, or def when it is unavailable.
func (o Opt[T]) Or(def T) T {
	if !o.valid {
		return def
	}
	return o.value
}
