package common

// Coalesce returns the first value that is not the zero value of T.
// Useful for applying a default when an optional setting was left empty.
//
// Parameters:
//   - values: candidate values, checked in order
//
// Returns:
//   - T: the first non-zero value, or the zero value if every candidate is zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
