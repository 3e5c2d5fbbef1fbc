package common

// Coalesce returns the first non-zero value, or the zero value if every value is zero.
// Handy for falling back from an unset dimension or option.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// RemoveFirst deletes the first occurrence of v from s, preserving order.
//
// Parameters:
//   - s: the slice to edit in place
//   - v: the value to remove
//
// Returns:
//   - []T: the shortened slice (s unchanged if v is absent)
//   - bool: true if an element was removed
func RemoveFirst[T comparable](s []T, v T) ([]T, bool) {
	for i, e := range s {
		if e == v {
			return append(s[:i], s[i+1:]...), true
		}
	}
	return s, false
}
