// Package vars holds small generic value helpers.
package vars

func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

// MinNonZero returns the smallest non-zero value, or zero if all values are zero.
func MinNonZero[T int | int64](values ...T) (ret T) {
	for _, value := range values {
		if value != 0 && (ret == 0 || value < ret) {
			ret = value
		}
	}
	return
}
