package numeric

import "slices"

// SortNumbers sorts nums in ascending order using Compare. The sort is
// stable, so equal values of different kinds (2, 2.0, 4/2) keep their input
// order. If any pair is incomparable the first such error is returned and
// the order of nums is unspecified.
func SortNumbers(nums []Number) error {
	var firstErr error
	slices.SortStableFunc(nums, func(a, b Number) int {
		c, err := Compare(a, b)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return c
	})
	return firstErr
}

// IndexOf returns the index of the first element Equal to v, or -1.
func IndexOf(nums []Number, v Number) int {
	return slices.IndexFunc(nums, func(n Number) bool { return Equal(n, v) })
}

func Contains(nums []Number, v Number) bool {
	return IndexOf(nums, v) >= 0
}

// Dedupe returns the elements of nums with later Equal duplicates dropped.
// The input slice is not modified.
func Dedupe(nums []Number) []Number {
	out := make([]Number, 0, len(nums))
	for _, n := range nums {
		if !Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}
