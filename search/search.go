// Package search provides binary-search variants over sorted int64
// slices and over monotonic integer predicates, plus the two-sum pair
// finders. Slice inputs must already be sorted ascending; the functions
// do not verify that.
package search

import "sort"

// Index returns the position of target in the sorted slice, or -1 when
// absent. With duplicates any matching position may be returned; use
// First or Last to pin down which one.
func Index(values []int64, target int64) int {
	left, right := 0, len(values)-1

	for left <= right {
		mid := left + (right-left)/2

		switch {
		case values[mid] == target:
			return mid
		case values[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return -1
}

// First returns the position of the first occurrence of target, or -1.
func First(values []int64, target int64) int {
	idx := LowerBound(values, target)
	if idx < len(values) && values[idx] == target {
		return idx
	}

	return -1
}

// Last returns the position of the last occurrence of target, or -1.
func Last(values []int64, target int64) int {
	idx := UpperBound(values, target) - 1
	if idx >= 0 && values[idx] == target {
		return idx
	}

	return -1
}

// LowerBound returns the position of the first element >= target, or
// len(values) when every element is smaller.
func LowerBound(values []int64, target int64) int {
	return sort.Search(len(values), func(i int) bool {
		return values[i] >= target
	})
}

// UpperBound returns the position of the first element > target, or
// len(values) when every element is smaller or equal.
func UpperBound(values []int64, target int64) int {
	return sort.Search(len(values), func(i int) bool {
		return values[i] > target
	})
}

// MinSatisfying returns the smallest x in [lo, hi] for which pred(x) is
// true, assuming pred is monotonic (false...false true...true).
// Returns hi+1 when pred is false on the whole interval.
func MinSatisfying(lo, hi int, pred func(int) bool) int {
	result := hi + 1

	for lo <= hi {
		mid := lo + (hi-lo)/2

		if pred(mid) {
			result = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	return result
}

// MaxSatisfying returns the largest x in [lo, hi] for which pred(x) is
// true, assuming pred is monotonic (true...true false...false).
// Returns lo-1 when pred is false on the whole interval.
func MaxSatisfying(lo, hi int, pred func(int) bool) int {
	result := lo - 1

	for lo <= hi {
		mid := lo + (hi-lo)/2

		if pred(mid) {
			result = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return result
}
