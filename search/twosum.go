package search

// TwoSum returns the positions i < j of two elements summing to target,
// scanning once with a value-to-index map. The slice does not need to
// be sorted. ok is false when no such pair exists.
func TwoSum(values []int64, target int64) (i, j int, ok bool) {
	seen := make(map[int64]int, len(values))

	for right, v := range values {
		if left, found := seen[target-v]; found {
			return left, right, true
		}

		seen[v] = right
	}

	return 0, 0, false
}

// TwoSumSorted is TwoSum for slices already sorted ascending: two
// pointers walk inward from the ends, so no extra memory is needed.
func TwoSumSorted(values []int64, target int64) (i, j int, ok bool) {
	left, right := 0, len(values)-1

	for left < right {
		sum := values[left] + values[right]

		switch {
		case sum == target:
			return left, right, true
		case sum < target:
			left++
		default:
			right--
		}
	}

	return 0, 0, false
}
