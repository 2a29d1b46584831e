// Package window implements sliding-window scans over int64 slices and
// byte strings. Every function is a single left-to-right pass: the right
// edge grows one element at a time and the left edge only ever moves
// forward, so each element enters and leaves the window at most once.
package window

// MaxPerWindow returns the maximum of every length-k window of values,
// in order. Returns nil when k is not in [1, len(values)].
//
// A monotonic deque of candidate indexes keeps the scan O(n): the front
// always holds the current maximum, and values dominated by a newer,
// larger element are dropped from the back before it enters.
func MaxPerWindow(values []int64, k int) []int64 {
	if k < 1 || k > len(values) {
		return nil
	}

	out := make([]int64, 0, len(values)-k+1)
	deque := make([]int, 0, k)

	for right := range values {
		// Expire the index that slid out on the left.
		if len(deque) > 0 && deque[0] <= right-k {
			deque = deque[1:]
		}

		for len(deque) > 0 && values[deque[len(deque)-1]] <= values[right] {
			deque = deque[:len(deque)-1]
		}

		deque = append(deque, right)

		if right >= k-1 {
			out = append(out, values[deque[0]])
		}
	}

	return out
}

// LongestDistinct returns the length of the longest substring of s with
// no repeated byte.
func LongestDistinct(s string) int {
	lastSeen := make(map[byte]int)

	var left, best int
	for right := 0; right < len(s); right++ {
		if prev, ok := lastSeen[s[right]]; ok && prev >= left {
			left = prev + 1
		}

		lastSeen[s[right]] = right

		if length := right - left + 1; length > best {
			best = length
		}
	}

	return best
}

// LongestKDistinct returns the length of the longest substring of s
// containing at most k distinct bytes. Zero when k < 1.
func LongestKDistinct(s string, k int) int {
	if k < 1 {
		return 0
	}

	counts := make(map[byte]int)

	var left, best int
	for right := 0; right < len(s); right++ {
		counts[s[right]]++

		for len(counts) > k {
			counts[s[left]]--
			if counts[s[left]] == 0 {
				delete(counts, s[left])
			}
			left++
		}

		if length := right - left + 1; length > best {
			best = length
		}
	}

	return best
}

// MinLenWithSum returns the length of the shortest contiguous run of
// values summing to target or more, or 0 when no such run exists.
// Values must be non-negative; shrinking from the left is only valid
// when dropping an element cannot grow the sum.
func MinLenWithSum(values []int64, target int64) int {
	best := len(values) + 1

	var left int
	var sum int64

	for right := range values {
		sum += values[right]

		for sum >= target && left <= right {
			if length := right - left + 1; length < best {
				best = length
			}

			sum -= values[left]
			left++
		}
	}

	if best > len(values) {
		return 0
	}

	return best
}

// MaxLenWithinSum returns the length of the longest contiguous run of
// values summing to limit or less. Values must be non-negative.
func MaxLenWithinSum(values []int64, limit int64) int {
	var left, best int
	var sum int64

	for right := range values {
		sum += values[right]

		for sum > limit && left <= right {
			sum -= values[left]
			left++
		}

		if length := right - left + 1; left <= right && length > best {
			best = length
		}
	}

	return best
}
