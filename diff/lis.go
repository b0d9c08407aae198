package diff

import "sort"

// longestIncreasing marks, for a sequence of distinct numbers, the members
// of one longest strictly increasing subsequence. Marked members are the
// elements a minimal move set can leave in place.
//
// Patience algorithm, O(n log n).
func longestIncreasing(seq []int) []bool {
	stable := make([]bool, len(seq))
	if len(seq) == 0 {
		return stable
	}
	// tails[k] = index into seq of the smallest tail of an increasing
	// subsequence of length k+1; prev chains the subsequence backwards.
	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))
	for i, v := range seq {
		k := sort.Search(len(tails), func(j int) bool {
			return seq[tails[j]] >= v
		})
		if k == 0 {
			prev[i] = -1
		} else {
			prev[i] = tails[k-1]
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}
	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		stable[i] = true
	}
	return stable
}
