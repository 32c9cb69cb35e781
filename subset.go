package main

import "iter"

// ── Subset enumeration ──────────────────────────────────────────────

// firstSubset returns the selection the enumeration starts from: part 0 only.
// With no parts it is the empty selection, which is also the last one.
func firstSubset(n int) Selection {
	s := make(Selection, n)
	if n > 0 {
		s[0] = true
	}
	return s
}

// nextSubset treats prev as a little-endian binary counter and returns a new
// selection holding prev+1. The low run of set flags is cleared and the flag
// above it is set. When the carry runs off the top the result is all false,
// which marks the end of the enumeration. prev is left untouched.
func nextSubset(prev Selection) Selection {
	next := prev.clone()
	i := 0
	for ; i < len(next) && next[i]; i++ {
		next[i] = false
	}
	if i < len(next) {
		next[i] = true
	}
	return next
}

// Subsets yields every selection of n parts exactly once, 2^n in total.
// Order is {0}, {1}, {0,1}, {2}, ... up to all parts, then the empty
// selection last. Each yielded value is a fresh slice the caller may keep.
// The sequence is finite and may be ranged over any number of times.
func Subsets(n int) iter.Seq[Selection] {
	return func(yield func(Selection) bool) {
		s := firstSubset(n)
		for {
			if !yield(s) {
				return
			}
			if !s.Any() {
				return
			}
			s = nextSubset(s)
		}
	}
}
