package zigzag

import "golang.org/x/exp/constraints"

// Longest returns the length of the longest zig-zag subsequence of seq: one
// whose successive differences strictly alternate in sign. A single element
// is a zig-zag subsequence of length one; equal neighbours never extend one.
//
// DP state, for every i:
//
//	ends[up][i]   = longest zig-zag subsequence ending at i with a rising last step
//	ends[down][i] = longest zig-zag subsequence ending at i with a falling last step
//
// Transition, for every j < i:
//
//	seq[i] > seq[j]: ends[up][i]   = max(ends[up][i],   ends[down][j] + 1)
//	seq[i] < seq[j]: ends[down][i] = max(ends[down][i], ends[up][j]   + 1)
//
// The answer is the largest value in either table.
// With opts.ReturnPath, predecessor links recover one optimal subsequence.
//
// Complexity: O(n²) time, O(n) memory.
func Longest[T constraints.Ordered](seq []T, opts *Options) (length int, path []int, err error) {
	n := len(seq)
	if n == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	var ends, prev [2][]int
	for d := range ends {
		ends[d] = make([]int, n)
		prev[d] = make([]int, n)
		for i := range ends[d] {
			ends[d][i] = 1
			prev[d][i] = -1
		}
	}

	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			switch {
			case seq[i] > seq[j]:
				if ends[down][j]+1 > ends[up][i] {
					ends[up][i] = ends[down][j] + 1
					prev[up][i] = j
				}
			case seq[i] < seq[j]:
				if ends[up][j]+1 > ends[down][i] {
					ends[down][i] = ends[up][j] + 1
					prev[down][i] = j
				}
			}
		}
	}

	bestDir, bestEnd := up, 0
	for _, d := range []direction{up, down} {
		for i := 0; i < n; i++ {
			if ends[d][i] > ends[bestDir][bestEnd] {
				bestDir, bestEnd = d, i
			}
		}
	}
	length = ends[bestDir][bestEnd]
	if !o.ReturnPath {
		return length, nil, nil
	}

	path = make([]int, 0, length)
	for d, i := bestDir, bestEnd; i >= 0; {
		path = append(path, i)
		i = prev[d][i]
		d = 1 - d
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return length, path, nil
}
