package neighbors

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaxDonations returns the largest total that can be collected from residents
// seated in a circle when no two next-door neighbours may both donate.
// donations[0] and donations[n-1] are neighbours.
//
// Algorithm:
//  1. n ≤ 3: every pair is adjacent, so only the single largest donation counts.
//  2. Otherwise the circle is cut into two linear sub-problems:
//     exclude the first resident and solve donations[1:], or
//     include the first resident, which excludes the second and the last,
//     and solve donations[2:n-1].
//  3. Each linear sub-problem follows
//     best(i) = max(best(i+1), v[i] + best(i+2)), best(i ≥ len) = 0.
//
// Returns (total, picks, error); picks is nil unless opts.ReturnPicks is set,
// in which case it lists the donating residents in increasing order.
//
// Complexity: O(n) time; O(n) memory, or O(1) with Rolling.
func MaxDonations[T constraints.Integer](donations []T, opts *Options) (total T, picks []int, err error) {
	n := len(donations)
	if n == 0 {
		return 0, nil, ErrEmptyInput
	}
	for i, d := range donations {
		if d < 0 {
			return 0, nil, fmt.Errorf("%w: donations[%d]=%v", ErrNegativeDonation, i, d)
		}
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	switch o.MemoryMode {
	case Memoized, Tabulated:
	case Rolling:
		if o.ReturnPicks {
			return 0, nil, ErrPicksNeedTable
		}
	default:
		return 0, nil, fmt.Errorf("%w: %d", ErrBadMode, o.MemoryMode)
	}

	if n <= 3 {
		best := 0
		for i := 1; i < n; i++ {
			if donations[i] > donations[best] {
				best = i
			}
		}
		if o.ReturnPicks {
			picks = []int{best}
		}
		return donations[best], picks, nil
	}

	exclude := solveLinear(donations[1:], o.MemoryMode)
	include := solveLinear(donations[2:n-1], o.MemoryMode)
	withFirst := donations[0] + include.best()

	if withFirst > exclude.best() {
		if o.ReturnPicks {
			picks = append([]int{0}, include.picks(2)...)
		}
		return withFirst, picks, nil
	}
	if o.ReturnPicks {
		picks = exclude.picks(1)
	}

	return exclude.best(), picks, nil
}

// linear is one solved straight-line sub-problem.
// table[i] = best(i) for table modes; table is nil in Rolling mode.
type linear[T constraints.Integer] struct {
	v     []T
	table []T
	head  T
}

func (l *linear[T]) best() T { return l.head }

// at returns best(i), with best(i ≥ len) = 0.
func (l *linear[T]) at(i int) T {
	if i >= len(l.v) {
		return 0
	}

	return l.table[i]
}

// picks walks the table forward and returns the chosen indices shifted by offset.
// A resident is taken only when taking it is strictly better than skipping it.
func (l *linear[T]) picks(offset int) []int {
	out := []int{}
	for i := 0; i < len(l.v); {
		if l.v[i]+l.at(i+2) > l.at(i+1) {
			out = append(out, i+offset)
			i += 2
			continue
		}
		i++
	}

	return out
}

func solveLinear[T constraints.Integer](v []T, mode MemoryMode) *linear[T] {
	l := &linear[T]{v: v}
	switch mode {
	case Memoized:
		m := &memo[T]{v: v, table: make([]T, len(v)), done: make([]bool, len(v))}
		l.head = m.best(0)
		l.table = m.table
	case Tabulated:
		l.table = make([]T, len(v))
		for i := len(v) - 1; i >= 0; i-- {
			l.table[i] = max(l.at(i+1), v[i]+l.at(i+2))
		}
		if len(v) > 0 {
			l.head = l.table[0]
		}
	case Rolling:
		var next1, next2 T // best(i+1), best(i+2)
		for i := len(v) - 1; i >= 0; i-- {
			next1, next2 = max(next1, v[i]+next2), next1
		}
		l.head = next1
	}

	return l
}

// memo is the top-down recursion state of one sub-problem.
type memo[T constraints.Integer] struct {
	v     []T
	table []T
	done  []bool
}

func (m *memo[T]) best(i int) T {
	if i >= len(m.v) {
		return 0
	}
	if m.done[i] {
		return m.table[i]
	}
	m.table[i] = max(m.best(i+1), m.v[i]+m.best(i+2))
	m.done[i] = true

	return m.table[i]
}
