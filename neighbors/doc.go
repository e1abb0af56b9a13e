// Package neighbors maximises donations collected around a circle of
// residents when no resident will give if a next-door neighbour already has.
//
// What
//
//	Maximum-weight independent set on a cycle. The cycle is broken by solving
//	two straight-line problems, one without the first resident and one with
//	it (which rules out the second and the last), and taking the larger.
//	Each straight line is the classic take-or-skip recurrence
//	best(i) = max(best(i+1), v[i] + best(i+2)).
//
// Memory modes
//
//   - Memoized  — top-down recursion over a memo table (default).
//   - Tabulated — bottom-up table fill.
//   - Rolling   — two running values, O(1) memory, no picks.
//
// Usage
//
//	opts := neighbors.DefaultOptions()
//	opts.ReturnPicks = true
//	total, picks, err := neighbors.MaxDonations([]int{10, 3, 2, 5, 7, 8}, &opts)
//	// total == 19, picks == [0 2 4]
//
// Complexity: O(n) time, O(n) memory (O(1) with Rolling).
//
// Errors: ErrEmptyInput, ErrNegativeDonation, ErrPicksNeedTable, ErrBadMode.
package neighbors
