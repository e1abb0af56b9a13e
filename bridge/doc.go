// Package bridge computes the fastest way to get a party across a narrow
// bridge at night: at most two people per trip, one flashlight that must go
// with every trip, and pairs walk at the slower member's pace.
//
// Two methods are offered:
//
//   - Search (default) treats (who is across, where the flashlight is) as a
//     node of an implicit graph with 2^(n+1) states and runs Dijkstra with a
//     lazy min-heap. It is exact and can return the full schedule.
//   - Greedy sorts the times and repeatedly moves the two slowest people with
//     the cheaper of two escort patterns, a + 2b + z or 2a + y + z, where a, b
//     are the two fastest and y, z the two slowest. It runs in O(n log n).
//
// Usage
//
//	res, err := bridge.MinTime([]int{1, 2, 5, 10}, bridge.WithSchedule())
//	// res.Total == 17, res.Schedule lists five trips
//
// Errors: ErrEmptyInput, ErrBadTime, ErrTooManyPeople, ErrScheduleNeedsSearch,
// ErrOptionViolation.
package bridge
