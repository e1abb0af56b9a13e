package bridge

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
)

// MinTime returns the minimum time needed to get everyone across a bridge
// that holds at most two people, with one flashlight that must accompany
// every trip. A pair walks at the pace of its slower member.
//
// Preconditions and validation (in order):
//  1. times must be non-empty (ErrEmptyInput).
//  2. every time must be positive (ErrBadTime).
//  3. options must be valid (ErrOptionViolation, ErrScheduleNeedsSearch).
//  4. Search requires len(times) ≤ MaxSearchPeople (ErrTooManyPeople).
func MinTime(times []int, opts ...Option) (*Result, error) {
	if len(times) == 0 {
		return nil, ErrEmptyInput
	}
	for i, t := range times {
		if t <= 0 {
			return nil, fmt.Errorf("%w: times[%d]=%d", ErrBadTime, i, t)
		}
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Schedule && cfg.Method != Search {
		return nil, ErrScheduleNeedsSearch
	}

	if cfg.Method == Greedy {
		return &Result{Total: greedy(times)}, nil
	}
	if len(times) > MaxSearchPeople {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyPeople, len(times), MaxSearchPeople)
	}

	r := newRunner(times)
	r.process()
	res := &Result{Total: r.dist[r.goal]}
	if cfg.Schedule {
		res.Schedule = r.schedule()
	}

	return res, nil
}

// greedy moves the two slowest people per round, choosing the cheaper of:
//   - fastest two cross, fastest returns, slowest two cross, second fastest returns
//     (a + 2b + z)
//   - fastest escorts the slowest, returns, escorts the second slowest, returns
//     (2a + y + z)
func greedy(times []int) int {
	s := slices.Clone(times)
	slices.Sort(s)
	total := 0
	n := len(s)
	for ; n > 3; n -= 2 {
		a, b, y, z := s[0], s[1], s[n-2], s[n-1]
		total += min(a+2*b+z, 2*a+y+z)
	}
	switch n {
	case 3:
		total += s[0] + s[1] + s[2]
	case 2:
		total += s[1]
	case 1:
		total += s[0]
	}

	return total
}

// runner holds the mutable state of one Dijkstra run over crossing states.
// A state packs the set of people across the bridge into bits 0..n-1 and the
// flashlight side into bit n (set = across).
type runner struct {
	times   []int
	n       int
	people  int // mask of all people
	goal    int
	dist    []int
	prev    []int
	visited []bool
	pq      statePQ
}

func newRunner(times []int) *runner {
	n := len(times)
	size := 1 << (n + 1)
	r := &runner{
		times:   times,
		n:       n,
		people:  1<<n - 1,
		goal:    size - 1,
		dist:    make([]int, size),
		prev:    make([]int, size),
		visited: make([]bool, size),
		pq:      make(statePQ, 0, size),
	}
	for s := range r.dist {
		r.dist[s] = math.MaxInt
		r.prev[s] = -1
	}
	r.dist[0] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: 0, dist: 0})

	return r
}

// process pops states in distance order until the goal is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		u := item.state
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == r.goal {
			return
		}
		r.relax(u)
	}
}

// relax tries every trip of one or two people standing with the flashlight.
func (r *runner) relax(u int) {
	across := u & r.people
	light := u >> r.n & 1
	side := across
	if light == 0 {
		side = r.people &^ across
	}
	for i := 0; i < r.n; i++ {
		if side&(1<<i) == 0 {
			continue
		}
		r.push(u, 1<<i, r.times[i])
		for j := i + 1; j < r.n; j++ {
			if side&(1<<j) == 0 {
				continue
			}
			r.push(u, 1<<i|1<<j, max(r.times[i], r.times[j]))
		}
	}
}

// push relaxes the edge u → v where v moves movers and the flashlight over.
func (r *runner) push(u, movers, cost int) {
	v := u ^ movers ^ 1<<r.n
	nd := r.dist[u] + cost
	if nd >= r.dist[v] {
		return
	}
	r.dist[v] = nd
	r.prev[v] = u
	heap.Push(&r.pq, &stateItem{state: v, dist: nd})
}

// schedule walks predecessors back from the goal.
func (r *runner) schedule() []Move {
	var moves []Move
	for v := r.goal; r.prev[v] >= 0; v = r.prev[v] {
		u := r.prev[v]
		moved := (u ^ v) & r.people
		m := Move{Forward: v>>r.n&1 == 1}
		for i := 0; i < r.n; i++ {
			if moved&(1<<i) != 0 {
				m.People = append(m.People, i)
				m.Cost = max(m.Cost, r.times[i])
			}
		}
		moves = append(moves, m)
	}
	slices.Reverse(moves)

	return moves
}

// stateItem is a crossing state and its tentative time.
type stateItem struct {
	state int
	dist  int
}

// statePQ is a min-heap of *stateItem by dist, with lazy decrease-key:
// stale entries are skipped when popped.
type statePQ []*stateItem

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
