package wordtoy

import (
	"context"
	"fmt"
)

// mark is the frontier status of a packed word.
type mark uint8

const (
	unseen   mark = iota // never met
	blocked              // met and forbidden; never enqueued
	queued               // discovered, predecessor recorded
	expanded             // dequeued and its neighbours generated
)

// queueItem pairs a word with its click depth from the start.
type queueItem struct {
	w     Word
	depth int
}

// walker holds the mutable state of one Search call.
type walker struct {
	idx   *Index
	goal  Word
	opts  Options
	ctx   context.Context
	queue []queueItem
	marks map[Word]mark
	res   *Result
}

// ShortestPathLength returns the minimum number of clicks turning start into
// goal without ever displaying a forbidden word, 0 if they are equal, or -1
// if goal cannot be reached. idx may be nil.
func ShortestPathLength(start, goal Word, idx *Index) int {
	res, err := Search(start, goal, idx)
	if err != nil {
		// unreachable: the default options carry no hooks, limits or deadline
		return -1
	}

	return res.Clicks
}

// MinClicks parses start, finish and the forbid rules and returns the
// minimum number of clicks, or -1 if finish can never be displayed.
func MinClicks(start, finish string, forbid []string, opts ...Option) (int, error) {
	s, err := Pack(start)
	if err != nil {
		return -1, fmt.Errorf("start: %w", err)
	}
	g, err := Pack(finish)
	if err != nil {
		return -1, fmt.Errorf("finish: %w", err)
	}
	idx, err := BuildIndex(forbid)
	if err != nil {
		return -1, err
	}
	res, err := Search(s, g, idx, opts...)
	if err != nil {
		return -1, err
	}

	return res.Clicks, nil
}

// Search runs a breadth-first search over the implicit toy graph from start
// towards goal. Nodes are the words idx does not forbid; edges join words one
// click apart. Forbidden words are tested lazily on first contact and never
// tested again.
//
// The start word itself is not checked against idx.
// Returns ErrOptionViolation for bad options, ctx.Err() on cancellation, or a
// wrapped OnVisit error.
func Search(start, goal Word, idx *Index, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		idx:   idx,
		goal:  goal,
		opts:  o,
		ctx:   o.Ctx,
		marks: make(map[Word]mark),
		res: &Result{
			Start:  start,
			Goal:   goal,
			Clicks: -1,
			parent: make(map[Word]Word),
		},
	}
	w.enqueue(start, 0, root)
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.res.Clicks = w.backtrace()

	return w.res, nil
}

// enqueue records the predecessor of x and appends it to the frontier.
func (w *walker) enqueue(x Word, depth int, parent Word) {
	w.marks[x] = queued
	w.res.parent[x] = parent
	w.res.Discovered++
	w.opts.OnEnqueue(x, depth)
	w.queue = append(w.queue, queueItem{w: x, depth: depth})
}

// loop drains the frontier until the goal is dequeued, the frontier is
// empty, or the context is done.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if item.w == w.goal {
			return nil
		}
		if w.marks[item.w] == expanded {
			continue
		}
		w.marks[item.w] = expanded
		w.res.Expanded++
		if err := w.opts.OnVisit(item.w, item.depth); err != nil {
			return fmt.Errorf("wordtoy: OnVisit error at %q: %w", item.w, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors discovers every unseen, unforbidden neighbour of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, n := range item.w.Neighbors() {
		if w.marks[n] != unseen {
			continue
		}
		if w.idx.Forbidden(n) {
			w.marks[n] = blocked
			w.res.Blocked++
			continue
		}
		w.enqueue(n, next, item.w)
	}
}

// backtrace counts the hops from goal back to the root marker, or returns -1
// if goal never received a predecessor.
func (w *walker) backtrace() int {
	if _, ok := w.res.parent[w.goal]; !ok {
		return -1
	}
	clicks := -1
	for x := w.goal; x != root; x = w.res.parent[x] {
		clicks++
	}

	return clicks
}
