package bfs

import (
	"context"
	"fmt"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/ricci/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	ctx   context.Context
	queue deque.Deque[int]
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	// One sorted snapshot; the walk never touches g's lock again.
	adj := g.Adjacency()
	n := len(adj)
	w := &walker{
		adj:  adj,
		opts: o,
		ctx:  o.Ctx,
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  filled(n, Unreached),
			Parent: filled(n, Unreached),
		},
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue records depth and parent of v and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue.PushBack(v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue.PopFront()
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		next := d + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[v] {
			if w.res.Depth[nbr] != Unreached || !w.opts.FilterNeighbor(v, nbr) {
				continue
			}
			w.enqueue(nbr, next, v)
		}
	}

	return nil
}

// filled returns a slice of n copies of x.
func filled(n, x int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = x
	}

	return out
}
