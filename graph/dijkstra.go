package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/heap"
)

// Unreachable is the distance Dijkstra reports for vertices it cannot reach.
const Unreachable = math.MaxInt64

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: vertex -> minimum distance, Unreachable if there is no path.
//   - prev: with WithReturnPath, vertex -> predecessor on a shortest path
//     (reachable vertices other than source only); nil otherwise.
//   - err:  ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight or ctx.Err().
//
// Complexity: O((V + E) log V).
func Dijkstra[V comparable](g *Digraph[V], source V, opts ...Option) (map[V]int64, map[V]V, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("Dijkstra(%v): %w", source, ErrVertexNotFound)
	}
	cfg := gather(opts)

	// 2) Fail fast on negative weights before touching the heap.
	for i := 0; i < g.Order(); i++ {
		for _, e := range g.outgoing(i).All() {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %v->%v weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 3) Every vertex starts unreachable; only source enters the heap.
	r := &runner[V]{
		g:       g,
		cfg:     cfg,
		dist:    make(map[V]int64, g.Order()),
		nodes:   make(map[V]*heap.Node[V, int64], g.Order()),
		settled: make(map[V]bool, g.Order()),
		pq:      heap.New[V](compare.Natural[int64](), heap.WithCapacity(g.Order())),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V, g.Order())
	}
	for _, v := range g.Vertices() {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0
	r.nodes[source] = r.pq.Add(source, 0)

	// 4) Settle vertices in order of distance.
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	return r.dist, r.prev, nil
}

// runner holds the state of one Dijkstra execution.
type runner[V comparable] struct {
	g       *Digraph[V]
	cfg     Options
	dist    map[V]int64
	prev    map[V]V
	nodes   map[V]*heap.Node[V, int64] // live heap handle per discovered vertex
	settled map[V]bool
	pq      *heap.BinaryMinimumHeap[V, int64]
}

// process pops the closest unsettled vertex until the heap is empty.
func (r *runner[V]) process() error {
	for !r.pq.IsEmpty() {
		if err := r.cfg.Ctx.Err(); err != nil {
			return err
		}
		n, err := r.pq.PopMinimum()
		if err != nil {
			return err
		}
		u := n.Element()
		r.settled[u] = true
		r.cfg.Logger.Debug("dijkstra: settle", "vertex", u, "dist", n.Priority(), "heap", r.pq)
		r.relax(u)
	}
	return nil
}

// relax improves the distances of u's successors. A successor already in the
// heap has its node's priority lowered; a new one is added.
func (r *runner[V]) relax(u V) {
	for _, e := range r.g.outgoing(r.g.index[u]).All() {
		v := e.To
		if r.settled[v] {
			continue
		}
		alt := r.dist[u] + e.Weight
		if alt >= r.dist[v] {
			continue
		}
		r.dist[v] = alt
		if r.prev != nil {
			r.prev[v] = u
		}
		if n, ok := r.nodes[v]; ok {
			// Cannot fail: unsettled discovered vertices are still in the heap.
			_ = n.SetPriority(alt)
		} else {
			r.nodes[v] = r.pq.Add(v, alt)
		}
		r.cfg.Logger.Debug("dijkstra: relax", "from", u, "to", v, "dist", alt)
	}
}

// PathTo rebuilds the path source..target from a predecessor map returned by
// Dijkstra. It returns nil when target was not reached.
func PathTo[V comparable](prev map[V]V, source, target V) []V {
	path := []V{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
