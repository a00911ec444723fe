package graph

import (
	"fmt"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/heap"
)

// rank orders vertices in Kahn's algorithm: by current indegree, then by
// insertion position so that the result is deterministic.
type rank struct {
	indegree int
	position int
}

var byRank = compare.OrderFunc[rank](func(a, b rank) int {
	if a.indegree != b.indegree {
		return a.indegree - b.indegree
	}
	return a.position - b.position
})

// TopologicalSort orders the vertices of g so that every edge u->v has u
// before v. Among vertices that are ready at the same time, the one added to
// the graph first comes first.
//
// If g has a directed cycle it returns ErrCycleDetected, wrapped with the
// number of vertices that could not be ordered.
//
// Complexity: O((V + E) log V).
func TopologicalSort[V comparable](g *Digraph[V], opts ...Option) ([]V, error) {
	// 1) Validate and configure.
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := gather(opts)

	// 2) Count incoming edges.
	indegree := make([]int, g.Order())
	for i := 0; i < g.Order(); i++ {
		for _, e := range g.outgoing(i).All() {
			indegree[g.index[e.To]]++
		}
	}

	// 3) Every vertex enters the heap at its indegree.
	pq := heap.New[int, rank](byRank, heap.WithCapacity(g.Order()))
	nodes := make([]*heap.Node[int, rank], g.Order())
	for i := range nodes {
		nodes[i] = pq.Add(i, rank{indegree: indegree[i], position: i})
	}

	// 4) Pop zero-indegree vertices, lowering their successors.
	order := make([]V, 0, g.Order())
	for !pq.IsEmpty() {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		n, err := pq.PopMinimum()
		if err != nil {
			return nil, err
		}
		if d := n.Priority().indegree; d != 0 {
			cfg.Logger.Debug("topological sort: cycle", "remaining", pq.Len()+1, "indegree", d)
			return nil, fmt.Errorf("%d of %d vertices unordered: %w", pq.Len()+1, g.Order(), ErrCycleDetected)
		}
		i := n.Element()
		v, _ := g.vertices.Get(i)
		order = append(order, v)
		for _, e := range g.outgoing(i).All() {
			succ := nodes[g.index[e.To]]
			p := succ.Priority()
			p.indegree--
			// Successors are still queued: an edge into a popped vertex
			// would have kept its indegree above zero.
			_ = succ.SetPriority(p)
		}
	}
	return order, nil
}
