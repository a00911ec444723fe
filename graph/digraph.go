package graph

import (
	"fmt"

	"github.com/katalvlaran/kone/list"
)

// Edge is a directed, weighted edge.
type Edge[V comparable] struct {
	From, To V
	Weight   int64
}

// Digraph is a directed graph with int64 edge weights. Parallel edges and
// self-loops are allowed. It is not safe for concurrent use.
type Digraph[V comparable] struct {
	index    map[V]int                   // vertex -> position in vertices
	vertices *list.ArrayList[V]          // insertion order
	out      []*list.ArrayList[Edge[V]] // out[index[v]] = edges leaving v
	edges    int
}

// NewDigraph returns an empty graph.
func NewDigraph[V comparable]() *Digraph[V] {
	return &Digraph[V]{index: make(map[V]int), vertices: list.EmptyArrayList[V]()}
}

// AddVertex adds v and reports whether it was new.
func (g *Digraph[V]) AddVertex(v V) bool {
	if _, ok := g.index[v]; ok {
		return false
	}
	g.index[v] = g.vertices.Size()
	_ = g.vertices.Add(v)
	g.out = append(g.out, list.EmptyArrayList[Edge[V]]())
	return true
}

// HasVertex reports whether v is in the graph.
func (g *Digraph[V]) HasVertex(v V) bool {
	_, ok := g.index[v]
	return ok
}

// AddEdge adds from -> to with weight w, adding missing endpoints.
func (g *Digraph[V]) AddEdge(from, to V, w int64) error {
	g.AddVertex(from)
	g.AddVertex(to)
	if err := g.out[g.index[from]].Add(Edge[V]{From: from, To: to, Weight: w}); err != nil {
		return fmt.Errorf("Digraph.AddEdge: %w", err)
	}
	g.edges++
	return nil
}

// Order returns the number of vertices.
func (g *Digraph[V]) Order() int { return g.vertices.Size() }

// EdgeCount returns the number of edges.
func (g *Digraph[V]) EdgeCount() int { return g.edges }

// Vertices returns the vertices in insertion order.
func (g *Digraph[V]) Vertices() []V { return list.ToSlice[V](g.vertices) }

// Neighbors returns the edges leaving v in insertion order.
func (g *Digraph[V]) Neighbors(v V) ([]Edge[V], error) {
	i, ok := g.index[v]
	if !ok {
		return nil, fmt.Errorf("Digraph.Neighbors(%v): %w", v, ErrVertexNotFound)
	}
	return list.ToSlice[Edge[V]](g.out[i]), nil
}

// outgoing is Neighbors without the copy, for the algorithms.
func (g *Digraph[V]) outgoing(i int) *list.ArrayList[Edge[V]] { return g.out[i] }
