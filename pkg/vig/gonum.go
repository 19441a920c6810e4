package vig

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonumGraph wraps the VIG as a gonum weighted undirected graph so
// callers can run gonum's own centrality/community utilities against it
// without this module reinventing them. The core segmentation path
// never depends on this representation; it is an optional side door.
func (g *Graph) ToGonumGraph() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < g.N; i++ {
		wg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges {
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(int64(e.U)), simple.Node(int64(e.V)), e.W))
	}
	return wg
}
