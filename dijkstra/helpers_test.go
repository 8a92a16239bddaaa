package dijkstra_test

import "github.com/katalvlaran/refframe/dijkstra"

// edge is the payload used by the test graphs.
type edge struct {
	from, to string
	w        float64
}

// listGraph is a directed adjacency list preserving insertion order.
type listGraph struct {
	vertices map[string]bool
	out      map[string][]dijkstra.Arc[string, edge]
}

func newListGraph(vertices ...string) *listGraph {
	g := &listGraph{vertices: map[string]bool{}, out: map[string][]dijkstra.Arc[string, edge]{}}
	for _, v := range vertices {
		g.vertices[v] = true
	}

	return g
}

func (g *listGraph) add(from, to string, w float64) *listGraph {
	g.vertices[from] = true
	g.vertices[to] = true
	g.out[from] = append(g.out[from], dijkstra.Arc[string, edge]{To: to, Edge: edge{from, to, w}})

	return g
}

func (g *listGraph) HasVertex(v string) bool { return g.vertices[v] }

func (g *listGraph) Arcs(v string) []dijkstra.Arc[string, edge] { return g.out[v] }

func weightOf(e edge) float64 { return e.w }

// names renders a path as "A→B→C".
func names(path []edge) string {
	if len(path) == 0 {
		return ""
	}
	s := path[0].from
	for _, e := range path {
		s += "→" + e.to
	}

	return s
}
