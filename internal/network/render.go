package network

const (
	primaryRadius = 10.0
	neutralRadius = 8.0
	activeGrowth  = 4.0
)

// Radius is the drawn radius of a node.
func (n Node) Radius(active bool) float64 {
	r := neutralRadius
	if n.Color == Primary {
		r = primaryRadius
	}
	if active {
		r += activeGrowth
	}
	return r
}

// Highlighted reports whether an edge touches an active node.
func (e Edge) Highlighted(active map[int]bool) bool {
	return active[e.From] || active[e.To]
}

// Scene pairs a layout with an activation set, in the shape templates and
// terminal renderers consume.
type Scene struct {
	Width  float64
	Height float64
	Nodes  []SceneNode
	Edges  []SceneEdge
}

type SceneNode struct {
	Node
	Active bool
	R      float64
}

type SceneEdge struct {
	X1, Y1, X2, Y2 float64
	Active         bool
}

// Scene resolves activation for rendering. Ordinals outside the layout are ignored.
func (l *Layout) Scene(active []int) Scene {
	set := make(map[int]bool, len(active))
	for _, id := range active {
		if id >= 0 && id < len(l.Nodes) {
			set[id] = true
		}
	}
	s := Scene{
		Width:  l.Width,
		Height: l.Height,
		Nodes:  make([]SceneNode, len(l.Nodes)),
		Edges:  make([]SceneEdge, len(l.Edges)),
	}
	for i, n := range l.Nodes {
		s.Nodes[i] = SceneNode{Node: n, Active: set[n.ID], R: n.Radius(set[n.ID])}
	}
	for i, e := range l.Edges {
		from, to := l.Nodes[e.From], l.Nodes[e.To]
		s.Edges[i] = SceneEdge{X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y, Active: e.Highlighted(set)}
	}
	return s
}
