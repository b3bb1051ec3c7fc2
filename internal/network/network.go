// Package network lays out the hero's decorative "neural network": layers of nodes
// spread across a viewport, with random-looking but fully reproducible colors and
// connections between adjacent layers.
package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/Zachkp/portfolio/internal/seeded"
)

var (
	ErrDimensions = errors.New("network: width and height must be positive")
	ErrLayers     = errors.New("network: need at least 2 layers of at least 1 node")
)

const (
	// PrimaryProbability is the chance a node is drawn in the primary color.
	PrimaryProbability = 0.4
	// EdgeProbability is the chance each adjacent-layer pair is connected.
	EdgeProbability = 0.7

	DefaultWidth  = 500.0
	DefaultHeight = 600.0
)

// DefaultLayers is the node count per layer used by the hero.
var DefaultLayers = []int{4, 6, 8, 6, 4}

// draw salts keep color and edge draws independent of each other.
const (
	saltColor uint64 = 0xc0105
	saltEdge  uint64 = 0xed9e
)

// Color is a node's color class.
type Color string

const (
	Primary Color = "primary"
	Neutral Color = "neutral"
)

// Node is one positioned node. ID is its ordinal in the layout, 0..N-1.
type Node struct {
	ID    int     `json:"id"`
	Layer int     `json:"layer"`
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color Color   `json:"color"`
}

// Edge connects a node in layer L to a node in layer L+1, by ordinal.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Layout is a generated graph.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Layers []int   `json:"layers"`
	Nodes  []Node  `json:"nodes"`
	Edges  []Edge  `json:"edges"`
}

// ValidateLayers checks a layer-size sequence.
func ValidateLayers(layers []int) error {
	if len(layers) < 2 {
		return fmt.Errorf("%w: got %d layers", ErrLayers, len(layers))
	}
	for i, n := range layers {
		if n < 1 {
			return fmt.Errorf("%w: layer %d has %d nodes", ErrLayers, i, n)
		}
	}
	return nil
}

func validateDimensions(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: %vx%v", ErrDimensions, width, height)
	}
	return nil
}

// Generate lays out the graph for a viewport. The result depends only on its
// arguments: the same inputs always give the same nodes, colors and edges.
func Generate(width, height float64, layers []int) (*Layout, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if err := ValidateLayers(layers); err != nil {
		return nil, err
	}

	total := NodeCount(layers)
	l := &Layout{
		Width:  width,
		Height: height,
		Layers: append([]int(nil), layers...),
		Nodes:  make([]Node, 0, total),
	}

	layerSpacing := width / float64(len(layers)+1)
	for layer, count := range layers {
		verticalSpacing := height / float64(count+1)
		for i := 0; i < count; i++ {
			id := len(l.Nodes)
			color := Neutral
			if seeded.Float(saltColor, uint64(id)) < PrimaryProbability {
				color = Primary
			}
			l.Nodes = append(l.Nodes, Node{
				ID:    id,
				Layer: layer,
				Index: i,
				X:     layerSpacing * float64(layer+1),
				Y:     verticalSpacing * float64(i+1),
				Color: color,
			})
		}
	}

	start := 0
	for layer := 0; layer < len(layers)-1; layer++ {
		next := start + layers[layer]
		for from := start; from < next; from++ {
			for to := next; to < next+layers[layer+1]; to++ {
				if seeded.Float(saltEdge, uint64(from), uint64(to)) < EdgeProbability {
					l.Edges = append(l.Edges, Edge{From: from, To: to})
				}
			}
		}
		start = next
	}
	return l, nil
}

// LayerOf maps each node ordinal to its layer for a layer-size sequence.
func LayerOf(layers []int) []int {
	var out []int
	for layer, n := range layers {
		for i := 0; i < n; i++ {
			out = append(out, layer)
		}
	}
	return out
}

// NodeCount is the sum of a layer-size sequence.
func NodeCount(layers []int) int {
	total := 0
	for _, n := range layers {
		total += n
	}
	return total
}
