package network

// Generator caches the layout for the last viewport it was asked about, so
// re-renders at an unchanged size reuse the same graph.
type Generator struct {
	layers []int
	layout *Layout
}

// NewGenerator fixes the layer-size sequence.
func NewGenerator(layers []int) (*Generator, error) {
	if err := ValidateLayers(layers); err != nil {
		return nil, err
	}
	return &Generator{layers: append([]int(nil), layers...)}, nil
}

// Layers returns the layer-size sequence.
func (g *Generator) Layers() []int {
	return append([]int(nil), g.layers...)
}

// Resize returns the layout for width x height, regenerating only when the
// dimensions differ from the cached layout. On error the cached layout is kept.
func (g *Generator) Resize(width, height float64) (*Layout, error) {
	if g.layout != nil && g.layout.Width == width && g.layout.Height == height {
		return g.layout, nil
	}
	l, err := Generate(width, height, g.layers)
	if err != nil {
		return nil, err
	}
	g.layout = l
	return l, nil
}

// Layout returns the cached layout, or nil before the first successful Resize.
func (g *Generator) Layout() *Layout {
	return g.layout
}
