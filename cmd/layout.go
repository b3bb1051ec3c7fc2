package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/network"
	"github.com/Zachkp/portfolio/internal/ui"
)

func layoutCmd() *cobra.Command {
	var (
		width, height float64
		layers        []int
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the hero network layout for a viewport",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := network.Generate(width, height, layers)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(layout)
			}
			printLayout(cmd.OutOrStdout(), layout)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", network.DefaultWidth, "Viewport width")
	cmd.Flags().Float64Var(&height, "height", network.DefaultHeight, "Viewport height")
	cmd.Flags().IntSliceVar(&layers, "layers", network.DefaultLayers, "Nodes per layer")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the layout as JSON")
	return cmd
}

func printLayout(w io.Writer, layout *network.Layout) {
	fmt.Fprintf(w, "%s %s\n\n", ui.Brand.Sprint("layout"),
		ui.Subtle.Sprintf("%gx%g, %d nodes, %d edges", layout.Width, layout.Height, len(layout.Nodes), len(layout.Edges)))

	layerOf := network.LayerOf(layout.Layers)
	primary := make([]int, len(layout.Layers))
	out := make([]int, len(layout.Layers))
	for _, n := range layout.Nodes {
		if n.Color == network.Primary {
			primary[n.Layer]++
		}
	}
	for _, e := range layout.Edges {
		out[layerOf[e.From]]++
	}

	rows := make([][]string, len(layout.Layers))
	for i, n := range layout.Layers {
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.Itoa(n),
			strconv.Itoa(primary[i]),
			strconv.Itoa(out[i]),
		}
	}
	fmt.Fprint(w, ui.FormatTable([]string{"LAYER", "NODES", "PRIMARY", "EDGES OUT"}, rows))
}
