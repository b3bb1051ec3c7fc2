// Package ui holds the CLI's terminal palette.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	Brand  = color.New(color.FgHiBlue, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
	Info   = color.New(color.FgCyan)
)

// Banner prints the command header.
func Banner(subtitle string) {
	fmt.Printf("%s %s\n\n", Brand.Sprint("portfolio"), Subtle.Sprint(subtitle))
}

// Table prints a simple aligned table.
func Table(headers []string, rows [][]string) {
	fmt.Print(FormatTable(headers, rows))
}

// FormatTable renders an aligned table without color.
func FormatTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	line := func(cells []string) {
		b.WriteString("  ")
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
		}
		b.WriteString("\n")
	}
	line(headers)
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	line(seps)
	for _, row := range rows {
		line(row)
	}
	return b.String()
}
