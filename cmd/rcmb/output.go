// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/rcmb/search"
	"github.com/katalvlaran/rcmb/values"
	"github.com/mattn/go-isatty"
)

// renderer writes search results in one output format.
type renderer struct {
	w      io.Writer
	json   bool
	header lipgloss.Style
	shape  lipgloss.Style
}

func newRenderer(w io.Writer, format string) (*renderer, error) {
	r := &renderer{w: w, header: lipgloss.NewStyle(), shape: lipgloss.NewStyle()}
	switch strings.ToLower(format) {
	case "text", "t":
	case "json", "j":
		r.json = true
	default:
		return nil, fmt.Errorf("format %q: want text or json", format)
	}
	if isTerminal(w) {
		r.header = r.header.Bold(true)
		r.shape = r.shape.Foreground(lipgloss.Color("6"))
	}

	return r, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// combinations prints one block per target, in target order.
func (r *renderer) combinations(targets []float64, results [][]*search.Combination) error {
	if r.json {
		return writeJSON(r.w, results)
	}
	var sb strings.Builder
	for i, target := range targets {
		sb.WriteString(r.header.Render("Target: "+values.FormatEngineering(target)))
		sb.WriteByte('\n')
		for _, c := range results[i] {
			line := values.FormatEngineering(c.Value())
			if !c.IsLeaf() {
				line += " <-- " + r.shape.Render(c.String())
			}
			sb.WriteString("  " + line + "\n")
		}
	}
	_, err := io.WriteString(r.w, sb.String())

	return err
}

// dividers prints one block per target ratio, in target order.
func (r *renderer) dividers(targets []float64, results [][]*search.DoubleCombination) error {
	if r.json {
		return writeJSON(r.w, results)
	}
	var sb strings.Builder
	for i, target := range targets {
		sb.WriteString(r.header.Render("Target: "+values.FormatEngineering(target)))
		sb.WriteByte('\n')
		for _, d := range results[i] {
			sb.WriteString(d.String())
		}
	}
	_, err := io.WriteString(r.w, sb.String())

	return err
}

// writeJSON prints an array of per-target arrays with one result per line.
func writeJSON[T json.Marshaler](w io.Writer, results [][]T) error {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, block := range results {
		sb.WriteString("  [\n")
		for j, item := range block {
			data, err := item.MarshalJSON()
			if err != nil {
				return err
			}
			sb.WriteString("    ")
			sb.Write(data)
			if j+1 < len(block) {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("  ]")
		if i+1 < len(results) {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("]\n")
	_, err := io.WriteString(w, sb.String())

	return err
}
