// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rcmb/search"
)

// printMeta reports topology table occupancy and live search states.
func (a *app) printMeta(w io.Writer) error {
	if a.table == nil {
		return nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "meta:\n  topology nodes: %d\n", a.table.Len())
	for _, c := range a.table.Counts() {
		orientation := "series"
		if c.Parallel {
			orientation = "parallel"
		}
		fmt.Fprintf(&sb, "  topologies[%d,%s]: %d\n", c.Leaves, orientation, c.Topologies)
	}
	fmt.Fprintf(&sb, "  live search states: %d\n", search.LiveStates())
	_, err := io.WriteString(w, sb.String())

	return err
}
