package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/export"
	"github.com/lintang-b-s/navtrace/pkg/navigation"
	"github.com/lintang-b-s/navtrace/pkg/util"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Padding(0, 1)
)

func renderAdjacency(w io.Writer, res *engine.Result) {
	labels := export.NodeLabels(len(res.Nodes))
	rows := export.AdjacencyTable(res.Adjacency)
	for i := range rows {
		rows[i] = append([]string{labels[i]}, rows[i]...)
	}

	t := table.New().
		Headers(append([]string{""}, labels...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Adjacency matrix (%s, meters)", res.Profile)))
	fmt.Fprintln(w, t.Render())
}

func renderStep(w io.Writer, view navigation.StepView, nodes []da.Node) {
	step := view.Step
	current := "none"
	if step.HasCurrent() {
		current = fmt.Sprintf("N%d", step.Current)
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Step %d / %d  current %s  settled %d",
		view.Index, view.Total-1, current, view.SettledCount)))

	rows := make([][]string, step.NumberOfVertices())
	for v := range rows {
		prev := "-"
		if p, ok := step.Predecessor(v); ok {
			prev = fmt.Sprintf("N%d", p)
		}
		visited := "no"
		if step.Visited[v] {
			visited = "yes"
		}
		rows[v] = []string{fmt.Sprintf("N%d", v), export.FormatWeight(step.Distances[v]), prev, visited}
	}

	t := table.New().
		Headers("node", "distance", "previous", "visited").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == step.Current:
				return currentStyle
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(w, t.Render())

	if partial := navigation.PartialPath(step, nodes); len(partial) > 0 {
		fmt.Fprintf(w, "partial path: %d points\n", len(partial))
	}
}

func renderPath(w io.Writer, res *engine.Result, units string) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Shortest path N%d -> N%d", res.Trace.Start, res.Target)))
	if !res.Path.Reachable {
		fmt.Fprintln(w, "destination is unreachable")
		return
	}

	labels := make([]string, len(res.Path.Nodes))
	for i, v := range res.Path.Nodes {
		labels[i] = fmt.Sprintf("N%d", v)
	}
	fmt.Fprintln(w, strings.Join(labels, " -> "))
	fmt.Fprintf(w, "distance: %s\n", util.FormatDistance(res.Path.TotalDistance, units))
	if res.Duration > 0 {
		fmt.Fprintf(w, "duration: %s\n", util.FormatDuration(res.Duration))
	}
}
