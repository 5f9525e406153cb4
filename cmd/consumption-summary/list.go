package main

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"

	"git.sr.ht/~whereswaldon/energy-viewer/backend"
)

const rule = "------------------------------------------------------------------------"

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return humanize.CommafWithDigits(v, 2)
}

// printTypes writes one line per consumption type in first-seen order.
func printTypes(w io.Writer, ds *backend.Dataset) {
	if len(ds.Types) == 0 {
		fmt.Fprintln(w, "No consumption data found")
		return
	}
	fmt.Fprintln(w, "Consumption Types:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-44s  %18s  %6s  %7s\n", "Type", "Peak (BTU)", "States", "Records")
	fmt.Fprintln(w, rule)
	for i := range ds.Types {
		tg := &ds.Types[i]
		fmt.Fprintf(w, "%-44s  %18s  %6d  %7d\n", tg.Type, formatValue(tg.MaxValue), len(tg.States), tg.Len())
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Overall peak: %s BTU (%s records)\n", formatValue(ds.MaxValue()), humanize.Comma(int64(len(ds.Records))))
}

// printStates writes one line per state of group.
func printStates(w io.Writer, group *backend.TypeGroup) {
	fmt.Fprintf(w, "%s:\n", group.Type)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-8s  %11s  %18s  %7s\n", "State", "Years", "Peak (BTU)", "Records")
	fmt.Fprintln(w, rule)
	for i := range group.States {
		sg := &group.States[i]
		years := "-"
		if first, last, ok := sg.Span(); ok {
			years = fmt.Sprintf("%d-%d", first, last)
		}
		fmt.Fprintf(w, "%-8s  %11s  %18s  %7d\n", sg.State, years, formatValue(sg.MaxValue()), len(sg.Records))
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Peak: %s BTU (%d states, %d records)\n", formatValue(group.MaxValue), len(group.States), group.Len())
}
