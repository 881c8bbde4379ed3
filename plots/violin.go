package plots

import (
	grob "github.com/MetalBlueberry/go-plotly/graph_objects"

	"github.com/bhedi/serovis/reads"
)

// violinExclusions are the columns the violin grid skips even though they are
// (or could be read as) numeric: identifiers, the grouping category itself,
// and gc_percentage, which already has its own figure.
var violinExclusions = map[string]bool{
	"read_id":        true,
	"matched_sanket": true,
	"serotype":       true,
	"gc_percentage":  true,
}

// ViolinColumns is the list of columns the violin grid draws, in schema
// order: the numeric columns minus the exclusions.
func ViolinColumns() []string {
	cols := make([]string, 0)
	for _, name := range reads.NumericColumns() {
		if violinExclusions[name] {
			continue
		}
		cols = append(cols, name)
	}

	return cols
}

// ViolinGrid builds one violin figure per includable numeric column, each
// grouped by serotype in categorical order. The caller lays the figures out
// three to a row.
func ViolinGrid(t *reads.Table) []*grob.Fig {
	figs := make([]*grob.Fig, 0, len(ViolinColumns()))

	for _, column := range ViolinColumns() {
		groups := groupBySerotype(t, mustColumn(column))

		// Feeding points serotype-by-serotype fixes the category order
		// without any axis configuration.
		xs := make([]string, 0)
		ys := make([]float64, 0)
		for i, serotype := range reads.SerotypeOrder {
			for _, v := range groups[i] {
				xs = append(xs, serotype)
				ys = append(ys, v)
			}
		}

		figs = append(figs, &grob.Fig{
			Data: grob.Traces{
				&grob.Violin{
					Type: grob.TraceTypeViolin,
					X:    xs,
					Y:    ys,
					Name: column,
				},
			},
			Layout: &grob.Layout{
				Width:  600,
				Height: 400,
				Xaxis:  &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: "serotype"}},
				Yaxis:  &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: column}},
			},
		})
	}

	return figs
}
