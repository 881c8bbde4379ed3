package plots

import (
	"math"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/montanaflynn/stats"

	"github.com/bhedi/serovis/reads"
)

// category20 is the Category20 palette, cycled across the per-serotype
// traces.
var category20 = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

func mustColumn(name string) reads.ColumnFunc {
	col, ok := reads.NumericColumn(name)
	if !ok {
		panic("not a numeric column: " + name)
	}

	return col
}

// GCBoxPlot is the distribution of gc_percentage per provenance label, one
// box per file, every row included whatever its serotype. The boxes take
// plotly's default trace colors.
func GCBoxPlot(t *reads.Table) *grob.Fig {
	names, values := groupByFilename(t, mustColumn("gc_percentage"))

	traces := make(grob.Traces, 0, len(names))
	for i, name := range names {
		traces = append(traces, &grob.Box{
			Type: grob.TraceTypeBox,
			Name: name,
			Y:    values[i],
		})
	}

	return &grob.Fig{
		Data: traces,
		Layout: &grob.Layout{
			Title:  &grob.LayoutTitle{Text: "GC Percentage by Filename"},
			Width:  1000,
			Height: 600,
			Xaxis:  &grob.LayoutXaxis{Tickangle: 90},
			Yaxis:  &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "gc_percentage"}},
		},
	}
}

// SerotypeStackedBars is the per-file serotype frequency chart: one stacked
// bar segment per serotype, zero-filled so every configured serotype shows in
// the legend even when absent from the data. Segments cycle the Category20
// palette.
func SerotypeStackedBars(t *reads.Table) *grob.Fig {
	p := pivotCount(t)

	traces := make(grob.Traces, 0, len(p.Serotypes))
	for j, serotype := range p.Serotypes {
		counts := make([]float64, len(p.Filenames))
		for i := range p.Filenames {
			counts[i] = p.Cells[i][j]
		}

		traces = append(traces, &grob.Bar{
			Type:   grob.TraceTypeBar,
			Name:   serotype,
			X:      p.Filenames,
			Y:      counts,
			Marker: &grob.BarMarker{Color: category20[j%len(category20)]},
		})
	}

	return &grob.Fig{
		Data: traces,
		Layout: &grob.Layout{
			Title:   &grob.LayoutTitle{Text: "Serotype Frequencies for each Serotype by Filenames"},
			Barmode: grob.BarBarmodeStack,
			Width:   1200,
			Height:  600,
			Xaxis: &grob.LayoutXaxis{
				Title:     &grob.LayoutXaxisTitle{Text: "Filename"},
				Tickangle: 90,
			},
			Yaxis: &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "Frequency"}},
		},
	}
}

// BScoreBoxPlots is the b_score distribution per serotype, in categorical
// order, with the Category20 fill cycle.
func BScoreBoxPlots(t *reads.Table) *grob.Fig {
	groups := groupBySerotype(t, mustColumn("b_score"))

	traces := make(grob.Traces, 0, len(groups))
	for i, serotype := range reads.SerotypeOrder {
		traces = append(traces, &grob.Box{
			Type:      grob.TraceTypeBox,
			Name:      serotype,
			Y:         groups[i],
			Fillcolor: category20[i%len(category20)],
		})
	}

	return &grob.Fig{
		Data: traces,
		Layout: &grob.Layout{
			Width:  600,
			Height: 400,
			Xaxis:  &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: "Serotype"}},
			Yaxis:  &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "B Score"}},
		},
	}
}

// BScoreCurve is the mean b_score per serotype, serotypes in categorical
// order. A serotype with no scorable rows becomes a gap in the line rather
// than a zero.
func BScoreCurve(t *reads.Table) *grob.Fig {
	groups := groupBySerotype(t, mustColumn("b_score"))

	means := make([]interface{}, len(groups))
	for i, group := range groups {
		if len(group) == 0 {
			continue
		}
		if m, err := stats.Mean(group); err == nil && !math.IsNaN(m) {
			means[i] = m
		}
	}

	return &grob.Fig{
		Data: grob.Traces{
			&grob.Scatter{
				Type: grob.TraceTypeScatter,
				Mode: grob.ScatterModeLines,
				X:    reads.SerotypeOrder,
				Y:    means,
			},
		},
		Layout: &grob.Layout{
			Title:  &grob.LayoutTitle{Text: "Average B Score by Serotype"},
			Width:  800,
			Height: 400,
			Xaxis:  &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: "Serotype"}},
			Yaxis:  &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "Average B Score"}},
		},
	}
}
