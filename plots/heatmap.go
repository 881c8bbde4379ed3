package plots

import (
	"fmt"
	"math"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"

	"github.com/bhedi/serovis/reads"
)

// magmaScale approximates the Magma colormap, which plotly has no built-in
// scale for.
var magmaScale = [][]interface{}{
	{0.0, "#000004"},
	{0.25, "#51127c"},
	{0.5, "#b73779"},
	{0.75, "#fc8961"},
	{1.0, "#fcfdbf"},
}

type heatmapSpec struct {
	Title      string
	Colorscale interface{}
	Width      float64
	Height     float64
}

// heatmapZ lays the pivot out the way plotly heatmaps want it: one row per y
// value (serotype), one column per x value (filename). NaN cells become JSON
// nulls, which render as blanks.
func heatmapZ(p *pivot) [][]interface{} {
	z := make([][]interface{}, len(p.Serotypes))
	for j := range p.Serotypes {
		row := make([]interface{}, len(p.Filenames))
		for i := range p.Filenames {
			if v := p.Cells[i][j]; !math.IsNaN(v) {
				row[i] = v
			}
		}
		z[j] = row
	}

	return z
}

func heatmapFig(p *pivot, spec heatmapSpec) *grob.Fig {
	return &grob.Fig{
		Data: grob.Traces{
			&grob.Heatmap{
				Type:       grob.TraceTypeHeatmap,
				X:          p.Filenames,
				Y:          p.Serotypes,
				Z:          heatmapZ(p),
				Colorscale: spec.Colorscale,
			},
		},
		Layout: &grob.Layout{
			Title:  &grob.LayoutTitle{Text: spec.Title},
			Width:  spec.Width,
			Height: spec.Height,
			Xaxis: &grob.LayoutXaxis{
				Title:     &grob.LayoutXaxisTitle{Text: "Filename"},
				Tickangle: 90,
			},
			Yaxis: &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "Serotype"}},
		},
	}
}

// SerotypeFrequencyHeatmap is the (filename, serotype) row-count pivot as a
// heatmap, zero-filled.
func SerotypeFrequencyHeatmap(t *reads.Table) *grob.Fig {
	return heatmapFig(pivotCount(t), heatmapSpec{
		Title:      "Heatmap of Serotype Frequency by Filename",
		Colorscale: "YlGnBu",
		Width:      1000,
		Height:     600,
	})
}

// BScoreMaxHeatmap is the maximum b_score per (filename, serotype).
// Combinations with no rows stay blank rather than zero.
func BScoreMaxHeatmap(t *reads.Table) *grob.Fig {
	return heatmapFig(pivotAgg(t, mustColumn("b_score"), stats.Max), heatmapSpec{
		Title:      "Maximum B Score Heatmap",
		Colorscale: "Viridis",
		Width:      1000,
		Height:     600,
	})
}

// CountHeatmap sums the named count column per (filename, serotype). The
// column arrives as text upstream; values that do not parse ("NA" and
// friends) contribute nothing, and a combination with no parsable values sums
// to zero, so a stray "NA" never blanks out a whole cell.
func CountHeatmap(t *reads.Table, column, title string) (*grob.Fig, error) {
	col, ok := reads.NumericColumn(column)
	if !ok {
		return nil, pfx.Err(fmt.Errorf("no numeric column %q to sum", column))
	}

	return heatmapFig(pivotAgg(t, col, stats.Sum).fillMissing(0), heatmapSpec{
		Title:      title,
		Colorscale: magmaScale,
		Width:      1000,
		Height:     600,
	}), nil
}

// TotalCoverageHeatmap is the two-panel coverage composite: a heatmap of mean
// total_coverage per (filename, serotype) over a per-file summary curve with
// error bars and an annotated marker. The two figures stack vertically in one
// document.
//
// The color axis is logarithmic with a floor of 1: cells carry log10 values
// and the true means ride along in the hover text. The serotype axis is
// inverted so the first category sits on top.
func TotalCoverageHeatmap(t *reads.Table) []*grob.Fig {
	p := pivotAgg(t, mustColumn("total_coverage"), stats.Mean).fillMissing(0)

	// Row order reversed: plotly draws the first y category at the bottom.
	n := len(p.Serotypes)
	ys := make([]string, n)
	z := make([][]interface{}, n)
	hover := make([][]string, n)
	for j := 0; j < n; j++ {
		src := n - 1 - j
		ys[j] = p.Serotypes[src]

		z[j] = make([]interface{}, len(p.Filenames))
		hover[j] = make([]string, len(p.Filenames))
		for i := range p.Filenames {
			v := p.Cells[i][src]
			z[j][i] = math.Log10(math.Max(v, 1))
			hover[j][i] = fmt.Sprintf("%s / %s: mean coverage %.2f", p.Filenames[i], ys[j], v)
		}
	}

	heatmap := &grob.Fig{
		Data: grob.Traces{
			&grob.Heatmap{
				Type:       grob.TraceTypeHeatmap,
				X:          p.Filenames,
				Y:          ys,
				Z:          z,
				Hovertext:  hover,
				Hoverinfo:  grob.HeatmapHoverinfo("text"),
				Colorscale: "Viridis",
			},
		},
		Layout: &grob.Layout{
			Title:  &grob.LayoutTitle{Text: "Total Coverage Heatmap (log10 color)"},
			Width:  900,
			Height: 500,
			Xaxis: &grob.LayoutXaxis{
				Title:     &grob.LayoutXaxisTitle{Text: "Filename"},
				Tickangle: 90,
			},
			Yaxis: &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "Serotype"}},
		},
	}

	return []*grob.Fig{heatmap, coverageOverlay(p)}
}

// coverageOverlay is the composite's lower panel: mean of each file's
// serotype cells as a curve, the spread as error bars, plus the fixed
// significant-event marker at category position 10.
func coverageOverlay(p *pivot) *grob.Fig {
	means, stds := p.rowStats()

	// A numeric axis with filename tick labels keeps the marker positions
	// meaningful whatever the file count.
	positions := make([]float64, len(p.Filenames))
	yMax := 1.0
	for i := range p.Filenames {
		positions[i] = float64(i)
		if top := means[i] + stds[i]; top > yMax {
			yMax = top
		}
	}

	return &grob.Fig{
		Data: grob.Traces{
			&grob.Scatter{
				Type: grob.TraceTypeScatter,
				Mode: grob.ScatterModeLines,
				Name: "mean coverage",
				X:    positions,
				Y:    means,
			},
			&grob.Scatter{
				Type: grob.TraceTypeScatter,
				Mode: grob.ScatterModeMarkers,
				Name: "spread",
				X:    positions,
				Y:    means,
				ErrorY: &grob.ScatterErrorY{
					Array:   stds,
					Visible: grob.True,
					Color:   "red",
				},
			},
			&grob.Scatter{
				Type: grob.TraceTypeScatter,
				Mode: grob.ScatterModeLines,
				Name: "marker",
				X:    []float64{10, 10},
				Y:    []float64{0, yMax},
				Line: &grob.ScatterLine{Color: "black"},
			},
			&grob.Scatter{
				Type: grob.TraceTypeScatter,
				Mode: grob.ScatterModeText,
				Name: "event",
				X:    []float64{11},
				Y:    []float64{800},
				Text: []string{"Significant Event"},
			},
		},
		Layout: &grob.Layout{
			Width:  900,
			Height: 400,
			Xaxis: &grob.LayoutXaxis{
				Tickmode:  grob.LayoutXaxisTickmodeArray,
				Tickvals:  positions,
				Ticktext:  p.Filenames,
				Tickangle: 90,
			},
			Yaxis: &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "mean total_coverage"}},
		},
	}
}
