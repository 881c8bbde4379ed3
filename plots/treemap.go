package plots

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"

	"github.com/bhedi/serovis/reads"
)

// rdbuScale is the RdBu diverging ramp, red for low sums through blue for
// high ones.
var rdbuScale = []string{
	"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
	"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
}

// BScoreTreemap sums b_score per (filename, serotype) and nests the result
// filename → serotype. Echarts treemap node values are integers, so each sum
// is rounded; a combination that rounds to zero would occupy no area anyway
// and is left out, as is a file with no chartable serotypes.
func BScoreTreemap(t *reads.Table) *charts.TreeMap {
	p := pivotAgg(t, mustColumn("b_score"), stats.Sum)

	nodes := make([]opts.TreeMapNode, 0, len(p.Filenames))
	for i, filename := range p.Filenames {
		children := make([]opts.TreeMapNode, 0, len(p.Serotypes))
		for j, serotype := range p.Serotypes {
			v := p.Cells[i][j]
			if math.IsNaN(v) {
				continue
			}
			rounded := int(math.Round(v))
			if rounded == 0 {
				continue
			}
			children = append(children, opts.TreeMapNode{
				Name:  serotype,
				Value: rounded,
			})
		}

		if len(children) == 0 {
			continue
		}
		nodes = append(nodes, opts.TreeMapNode{
			Name:     filename,
			Children: children,
		})
	}

	levels := []opts.TreeMapLevel{
		{
			ItemStyle: &opts.ItemStyle{
				BorderColor: "#777",
				BorderWidth: 1,
				GapWidth:    1,
			},
			UpperLabel: &opts.UpperLabel{Show: true},
		},
		{
			Color:          rdbuScale,
			ColorMappingBy: "value",
			ItemStyle: &opts.ItemStyle{
				BorderColor: "#555",
				BorderWidth: 1,
				GapWidth:    1,
			},
		},
	}

	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Sum of B Score for Each Serotype by Filename",
			Width:     "1200px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Sum of B Score for Each Serotype by Filename"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	tm.AddSeries("b_score", nodes,
		charts.WithTreeMapOpts(opts.TreeMapChart{
			Roam:       true,
			UpperLabel: &opts.UpperLabel{Show: true},
			Levels:     &levels,
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{BorderColor: "#fff"}),
		charts.WithLabelOpts(opts.Label{Show: true, Position: "inside"}),
	)

	return tm
}
