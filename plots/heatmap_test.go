package plots

import (
	"math"
	"reflect"
	"strings"
	"testing"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
)

func heatmapTrace(t *testing.T, fig *grob.Fig) *grob.Heatmap {
	t.Helper()

	if len(fig.Data) != 1 {
		t.Fatalf("expected a single heatmap trace, got %d traces", len(fig.Data))
	}
	hm, ok := fig.Data[0].(*grob.Heatmap)
	if !ok {
		t.Fatalf("expected a heatmap trace, got %T", fig.Data[0])
	}

	return hm
}

func TestSerotypeFrequencyHeatmap(t *testing.T) {
	fig := SerotypeFrequencyHeatmap(chartTable())
	hm := heatmapTrace(t, fig)

	if got := fig.Layout.Title.Text; got != "Heatmap of Serotype Frequency by Filename" {
		t.Errorf("unexpected title %q", got)
	}
	if hm.Colorscale != "YlGnBu" {
		t.Errorf("unexpected colorscale %v", hm.Colorscale)
	}

	// One z row per serotype, one column per file, zero-filled.
	want := [][]interface{}{
		{2.0, 0.0},
		{1.0, 0.0},
		{0.0, 0.0},
		{0.0, 1.0},
	}
	if !reflect.DeepEqual(hm.Z, want) {
		t.Errorf("expected z %v, got %v", want, hm.Z)
	}
}

func TestBScoreMaxHeatmap(t *testing.T) {
	hm := heatmapTrace(t, BScoreMaxHeatmap(chartTable()))

	z := hm.Z.([][]interface{})
	if got := z[0][0]; got != 4.0 {
		t.Errorf("expected (serotype 1, A) max of 4, got %v", got)
	}
	// No serotype-1 rows in B: the cell stays blank (JSON null), not zero.
	if got := z[0][1]; got != nil {
		t.Errorf("expected (serotype 1, B) to be blank, got %v", got)
	}
}

func TestCountHeatmap(t *testing.T) {
	fig, err := CountHeatmap(chartTable(), "p_count", "P Count Heatmap by Serotype and Filename")
	if err != nil {
		t.Fatal(err)
	}

	if got := fig.Layout.Title.Text; got != "P Count Heatmap by Serotype and Filename" {
		t.Errorf("unexpected title %q", got)
	}

	z := heatmapTrace(t, fig).Z.([][]interface{})
	// a2's "NA" p_count is skipped, so (serotype 1, A) sums to 1; empty
	// combinations fill to zero.
	if got := z[0][0]; got != 1.0 {
		t.Errorf("expected (serotype 1, A) sum of 1, got %v", got)
	}
	if got := z[2][0]; got != 0.0 {
		t.Errorf("expected (serotype 3, A) to fill to 0, got %v", got)
	}
}

func TestCountHeatmapUnknownColumn(t *testing.T) {
	if _, err := CountHeatmap(chartTable(), "serotype", "x"); err == nil {
		t.Error("expected an error for a column with no numeric reading")
	}
}

func TestTotalCoverageHeatmap(t *testing.T) {
	figs := TotalCoverageHeatmap(chartTable())

	if len(figs) != 2 {
		t.Fatalf("expected the heatmap and its overlay panel, got %d figures", len(figs))
	}

	hm := heatmapTrace(t, figs[0])

	// The serotype axis is inverted: first category on top.
	if y := hm.Y.([]string); !reflect.DeepEqual(y, []string{"4", "3", "2", "1"}) {
		t.Errorf("expected inverted serotype order, got %v", y)
	}

	z := hm.Z.([][]interface{})
	// Bottom row is serotype 1: mean coverage 15 in A, zero-filled in B.
	// Color values are log10 with a floor of 1.
	if got := z[3][0]; got != math.Log10(15) {
		t.Errorf("expected log10(15) for (serotype 1, A), got %v", got)
	}
	if got := z[3][1]; got != 0.0 {
		t.Errorf("expected the floored zero cell to map to 0, got %v", got)
	}

	// The true mean rides along in the hover text.
	hover := hm.Hovertext.([][]string)
	if !strings.Contains(hover[3][0], "15.00") {
		t.Errorf("expected the raw mean in the hover text, got %q", hover[3][0])
	}
}

func TestCoverageOverlay(t *testing.T) {
	figs := TotalCoverageHeatmap(chartTable())
	overlay := figs[1]

	if len(overlay.Data) != 4 {
		t.Fatalf("expected curve, error bars, marker line and label, got %d traces", len(overlay.Data))
	}

	curve := overlay.Data[0].(*grob.Scatter)
	means := curve.Y.([]float64)
	if !almostEqual(means[0], 11.25) || !almostEqual(means[1], 10) {
		t.Errorf("expected per-file means [11.25 10], got %v", means)
	}

	spread := overlay.Data[1].(*grob.Scatter)
	if spread.ErrorY == nil {
		t.Fatal("expected error bars on the spread trace")
	}
	stds := spread.ErrorY.Array.([]float64)
	if !almostEqual(stds[0], math.Sqrt(154.6875)) {
		t.Errorf("expected std %v for A, got %v", math.Sqrt(154.6875), stds[0])
	}

	marker := overlay.Data[2].(*grob.Scatter)
	if x := marker.X.([]float64); !reflect.DeepEqual(x, []float64{10, 10}) {
		t.Errorf("expected the marker line at position 10, got %v", x)
	}

	label := overlay.Data[3].(*grob.Scatter)
	if text := label.Text.([]string); !reflect.DeepEqual(text, []string{"Significant Event"}) {
		t.Errorf("unexpected label text %v", text)
	}

	// The tick labels carry the filenames for the numeric positions.
	if ticks := overlay.Layout.Xaxis.Ticktext.([]string); !reflect.DeepEqual(ticks, []string{"A", "B"}) {
		t.Errorf("expected filename tick labels, got %v", ticks)
	}
}
