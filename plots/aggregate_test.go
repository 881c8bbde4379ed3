package plots

import (
	"math"
	"reflect"
	"testing"

	"github.com/montanaflynn/stats"

	"github.com/bhedi/serovis/reads"
)

func chartRow(filename, id, serotype string, gc float64, coverage, slen int32, pCount string, bScore float64) reads.Row {
	return reads.Row{
		ReadRecord: reads.ReadRecord{
			ReadID:        id,
			MatchedSanket: "sanket-" + id,
			Serotype:      serotype,
			GCPercentage:  gc,
			TotalCoverage: coverage,
			SLen:          slen,
			SSRCount:      pCount,
			MLenAvg:       "NA",
			MRCAvg:        "NA",
			PCount:        pCount,
			PLenAvg:       "NA",
			BScore:        bScore,
		},
		Filename: filename,
	}
}

// chartTable is the fixture the chart tests share. File A has two serotype-1
// reads (one with an unparsable p_count), a serotype-2 read, and a read with
// a serotype outside the category set; file B has a single serotype-4 read.
func chartTable() *reads.Table {
	return &reads.Table{Rows: []reads.Row{
		chartRow("A", "a1", "1", 41.0, 10, 100, "1", 2.0),
		chartRow("A", "a2", "1", 43.5, 20, 110, "NA", 4.0),
		chartRow("A", "a3", "2", 39.0, 30, 120, "2", 1.0),
		chartRow("A", "a4", "7", 50.0, 99, 130, "9", 9.0),
		chartRow("B", "b1", "4", 44.0, 40, 140, "3", 5.0),
	}}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPivotCount(t *testing.T) {
	p := pivotCount(chartTable())

	if !reflect.DeepEqual(p.Filenames, []string{"A", "B"}) {
		t.Fatalf("expected filenames [A B], got %v", p.Filenames)
	}
	if !reflect.DeepEqual(p.Serotypes, reads.SerotypeOrder) {
		t.Fatalf("expected the configured serotype order, got %v", p.Serotypes)
	}

	// a4's serotype 7 is outside the category set and must not count;
	// unobserved combinations count zero, never NaN.
	want := [][]float64{
		{2, 1, 0, 0},
		{0, 0, 0, 1},
	}
	if !reflect.DeepEqual(p.Cells, want) {
		t.Errorf("expected counts %v, got %v", want, p.Cells)
	}
}

func TestPivotAggSum(t *testing.T) {
	p := pivotAgg(chartTable(), mustColumn("p_count"), stats.Sum)

	// a2's "NA" contributes nothing, so cell (A, 1) sums to 1.
	if got := p.Cells[0][0]; got != 1 {
		t.Errorf("expected (A, 1) to sum to 1, got %v", got)
	}
	if got := p.Cells[0][1]; got != 2 {
		t.Errorf("expected (A, 2) to sum to 2, got %v", got)
	}
	if !math.IsNaN(p.Cells[0][2]) {
		t.Errorf("expected (A, 3) to stay NaN before filling, got %v", p.Cells[0][2])
	}

	p.fillMissing(0)
	if got := p.Cells[0][2]; got != 0 {
		t.Errorf("expected (A, 3) to fill to 0, got %v", got)
	}
	if got := p.Cells[1][3]; got != 3 {
		t.Errorf("expected (B, 4) to sum to 3, got %v", got)
	}
}

func TestPivotAggMax(t *testing.T) {
	p := pivotAgg(chartTable(), mustColumn("b_score"), stats.Max)

	if got := p.Cells[0][0]; got != 4 {
		t.Errorf("expected (A, 1) max of 4, got %v", got)
	}
	if got := p.Cells[1][3]; got != 5 {
		t.Errorf("expected (B, 4) max of 5, got %v", got)
	}
	if !math.IsNaN(p.Cells[1][0]) {
		t.Errorf("expected (B, 1) to stay blank, got %v", p.Cells[1][0])
	}
}

func TestRowStats(t *testing.T) {
	p := pivotAgg(chartTable(), mustColumn("total_coverage"), stats.Mean).fillMissing(0)

	// File A's filled cells are [15 30 0 0], file B's [0 0 0 40].
	means, stds := p.rowStats()

	if !almostEqual(means[0], 11.25) {
		t.Errorf("expected mean 11.25 for A, got %v", means[0])
	}
	if !almostEqual(stds[0], math.Sqrt(154.6875)) {
		t.Errorf("expected std %v for A, got %v", math.Sqrt(154.6875), stds[0])
	}
	if !almostEqual(means[1], 10) {
		t.Errorf("expected mean 10 for B, got %v", means[1])
	}
	if !almostEqual(stds[1], math.Sqrt(300)) {
		t.Errorf("expected std %v for B, got %v", math.Sqrt(300), stds[1])
	}
}

func TestGroupBySerotype(t *testing.T) {
	groups := groupBySerotype(chartTable(), mustColumn("b_score"))

	want := [][]float64{
		{2, 4},
		{1},
		nil,
		{5},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("expected %v, got %v", want, groups)
	}
}

func TestGroupByFilename(t *testing.T) {
	names, values := groupByFilename(chartTable(), mustColumn("gc_percentage"))

	if !reflect.DeepEqual(names, []string{"A", "B"}) {
		t.Fatalf("expected names [A B], got %v", names)
	}

	// Every row counts here, including a4 with its out-of-set serotype.
	want := [][]float64{
		{41.0, 43.5, 39.0, 50.0},
		{44.0},
	}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("expected %v, got %v", want, values)
	}
}
