// Package plots turns the filtered read table into the fixed set of
// interactive HTML charts. Ten of the output files hold plotly figures built
// as go-plotly graph objects; the eleventh, the b-score treemap, is a
// go-echarts chart. Each builder aggregates on its own and leaves the table
// untouched.
package plots

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/bhedi/serovis/reads"
)

// pivot is a dense (filename × serotype) aggregation. Cells with nothing to
// aggregate hold NaN; each chart decides whether that renders as a blank or
// as zero. Filenames are sorted, serotypes follow reads.SerotypeOrder, and
// every configured serotype is present even when unobserved.
type pivot struct {
	Filenames []string
	Serotypes []string
	Cells     [][]float64 // indexed [filename][serotype]
}

func newPivot(t *reads.Table) *pivot {
	p := &pivot{
		Filenames: t.Filenames(),
		Serotypes: reads.SerotypeOrder,
	}

	p.Cells = make([][]float64, len(p.Filenames))
	for i := range p.Cells {
		p.Cells[i] = make([]float64, len(p.Serotypes))
		for j := range p.Cells[i] {
			p.Cells[i][j] = math.NaN()
		}
	}

	return p
}

func (p *pivot) filenameIndex(name string) (int, bool) {
	for i, f := range p.Filenames {
		if f == name {
			return i, true
		}
	}

	return 0, false
}

// pivotCount counts rows per (filename, serotype). Rows whose serotype is
// outside the category set are dropped, matching a categorical groupby.
// Unobserved combinations count 0, never NaN.
func pivotCount(t *reads.Table) *pivot {
	p := newPivot(t)
	for i := range p.Cells {
		for j := range p.Cells[i] {
			p.Cells[i][j] = 0
		}
	}

	for _, row := range t.Rows {
		si, known := reads.SerotypeRank(row.Serotype)
		if !known {
			continue
		}
		fi, ok := p.filenameIndex(row.Filename)
		if !ok {
			continue
		}
		p.Cells[fi][si]++
	}

	return p
}

// pivotAgg reduces the named column per (filename, serotype) with agg (one of
// the montanaflynn/stats reducers). Values that fail numeric coercion are
// skipped, so a cell whose every value is missing stays NaN.
func pivotAgg(t *reads.Table, col reads.ColumnFunc, agg func(stats.Float64Data) (float64, error)) *pivot {
	p := newPivot(t)

	cells := make([][][]float64, len(p.Filenames))
	for i := range cells {
		cells[i] = make([][]float64, len(p.Serotypes))
	}

	for _, row := range t.Rows {
		si, known := reads.SerotypeRank(row.Serotype)
		if !known {
			continue
		}
		fi, ok := p.filenameIndex(row.Filename)
		if !ok {
			continue
		}
		v, ok := col(row)
		if !ok {
			continue
		}
		cells[fi][si] = append(cells[fi][si], v)
	}

	for i := range cells {
		for j := range cells[i] {
			if len(cells[i][j]) == 0 {
				continue
			}
			if v, err := agg(cells[i][j]); err == nil {
				p.Cells[i][j] = v
			}
		}
	}

	return p
}

// fillMissing replaces NaN cells with v.
func (p *pivot) fillMissing(v float64) *pivot {
	for i := range p.Cells {
		for j := range p.Cells[i] {
			if math.IsNaN(p.Cells[i][j]) {
				p.Cells[i][j] = v
			}
		}
	}

	return p
}

// rowStats reduces each filename's serotype cells to a mean and a population
// standard deviation, the overlay panel's inputs. NaN cells are excluded.
func (p *pivot) rowStats() (means, stds []float64) {
	means = make([]float64, len(p.Filenames))
	stds = make([]float64, len(p.Filenames))

	for i, cells := range p.Cells {
		present := make(stats.Float64Data, 0, len(cells))
		for _, c := range cells {
			if !math.IsNaN(c) {
				present = append(present, c)
			}
		}

		if len(present) == 0 {
			continue
		}

		if m, err := stats.Mean(present); err == nil {
			means[i] = m
		}
		if s, err := stats.StandardDeviation(present); err == nil {
			stds[i] = s
		}
	}

	return means, stds
}

// groupBySerotype collects the coerced values of col per serotype category,
// in categorical order. Rows outside the category set are dropped.
func groupBySerotype(t *reads.Table, col reads.ColumnFunc) [][]float64 {
	out := make([][]float64, len(reads.SerotypeOrder))

	for _, row := range t.Rows {
		si, known := reads.SerotypeRank(row.Serotype)
		if !known {
			continue
		}
		if v, ok := col(row); ok {
			out[si] = append(out[si], v)
		}
	}

	return out
}

// groupByFilename collects the coerced values of col per provenance label,
// sorted by label. Serotype membership is irrelevant here: every row counts.
func groupByFilename(t *reads.Table, col reads.ColumnFunc) (names []string, values [][]float64) {
	names = t.Filenames()

	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	values = make([][]float64, len(names))
	for _, row := range t.Rows {
		if v, ok := col(row); ok {
			i := index[row.Filename]
			values[i] = append(values[i], v)
		}
	}

	return names, values
}
