package reads

import (
	"math"
	"strconv"
	"strings"
)

// A ColumnFunc pulls one numeric value out of a row. ok is false when the
// value is missing: NaN in a float column, or text that does not parse in one
// of the upstream string-typed metric columns.
type ColumnFunc func(Row) (v float64, ok bool)

// NumericColumns lists the columns with a numeric parquet type, in schema
// order. The string-typed metric columns (p_count, ssr_count, ...) are not
// included: they only become numeric after coercion and are charted solely
// through NumericColumn accessors.
func NumericColumns() []string {
	return []string{"gc_percentage", "total_coverage", "s_len", "b_score"}
}

// NumericColumn returns an accessor for the named column, coercing the
// string-typed metric columns. The second return is false for columns that
// have no numeric reading (identifiers and the serotype category).
func NumericColumn(name string) (ColumnFunc, bool) {
	switch name {
	case "gc_percentage":
		return func(r Row) (float64, bool) { return present(r.GCPercentage) }, true
	case "total_coverage":
		return func(r Row) (float64, bool) { return present(float64(r.TotalCoverage)) }, true
	case "s_len":
		return func(r Row) (float64, bool) { return present(float64(r.SLen)) }, true
	case "b_score":
		return func(r Row) (float64, bool) { return present(r.BScore) }, true
	case "ssr_count":
		return func(r Row) (float64, bool) { return CoerceNumeric(r.SSRCount) }, true
	case "mlen_avg":
		return func(r Row) (float64, bool) { return CoerceNumeric(r.MLenAvg) }, true
	case "mrc_avg":
		return func(r Row) (float64, bool) { return CoerceNumeric(r.MRCAvg) }, true
	case "p_count":
		return func(r Row) (float64, bool) { return CoerceNumeric(r.PCount) }, true
	case "plen_avg":
		return func(r Row) (float64, bool) { return CoerceNumeric(r.PLenAvg) }, true
	}

	return nil, false
}

// CoerceNumeric parses s as a number. Non-numeric text such as "NA" or an
// empty string yields ok=false, never an error.
func CoerceNumeric(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}

	return present(f)
}

func present(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
