// Package reads loads the per-read parquet tables produced by the bhedi
// pipeline into one in-memory table, tagging every row with the file it came
// from, and provides the categorical serotype handling and sentinel filtering
// that the downstream chart builders rely on.
package reads

import "sort"

// ReadRecord mirrors the parquet schema written by the bhedi pipeline. The
// count and average columns are stored as text upstream and may hold
// non-numeric placeholders such as "NA"; use the column accessors for any
// numeric work on them.
type ReadRecord struct {
	ReadID        string  `parquet:"name=read_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	MatchedSanket string  `parquet:"name=matched_sanket, type=BYTE_ARRAY, convertedtype=UTF8"`
	Serotype      string  `parquet:"name=serotype, type=BYTE_ARRAY, convertedtype=UTF8"`
	GCPercentage  float64 `parquet:"name=gc_percentage, type=DOUBLE"`
	TotalCoverage int32   `parquet:"name=total_coverage, type=INT32"`
	SLen          int32   `parquet:"name=s_len, type=INT32"`
	SSRCount      string  `parquet:"name=ssr_count, type=BYTE_ARRAY, convertedtype=UTF8"`
	MLenAvg       string  `parquet:"name=mlen_avg, type=BYTE_ARRAY, convertedtype=UTF8"`
	MRCAvg        string  `parquet:"name=mrc_avg, type=BYTE_ARRAY, convertedtype=UTF8"`
	PCount        string  `parquet:"name=p_count, type=BYTE_ARRAY, convertedtype=UTF8"`
	PLenAvg       string  `parquet:"name=plen_avg, type=BYTE_ARRAY, convertedtype=UTF8"`
	BScore        float64 `parquet:"name=b_score, type=DOUBLE"`
}

// Row is one read with its provenance label. Filename is not present in the
// source files; it is injected at load time from the source file's name.
type Row struct {
	ReadRecord
	Filename string
}

// Table is the combined read table. It is built once by LoadDir, reduced once
// by FilterOut, and treated as read-only by everything downstream.
type Table struct {
	Rows []Row
}

// Filenames returns the distinct provenance labels in sorted order.
func (t *Table) Filenames() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, row := range t.Rows {
		if _, exists := seen[row.Filename]; exists {
			continue
		}
		seen[row.Filename] = struct{}{}
		out = append(out, row.Filename)
	}

	sort.Strings(out)

	return out
}

// CountByFilename returns the number of rows per provenance label.
func (t *Table) CountByFilename() map[string]int {
	out := make(map[string]int)
	for _, row := range t.Rows {
		out[row.Filename]++
	}

	return out
}
