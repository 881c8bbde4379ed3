package reads

import (
	"fmt"
	"log"

	"github.com/carbocation/pfx"
)

// FilterOut returns a new Table without the rows whose column equals value.
// The usual call is FilterOut("serotype", UnassignedSerotype). As a
// diagnostic it logs the per-provenance row counts before and after; nothing
// is persisted. The receiver is left untouched.
func (t *Table) FilterOut(column, value string) (*Table, error) {
	sel, ok := textColumn(column)
	if !ok {
		return nil, pfx.Err(fmt.Errorf("cannot filter on unknown column %q", column))
	}

	logCounts("Rows per filename before filtering:", t)

	out := &Table{Rows: make([]Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		if sel(row) == value {
			continue
		}
		out.Rows = append(out.Rows, row)
	}

	logCounts("Rows per filename after filtering:", out)

	return out, nil
}

// textColumn maps a column name to its string value. Only the text-typed
// columns (plus the injected filename) can be filtered on.
func textColumn(name string) (func(Row) string, bool) {
	switch name {
	case "read_id":
		return func(r Row) string { return r.ReadID }, true
	case "matched_sanket":
		return func(r Row) string { return r.MatchedSanket }, true
	case "serotype":
		return func(r Row) string { return r.Serotype }, true
	case "ssr_count":
		return func(r Row) string { return r.SSRCount }, true
	case "mlen_avg":
		return func(r Row) string { return r.MLenAvg }, true
	case "mrc_avg":
		return func(r Row) string { return r.MRCAvg }, true
	case "p_count":
		return func(r Row) string { return r.PCount }, true
	case "plen_avg":
		return func(r Row) string { return r.PLenAvg }, true
	case "filename":
		return func(r Row) string { return r.Filename }, true
	}

	return nil, false
}

func logCounts(header string, t *Table) {
	log.Println(header)

	counts := t.CountByFilename()
	for _, filename := range t.Filenames() {
		log.Printf("%s\t%d\n", filename, counts[filename])
	}
}
