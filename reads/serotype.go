package reads

// UnassignedSerotype is the sentinel the bhedi pipeline writes for reads it
// could not assign to any serotype. FilterOut removes it before charting.
const UnassignedSerotype = "Unassigned"

// SerotypeOrder is the reference ordering for the serotype category. Extend
// as needed. Values outside this list are treated as missing: they never
// appear in serotype-keyed aggregations, though their rows still count toward
// per-file totals.
var SerotypeOrder = []string{"1", "2", "3", "4"}

// SerotypeRank returns the position of v in SerotypeOrder, and whether v is a
// known category at all.
func SerotypeRank(v string) (int, bool) {
	for i, s := range SerotypeOrder {
		if s == v {
			return i, true
		}
	}

	return 0, false
}
