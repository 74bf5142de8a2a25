package report

import "sort"

// Sort directions for the grouped table. "lowest" surfaces the weakest
// performing slots first, which is the dashboard default.
const (
	SortLowest  = "lowest"
	SortHighest = "highest"
)

// SortByAverage returns a new slice ordered by AvgAmount, ascending for
// SortLowest and descending for SortHighest. The sort is stable: rows with
// equal averages keep their relative input order.
func SortByAverage(groups []Grouped, direction string) []Grouped {
	sorted := make([]Grouped, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == SortHighest {
			return sorted[i].AvgAmount > sorted[j].AvgAmount
		}
		return sorted[i].AvgAmount < sorted[j].AvgAmount
	})
	return sorted
}
