package report

import "fmt"

// Stats is the summary card over whatever slice of grouped rows is currently
// in view. Amounts are pre-formatted two-decimal strings; LowestSlot names
// the weakest performing store/day/hour combination.
type Stats struct {
	TotalRecords int    `json:"totalRecords"`
	AvgAmount    string `json:"avgAmount"`
	MinAmount    string `json:"minAmount"`
	MaxAmount    string `json:"maxAmount"`
	LowestSlot   string `json:"lowestSlot"`
}

// CalculateStats derives the summary from grouped rows, returning nil for an
// empty slice so callers branch on "no data" instead of an error. The lowest
// slot is found by an explicit scan; callers routinely pass descending-sorted
// or unsorted slices, so first-element shortcuts are not safe here.
func CalculateStats(groups []Grouped) *Stats {
	if len(groups) == 0 {
		return nil
	}

	total := 0.0
	min := groups[0].AvgAmount
	max := groups[0].AvgAmount
	lowest := groups[0]
	for _, group := range groups {
		total += group.AvgAmount
		if group.AvgAmount < min {
			min = group.AvgAmount
		}
		if group.AvgAmount > max {
			max = group.AvgAmount
		}
		if group.AvgAmount < lowest.AvgAmount {
			lowest = group
		}
	}

	return &Stats{
		TotalRecords: len(groups),
		AvgAmount:    format2(total / float64(len(groups))),
		MinAmount:    format2(min),
		MaxAmount:    format2(max),
		LowestSlot: fmt.Sprintf("%s - %s %s",
			lowest.StoreName, lowest.Day, FormatHourRange(lowest.Hour, lowest.Hour+1)),
	}
}
