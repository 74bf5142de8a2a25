package report

import "fmt"

// weekdaysSundayFirst is the row order of the Day x Hour grid. The grid page
// starts the week on Sunday, unlike the chart and day-filter ordering.
var weekdaysSundayFirst = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Grid is the complete Day x Hour matrix. Cells holds exactly one entry per
// (day, hour) pair in the declared domain, keyed "Day_Hour". A nil cell means
// no grouped row contributed, which is distinct from a legitimate average of
// 0; the UI renders nil as an em dash rather than $0.00.
type Grid struct {
	Cells    map[string]*float64 `json:"grid"`
	DayOrder []string            `json:"dayOrder"`
	Hours    []int               `json:"hours"`
}

// CellKey names one grid cell, e.g. "Monday_9".
func CellKey(day string, hour int) string {
	return fmt.Sprintf("%s_%d", day, hour)
}

// BuildGrid reduces grouped rows into the Day x Hour matrix. The hour domain
// is 0-23 minus the same exclusion set the chart uses. When several stores
// share a cell the cell value is the mean of their per-store averages, not an
// average of raw amounts, matching the dashboard's historical behavior.
func BuildGrid(groups []Grouped, excluded HourSet) Grid {
	hours := displayHours(excluded)

	accumulator := make(map[string]*seriesBucket, len(weekdaysSundayFirst)*len(hours))
	for _, day := range weekdaysSundayFirst {
		for _, hour := range hours {
			accumulator[CellKey(day, hour)] = &seriesBucket{}
		}
	}

	for _, group := range groups {
		cell, ok := accumulator[CellKey(group.Day, group.Hour)]
		if !ok {
			continue
		}
		cell.total += group.AvgAmount
		cell.count++
	}

	cells := make(map[string]*float64, len(accumulator))
	for key, cell := range accumulator {
		if cell.count == 0 {
			cells[key] = nil
			continue
		}
		value := round2(cell.total / float64(cell.count))
		cells[key] = &value
	}

	dayOrder := make([]string, len(weekdaysSundayFirst))
	copy(dayOrder, weekdaysSundayFirst)

	return Grid{Cells: cells, DayOrder: dayOrder, Hours: hours}
}
