package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// HourSet is a set of hours (0-23). The display exclusion set for charts and
// the grid is business-rule driven and has changed before, so it is injected
// from configuration rather than hard-coded; DefaultExcludedHours is the
// current policy (2am-7am slots hidden).
type HourSet map[int]struct{}

// DefaultExcludedHours hides the 2am-7am slots from charts and the grid.
func DefaultExcludedHours() HourSet {
	return NewHourSet(2, 3, 4, 5, 6)
}

func NewHourSet(hours ...int) HourSet {
	set := make(HourSet, len(hours))
	for _, h := range hours {
		set[h] = struct{}{}
	}
	return set
}

// ParseHourSet reads a comma-separated list of hours, e.g. "2,3,4,5,6".
// An empty value yields an empty set (nothing excluded).
func ParseHourSet(value string) (HourSet, error) {
	set := HourSet{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		hour, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid hour %q", part)
		}
		if hour < 0 || hour > 23 {
			return nil, fmt.Errorf("hour %d outside 0-23", hour)
		}
		set[hour] = struct{}{}
	}
	return set, nil
}

func (s HourSet) Contains(hour int) bool {
	_, ok := s[hour]
	return ok
}

// Hours lists the set in ascending order.
func (s HourSet) Hours() []int {
	hours := make([]int, 0, len(s))
	for h := range s {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// displayHours is the hour domain shared by the chart hour series and the
// Day x Hour grid: 0-23 minus the excluded set, ascending.
func displayHours(excluded HourSet) []int {
	hours := make([]int, 0, 24)
	for h := 0; h < 24; h++ {
		if excluded.Contains(h) {
			continue
		}
		hours = append(hours, h)
	}
	return hours
}

// FormatHourRange renders an hour span in 12-hour clock form, e.g.
// FormatHourRange(9, 10) -> "9 AM - 10 AM". Hour 24 wraps to 12 AM so the
// 23-24 slot reads "11 PM - 12 AM".
func FormatHourRange(start, end int) string {
	return clock12(start) + " - " + clock12(end)
}

func clock12(hour int) string {
	hour = hour % 24
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
