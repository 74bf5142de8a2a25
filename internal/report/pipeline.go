package report

import "sort"

// ProcessStats reports what happened to the input on its way through the
// pipeline. Row-level failures are counts here, never errors.
type ProcessStats struct {
	TotalRawRows      int `json:"totalRawRows"`
	ValidRows         int `json:"validRows"`
	InvalidRows       int `json:"invalidRows"`
	ClosedRowsRemoved int `json:"closedRowsRemoved"`
	UniqueGroups      int `json:"uniqueGroups"`
	Stores            int `json:"stores"`
}

// Result is the full pipeline output: grouped rows sorted lowest-average
// first, plus the processing counts.
type Result struct {
	Groups []Grouped    `json:"processedData"`
	Stats  ProcessStats `json:"stats"`
}

// Process runs the whole pipeline: validate raw rows, strip closed-hour rows,
// restrict to the date window, group by (store, day, hour), average, and sort
// lowest first. Filters run strictly before grouping so excluded rows never
// reach any numerator or denominator. A nil or empty input yields an empty
// Result, not an error.
func Process(raws []RawRecord, closed ClosedHours, from, to string) Result {
	valid, cleanReport := CleanRows(raws)
	open, removedClosed := FilterClosed(valid, closed)
	inRange := FilterByDateRange(open, from, to)
	groups := SortByAverage(GroupAndAverage(inRange), SortLowest)

	return Result{
		Groups: groups,
		Stats: ProcessStats{
			TotalRawRows:      len(raws),
			ValidRows:         cleanReport.ValidCount,
			InvalidRows:       cleanReport.InvalidCount,
			ClosedRowsRemoved: removedClosed,
			UniqueGroups:      len(groups),
			Stores:            len(uniqueStoreCodes(inRange)),
		},
	}
}

// FilterByStore keeps grouped rows for one store code; empty means all.
func FilterByStore(groups []Grouped, storeCode string) []Grouped {
	if storeCode == "" {
		return groups
	}
	kept := make([]Grouped, 0, len(groups))
	for _, group := range groups {
		if group.StoreCode == storeCode {
			kept = append(kept, group)
		}
	}
	return kept
}

// FilterByDay keeps grouped rows for one weekday; empty means all.
func FilterByDay(groups []Grouped, day string) []Grouped {
	if day == "" {
		return groups
	}
	kept := make([]Grouped, 0, len(groups))
	for _, group := range groups {
		if group.Day == day {
			kept = append(kept, group)
		}
	}
	return kept
}

// UniqueStores lists the distinct store codes in ascending order, for filter
// dropdowns.
func UniqueStores(groups []Grouped) []string {
	seen := make(map[string]struct{})
	stores := make([]string, 0)
	for _, group := range groups {
		if _, ok := seen[group.StoreCode]; ok {
			continue
		}
		seen[group.StoreCode] = struct{}{}
		stores = append(stores, group.StoreCode)
	}
	sort.Strings(stores)
	return stores
}

// UniqueDays lists the distinct days present, Monday first. Day values
// outside the seven weekday names sort to the end.
func UniqueDays(groups []Grouped) []string {
	seen := make(map[string]struct{})
	days := make([]string, 0)
	for _, group := range groups {
		if _, ok := seen[group.Day]; ok {
			continue
		}
		seen[group.Day] = struct{}{}
		days = append(days, group.Day)
	}
	sort.SliceStable(days, func(i, j int) bool {
		return weekdayRank(days[i]) < weekdayRank(days[j])
	})
	return days
}

func weekdayRank(day string) int {
	for i, name := range weekdaysMondayFirst {
		if name == day {
			return i
		}
	}
	return len(weekdaysMondayFirst)
}

// Paginate slices one display page out of grouped rows. Pages are 1-based;
// a page past the end yields an empty slice. Pagination carries no semantics
// beyond the slice itself.
func Paginate(groups []Grouped, page, pageSize int) []Grouped {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return []Grouped{}
	}
	start := (page - 1) * pageSize
	if start >= len(groups) {
		return []Grouped{}
	}
	end := start + pageSize
	if end > len(groups) {
		end = len(groups)
	}
	return groups[start:end]
}

func uniqueStoreCodes(records []Record) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, record := range records {
		codes[record.StoreCode] = struct{}{}
	}
	return codes
}
