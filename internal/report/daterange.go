package report

import "time"

// FilterByDateRange keeps records whose Date falls inside [from, to], both
// bounds inclusive. An empty bound means unbounded on that side. A record
// whose Date does not parse is dropped whenever at least one bound is active
// and kept when the range is fully open; validated records always carry a
// parseable Date, so this only matters for hand-built inputs.
func FilterByDateRange(records []Record, from, to string) []Record {
	fromDate, hasFrom := ParseDate(from)
	toDate, hasTo := ParseDate(to)
	if !hasFrom && !hasTo {
		return records
	}

	fromDay := truncateToDay(fromDate)
	toDay := truncateToDay(toDate)

	kept := make([]Record, 0, len(records))
	for _, record := range records {
		date, ok := ParseDate(record.Date)
		if !ok {
			continue
		}
		day := truncateToDay(date)
		if hasFrom && day.Before(fromDay) {
			continue
		}
		if hasTo && day.After(toDay) {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

// truncateToDay drops the time-of-day component so boundary comparisons work
// on calendar dates regardless of the layout a Date arrived in.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
