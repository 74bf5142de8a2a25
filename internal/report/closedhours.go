package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// ClosedHours maps a store name to the hours (0-23) during which that store is
// closed. Rows matching a store + closed hour are stripped before grouping, so
// a closed hour never counts as a $0 sale and never appears in any
// numerator or denominator. Lookup is exact and case-sensitive on StoreName;
// stores without an entry are never filtered.
type ClosedHours map[string][]int

// IsClosed reports whether a store is closed at the given hour.
func (c ClosedHours) IsClosed(storeName string, hour int) bool {
	hours, ok := c[storeName]
	if !ok {
		return false
	}
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}

// LoadClosedHours reads the operator-maintained closed-hours table from a JSON
// file shaped { "Store Name": [6, 7, 8], ... }.
func LoadClosedHours(path string) (ClosedHours, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var table ClosedHours
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("closed hours config %s: %w", path, err)
	}
	for store, hours := range table {
		for _, h := range hours {
			if h < 0 || h > 23 {
				return nil, fmt.Errorf("closed hours config %s: store %q has hour %d outside 0-23", path, store, h)
			}
		}
	}
	return table, nil
}

// FilterClosed removes records that fall in a store's closed hours. It must
// run before grouping: once a closed-hour row reaches the grouper it would
// inflate both the group total and its DataPoints count.
func FilterClosed(records []Record, rules ClosedHours) ([]Record, int) {
	if len(rules) == 0 {
		return records, 0
	}
	kept := make([]Record, 0, len(records))
	removed := 0
	for _, record := range records {
		if rules.IsClosed(record.StoreName, record.Hour) {
			removed++
			continue
		}
		kept = append(kept, record)
	}
	return kept, removed
}
