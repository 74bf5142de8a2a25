package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the formats accepted for the Date field, most common first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// CleanRow validates one raw row and produces a trusted Record. Rules, in
// order, any failure rejecting the row (ok=false, never an error):
//
//  1. Amount parses as a number and is >= 0
//  2. Hour parses as an integer in [0, 23]
//  3. Day is non-empty after trimming
//  4. Date parses as a calendar date
//  5. StoreCode is non-empty after trimming
//
// StoreName is trimmed and falls back to StoreCode when blank.
func CleanRow(raw RawRecord) (Record, bool) {
	storeName := coerceString(raw.StoreName)
	storeCode := coerceString(raw.StoreCode)
	day := coerceString(raw.Day)
	dateStr := coerceString(raw.Date)

	amount, ok := coerceFloat(raw.Amount)
	if !ok || amount < 0 {
		return Record{}, false
	}

	hour, ok := coerceHour(raw.Hour)
	if !ok || hour < 0 || hour > 23 {
		return Record{}, false
	}

	if day == "" {
		return Record{}, false
	}

	if _, ok := ParseDate(dateStr); !ok {
		return Record{}, false
	}

	if storeCode == "" {
		return Record{}, false
	}

	if storeName == "" {
		storeName = storeCode
	}

	return Record{
		StoreName: storeName,
		StoreCode: storeCode,
		Amount:    amount,
		Hour:      hour,
		Day:       day,
		Date:      dateStr,
	}, true
}

// CleanReport summarizes a batch validation pass.
type CleanReport struct {
	ValidCount   int `json:"validCount"`
	InvalidCount int `json:"invalidCount"`
}

// CleanRows validates a batch of raw rows, silently dropping invalid ones and
// counting them instead of failing the batch.
func CleanRows(raws []RawRecord) ([]Record, CleanReport) {
	records := make([]Record, 0, len(raws))
	report := CleanReport{}
	for _, raw := range raws {
		record, ok := CleanRow(raw)
		if !ok {
			report.InvalidCount++
			continue
		}
		records = append(records, record)
	}
	report.ValidCount = len(records)
	return records, report
}

// ParseDate tries the accepted date layouts against a trimmed value.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimSpace(strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		return strconv.Itoa(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// coerceHour truncates fractional hours toward zero, matching how the data
// source historically emitted "9.0" style cells.
func coerceHour(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(math.Trunc(v)), true
	case string:
		trimmed := strings.TrimSpace(v)
		if parsed, err := strconv.Atoi(trimmed); err == nil {
			return parsed, true
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return int(math.Trunc(parsed)), true
	default:
		return 0, false
	}
}
