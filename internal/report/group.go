package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type groupAccumulator struct {
	storeName string
	storeCode string
	day       string
	hour      int
	sum       float64
	count     int
}

func groupKey(storeCode, day string, hour int) string {
	return fmt.Sprintf("%s_%s_%d", storeCode, day, hour)
}

// GroupAndAverage folds records into one Grouped row per (StoreCode, Day,
// Hour). The first record seen for a key seeds the identity fields; later
// records only contribute to the numeric accumulation. Keys that were never
// touched produce no output, so a store/hour with no data is absent rather
// than zero-valued.
func GroupAndAverage(records []Record) []Grouped {
	groups := make(map[string]*groupAccumulator)
	for _, record := range records {
		key := record.GroupKey()
		acc, ok := groups[key]
		if !ok {
			acc = &groupAccumulator{
				storeName: record.StoreName,
				storeCode: record.StoreCode,
				day:       record.Day,
				hour:      record.Hour,
			}
			groups[key] = acc
		}
		acc.sum += record.Amount
		acc.count++
	}

	results := make([]Grouped, 0, len(groups))
	for _, acc := range groups {
		results = append(results, Grouped{
			StoreName:  acc.storeName,
			StoreCode:  acc.storeCode,
			Day:        acc.day,
			Hour:       acc.hour,
			AvgAmount:  round2(acc.sum / float64(acc.count)),
			DataPoints: acc.count,
		})
	}
	return results
}

// round2 rounds to two decimal places, half away from zero. Applied exactly
// once, at group finalization.
func round2(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// format2 renders a two-decimal string with the same rounding as round2.
func format2(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}
