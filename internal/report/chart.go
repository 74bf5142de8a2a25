package report

import "fmt"

// Chart bucket modes.
const (
	BucketHour = "hour"
	BucketDay  = "day"
)

// weekdaysMondayFirst orders day buckets and day filters. The grid starts the
// week on Sunday instead; see grid.go.
var weekdaysMondayFirst = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Series is a pair of parallel label/value arrays ready for a chart renderer.
// No presentation concerns (colors, layout) are baked in.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type seriesBucket struct {
	total float64
	count int
}

func (b seriesBucket) mean() float64 {
	if b.count == 0 {
		return 0
	}
	return round2(b.total / float64(b.count))
}

// BuildSeries reduces grouped rows into an ordered chart series, bucketed by
// hour-of-day or day-of-week. Hour buckets run 0-23 minus the excluded set,
// ascending, labeled "H - H+1"; grouped rows in an excluded hour are skipped.
// Day buckets run Monday through Sunday. Either way a bucket's value is the
// mean of AvgAmount over its contributors, 0 when nothing contributed.
func BuildSeries(groups []Grouped, bucketBy string, excluded HourSet) Series {
	if bucketBy == BucketDay {
		return buildDaySeries(groups)
	}
	return buildHourSeries(groups, excluded)
}

func buildHourSeries(groups []Grouped, excluded HourSet) Series {
	buckets := make(map[int]*seriesBucket)
	hours := displayHours(excluded)
	for _, hour := range hours {
		buckets[hour] = &seriesBucket{}
	}

	for _, group := range groups {
		bucket, ok := buckets[group.Hour]
		if !ok {
			continue
		}
		bucket.total += group.AvgAmount
		bucket.count++
	}

	series := Series{
		Labels: make([]string, 0, len(hours)),
		Values: make([]float64, 0, len(hours)),
	}
	for _, hour := range hours {
		series.Labels = append(series.Labels, fmt.Sprintf("%d - %d", hour, hour+1))
		series.Values = append(series.Values, buckets[hour].mean())
	}
	return series
}

func buildDaySeries(groups []Grouped) Series {
	buckets := make(map[string]*seriesBucket, len(weekdaysMondayFirst))
	for _, day := range weekdaysMondayFirst {
		buckets[day] = &seriesBucket{}
	}

	for _, group := range groups {
		bucket, ok := buckets[group.Day]
		if !ok {
			continue
		}
		bucket.total += group.AvgAmount
		bucket.count++
	}

	series := Series{
		Labels: make([]string, 0, len(weekdaysMondayFirst)),
		Values: make([]float64, 0, len(weekdaysMondayFirst)),
	}
	for _, day := range weekdaysMondayFirst {
		series.Labels = append(series.Labels, day)
		series.Values = append(series.Values, buckets[day].mean())
	}
	return series
}
