package report

import "testing"

func TestParseHourSet(t *testing.T) {
	set, err := ParseHourSet("2,3,4,5,6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 5 || !set.Contains(2) || !set.Contains(6) {
		t.Fatalf("unexpected set: %v", set.Hours())
	}
	if set.Contains(7) {
		t.Fatalf("hour 7 should not be excluded")
	}
}

func TestParseHourSetEmpty(t *testing.T) {
	set, err := ParseHourSet("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %v", set.Hours())
	}
}

func TestParseHourSetRejectsBadValues(t *testing.T) {
	if _, err := ParseHourSet("2,x"); err == nil {
		t.Fatalf("expected error for non-numeric hour")
	}
	if _, err := ParseHourSet("24"); err == nil {
		t.Fatalf("expected error for out-of-range hour")
	}
}

func TestFormatHourRange(t *testing.T) {
	cases := []struct {
		start, end int
		want       string
	}{
		{0, 1, "12 AM - 1 AM"},
		{9, 10, "9 AM - 10 AM"},
		{11, 12, "11 AM - 12 PM"},
		{12, 13, "12 PM - 1 PM"},
		{23, 24, "11 PM - 12 AM"},
	}

	for _, tc := range cases {
		if got := FormatHourRange(tc.start, tc.end); got != tc.want {
			t.Fatalf("FormatHourRange(%d, %d) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestDisplayHoursSharedDomain(t *testing.T) {
	excluded := DefaultExcludedHours()
	series := BuildSeries(nil, BucketHour, excluded)
	grid := BuildGrid(nil, excluded)
	if len(series.Labels) != len(grid.Hours) {
		t.Fatalf("chart and grid must share the hour domain: %d vs %d", len(series.Labels), len(grid.Hours))
	}
}
