package report

import "testing"

func TestProcessEndToEnd(t *testing.T) {
	raws := []RawRecord{
		{StoreCode: "A", StoreName: "A", Day: "Monday", Hour: 9, Amount: "50", Date: "2024-01-01"},
		{StoreCode: "A", StoreName: "A", Day: "Monday", Hour: 9, Amount: "70", Date: "2024-01-08"},
	}

	result := Process(raws, nil, "", "")
	if len(result.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result.Groups))
	}
	group := result.Groups[0]
	if group.StoreCode != "A" || group.Day != "Monday" || group.Hour != 9 {
		t.Fatalf("unexpected group identity: %+v", group)
	}
	if group.AvgAmount != 60.00 || group.DataPoints != 2 {
		t.Fatalf("expected AvgAmount 60.00 with 2 data points, got %+v", group)
	}

	stats := CalculateStats(result.Groups)
	if stats.TotalRecords != 1 || stats.AvgAmount != "60.00" ||
		stats.MinAmount != "60.00" || stats.MaxAmount != "60.00" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestProcessCounts(t *testing.T) {
	raws := []RawRecord{
		{StoreCode: "A", StoreName: "Clinton", Day: "Monday", Hour: 7, Amount: 10, Date: "2024-01-01"},
		{StoreCode: "A", StoreName: "Clinton", Day: "Monday", Hour: 9, Amount: 10, Date: "2024-01-01"},
		{StoreCode: "B", StoreName: "Exton", Day: "Monday", Hour: 9, Amount: 10, Date: "2024-01-01"},
		{StoreCode: "", StoreName: "bad", Day: "Monday", Hour: 9, Amount: 10, Date: "2024-01-01"},
	}
	closed := ClosedHours{"Clinton": {6, 7, 8}}

	result := Process(raws, closed, "", "")
	s := result.Stats
	if s.TotalRawRows != 4 || s.ValidRows != 3 || s.InvalidRows != 1 {
		t.Fatalf("unexpected validation counts: %+v", s)
	}
	if s.ClosedRowsRemoved != 1 {
		t.Fatalf("expected 1 closed row removed, got %d", s.ClosedRowsRemoved)
	}
	if s.UniqueGroups != 2 || s.Stores != 2 {
		t.Fatalf("unexpected group counts: %+v", s)
	}
}

func TestProcessSortsLowestFirst(t *testing.T) {
	raws := []RawRecord{
		{StoreCode: "A", StoreName: "A", Day: "Monday", Hour: 9, Amount: 90, Date: "2024-01-01"},
		{StoreCode: "A", StoreName: "A", Day: "Monday", Hour: 10, Amount: 10, Date: "2024-01-01"},
		{StoreCode: "A", StoreName: "A", Day: "Monday", Hour: 11, Amount: 50, Date: "2024-01-01"},
	}

	result := Process(raws, nil, "", "")
	if result.Groups[0].Hour != 10 || result.Groups[2].Hour != 9 {
		t.Fatalf("expected lowest-first ordering, got %+v", result.Groups)
	}
}

func TestProcessDateWindowRunsBeforeGrouping(t *testing.T) {
	raws := []RawRecord{
		{StoreCode: "A", StoreName: "A", Day: "Monday", Hour: 9, Amount: 10, Date: "2024-01-01"},
		{StoreCode: "A", StoreName: "A", Day: "Monday", Hour: 9, Amount: 90, Date: "2024-02-01"},
	}

	result := Process(raws, nil, "2024-01-01", "2024-01-31")
	if len(result.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result.Groups))
	}
	// The February record must not be in the denominator.
	if result.Groups[0].AvgAmount != 10 || result.Groups[0].DataPoints != 1 {
		t.Fatalf("out-of-range record leaked into the average: %+v", result.Groups[0])
	}
}

func TestProcessEmptyInput(t *testing.T) {
	result := Process(nil, nil, "", "")
	if len(result.Groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(result.Groups))
	}
	if result.Stats.TotalRawRows != 0 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
}

func TestFilterByStoreAndDay(t *testing.T) {
	groups := []Grouped{
		{StoreCode: "A", Day: "Monday", Hour: 9, AvgAmount: 10},
		{StoreCode: "B", Day: "Monday", Hour: 9, AvgAmount: 20},
		{StoreCode: "A", Day: "Tuesday", Hour: 9, AvgAmount: 30},
	}

	if got := FilterByStore(groups, ""); len(got) != 3 {
		t.Fatalf("empty store filter should pass everything")
	}
	if got := FilterByStore(groups, "A"); len(got) != 2 {
		t.Fatalf("expected 2 rows for store A, got %d", len(got))
	}
	if got := FilterByDay(groups, "Tuesday"); len(got) != 1 || got[0].StoreCode != "A" {
		t.Fatalf("day filter wrong: %+v", got)
	}
}

func TestUniqueStoresAndDays(t *testing.T) {
	groups := []Grouped{
		{StoreCode: "B", Day: "Sunday", Hour: 9},
		{StoreCode: "A", Day: "Monday", Hour: 9},
		{StoreCode: "B", Day: "Monday", Hour: 10},
		{StoreCode: "A", Day: "Someday", Hour: 9},
	}

	stores := UniqueStores(groups)
	if len(stores) != 2 || stores[0] != "A" || stores[1] != "B" {
		t.Fatalf("unexpected stores: %v", stores)
	}

	days := UniqueDays(groups)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %v", days)
	}
	if days[0] != "Monday" || days[1] != "Sunday" || days[2] != "Someday" {
		t.Fatalf("expected Monday-first with unknowns last, got %v", days)
	}
}

func TestPaginate(t *testing.T) {
	groups := make([]Grouped, 0, 5)
	for i := 0; i < 5; i++ {
		groups = append(groups, Grouped{StoreCode: "A", Day: "Monday", Hour: i})
	}

	if page := Paginate(groups, 1, 2); len(page) != 2 || page[0].Hour != 0 {
		t.Fatalf("page 1 wrong: %+v", page)
	}
	if page := Paginate(groups, 3, 2); len(page) != 1 || page[0].Hour != 4 {
		t.Fatalf("last partial page wrong: %+v", page)
	}
	if page := Paginate(groups, 4, 2); len(page) != 0 {
		t.Fatalf("page past the end should be empty, got %+v", page)
	}
	if page := Paginate(groups, 0, 2); len(page) != 2 {
		t.Fatalf("page < 1 should clamp to the first page")
	}
}
