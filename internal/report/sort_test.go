package report

import "testing"

func groupedRow(code string, avg float64) Grouped {
	return Grouped{StoreName: code, StoreCode: code, Day: "Monday", Hour: 9, AvgAmount: avg, DataPoints: 1}
}

func TestSortByAverageDirections(t *testing.T) {
	groups := []Grouped{groupedRow("B", 30), groupedRow("A", 10), groupedRow("C", 20)}

	lowest := SortByAverage(groups, SortLowest)
	if lowest[0].AvgAmount != 10 || lowest[2].AvgAmount != 30 {
		t.Fatalf("ascending sort wrong: %+v", lowest)
	}

	highest := SortByAverage(groups, SortHighest)
	if highest[0].AvgAmount != 30 || highest[2].AvgAmount != 10 {
		t.Fatalf("descending sort wrong: %+v", highest)
	}
}

func TestSortByAverageDoesNotMutateInput(t *testing.T) {
	groups := []Grouped{groupedRow("B", 30), groupedRow("A", 10)}
	_ = SortByAverage(groups, SortLowest)
	if groups[0].StoreCode != "B" {
		t.Fatalf("input slice was mutated")
	}
}

func TestSortByAverageIdempotent(t *testing.T) {
	groups := []Grouped{groupedRow("A", 10), groupedRow("B", 20), groupedRow("C", 30)}
	once := SortByAverage(groups, SortLowest)
	twice := SortByAverage(once, SortLowest)
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("re-sorting a sorted slice changed element %d", i)
		}
	}
}

func TestSortByAverageStableOnTies(t *testing.T) {
	groups := []Grouped{groupedRow("first", 10), groupedRow("second", 10), groupedRow("third", 10)}
	sorted := SortByAverage(groups, SortLowest)
	if sorted[0].StoreCode != "first" || sorted[1].StoreCode != "second" || sorted[2].StoreCode != "third" {
		t.Fatalf("tie order not preserved: %+v", sorted)
	}
}
