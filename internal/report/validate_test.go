package report

import "testing"

func TestCleanRowRejections(t *testing.T) {
	valid := RawRecord{
		StoreName: "Clinton",
		StoreCode: "13589",
		Amount:    "50",
		Hour:      9,
		Day:       "Monday",
		Date:      "2024-01-01",
	}

	cases := []struct {
		name   string
		mutate func(*RawRecord)
	}{
		{name: "negative amount", mutate: func(r *RawRecord) { r.Amount = -5 }},
		{name: "amount not a number", mutate: func(r *RawRecord) { r.Amount = "abc" }},
		{name: "amount missing", mutate: func(r *RawRecord) { r.Amount = nil }},
		{name: "hour below range", mutate: func(r *RawRecord) { r.Hour = -1 }},
		{name: "hour above range", mutate: func(r *RawRecord) { r.Hour = 24 }},
		{name: "hour not a number", mutate: func(r *RawRecord) { r.Hour = "noon" }},
		{name: "empty day", mutate: func(r *RawRecord) { r.Day = "   " }},
		{name: "invalid date", mutate: func(r *RawRecord) { r.Date = "not-a-date" }},
		{name: "empty date", mutate: func(r *RawRecord) { r.Date = "" }},
		{name: "empty store code", mutate: func(r *RawRecord) { r.StoreCode = "  " }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := valid
			tc.mutate(&raw)
			if _, ok := CleanRow(raw); ok {
				t.Fatalf("expected rejection")
			}
		})
	}

	if _, ok := CleanRow(valid); !ok {
		t.Fatalf("expected baseline row to pass")
	}
}

func TestCleanRowAccepts(t *testing.T) {
	record, ok := CleanRow(RawRecord{
		StoreName: "  Clinton  ",
		StoreCode: " 13589 ",
		Amount:    "50.25",
		Hour:      "9",
		Day:       " Monday ",
		Date:      "2024-01-01",
	})
	if !ok {
		t.Fatalf("expected row to pass validation")
	}
	if record.StoreName != "Clinton" || record.StoreCode != "13589" {
		t.Fatalf("expected trimmed store fields, got %q / %q", record.StoreName, record.StoreCode)
	}
	if record.Amount != 50.25 {
		t.Fatalf("expected amount 50.25, got %v", record.Amount)
	}
	if record.Hour != 9 {
		t.Fatalf("expected hour 9, got %d", record.Hour)
	}
	if record.Day != "Monday" {
		t.Fatalf("expected day Monday, got %q", record.Day)
	}
}

func TestCleanRowZeroAmountAccepted(t *testing.T) {
	record, ok := CleanRow(RawRecord{
		StoreCode: "A", StoreName: "A", Amount: 0, Hour: 0, Day: "Sunday", Date: "2024-02-01",
	})
	if !ok {
		t.Fatalf("expected zero amount to be accepted")
	}
	if record.Amount != 0 {
		t.Fatalf("expected amount 0, got %v", record.Amount)
	}
}

func TestCleanRowStoreNameFallsBackToCode(t *testing.T) {
	record, ok := CleanRow(RawRecord{
		StoreName: "   ",
		StoreCode: "8616",
		Amount:    12.5,
		Hour:      10,
		Day:       "Tuesday",
		Date:      "2024-03-04",
	})
	if !ok {
		t.Fatalf("expected row to pass validation")
	}
	if record.StoreName != "8616" {
		t.Fatalf("expected store name to fall back to code, got %q", record.StoreName)
	}
}

func TestCleanRowsCounts(t *testing.T) {
	raws := []RawRecord{
		{StoreCode: "A", Amount: "10", Hour: 9, Day: "Monday", Date: "2024-01-01"},
		{StoreCode: "A", Amount: "-1", Hour: 9, Day: "Monday", Date: "2024-01-01"},
		{StoreCode: "", Amount: "10", Hour: 9, Day: "Monday", Date: "2024-01-01"},
		{StoreCode: "B", Amount: 20, Hour: "23", Day: "Friday", Date: "01/05/2024"},
	}

	records, cleanReport := CleanRows(raws)
	if len(records) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(records))
	}
	if cleanReport.ValidCount != 2 || cleanReport.InvalidCount != 2 {
		t.Fatalf("unexpected counts: %+v", cleanReport)
	}
}
