package report

// RawRecord is a single untrusted row from the external data source (JSON feed
// or uploaded spreadsheet). Fields may be missing or carry the wrong type;
// numbers frequently arrive as strings, so everything is held as `any` until
// CleanRow has run.
type RawRecord struct {
	StoreName any `json:"StoreName"`
	StoreCode any `json:"StoreCode"`
	Amount    any `json:"Amount"`
	Hour      any `json:"Hour"`
	Day       any `json:"Day"`
	Date      any `json:"Date"`
}

// Record is a validated row. Every field has passed CleanRow; a Record is
// never partially valid.
type Record struct {
	StoreName string  `json:"StoreName"`
	StoreCode string  `json:"StoreCode"`
	Amount    float64 `json:"Amount"`
	Hour      int     `json:"Hour"`
	Day       string  `json:"Day"`
	Date      string  `json:"Date"`
}

// GroupKey is the composite grouping identity: all records sharing a store
// code, day-of-week and hour-of-day fold into one Grouped row.
func (r Record) GroupKey() string {
	return groupKey(r.StoreCode, r.Day, r.Hour)
}

// Grouped is the per-(store, day, hour) average. AvgAmount is rounded to two
// decimal places exactly once, at group finalization.
type Grouped struct {
	StoreName  string  `json:"StoreName"`
	StoreCode  string  `json:"StoreCode"`
	Day        string  `json:"Day"`
	Hour       int     `json:"Hour"`
	AvgAmount  float64 `json:"AvgAmount"`
	DataPoints int     `json:"DataPoints"`
}

func (g Grouped) GroupKey() string {
	return groupKey(g.StoreCode, g.Day, g.Hour)
}
