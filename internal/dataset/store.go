package dataset

import (
	"sync"
	"time"

	"salespulse-report-service/internal/report"
)

// Info describes the currently loaded dataset.
type Info struct {
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
	RawRows  int       `json:"rawRows"`
}

// MergeReport summarizes a Merge call.
type MergeReport struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// Store is the in-memory snapshot of the loaded raw records. There is no
// persistence: a reload replaces the snapshot, views recompute from it on
// every request. The lock only coordinates load/upload against reads; the
// pipeline itself always runs on a copy.
type Store struct {
	mu       sync.RWMutex
	raws     []report.RawRecord
	source   string
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly loaded dataset, discarding the previous one.
func (s *Store) Replace(raws []report.RawRecord, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raws = raws
	s.source = source
	s.loadedAt = time.Now()
}

// Merge adds uploaded rows without overwriting what is already loaded:
// an incoming row whose (StoreCode, Day, Hour) group already exists in the
// snapshot is skipped, so re-uploading an overlapping week never shifts
// existing averages. Rows that fail validation are appended as-is; the
// pipeline rejects and counts them per request.
func (s *Store) Merge(incoming []report.RawRecord, source string) MergeReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{})
	for _, raw := range s.raws {
		if record, ok := report.CleanRow(raw); ok {
			existing[record.GroupKey()] = struct{}{}
		}
	}

	merged := MergeReport{}
	for _, raw := range incoming {
		if record, ok := report.CleanRow(raw); ok {
			if _, dup := existing[record.GroupKey()]; dup {
				merged.Skipped++
				continue
			}
		}
		s.raws = append(s.raws, raw)
		merged.Added++
	}

	if merged.Added > 0 {
		s.source = source
		s.loadedAt = time.Now()
	}
	return merged
}

// Snapshot returns a copy of the raw records plus load metadata. The copy
// keeps the pipeline pure: nothing downstream can mutate the stored slice.
func (s *Store) Snapshot() ([]report.RawRecord, Info) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raws := make([]report.RawRecord, len(s.raws))
	copy(raws, s.raws)
	return raws, Info{Source: s.source, LoadedAt: s.loadedAt, RawRows: len(s.raws)}
}
