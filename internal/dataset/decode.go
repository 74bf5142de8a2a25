package dataset

import (
	"bytes"
	"encoding/json"

	"salespulse-report-service/internal/report"
)

// DecodeJSON turns a JSON payload into raw records. The payload must be an
// array of objects; anything else is a single typed error back to the caller.
// Individual rows are not validated here, that is the row validator's job.
func DecodeJSON(data []byte) ([]report.RawRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, invalidInput(ErrDatasetInvalidJSON, "Dataset payload is empty")
	}
	if trimmed[0] != '[' {
		return nil, invalidInput(ErrDatasetNotArray, "Dataset payload must be a JSON array of records")
	}

	var raws []report.RawRecord
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, invalidInput(ErrDatasetInvalidJSON, "Dataset payload is not valid JSON: "+err.Error())
	}
	return raws, nil
}
