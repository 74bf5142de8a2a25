package handlers

import (
	"net/http"

	"salespulse-report-service/internal/report"
	"salespulse-report-service/pkg/response"
)

// ReportMeta serves what the filter bar needs: the distinct stores and days
// present in the dataset, the configured display hours, and load info.
func (h *Handler) ReportMeta(w http.ResponseWriter, r *http.Request) {
	raws, info := h.Data.Snapshot()
	result := report.Process(raws, h.Closed, "", "")

	response.Success(w, map[string]any{
		"stores":        report.UniqueStores(result.Groups),
		"days":          report.UniqueDays(result.Groups),
		"excludedHours": h.Excluded.Hours(),
		"dataset":       info,
		"stats":         result.Stats,
	})
}
