package handlers

import (
	"net/http"

	"salespulse-report-service/internal/report"
	"salespulse-report-service/pkg/response"
)

// ReportStats serves the summary card for the slice currently in view. An
// empty view is not an error: data is null and the caller branches on that.
func (h *Handler) ReportStats(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseReportQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	groups, _ := h.groupsInView(q)
	stats := report.CalculateStats(groups)
	if stats == nil {
		response.Success(w, nil)
		return
	}
	response.Success(w, stats)
}
