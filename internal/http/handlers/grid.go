package handlers

import (
	"net/http"

	"salespulse-report-service/internal/report"
	"salespulse-report-service/pkg/response"
)

// ReportGrid serves the full Day x Hour matrix. Cells with no contributing
// data are null, which the grid page renders as a dash instead of $0.00.
func (h *Handler) ReportGrid(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseReportQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	groups, _ := h.groupsInView(q)
	response.Success(w, report.BuildGrid(groups, h.Excluded))
}
