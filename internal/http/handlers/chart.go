package handlers

import (
	"net/http"

	"salespulse-report-service/internal/report"
	"salespulse-report-service/pkg/response"
)

// ReportChart serves the label/value series for the sales chart, bucketed by
// hour-of-day or day-of-week. The series is plain data; the renderer decides
// colors and layout.
func (h *Handler) ReportChart(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseReportQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	groups, _ := h.groupsInView(q)
	series := report.BuildSeries(groups, q.Bucket, h.Excluded)

	response.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    series,
		"bucket":  q.Bucket,
	})
}
