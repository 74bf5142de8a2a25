package handlers

import (
	"net/http"

	"salespulse-report-service/internal/report"
	"salespulse-report-service/pkg/response"
)

// ReportTable serves the grouped store/day/hour table, sorted by average
// amount and paginated. With sort=lowest the first row is the worst
// performing time slot.
func (h *Handler) ReportTable(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseReportQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	groups, processStats := h.groupsInView(q)
	if q.Sort == report.SortHighest {
		groups = report.SortByAverage(groups, report.SortHighest)
	}

	page := report.Paginate(groups, q.Page, q.PageSize)
	response.Paginated(w, page, response.NewPagination(q.Page, q.PageSize, len(groups)), map[string]any{
		"sort":  q.Sort,
		"stats": processStats,
	})
}
