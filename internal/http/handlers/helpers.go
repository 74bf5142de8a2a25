package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"salespulse-report-service/internal/report"
)

type handlerError struct {
	message string
}

func (e *handlerError) Error() string {
	return e.message
}

// reportQuery is the filter state a dashboard view sends along: which slice
// of the grouped result it wants to look at. Everything is optional.
type reportQuery struct {
	Store    string
	Day      string
	From     string
	To       string
	Sort     string
	Bucket   string
	Page     int
	PageSize int
}

func (h *Handler) parseReportQuery(r *http.Request) (reportQuery, error) {
	query := r.URL.Query()

	q := reportQuery{
		Store:    strings.TrimSpace(query.Get("store")),
		Day:      strings.TrimSpace(query.Get("day")),
		From:     strings.TrimSpace(query.Get("from")),
		To:       strings.TrimSpace(query.Get("to")),
		Sort:     strings.TrimSpace(query.Get("sort")),
		Bucket:   strings.TrimSpace(query.Get("bucket")),
		Page:     1,
		PageSize: h.Config.DefaultPageSize,
	}

	if q.From != "" {
		if _, ok := report.ParseDate(q.From); !ok {
			return q, &handlerError{message: "Invalid 'from' date"}
		}
	}
	if q.To != "" {
		if _, ok := report.ParseDate(q.To); !ok {
			return q, &handlerError{message: "Invalid 'to' date"}
		}
	}

	switch q.Sort {
	case "", report.SortLowest:
		q.Sort = report.SortLowest
	case report.SortHighest:
	default:
		return q, &handlerError{message: "sort must be 'lowest' or 'highest'"}
	}

	switch q.Bucket {
	case "", report.BucketHour:
		q.Bucket = report.BucketHour
	case report.BucketDay:
	default:
		return q, &handlerError{message: "bucket must be 'hour' or 'day'"}
	}

	if value := query.Get("page"); value != "" {
		page, err := strconv.Atoi(value)
		if err != nil || page < 1 {
			return q, &handlerError{message: "page must be a positive integer"}
		}
		q.Page = page
	}
	if value := query.Get("pageSize"); value != "" {
		size, err := strconv.Atoi(value)
		if err != nil || size < 1 || size > 500 {
			return q, &handlerError{message: "pageSize must be between 1 and 500"}
		}
		q.PageSize = size
	}

	return q, nil
}

// groupsInView runs the pipeline over the current snapshot and applies the
// view's store/day slice. Every request recomputes from the raw snapshot;
// there is no cached derived state to invalidate.
func (h *Handler) groupsInView(q reportQuery) ([]report.Grouped, report.ProcessStats) {
	raws, _ := h.Data.Snapshot()
	result := report.Process(raws, h.Closed, q.From, q.To)
	groups := report.FilterByStore(result.Groups, q.Store)
	groups = report.FilterByDay(groups, q.Day)
	return groups, result.Stats
}
