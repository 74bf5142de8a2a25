package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	"salespulse-report-service/internal/dataset"
	"salespulse-report-service/internal/report"
	"salespulse-report-service/pkg/response"

	"go.uber.org/zap"
)

// DatasetUpload ingests a spreadsheet (field "file", .xlsx or legacy .xls)
// into the snapshot. mode=merge (default) keeps existing store/day/hour
// groups untouched and only adds new ones; mode=replace discards the current
// snapshot first.
func (h *Handler) DatasetUpload(w http.ResponseWriter, r *http.Request) {
	data, filename, ferr := h.readUploadedFile(r, "file")
	if ferr != nil {
		response.Error(w, ferr.status, ferr.code, ferr.message)
		return
	}

	raws, err := dataset.ParseSpreadsheet(data, filename)
	if err != nil {
		h.respondDatasetError(w, err, "spreadsheet parse failed")
		return
	}

	mode := strings.TrimSpace(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = "merge"
	}

	var merged dataset.MergeReport
	switch mode {
	case "replace":
		h.Data.Replace(raws, "upload:"+filename)
		merged = dataset.MergeReport{Added: len(raws)}
	case "merge":
		merged = h.Data.Merge(raws, "upload:"+filename)
	default:
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "mode must be 'merge' or 'replace'")
		return
	}

	_, cleanReport := report.CleanRows(raws)
	h.Logger.Info("dataset upload",
		zap.String("file", filename),
		zap.String("mode", mode),
		zap.Int("rows", len(raws)),
		zap.Int("added", merged.Added),
		zap.Int("skipped", merged.Skipped),
		zap.Int("invalid", cleanReport.InvalidCount),
	)

	response.Success(w, map[string]any{
		"file":       filename,
		"mode":       mode,
		"parsedRows": len(raws),
		"added":      merged.Added,
		"skipped":    merged.Skipped,
		"validation": cleanReport,
	})
}

// DatasetReload re-fetches the configured JSON source and replaces the
// snapshot. A failed fetch aborts only this attempt; the previous snapshot
// stays in place.
func (h *Handler) DatasetReload(w http.ResponseWriter, r *http.Request) {
	data, source, err := h.fetchConfiguredDataset(r)
	if err != nil {
		h.Logger.Error("dataset reload failed", zap.String("source", source), zapError(err))
		response.Error(w, http.StatusBadGateway, "DATASET_FETCH_FAILED", "Failed to load the dataset source")
		return
	}

	raws, err := dataset.DecodeJSON(data)
	if err != nil {
		h.respondDatasetError(w, err, "dataset decode failed")
		return
	}

	h.Data.Replace(raws, source)
	_, cleanReport := report.CleanRows(raws)
	h.Logger.Info("dataset reloaded",
		zap.String("source", source),
		zap.Int("rows", len(raws)),
		zap.Int("invalid", cleanReport.InvalidCount),
	)

	response.Success(w, map[string]any{
		"source":     source,
		"rawRows":    len(raws),
		"validation": cleanReport,
	})
}

func (h *Handler) fetchConfiguredDataset(r *http.Request) ([]byte, string, error) {
	if h.Objects != nil {
		key := h.Config.ObjectStoreDatasetKey
		data, err := h.Objects.Fetch(r.Context(), key)
		return data, "object-store:" + key, err
	}
	if h.Config.DatasetPath != "" {
		data, err := os.ReadFile(h.Config.DatasetPath)
		return data, "file:" + h.Config.DatasetPath, err
	}
	return nil, "", errors.New("no dataset source configured (DATASET_PATH or object store)")
}

func (h *Handler) respondDatasetError(w http.ResponseWriter, err error, logMessage string) {
	var derr *dataset.Error
	if errors.As(err, &derr) {
		response.Error(w, derr.StatusCode, string(derr.Code), derr.Message)
		return
	}
	h.Logger.Error(logMessage, zapError(err))
	response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process dataset")
}

type uploadError struct {
	status  int
	code    string
	message string
}

func (h *Handler) readUploadedFile(r *http.Request, field string) ([]byte, string, *uploadError) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", &uploadError{status: http.StatusBadRequest, code: "FILE_REQUIRED", message: "File is required"}
	}
	defer file.Close()

	maxBytes := h.Config.MaxFileSizeBytes
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, "", &uploadError{status: http.StatusBadRequest, code: "FILE_READ_FAILED", message: "Failed to read uploaded file"}
	}
	if int64(len(data)) > maxBytes {
		return nil, "", &uploadError{status: http.StatusRequestEntityTooLarge, code: "FILE_TOO_LARGE", message: "Uploaded file exceeds the size limit"}
	}
	return data, header.Filename, nil
}
