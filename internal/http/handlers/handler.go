package handlers

import (
	"salespulse-report-service/internal/config"
	"salespulse-report-service/internal/dataset"
	"salespulse-report-service/internal/report"
	"salespulse-report-service/internal/storage"

	"go.uber.org/zap"
)

type Handler struct {
	Data     *dataset.Store
	Objects  *storage.ObjectStore
	Logger   *zap.Logger
	Config   config.Config
	Closed   report.ClosedHours
	Excluded report.HourSet
}

func zapError(err error) zap.Field {
	return zap.Error(err)
}
