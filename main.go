package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salespulse-report-service/internal/config"
	"salespulse-report-service/internal/dataset"
	httpapi "salespulse-report-service/internal/http"
	"salespulse-report-service/internal/logger"
	"salespulse-report-service/internal/report"
	"salespulse-report-service/internal/storage"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	excluded, err := report.ParseHourSet(cfg.ExcludedHours)
	if err != nil {
		log.Fatal("invalid EXCLUDED_HOURS", zap.String("value", cfg.ExcludedHours), zap.Error(err))
	}

	closed := report.ClosedHours{}
	if cfg.ClosedHoursPath != "" {
		table, err := report.LoadClosedHours(cfg.ClosedHoursPath)
		if err != nil {
			if os.IsNotExist(err) {
				log.Warn("closed hours config missing; no hours filtered", zap.String("path", cfg.ClosedHoursPath))
			} else {
				log.Fatal("closed hours config failed", zap.Error(err))
			}
		} else {
			closed = table
			log.Info("closed hours loaded", zap.String("path", cfg.ClosedHoursPath), zap.Int("stores", len(table)))
		}
	}

	var objects *storage.ObjectStore
	if cfg.ObjectStoreConfigured() {
		objects, err = storage.NewObjectStore(ctx, storage.Config{
			Endpoint:        cfg.ObjectStoreEndpoint,
			Region:          cfg.ObjectStoreRegion,
			AccessKeyID:     cfg.ObjectStoreAccessKeyID,
			SecretAccessKey: cfg.ObjectStoreSecretAccessKey,
			Bucket:          cfg.ObjectStoreBucket,
		})
		if err != nil {
			log.Fatal("object store init failed", zap.Error(err))
		}
		log.Info("object store enabled", zap.String("bucket", cfg.ObjectStoreBucket))
	}

	data := dataset.NewStore()
	loadInitialDataset(ctx, log, cfg, objects, data)

	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(data, objects, log, cfg, closed, excluded),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("report api ready", zap.String("base", "/api"))
		log.Info("report service listening", zap.String("addr", cfg.HTTPAddr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxShutdown); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
}

// loadInitialDataset tries the configured source at boot. A failed load is
// not fatal: the service starts empty and serves "no data" until a reload or
// upload succeeds.
func loadInitialDataset(ctx context.Context, log *zap.Logger, cfg config.Config, objects *storage.ObjectStore, data *dataset.Store) {
	var (
		payload []byte
		source  string
		err     error
	)

	switch {
	case objects != nil:
		source = "object-store:" + cfg.ObjectStoreDatasetKey
		payload, err = objects.Fetch(ctx, cfg.ObjectStoreDatasetKey)
	case cfg.DatasetPath != "":
		source = "file:" + cfg.DatasetPath
		payload, err = os.ReadFile(cfg.DatasetPath)
	default:
		log.Info("no dataset source configured; starting empty")
		return
	}

	if err != nil {
		log.Warn("initial dataset load failed; starting empty", zap.String("source", source), zap.Error(err))
		return
	}

	raws, err := dataset.DecodeJSON(payload)
	if err != nil {
		log.Warn("initial dataset decode failed; starting empty", zap.String("source", source), zap.Error(err))
		return
	}

	data.Replace(raws, source)
	_, cleanReport := report.CleanRows(raws)
	log.Info("dataset loaded",
		zap.String("source", source),
		zap.Int("rows", len(raws)),
		zap.Int("invalid", cleanReport.InvalidCount),
	)
}
