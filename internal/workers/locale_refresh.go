package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
)

// LocaleRefreshWorker periodically reloads the locale-code set from storage,
// so edits made by another replica reach this process.
type LocaleRefreshWorker struct {
	service  service.LocaleCodeService
	interval time.Duration
	logger   *logger.Logger
}

// NewLocaleRefreshWorker returns nil when interval is not positive, which
// NewWorkers skips.
func NewLocaleRefreshWorker(svc service.LocaleCodeService, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		logger.Debug().Msg("locale code refresh disabled")
		return nil
	}

	return &LocaleRefreshWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
	}
}

// Run reloads on every tick until ctx is cancelled. Reload failures are
// logged and retried on the next tick.
func (w *LocaleRefreshWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("locale code refresh started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("locale code refresh stopped")
			return nil
		case <-ticker.C:
			if err := w.service.Reload(w.logger.WithContext(ctx)); err != nil {
				w.logger.Err(err).Msg("locale code refresh failed")
			}
		}
	}
}
