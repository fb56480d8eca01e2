package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tin-keeper/internal/adapter"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
)

// ErrInvalidApp is returned by [NewApp] when a dependency is missing.
var ErrInvalidApp = errors.New("client app requires an adapter and a ui")

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(a adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if a == nil || ui == nil {
		return nil, ErrInvalidApp
	}
	return &App{adapter: a, ui: ui, logger: logger}, nil
}

// Run probes the server version, runs the UI and closes the adapter. An
// unreachable server is only logged: the UI reports it to the user itself.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.adapter.Close(); closeErr != nil {
			a.logger.Error().Err(closeErr).Msg("failed to close server adapter")
			err = errors.Join(err, closeErr)
		}
	}()

	if version, vErr := a.adapter.Version(ctx); vErr != nil {
		a.logger.Warn().Err(vErr).Msg("server version probe failed")
	} else {
		a.logger.Info().Str("server_version", version.Version).Str("server_commit", version.Commit).Msg("connected to server")
	}

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
