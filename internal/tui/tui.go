// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the TIN client. It
// lists the countries the server supports, validates TINs typed or pasted by
// the user and keeps an in-memory history of the session.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tin-keeper/internal/adapter"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(a adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	return &TUI{adapter: a, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.adapter, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if result, ok := finalModel.(appModel); ok {
		valid, invalid := result.history.counts()
		t.logger.Info().Int("valid", valid).Int("invalid", invalid).Msg("session finished")
	}
	return nil
}
