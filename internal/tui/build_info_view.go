// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-tin-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, server *models.VersionResponse) string {
	var b strings.Builder

	b.WriteString("Application: go-tin-keeper client\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")

	b.WriteString("Server version: ")
	if server == nil {
		b.WriteString("N/A")
	} else {
		b.WriteString(valueOrNA(server.Version))
		b.WriteString(" (")
		b.WriteString(valueOrNA(server.Commit))
		b.WriteString(")")
	}

	return overlayBoxStyle.Render(renderPage("ABOUT", b.String(), "esc: back"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
