package tui

import (
	"time"

	"github.com/MKhiriev/go-tin-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

func (m appModel) cmdLoadCountries() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		countries, err := a.Countries(ctx)
		return countriesLoadedMsg{countries: countries, err: err}
	}
}

func (m appModel) cmdLoadVersion() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		version, err := a.Version(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func (m appModel) cmdValidate(req models.ValidationRequest) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		result, err := a.Validate(ctx, req)
		return validatedMsg{request: req, result: result, err: err}
	}
}

func (m appModel) cmdPaste() tea.Cmd {
	read := m.readClipboard
	return func() tea.Msg {
		text, err := read()
		return pastedMsg{text: text, err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
