package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-tin-keeper/internal/adapter"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenCountries screen = iota
	screenInput
)

const (
	tinCharLimit = 64
	// room taken by appStyle padding and the help line under the list
	listHorizontalMargin = 4
	listVerticalMargin   = 4
)

type appModel struct {
	ctx       context.Context
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	countries     list.Model
	input         textinput.Model
	spinner       spinner.Model

	loading    bool
	validating bool
	country    models.CountryInfo
	result     *models.ValidationResult
	history    history
	server     *models.VersionResponse
	status     string

	showBuildInfo bool
	showError     bool
	errorMessage  string

	now            func() time.Time
	readClipboard  func() (string, error)
	writeClipboard func(string) error
}

func newAppModel(ctx context.Context, a adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	countries := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	countries.Title = "Select a country"
	countries.DisableQuitKeybindings()

	input := textinput.New()
	input.CharLimit = tinCharLimit
	input.Prompt = "TIN> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return appModel{
		ctx:            ctx,
		adapter:        a,
		buildInfo:      buildInfo,
		logger:         log,
		currentScreen:  screenCountries,
		countries:      countries,
		input:          input,
		spinner:        sp,
		loading:        true,
		history:        newHistory(defaultHistoryLimit),
		now:            time.Now,
		readClipboard:  clipboard.ReadAll,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadCountries(), m.cmdLoadVersion(), m.spinner.Tick)
}

func (m appModel) busy() bool {
	return m.loading || m.validating
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorMessage = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.countries.SetSize(msg.Width-listHorizontalMargin, msg.Height-listVerticalMargin)
		m.input.Width = msg.Width - listHorizontalMargin - len(m.input.Prompt)
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case countriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("failed to load countries")
			m.showErrorf(humanizeServerError(msg.err))
			return m, nil
		}
		return m, m.countries.SetItems(toListItems(msg.countries))
	case versionLoadedMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("server version unavailable")
			return m, nil
		}
		version := msg.version
		m.server = &version
		return m, nil
	case validatedMsg:
		m.validating = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("country", msg.request.Country).Msg("validation failed")
			m.showErrorf(humanizeServerError(msg.err))
			return m, nil
		}
		result := msg.result
		m.result = &result
		m.history.add(result, m.now())
		return m, nil
	case pastedMsg:
		if msg.err != nil {
			m.status = "Clipboard is unavailable"
			return m, cmdClearStatus()
		}
		m.input.SetValue(strings.TrimSpace(msg.text))
		m.input.CursorEnd()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Clipboard is unavailable"
		} else {
			m.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenCountries:
		return m.updateCountries(msg)
	case screenInput:
		return m.updateInput(msg)
	}

	return m, nil
}

func (m appModel) updateCountries(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.countries.FilterState() != list.Filtering {
		if key.Matches(keyMsg, keys.enter) {
			item, ok := m.countries.SelectedItem().(countryItem)
			if !ok {
				return m, nil
			}
			m.country = item.info
			m.result = nil
			m.currentScreen = screenInput
			m.input.Reset()
			m.input.Placeholder = "TIN for " + item.info.Name
			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.countries, cmd = m.countries.Update(msg)
	return m, cmd
}

func (m appModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.input.Blur()
			m.currentScreen = screenCountries
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.validating {
				return m, nil
			}
			m.validating = true
			m.result = nil
			req := models.ValidationRequest{TIN: m.input.Value(), Country: m.country.Code}
			return m, tea.Batch(m.cmdValidate(req), m.spinner.Tick)
		case key.Matches(keyMsg, keys.paste):
			return m, m.cmdPaste()
		case key.Matches(keyMsg, keys.copy):
			if m.result == nil {
				return m, nil
			}
			return m, m.cmdCopy(plainResult(*m.result))
		case key.Matches(keyMsg, keys.clear):
			m.history.clear()
			m.result = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenCountries:
		body = m.viewCountries()
	case screenInput:
		body = m.viewInput()
	}

	if m.showBuildInfo {
		body += "\n\n" + renderBuildInfoWindow(m.buildInfo, m.server)
	}
	if m.showError {
		body += "\n\n" + overlayBoxStyle.Render(errorStyle.Render("Error")+"\n\n"+m.errorMessage+"\n\nenter / esc: close")
	}

	return appStyle.Render(body)
}

func (m appModel) viewCountries() string {
	if m.loading {
		return m.spinner.View() + " Loading countries..."
	}
	return m.countries.View() + "\n" + helpStyle.Render("enter: select  /: filter  ctrl+b: about  ctrl+c: quit")
}

func (m appModel) viewInput() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.validating:
		b.WriteString(m.spinner.View())
		b.WriteString(" Validating...")
	case m.result != nil:
		b.WriteString(formatResult(*m.result))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	b.WriteString("\n\n")
	b.WriteString(renderHistory(m.history))

	title := "VALIDATE TIN: " + m.country.Code + " " + m.country.Name
	return renderPage(title, b.String(), "enter: validate  ctrl+v: paste  ctrl+y: copy result  ctrl+l: clear history  ctrl+b: about  esc: countries")
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorMessage = message
}
