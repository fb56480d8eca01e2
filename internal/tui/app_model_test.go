package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-tin-keeper/internal/adapter"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/mock"
	"github.com/MKhiriev/go-tin-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCountries = []models.CountryInfo{
	{Code: "DE", Name: "Germany"},
	{Code: "IT", Name: "Italy"},
}

func newTestModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)

	m := newAppModel(context.Background(), a, models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123"), logger.Nop())
	m.now = func() time.Time { return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC) }
	m.readClipboard = func() (string, error) { return "", errors.New("no clipboard") }
	m.writeClipboard = func(string) error { return errors.New("no clipboard") }
	return m, a
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(appModel)
	require.True(t, ok)
	return result, cmd
}

// runCmd executes cmd and flattens batches. Only use it on commands that do
// not sleep (no blink or status timers).
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func loadedModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	m, a := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = update(t, m, countriesLoadedMsg{countries: testCountries})
	return m, a
}

func inputModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	m, a := loadedModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenInput, m.currentScreen)
	return m, a
}

// ── loading ──

// TestAppModel_CountriesLoaded verifies the list is filled from the server.
func TestAppModel_CountriesLoaded(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().Countries(gomock.Any()).Return(testCountries, nil)

	msgs := runCmd(m.cmdLoadCountries())
	require.Len(t, msgs, 1)

	m, _ = update(t, m, msgs[0])
	assert.False(t, m.loading)
	assert.Len(t, m.countries.Items(), 2)
	assert.False(t, m.showError)
}

// TestAppModel_CountriesLoadError verifies an unreachable server is reported
// in the error overlay.
func TestAppModel_CountriesLoadError(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m, _ = update(t, m, countriesLoadedMsg{err: adapter.ErrUnavailable})
	assert.False(t, m.loading)
	assert.True(t, m.showError)
	assert.Equal(t, "No network or the server is unavailable", m.errorMessage)
	assert.Contains(t, m.View(), "No network or the server is unavailable")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

// TestAppModel_VersionLoaded verifies the server version reaches the about box.
func TestAppModel_VersionLoaded(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "v9.9.9", Commit: "fff"}, nil)

	msgs := runCmd(m.cmdLoadVersion())
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])
	require.NotNil(t, m.server)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "v9.9.9")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

// TestAppModel_VersionError verifies a missing server version is not fatal.
func TestAppModel_VersionError(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, versionLoadedMsg{err: adapter.ErrNotFound})
	assert.Nil(t, m.server)
	assert.False(t, m.showError)
}

// ── navigation ──

// TestAppModel_SelectCountry verifies enter on the list opens the TIN input
// for the highlighted country and esc returns to the list.
func TestAppModel_SelectCountry(t *testing.T) {
	m, _ := inputModel(t)
	assert.Equal(t, "DE", m.country.Code)
	assert.True(t, m.input.Focused())
	assert.Contains(t, m.View(), "VALIDATE TIN: DE Germany")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenCountries, m.currentScreen)
	assert.False(t, m.input.Focused())
}

// TestAppModel_Quit verifies ctrl+c quits from any screen.
func TestAppModel_Quit(t *testing.T) {
	m, _ := inputModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── validation ──

// TestAppModel_Validate verifies the typed TIN is sent for the selected
// country and the result lands in the history.
func TestAppModel_Validate(t *testing.T) {
	m, a := inputModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("26954371827")})
	assert.Equal(t, "26954371827", m.input.Value())

	a.EXPECT().
		Validate(gomock.Any(), models.ValidationRequest{TIN: "26954371827", Country: "DE"}).
		Return(models.ValidationResult{TIN: "********827", Country: "DE", Valid: true}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.validating)
	assert.Contains(t, m.View(), "Validating...")

	var validated *validatedMsg
	for _, msg := range runCmd(cmd) {
		if v, ok := msg.(validatedMsg); ok {
			validated = &v
		}
	}
	require.NotNil(t, validated)

	m, _ = update(t, m, *validated)
	assert.False(t, m.validating)
	require.NotNil(t, m.result)
	assert.True(t, m.result.Valid)
	require.Equal(t, 1, m.history.len())
	assert.Equal(t, "********827", m.history.entries[0].tin)
	assert.Contains(t, m.View(), "********827")
}

// TestAppModel_ValidateError verifies adapter errors open the error overlay
// without touching the history.
func TestAppModel_ValidateError(t *testing.T) {
	m, _ := inputModel(t)

	m, _ = update(t, m, validatedMsg{
		request: models.ValidationRequest{TIN: "1", Country: "DE"},
		err:     adapter.ErrUnknownCountry,
	})
	assert.True(t, m.showError)
	assert.Equal(t, "The server has no validator for this country", m.errorMessage)
	assert.Equal(t, 0, m.history.len())
	assert.Nil(t, m.result)
}

// TestAppModel_ClearHistory verifies ctrl+l drops the session history.
func TestAppModel_ClearHistory(t *testing.T) {
	m, _ := inputModel(t)
	m, _ = update(t, m, validatedMsg{result: models.ValidationResult{TIN: "**3", Country: "DE"}})
	require.Equal(t, 1, m.history.len())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, 0, m.history.len())
	assert.Nil(t, m.result)
}

// ── clipboard ──

// TestAppModel_Paste verifies ctrl+v replaces the input with the trimmed
// clipboard content.
func TestAppModel_Paste(t *testing.T) {
	m, _ := inputModel(t)
	m.readClipboard = func() (string, error) { return "  DMLPRY77D15H501F\n", nil }

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	m, _ = update(t, m, msgs[0])
	assert.Equal(t, "DMLPRY77D15H501F", m.input.Value())
}

// TestAppModel_PasteUnavailable verifies a clipboard failure only sets the
// status line.
func TestAppModel_PasteUnavailable(t *testing.T) {
	m, _ := inputModel(t)

	m, cmd := update(t, m, pastedMsg{err: errors.New("no xclip")})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Clipboard is unavailable", m.status)
	assert.Empty(t, m.input.Value())

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

// TestAppModel_CopyResult verifies ctrl+y copies the unstyled last result.
func TestAppModel_CopyResult(t *testing.T) {
	m, _ := inputModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd, "nothing to copy before the first validation")

	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	m, _ = update(t, m, validatedMsg{result: models.ValidationResult{TIN: "********827", Country: "DE", Valid: false}})

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, "DE ********827: invalid", copied)

	m, _ = update(t, m, msgs[0])
	assert.Equal(t, "Copied!", m.status)
}
