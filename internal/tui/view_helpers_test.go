package tui

import (
	"testing"

	"github.com/MKhiriev/go-tin-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderPage(t *testing.T) {
	out := renderPage("TITLE", "line one\nline two", "enter: go")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "  line one\n  line two\n")
	assert.Contains(t, out, "enter: go")
	assert.Contains(t, out, "ctrl+c: quit")

	assert.Contains(t, renderPage("EMPTY", " ", ""), "  -\n")
}

func TestPlainResult(t *testing.T) {
	assert.Equal(t, "IT *************01F: valid", plainResult(models.ValidationResult{Country: "IT", TIN: "*************01F", Valid: true}))
	assert.Equal(t, "DE ***: invalid", plainResult(models.ValidationResult{Country: "DE", TIN: "***"}))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestRenderBuildInfoWindow(t *testing.T) {
	out := renderBuildInfoWindow(models.NewAppBuildInfo("v1.0.0", "", "abc"), nil)
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "Date: N/A")
	assert.Contains(t, out, "Server version: N/A")
}
