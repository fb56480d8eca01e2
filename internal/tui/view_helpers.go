package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tin-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const historyTimeLayout = "15:04:05"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// verdict renders the outcome word used by the result line and history.
func verdict(valid bool) string {
	if valid {
		return validStyle.Render("valid")
	}
	return invalidStyle.Render("invalid")
}

func formatResult(r models.ValidationResult) string {
	return fmt.Sprintf("%s %s: %s", r.Country, r.TIN, verdict(r.Valid))
}

// plainResult is formatResult without styling, for the clipboard.
func plainResult(r models.ValidationResult) string {
	word := "invalid"
	if r.Valid {
		word = "valid"
	}
	return fmt.Sprintf("%s %s: %s", r.Country, r.TIN, word)
}

func renderHistory(h history) string {
	if h.len() == 0 {
		return helpStyle.Render("no validations yet")
	}

	valid, invalid := h.counts()
	var b strings.Builder
	fmt.Fprintf(&b, "History (%d valid, %d invalid)\n", valid, invalid)
	for _, e := range h.entries {
		fmt.Fprintf(&b, "%s  %s %s  %s\n", e.at.Format(historyTimeLayout), e.country, fitText(e.tin, 24), verdict(e.valid))
	}
	return strings.TrimRight(b.String(), "\n")
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
