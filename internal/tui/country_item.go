package tui

import (
	"github.com/MKhiriev/go-tin-keeper/models"
	"github.com/charmbracelet/bubbles/list"
)

type countryItem struct {
	info models.CountryInfo
}

func (i countryItem) Title() string       { return i.info.Code }
func (i countryItem) Description() string { return i.info.Name }
func (i countryItem) FilterValue() string { return i.info.Code + " " + i.info.Name }

func toListItems(countries []models.CountryInfo) []list.Item {
	items := make([]list.Item, 0, len(countries))
	for _, c := range countries {
		items = append(items, countryItem{info: c})
	}
	return items
}
