package tui

import "github.com/MKhiriev/go-tin-keeper/models"

type countriesLoadedMsg struct {
	countries []models.CountryInfo
	err       error
}

type versionLoadedMsg struct {
	version models.VersionResponse
	err     error
}

type validatedMsg struct {
	request models.ValidationRequest
	result  models.ValidationResult
	err     error
}

type pastedMsg struct {
	text string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
