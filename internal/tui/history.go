package tui

import (
	"time"

	"github.com/MKhiriev/go-tin-keeper/models"
)

const defaultHistoryLimit = 20

type historyEntry struct {
	country string
	tin     string
	valid   bool
	at      time.Time
}

// history keeps the results of the current session, newest first. TINs are
// stored masked, the way the server returns them.
type history struct {
	entries []historyEntry
	limit   int
}

func newHistory(limit int) history {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return history{limit: limit}
}

func (h *history) add(result models.ValidationResult, at time.Time) {
	entry := historyEntry{country: result.Country, tin: result.TIN, valid: result.Valid, at: at}
	h.entries = append([]historyEntry{entry}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

func (h *history) clear() {
	h.entries = nil
}

func (h history) len() int {
	return len(h.entries)
}

// counts returns how many kept entries were valid and invalid.
func (h history) counts() (valid, invalid int) {
	for _, e := range h.entries {
		if e.valid {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}
