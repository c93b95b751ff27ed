package models

// HistoryLimit bounds the per-attraction history log. At a five minute sync
// interval 72 entries cover the trailing six hours.
const HistoryLimit = 72

// HistoryEntry is one timestamped capture of an attraction's state. Entries
// are append-only and never mutated after creation.
type HistoryEntry struct {
	Time   int64  `json:"time"`
	Queue  *Queue `json:"queue"`
	Status string `json:"status"`
}

type AttractionRecord struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      string         `json:"status"`
	Queue       *Queue         `json:"queue"`
	LastUpdated string         `json:"lastUpdated"`
	History     []HistoryEntry `json:"history"`
}

// AppendHistory appends e at the tail and drops entries from the front when
// the log exceeds HistoryLimit, keeping the most recent entries.
func (a *AttractionRecord) AppendHistory(e HistoryEntry) {
	a.History = append(a.History, e)
	if len(a.History) > HistoryLimit {
		a.History = a.History[len(a.History)-HistoryLimit:]
	}
}

type ParkSnapshot struct {
	ID         string                       `json:"id"`
	Name       string                       `json:"name"`
	Slug       string                       `json:"slug"`
	EntityType string                       `json:"entityType"`
	Timezone   string                       `json:"timezone"`
	LiveData   map[string]*AttractionRecord `json:"liveData"`
}

// DestinationSnapshot is the persisted per-destination document. Identity
// fields (id/name/slug) come from static configuration and are immutable
// after creation. Parks are add-only: a merge never removes one.
type DestinationSnapshot struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Slug        string                   `json:"slug"`
	LastUpdated int64                    `json:"lastUpdated"`
	Parks       map[string]*ParkSnapshot `json:"parks"`
}
