package models

// EntityTypeAttraction is the only entity type the merge consumes. Shows,
// restaurants and other entities in a live response are discarded upstream
// of the merge, not inside it.
const EntityTypeAttraction = "ATTRACTION"

// LiveReading is one entity's state in a live response.
type LiveReading struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	EntityType  string `json:"entityType"`
	Status      string `json:"status"`
	Queue       *Queue `json:"queue"`
	LastUpdated string `json:"lastUpdated"`
}

// LiveResponse is the body of GET /v1/entity/{parkId}/live.
type LiveResponse struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Slug       string        `json:"slug"`
	EntityType string        `json:"entityType"`
	Timezone   string        `json:"timezone"`
	LiveData   []LiveReading `json:"liveData"`
}

// Attractions returns the readings filtered to attraction entities.
func (r *LiveResponse) Attractions() []LiveReading {
	out := make([]LiveReading, 0, len(r.LiveData))
	for _, reading := range r.LiveData {
		if reading.EntityType == EntityTypeAttraction {
			out = append(out, reading)
		}
	}
	return out
}
