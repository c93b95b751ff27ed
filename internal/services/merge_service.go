package services

import (
	"parkpulse/internal/models"
	"parkpulse/internal/structures"
)

// ParkBatch is the outcome of one park's live-data fetch. A failed fetch
// carries its error here instead of aborting the destination's merge; the
// park's section of the snapshot is then left untouched for this cycle.
type ParkBatch struct {
	ParkID string
	Live   *models.LiveResponse
	Err    error
}

// MergeDestination merges fresh per-park readings into prev and returns the
// resulting snapshot. It is deterministic given identical inputs: no clock
// reads, no randomness, no external state. prev may be nil on the first run
// for a slug; identity fields then come from the static descriptor.
//
// prev is treated as owned by the caller's current run and is mutated in
// place; callers must not alias it across concurrent merges.
func MergeDestination(dest *structures.DestinationConfig, prev *models.DestinationSnapshot, batches []ParkBatch, now int64) *models.DestinationSnapshot {
	snap := prev
	if snap == nil {
		snap = &models.DestinationSnapshot{
			ID:   dest.ID,
			Name: dest.Name,
			Slug: dest.Slug,
		}
	}
	if snap.Parks == nil {
		snap.Parks = make(map[string]*models.ParkSnapshot)
	}

	for _, batch := range batches {
		if batch.Err != nil || batch.Live == nil {
			continue
		}
		mergePark(snap, batch.ParkID, batch.Live, now)
	}

	snap.LastUpdated = now
	return snap
}

func mergePark(snap *models.DestinationSnapshot, parkID string, live *models.LiveResponse, now int64) {
	park, ok := snap.Parks[parkID]
	if !ok {
		park = &models.ParkSnapshot{
			ID:         parkID,
			Name:       live.Name,
			Slug:       live.Slug,
			EntityType: live.EntityType,
			Timezone:   live.Timezone,
			LiveData:   make(map[string]*models.AttractionRecord),
		}
		snap.Parks[parkID] = park
	} else {
		// Descriptive fields track upstream; id/slug/entityType stay fixed.
		park.Name = live.Name
		park.Timezone = live.Timezone
		if park.LiveData == nil {
			park.LiveData = make(map[string]*models.AttractionRecord)
		}
	}

	for _, reading := range live.Attractions() {
		if reading.ID == "" {
			continue
		}
		entry := models.HistoryEntry{Time: now, Queue: reading.Queue, Status: reading.Status}

		record, ok := park.LiveData[reading.ID]
		if !ok {
			// Also covers rides added to a park after its snapshot was
			// created: fall back to the create path for that one record.
			park.LiveData[reading.ID] = &models.AttractionRecord{
				ID:          reading.ID,
				Name:        reading.Name,
				Status:      reading.Status,
				Queue:       reading.Queue,
				LastUpdated: reading.LastUpdated,
				History:     []models.HistoryEntry{entry},
			}
			continue
		}

		record.Name = reading.Name
		record.Status = reading.Status
		record.Queue = reading.Queue
		record.LastUpdated = reading.LastUpdated
		record.AppendHistory(entry)
	}
}

// CountAttractions returns the number of attraction records across all parks.
func CountAttractions(snap *models.DestinationSnapshot) int {
	total := 0
	for _, park := range snap.Parks {
		total += len(park.LiveData)
	}
	return total
}
