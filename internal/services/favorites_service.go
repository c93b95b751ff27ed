package services

import (
	"errors"

	"parkpulse/internal/models"
)

// ErrCapacity reports that a user's favorites list is full. The record is
// never mutated when it is returned.
var ErrCapacity = errors.New("favorites capacity reached")

// NormalizeRecord prunes expired capacity grants, recomputes the allowed
// favorite count and truncates the favorites list to it. Returns true when
// the record changed and needs to be persisted; a no-op read stays a no-op
// write. The truncation runs on every read even when it drops a favorite
// added under a grant that just expired — long-standing behavior clients
// depend on.
func NormalizeRecord(record *models.UserRecord, now int64) bool {
	changed := false

	kept := record.MaxFavs.ExpirationStack[:0]
	for _, grant := range record.MaxFavs.ExpirationStack {
		if grant.Expiration >= now {
			kept = append(kept, grant)
		} else {
			changed = true
		}
	}
	record.MaxFavs.ExpirationStack = kept

	num := models.BaseFavs + models.FavsPerGrant*len(kept)
	if record.MaxFavs.Num != num {
		record.MaxFavs.Num = num
		changed = true
	}

	if len(record.Favs) > num {
		record.Favs = record.Favs[:num]
		changed = true
	}

	return changed
}

// AddFavorite appends a favorite when capacity allows. Callers must
// normalize the record first so the capacity check runs against the
// current count, not a stale stored one.
func AddFavorite(record *models.UserRecord, destID, parkID, attractionID string, now int64) error {
	if len(record.Favs) >= record.MaxFavs.Num {
		return ErrCapacity
	}
	record.Favs = append(record.Favs, models.Favorite{
		DestID: destID,
		ParkID: parkID,
		ID:     attractionID,
		Added:  now,
	})
	return nil
}

// RemoveFavorite drops the first favorite with the given attraction id.
// Returns false (record untouched) when no entry matches.
func RemoveFavorite(record *models.UserRecord, attractionID string) bool {
	for i, fav := range record.Favs {
		if fav.ID == attractionID {
			record.Favs = append(record.Favs[:i], record.Favs[i+1:]...)
			return true
		}
	}
	return false
}
