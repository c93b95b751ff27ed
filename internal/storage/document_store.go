package storage

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"parkpulse/internal/models"
)

// DocumentStore is the typed layer over the object store: one JSON document
// per destination slug and one per user id. Saves are full overwrites; the
// store gives last-writer-wins semantics per key and nothing stronger.
type DocumentStore struct {
	store ObjectStoreInterface
}

func NewDocumentStore(store ObjectStoreInterface) *DocumentStore {
	return &DocumentStore{store: store}
}

func snapshotKey(slug string) string { return "destinations/" + slug + ".json" }
func userKey(uid string) string      { return "users/" + uid + ".json" }

// LoadSnapshot returns (nil, nil) when no snapshot exists for slug yet —
// the expected first-run condition. Any other failure is a read error.
func (ds *DocumentStore) LoadSnapshot(ctx context.Context, slug string) (*models.DestinationSnapshot, error) {
	data, err := ds.store.Load(ctx, snapshotKey(slug))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot %s: %w", slug, err)
	}

	var snapshot models.DestinationSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", slug, err)
	}
	return &snapshot, nil
}

func (ds *DocumentStore) SaveSnapshot(ctx context.Context, snapshot *models.DestinationSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snapshot.Slug, err)
	}
	if err := ds.store.Save(ctx, snapshotKey(snapshot.Slug), data); err != nil {
		return fmt.Errorf("save snapshot %s: %w", snapshot.Slug, err)
	}
	return nil
}

// LoadUser returns (nil, nil) when no record exists for uid.
func (ds *DocumentStore) LoadUser(ctx context.Context, uid string) (*models.UserRecord, error) {
	data, err := ds.store.Load(ctx, userKey(uid))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user %s: %w", uid, err)
	}

	var record models.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", uid, err)
	}
	return &record, nil
}

func (ds *DocumentStore) SaveUser(ctx context.Context, record *models.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode user %s: %w", record.UID, err)
	}
	if err := ds.store.Save(ctx, userKey(record.UID), data); err != nil {
		return fmt.Errorf("save user %s: %w", record.UID, err)
	}
	return nil
}
