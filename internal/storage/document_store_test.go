package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse/internal/models"
)

// in-memory object store scoped to this package's tests (testutil would
// import storage back).
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	loadErr error
}

func newMemStore() *memStore { return &memStore{objects: make(map[string][]byte)} }

func (m *memStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	data, ok := m.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (m *memStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func TestDocumentStore_SnapshotMissingIsNilNil(t *testing.T) {
	ds := NewDocumentStore(newMemStore())

	snapshot, err := ds.LoadSnapshot(context.Background(), "wdw")

	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestDocumentStore_SnapshotRoundTrip(t *testing.T) {
	ds := NewDocumentStore(newMemStore())
	ctx := context.Background()

	in := &models.DestinationSnapshot{
		ID:          "d1",
		Name:        "Test Resort",
		Slug:        "wdw",
		LastUpdated: 1000,
		Parks: map[string]*models.ParkSnapshot{
			"p1": {ID: "p1", Name: "First Park", LiveData: map[string]*models.AttractionRecord{}},
		},
	}
	require.NoError(t, ds.SaveSnapshot(ctx, in))

	out, err := ds.LoadSnapshot(ctx, "wdw")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.LastUpdated, out.LastUpdated)
	assert.Contains(t, out.Parks, "p1")
}

func TestDocumentStore_SnapshotReadErrorPropagates(t *testing.T) {
	ms := newMemStore()
	ms.loadErr = errors.New("access denied")
	ds := NewDocumentStore(ms)

	_, err := ds.LoadSnapshot(context.Background(), "wdw")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDocumentStore_SnapshotCorruptDocument(t *testing.T) {
	ms := newMemStore()
	ms.objects["destinations/wdw.json"] = []byte("not json")
	ds := NewDocumentStore(ms)

	_, err := ds.LoadSnapshot(context.Background(), "wdw")

	assert.Error(t, err)
}

func TestDocumentStore_UserRoundTrip(t *testing.T) {
	ds := NewDocumentStore(newMemStore())
	ctx := context.Background()

	in := models.NewUserRecord("u1")
	require.NoError(t, ds.SaveUser(ctx, in))

	out, err := ds.LoadUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "u1", out.UID)
	assert.Equal(t, models.BaseFavs, out.MaxFavs.Num)
}

func TestDocumentStore_UserMissingIsNilNil(t *testing.T) {
	ds := NewDocumentStore(newMemStore())

	record, err := ds.LoadUser(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Nil(t, record)
}
