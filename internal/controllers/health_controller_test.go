package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse/internal/structures"
)

type mockSyncStatus struct {
	lastSync int64
	errors   int64
}

func (m *mockSyncStatus) SyncAll(_ context.Context) {}
func (m *mockSyncStatus) SyncDestination(_ context.Context, _ *structures.DestinationConfig) error {
	return nil
}
func (m *mockSyncStatus) LastSync() int64   { return m.lastSync }
func (m *mockSyncStatus) ErrorCount() int64 { return m.errors }

func TestHealth_ReportsSyncState(t *testing.T) {
	hc := NewHealthController(testConf(), &mockSyncStatus{lastSync: 1234, errors: 2})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Status       string `json:"status"`
		Destinations int    `json:"destinations"`
		LastSync     int64  `json:"last_sync"`
		SyncErrors   int64  `json:"sync_errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Destinations)
	assert.Equal(t, int64(1234), resp.LastSync)
	assert.Equal(t, int64(2), resp.SyncErrors)
}

func TestHealth_RejectsNonGet(t *testing.T) {
	hc := NewHealthController(testConf(), &mockSyncStatus{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m5s", formatDuration(5*time.Second))
	assert.Equal(t, "1h1m1s", formatDuration(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "25h0m0s", formatDuration(25*time.Hour))
}
