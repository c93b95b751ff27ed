package livedata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse/internal/models"
	"parkpulse/internal/structures"
)

func newTestClient(baseURL string) ClientInterface {
	return NewClient(&structures.Config{
		LiveData: structures.LiveDataConfig{
			BaseURL: baseURL,
			Timeout: 2 * time.Second,
		},
	})
}

func TestFetchPark_DecodesLiveResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/entity/p1/live", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "p1",
			"name": "First Park",
			"slug": "first-park",
			"entityType": "PARK",
			"timezone": "America/New_York",
			"liveData": [
				{"id":"a1","name":"Coaster","entityType":"ATTRACTION","status":"OPERATING","queue":{"STANDBY":{"waitTime":20}},"lastUpdated":"2026-08-30T12:00:00Z"},
				{"id":"s1","name":"Parade","entityType":"SHOW","status":"OPERATING"}
			]
		}`))
	}))
	defer srv.Close()

	live, err := newTestClient(srv.URL).FetchPark(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", live.ID)
	assert.Equal(t, "America/New_York", live.Timezone)
	require.Len(t, live.LiveData, 2)

	attractions := live.Attractions()
	require.Len(t, attractions, 1)
	assert.Equal(t, "a1", attractions[0].ID)
	require.NotNil(t, attractions[0].Queue.Standby)
	assert.Equal(t, 20, *attractions[0].Queue.Standby.WaitTime)
	assert.Equal(t, models.StatusOperating, attractions[0].Status)
}

func TestFetchPark_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchPark(context.Background(), "p1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "p1")
}

func TestFetchPark_MalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchPark(context.Background(), "p1")

	assert.Error(t, err)
}

func TestFetchPark_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).FetchPark(ctx, "p1")

	assert.Error(t, err)
}

func TestFetchPark_TrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/entity/p1/live", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"p1"}`))
	}))
	defer srv.Close()

	live, err := newTestClient(srv.URL+"/").FetchPark(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", live.ID)
}
