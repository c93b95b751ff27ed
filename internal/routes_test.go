package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse/internal/controllers"
	"parkpulse/internal/models"
	"parkpulse/internal/storage"
	"parkpulse/internal/structures"
	"parkpulse/internal/testutil"
)

// --- minimal mocks for routes test ---

type routeTestCache struct{}

func (m *routeTestCache) Get(_ string) ([]byte, bool) { return nil, false }
func (m *routeTestCache) Set(_ string, _ []byte)      {}

type routeTestUserService struct{}

func (m *routeTestUserService) Get(_ context.Context, _ string) (*models.UserRecord, error) {
	return nil, nil
}
func (m *routeTestUserService) Create(_ context.Context, _ string) (*models.UserRecord, error) {
	return nil, nil
}
func (m *routeTestUserService) Replace(_ context.Context, _ *models.UserRecord) (*models.UserRecord, error) {
	return nil, nil
}
func (m *routeTestUserService) AddFavorite(_ context.Context, _, _, _, _ string) (*models.UserRecord, error) {
	return nil, nil
}
func (m *routeTestUserService) RemoveFavorite(_ context.Context, _, _ string) (*models.UserRecord, error) {
	return nil, nil
}

func routeTestController() *controllers.ApiController {
	conf := &structures.Config{}
	store := storage.NewDocumentStore(testutil.NewMockObjectStore())
	return controllers.NewApiController(conf, &testutil.MockLogger{}, &routeTestUserService{}, store, &routeTestCache{})
}

func TestInitRoutes_RegistersSevenRoutes(t *testing.T) {
	router := InitRoutes(routeTestController(), &structures.Config{})
	routes := router.GetRoutes()

	require.Len(t, routes, 7)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Contains(t, urls, "/destinations")
	assert.Contains(t, urls, "/destination")
	assert.Contains(t, urls, "/user")
	assert.Contains(t, urls, "/user/create")
	assert.Contains(t, urls, "/user/update")
	assert.Contains(t, urls, "/user/favorite")
	assert.Contains(t, urls, "/user/unfavorite")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	router := InitRoutes(routeTestController(), &structures.Config{})
	routes := router.GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}

	// GET /destinations with POST should fail
	req := httptest.NewRequest(http.MethodPost, "/destinations", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// POST /user/create with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/user/create", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
