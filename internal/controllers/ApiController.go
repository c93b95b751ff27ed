package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"parkpulse/internal/models"
	"parkpulse/internal/providers"
	"parkpulse/internal/services"
	"parkpulse/internal/storage"
	"parkpulse/internal/structures"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	conf   *structures.Config
	logger providers.Logger
	users  services.UserServiceInterface
	store  *storage.DocumentStore
	cache  providers.CacheProviderInterface
}

func NewApiController(conf *structures.Config, logger providers.Logger, users services.UserServiceInterface, store *storage.DocumentStore, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		conf:   conf,
		logger: logger,
		users:  users,
		store:  store,
		cache:  cache,
	}
}

// bodyEnvelope matches the client contract: every success payload is
// wrapped in a "body" field.
type bodyEnvelope struct {
	Body any `json:"body"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if result == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetDestinations lists the configured destination descriptors.
func (ac *ApiController) GetDestinations(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "destinations", func() (any, error) {
		return ac.conf.Destinations, nil
	})
}

// GetDestination serves the persisted snapshot for one destination slug.
// Responses are cached for roughly one sync interval.
func (ac *ApiController) GetDestination(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if ac.conf.Destination(slug) == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	ac.serveFromCacheOrCompute(w, "dest:"+slug, func() (any, error) {
		snapshot, err := ac.store.LoadSnapshot(r.Context(), slug)
		if err != nil {
			ac.logger.Errorf(providers.TypeGet, "Snapshot read failed for %s: %s", slug, err)
			return nil, err
		}
		if snapshot == nil {
			return nil, nil
		}
		return snapshot, nil
	})
}

// GetUser fetches a user record, normalizing favorites capacity as a side
// effect. Not-found and store failures both surface as a generic non-200;
// the client contract does not distinguish them.
func (ac *ApiController) GetUser(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	record, err := ac.users.Get(r.Context(), uid)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, bodyEnvelope{Body: record})
}

type createUserRequest struct {
	UID string `json:"uid"`
}

func (ac *ApiController) CreateUser(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	record, err := ac.users.Create(r.Context(), payload.UID)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, bodyEnvelope{Body: record})
}

// UpdateUser replaces the stored record wholesale and echoes it back.
func (ac *ApiController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var record models.UserRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	saved, err := ac.users.Replace(r.Context(), &record)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, bodyEnvelope{Body: saved})
}

type favoriteRequest struct {
	UID    string `json:"uid"`
	DestID string `json:"destId"`
	ParkID string `json:"parkId"`
	ID     string `json:"id"`
}

func (ac *ApiController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	record, err := ac.users.AddFavorite(r.Context(), payload.UID, payload.DestID, payload.ParkID, payload.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			http.Error(w, "Bad Request", http.StatusBadRequest)
		case errors.Is(err, services.ErrCapacity):
			writeJSON(w, http.StatusConflict, errorEnvelope{Error: err.Error()})
		default:
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, bodyEnvelope{Body: record})
}

func (ac *ApiController) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	record, err := ac.users.RemoveFavorite(r.Context(), payload.UID, payload.ID)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, bodyEnvelope{Body: record})
}
