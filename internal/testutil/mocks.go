package testutil

import (
	"context"
	"sync"
	"time"

	"parkpulse/internal/models"
	"parkpulse/internal/providers"
	"parkpulse/internal/storage"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCompressor passes data through unchanged.
type MockCompressor struct{}

func (m *MockCompressor) Compress(val []byte) ([]byte, error)   { return val, nil }
func (m *MockCompressor) Decompress(val []byte) ([]byte, error) { return val, nil }
func (m *MockCompressor) Close()                                {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    int
	CacheHits   int
	CacheMisses int
	Syncs       map[string]int
	FetchErrors map[string]int
	StoreErrors map[string]int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncSyncsTotal(slug string, _ bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Syncs == nil {
		m.Syncs = make(map[string]int)
	}
	m.Syncs[slug]++
}
func (m *MockMetrics) ObserveSyncDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncFetchErrors(parkID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchErrors == nil {
		m.FetchErrors = make(map[string]int)
	}
	m.FetchErrors[parkID]++
}
func (m *MockMetrics) IncStoreErrors(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErrors == nil {
		m.StoreErrors = make(map[string]int)
	}
	m.StoreErrors[op]++
}
func (m *MockMetrics) SetAttractionsTotal(_ string, _ int) {}

// MockObjectStore is an in-memory object store with per-key error injection.
type MockObjectStore struct {
	mu        sync.Mutex
	Objects   map[string][]byte
	LoadErr   map[string]error
	SaveErr   map[string]error
	SaveCalls []string
	LoadCalls []string
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{Objects: make(map[string][]byte)}
}

func (m *MockObjectStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls = append(m.LoadCalls, key)
	if err, ok := m.LoadErr[key]; ok {
		return nil, err
	}
	data, ok := m.Objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *MockObjectStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, key)
	if err, ok := m.SaveErr[key]; ok {
		return err
	}
	m.Objects[key] = append([]byte(nil), data...)
	return nil
}

// MockLiveClient serves canned live responses per park id.
type MockLiveClient struct {
	mu         sync.Mutex
	Responses  map[string]*models.LiveResponse
	Errs       map[string]error
	FetchCalls []string
}

func (m *MockLiveClient) FetchPark(_ context.Context, parkID string) (*models.LiveResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls = append(m.FetchCalls, parkID)
	if err, ok := m.Errs[parkID]; ok {
		return nil, err
	}
	if resp, ok := m.Responses[parkID]; ok {
		return resp, nil
	}
	return &models.LiveResponse{ID: parkID}, nil
}
