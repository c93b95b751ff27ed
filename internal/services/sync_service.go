package services

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/atomic"

	"parkpulse/internal/livedata"
	"parkpulse/internal/providers"
	"parkpulse/internal/storage"
	"parkpulse/internal/structures"
)

type SyncServiceInterface interface {
	SyncAll(ctx context.Context)
	SyncDestination(ctx context.Context, dest *structures.DestinationConfig) error
	LastSync() int64
	ErrorCount() int64
}

// SyncService runs the fetch-merge-persist cycle. Each destination owns one
// snapshot document; runs for different destinations are independent, and a
// failed destination never stops the others.
type SyncService struct {
	conf    *structures.Config
	client  livedata.ClientInterface
	store   *storage.DocumentStore
	logger  providers.Logger
	metrics providers.MetricsProviderInterface

	lastSync  atomic.Int64
	errorSeen atomic.Int64
}

func NewSyncService(conf *structures.Config, client livedata.ClientInterface, store *storage.DocumentStore, logger providers.Logger, metrics providers.MetricsProviderInterface) SyncServiceInterface {
	return &SyncService{
		conf:    conf,
		client:  client,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *SyncService) SyncAll(ctx context.Context) {
	for i := range s.conf.Destinations {
		dest := &s.conf.Destinations[i]
		if err := s.SyncDestination(ctx, dest); err != nil {
			s.errorSeen.Inc()
			s.metrics.IncSyncsTotal(dest.Slug, false)
			s.logger.Errorf(providers.TypeSync, "Sync failed for %s: %s", dest.Slug, err)
			continue
		}
		s.metrics.IncSyncsTotal(dest.Slug, true)
	}
	s.lastSync.Store(time.Now().UnixMilli())
}

// SyncDestination loads the prior snapshot, fetches all parks concurrently,
// merges and persists. A read failure aborts before any fetch; a park fetch
// failure is scoped to that park; a write failure is fatal for this run and
// left to the next scheduled cycle to heal.
func (s *SyncService) SyncDestination(ctx context.Context, dest *structures.DestinationConfig) error {
	start := time.Now()

	prev, err := s.store.LoadSnapshot(ctx, dest.Slug)
	if err != nil {
		s.metrics.IncStoreErrors("load")
		return err
	}

	batches := s.fetchParks(ctx, dest)
	for _, batch := range batches {
		if batch.Err != nil {
			s.metrics.IncFetchErrors(batch.ParkID)
			s.logger.Warnf(providers.TypeSync, "Skipping park %s for %s: %s", batch.ParkID, dest.Slug, batch.Err)
		}
	}

	next := MergeDestination(dest, prev, batches, time.Now().UnixMilli())

	if err := s.store.SaveSnapshot(ctx, next); err != nil {
		s.metrics.IncStoreErrors("save")
		return err
	}

	s.metrics.SetAttractionsTotal(dest.Slug, CountAttractions(next))
	s.metrics.ObserveSyncDuration(dest.Slug, time.Since(start))
	s.logger.Infof(providers.TypeSync, "Synced %s: %d parks, %d attractions", dest.Slug, len(next.Parks), CountAttractions(next))
	return nil
}

// fetchParks runs all park fetches concurrently and waits for every one;
// a slow or failing park never blocks its siblings' results.
func (s *SyncService) fetchParks(ctx context.Context, dest *structures.DestinationConfig) []ParkBatch {
	p := pool.NewWithResults[ParkBatch]()
	for _, park := range dest.Parks {
		parkID := park.ID
		p.Go(func() ParkBatch {
			live, err := s.client.FetchPark(ctx, parkID)
			return ParkBatch{ParkID: parkID, Live: live, Err: err}
		})
	}
	return p.Wait()
}

func (s *SyncService) LastSync() int64 {
	return s.lastSync.Load()
}

func (s *SyncService) ErrorCount() int64 {
	return s.errorSeen.Load()
}
