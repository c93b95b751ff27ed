package syncer

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"parkpulse/internal/providers"
	"parkpulse/internal/services"
	"parkpulse/internal/structures"
	"parkpulse/internal/syncer/interfaces"
)

// Scheduler triggers the sync cycle on a fixed interval. opsMu keeps a slow
// cycle from overlapping with the next tick; destinations within one cycle
// are still synced independently.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.SyncServiceInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Sync.Interval), func() {
		s.RunOnce()
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunOnce synchronizes every configured destination once.
func (s *Scheduler) RunOnce() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeSync, "Syncing %d destinations...", len(s.config.Destinations))
	s.service.SyncAll(context.Background())
	s.logger.Infof(providers.TypeSync, "Sync cycle finished")
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.SyncServiceInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
	}
}
