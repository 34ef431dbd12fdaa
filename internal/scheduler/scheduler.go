// Package scheduler runs the optional periodic price refresh.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/casecollector/Case-Collector-Backend/internal/service"
)

// Scheduler triggers a price refresh on a cron schedule. Refreshes that
// overlap an in-flight one are collapsed by the refresh service, so a slow
// upstream cannot stack fetches.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler firing RefreshPrices on the given cron spec.
func New(spec string, refreshService *service.RefreshService) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Printf("scheduled price refresh starting")
		if _, err := refreshService.RefreshPrices(); err != nil {
			log.Printf("scheduled price refresh failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

// Start begins firing the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels the schedule and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
