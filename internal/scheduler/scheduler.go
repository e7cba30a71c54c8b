package scheduler

import (
	"context"
	"sync"
	"time"

	"faucet/backend/internal/logger"
	"faucet/backend/internal/repository"
	"faucet/backend/internal/service"
)

// Scheduler periodically retries ledger writes for disbursements that
// confirmed on-chain but could not be recorded at claim time.
type Scheduler struct {
	journal    *service.ReconcileJournal
	claims     repository.ClaimRepository
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current reconcile pass
	mu         sync.Mutex         // protects cancelFunc
}

func New(journal *service.ReconcileJournal, claims repository.ClaimRepository, interval time.Duration) *Scheduler {
	return &Scheduler{
		journal:  journal,
		claims:   claims,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("reconciliation scheduler started", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	// Cancel any in-flight pass first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("reconciliation scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.reconcile()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) reconcile() {
	if s.journal.Pending() == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if err := s.journal.Flush(ctx, s.claims); err != nil {
		if ctx.Err() != nil {
			logger.Info("reconcile pass cancelled")
			return
		}
		logger.Error("reconcile pass", "error", err, "pending", s.journal.Pending())
		return
	}
	logger.Info("reconcile pass completed")
}
