package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"digital-reception-api/internal/config"
	"digital-reception-api/internal/metrics"
)

// StatsRefresher periodically recomputes the subscriber gauges from the
// store. It never touches the mailer; failed sends are a manual follow-up,
// not a scheduled retry.
type StatsRefresher struct {
	cron      *cron.Cron
	entryID   cron.EntryID
	config    *config.RefresherConfig
	store     SubscriberStore
	metrics   *metrics.Metrics
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.RWMutex
}

// NewStatsRefresher creates a new stats refresher
func NewStatsRefresher(cfg *config.RefresherConfig, store SubscriberStore, m *metrics.Metrics) *StatsRefresher {
	ctx, cancel := context.WithCancel(context.Background())

	return &StatsRefresher{
		cron:    cron.New(cron.WithSeconds()),
		config:  cfg,
		store:   store,
		metrics: m,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start starts the refresher
func (r *StatsRefresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return fmt.Errorf("stats refresher is already running")
	}

	schedule := fmt.Sprintf("0 */%d * * * *", r.config.IntervalMinutes)

	entryID, err := r.cron.AddFunc(schedule, r.refresh)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	r.entryID = entryID
	r.cron.Start()
	r.isRunning = true

	logrus.Infof("Stats refresher started with interval: %d minutes", r.config.IntervalMinutes)
	return nil
}

// Stop stops the refresher
func (r *StatsRefresher) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return nil
	}

	r.cancel()

	ctx := r.cron.Stop()
	select {
	case <-ctx.Done():
		logrus.Info("Stats refresher stopped gracefully")
	case <-time.After(30 * time.Second):
		logrus.Warn("Stats refresher stop timeout, forcing shutdown")
	}

	r.isRunning = false
	return nil
}

// IsRunning returns whether the refresher is running
func (r *StatsRefresher) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRunning
}

// RunOnce refreshes the gauges immediately (for manual triggering)
func (r *StatsRefresher) RunOnce() {
	r.refresh()
}

// GetNextRun returns the time of the next scheduled run
func (r *StatsRefresher) GetNextRun() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.isRunning {
		return time.Time{}
	}
	return r.cron.Entry(r.entryID).Next
}

// GetLastRun returns the time of the last run
func (r *StatsRefresher) GetLastRun() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.isRunning {
		return time.Time{}
	}
	return r.cron.Entry(r.entryID).Prev
}

// Wait waits for any in-flight refresh to finish
func (r *StatsRefresher) Wait() {
	r.wg.Wait()
}

func (r *StatsRefresher) refresh() {
	r.wg.Add(1)
	defer r.wg.Done()

	stats, err := r.store.Stats(r.ctx)
	if err != nil {
		logrus.Errorf("Failed to refresh subscriber stats: %v", err)
		return
	}

	if r.metrics != nil {
		r.metrics.TotalSubscribers.Set(float64(stats.Total))
		r.metrics.SentBrochures.Set(float64(stats.Sent))
		r.metrics.PendingBrochures.Set(float64(stats.Pending))
	}

	logrus.Debugf("Subscriber stats refreshed: total=%d sent=%d pending=%d", stats.Total, stats.Sent, stats.Pending)
}
