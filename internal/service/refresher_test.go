package service

import (
	"testing"

	"digital-reception-api/internal/config"
)

func TestStatsRefresherRestart(t *testing.T) {
	cfg := &config.RefresherConfig{IntervalMinutes: 60}
	r := NewStatsRefresher(cfg, newFakeStore(), nil)

	if err := r.Start(); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	if !r.IsRunning() {
		t.Fatalf("refresher should be running after Start")
	}
	if err := r.Start(); err == nil {
		t.Fatalf("second Start while running should fail")
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if r.IsRunning() {
		t.Fatalf("refresher should not be running after Stop")
	}
}

func TestStatsRefresherRunOnce(t *testing.T) {
	cfg := &config.RefresherConfig{IntervalMinutes: 60}
	store := newFakeStore()
	r := NewStatsRefresher(cfg, store, nil)

	// RunOnce works without Start; gauges are skipped when metrics are absent.
	r.RunOnce()
	r.Wait()
}
