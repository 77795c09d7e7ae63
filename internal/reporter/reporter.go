// Package reporter periodically publishes projection statistics to the
// event bus so operators can watch usage without polling the API.
package reporter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SandiaExe/LogicaDifusa/internal/events"
	"github.com/SandiaExe/LogicaDifusa/internal/store"
)

type Reporter struct {
	store    store.Store
	events   events.Client
	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a reporter. The events client may be nil; stats are then
// only logged.
func New(s store.Store, ec events.Client, interval time.Duration, logger *slog.Logger) *Reporter {
	return &Reporter{
		store:    s,
		events:   ec,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

func (r *Reporter) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.loop(ctx)
}

func (r *Reporter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *Reporter) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.publish(ctx)
		}
	}
}

func (r *Reporter) publish(ctx context.Context) {
	stats, err := r.store.GetStats(ctx)
	if err != nil {
		r.logger.Warn("failed to read projection stats", "error", err)
		return
	}

	ev := events.StatsEvent{
		Total:             stats.Total,
		LowCount:          stats.LowCount,
		ModerateCount:     stats.ModerateCount,
		HighCount:         stats.HighCount,
		UndefinedCount:    stats.UndefinedCount,
		AvgSuccessPercent: stats.AvgSuccessPercent,
	}

	if r.events != nil {
		if err := r.events.Publish(events.SubjectStats, ev); err != nil {
			r.logger.Warn("failed to publish stats event", "error", err)
			return
		}
	}
	r.logger.Info("projection stats",
		"total", stats.Total,
		"low", stats.LowCount,
		"moderate", stats.ModerateCount,
		"high", stats.HighCount,
		"undefined", stats.UndefinedCount,
	)
}
