package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"smokeguard-server/internal/infra/async"
	"sync"

	"github.com/robfig/cron/v3"
)

const DefaultCacheSyncSchedule = "@every 10m"

type CacheSyncSchedule string

func NewCacheSyncWorker(
	sensors SensorRepository,
	cache SensorStateCache,
	schedule CacheSyncSchedule,
) (*CacheSyncWorker, error) {
	if schedule == "" {
		schedule = DefaultCacheSyncSchedule
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(string(schedule)); err != nil {
		return nil, fmt.Errorf("parsing cache sync schedule %q: %w", schedule, err)
	}

	return &CacheSyncWorker{
		sensors:  sensors,
		cache:    cache,
		schedule: schedule,
		scheduler: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}, nil
}

var _ async.Worker = &CacheSyncWorker{}

// CacheSyncWorker loads every stored sensor into the cache at start and
// again on each tick of the schedule. Entries changed after the table was
// read are kept.
type CacheSyncWorker struct {
	sensors   SensorRepository
	cache     SensorStateCache
	schedule  CacheSyncSchedule
	scheduler *cron.Cron
	stopOnce  sync.Once
}

func (w *CacheSyncWorker) Run(ctx context.Context, done func()) {
	slog.Debug("cache sync worker started", slog.String("schedule", string(w.schedule)))
	defer done()

	w.Sync(ctx)

	_, err := w.scheduler.AddFunc(string(w.schedule), func() { w.Sync(ctx) })
	if err != nil {
		slog.Error("scheduling cache sync", slog.String("error", err.Error()))
		return
	}

	w.scheduler.Start()
	<-ctx.Done()
	w.Shutdown()
	slog.Warn("cache sync worker cancelled")
}

func (w *CacheSyncWorker) Sync(ctx context.Context) int {
	sensors, err := w.sensors.FindAllSensors(ctx)
	if err != nil {
		slog.Error("loading sensors for cache sync", slog.String("error", err.Error()))
		return 0
	}

	for _, sensor := range sensors {
		w.cache.Seed(ctx, sensor)
	}

	slog.Debug("sensor cache synchronized", slog.Int("count", len(sensors)))
	return len(sensors)
}

func (w *CacheSyncWorker) Shutdown() {
	w.stopOnce.Do(func() {
		<-w.scheduler.Stop().Done()
	})
}
