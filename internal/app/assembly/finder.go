package assembly

import (
	"esveikata-finder/internal/app/config"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/app/services/core/directory"
	"esveikata-finder/internal/app/services/core/finder"
	"esveikata-finder/internal/app/services/esveikata"
	"esveikata-finder/internal/app/services/shared/metrics"
	"esveikata-finder/internal/app/services/shared/notifier"
	"esveikata-finder/internal/app/services/shared/redis"
	"esveikata-finder/internal/app/services/shared/scheduler"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Finder holds the assembled finder collaborators.
type Finder struct {
	Dependencies finder.Dependencies
	Settings     finder.Settings
	Scheduler    contracts.Scheduler
}

// NewFinder wires the portal clients, directory cache, scheduler, notifier
// and metrics from b. Redis and RabbitMQ are used when b carries a
// connection and replaced by in-process fallbacks otherwise. A nil reg
// disables metrics.
func NewFinder(b *config.Bootstrap, reg prometheus.Registerer) (*Finder, error) {
	internalConfig := b.InternalConfig

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return nil, err
	}

	var finderMetrics *metrics.FinderMetrics
	if reg != nil {
		finderMetrics = metrics.NewFinderMetrics(reg)
	}

	requester := esveikata.NewRequester(internalConfig.Esveikata, b.Logger)
	if finderMetrics != nil {
		requester.Observe = finderMetrics.ObserveRemoteRequest
	}

	var redisRepository contracts.RedisRepository
	if b.Redis != nil {
		redisRepository = redis.NewRedisRepository(b.Redis)
	} else {
		redisRepository = redis.NewMemoryRepository()
	}

	directoryUsecase := directory.NewDirectoryUsecase(
		esveikata.NewSpecialistClient(requester),
		esveikata.NewInstitutionClient(requester),
		redisRepository,
		time.Duration(internalConfig.App.DirectoryCacheTTLInMinutes)*time.Minute,
		internalConfig.App.MinQueryLength,
		b.Logger,
	)

	slotNotifier, err := notifier.NewSlotNotifier(b.RabbitMQ, internalConfig.RabbitMQ.NotificationQueue, b.Logger)
	if err != nil {
		return nil, err
	}

	cronScheduler := scheduler.NewCronScheduler(b.Logger)

	return &Finder{
		Dependencies: finder.Dependencies{
			Directory:  directoryUsecase,
			SlotClient: esveikata.NewAppointmentSlotClient(requester),
			Scheduler:  cronScheduler,
			Notifier:   slotNotifier,
			Metrics:    finderMetrics,
			Log:        b.Logger,
		},
		Settings: finder.Settings{
			Period:         time.Duration(internalConfig.App.SearchFrequencyInMinutes) * time.Minute,
			WindowMonths:   internalConfig.App.SearchWindowMonths,
			PageSize:       internalConfig.App.SlotPageSize,
			Location:       location,
			BookingBaseURL: internalConfig.Esveikata.BaseUrl,
		},
		Scheduler: cronScheduler,
	}, nil
}
