package main

import (
	"context"
	"esveikata-finder/internal/app/assembly"
	"esveikata-finder/internal/app/config"
	"esveikata-finder/internal/app/drivers/database"
	"esveikata-finder/internal/app/drivers/logger"
	"esveikata-finder/internal/app/drivers/messaging"
)

type app struct {
	bootstrap *config.Bootstrap
	finder    *assembly.Finder
}

func newApp() (*app, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewConsoleLogger(driverConfig)

	bootstrap := &config.Bootstrap{
		Redis:          database.NewRedisClient(driverConfig, log),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig, log),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	assembled, err := assembly.NewFinder(bootstrap, nil)
	if err != nil {
		bootstrap.Shutdown(context.Background())
		return nil, err
	}
	bootstrap.SchedulerStop = assembled.Scheduler.Stop

	return &app{bootstrap: bootstrap, finder: assembled}, nil
}

func (a *app) close() {
	a.bootstrap.Shutdown(context.Background())
}
