package main

import (
	"context"
	"esveikata-finder/internal/app/assembly"
	"esveikata-finder/internal/app/config"
	"esveikata-finder/internal/app/delivery/http/controllers"
	"esveikata-finder/internal/app/delivery/http/middlewares"
	"esveikata-finder/internal/app/delivery/http/routers"
	"esveikata-finder/internal/app/drivers/database"
	"esveikata-finder/internal/app/drivers/logger"
	"esveikata-finder/internal/app/drivers/messaging"
	"esveikata-finder/internal/app/services/core/finder"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, zapLogger)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, zapLogger)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap, accessLogger)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, accessLogger *logrus.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	assembled, err := assembly.NewFinder(bootstrap, registry)
	if err != nil {
		return err
	}

	// Sessions
	sessionManager, err := finder.NewSessionManager(
		assembled.Dependencies,
		assembled.Settings,
		time.Duration(bootstrap.InternalConfig.App.SessionIdleTimeoutInMinutes)*time.Minute,
		time.Duration(bootstrap.InternalConfig.App.SessionJanitorIntervalSeconds)*time.Second,
	)
	if err != nil {
		return err
	}
	bootstrap.SessionsStop = sessionManager.Stop
	bootstrap.SchedulerStop = assembled.Scheduler.Stop

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		AccessLog:      accessLogger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Controllers
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	specialistController := controllers.NewSpecialistController(bootstrap.Logger, sessionManager, requestTimeout)
	finderController := controllers.NewFinderController(bootstrap.Logger, sessionManager, requestTimeout)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		specialistController,
		finderController,
	)
	return nil
}
