package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// SessionsStop if set will be called during Shutdown to close finder
	// sessions and stop their timers
	SessionsStop func()
	// SchedulerStop if set will be called during Shutdown after sessions are closed
	SchedulerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SessionsStop != nil {
		b.SessionsStop()
		log.Println("Successfully closed finder sessions")
	}

	if b.SchedulerStop != nil {
		b.SchedulerStop()
		log.Println("Successfully stopped scheduler")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	err := b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
