package routers

import (
	"esveikata-finder/internal/app/config"
	"esveikata-finder/internal/app/delivery/http/controllers"
	"esveikata-finder/internal/app/delivery/http/middlewares"
	"esveikata-finder/internal/pkg/constvars"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	metricsHandler http.Handler,
	specialistController *controllers.SpecialistController,
	finderController *controllers.FinderController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	if middlewares.AccessLog != nil {
		router.Use(middlewares.RequestLogger)
	}
	router.Use(middlewares.ErrorHandler)

	if metricsHandler != nil {
		router.Method(constvars.MethodGet, constvars.MetricsPath, metricsHandler)
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/specialists", func(r chi.Router) {
				attachSpecialistRoutes(r, middlewares, specialistController)
			})

			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, finderController)
			})
		})
	})
}
