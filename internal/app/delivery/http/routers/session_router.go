package routers

import (
	"esveikata-finder/internal/app/delivery/http/controllers"
	"esveikata-finder/internal/app/delivery/http/middlewares"
	"esveikata-finder/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, finderController *controllers.FinderController) {
	sessionPath := fmt.Sprintf("/{%s}", constvars.URLParamSessionID)

	router.Post("/", finderController.CreateSession)
	router.Route(sessionPath, func(r chi.Router) {
		r.Get("/", finderController.GetSession)
		r.Delete("/", finderController.DeleteSession)
		r.Put("/query", finderController.UpdateQuery)
		r.Put("/selection", finderController.SelectSpecialist)
		r.Post("/search", finderController.SearchNow)
		r.Put("/timed-search", finderController.ToggleTimedSearch)
	})
}
