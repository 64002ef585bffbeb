package routers

import (
	"esveikata-finder/internal/app/delivery/http/controllers"
	"esveikata-finder/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSpecialistRoutes(router chi.Router, middlewares *middlewares.Middlewares, specialistController *controllers.SpecialistController) {
	router.Get("/", specialistController.FindAll)
}
