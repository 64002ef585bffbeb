package contracts

import (
	"context"
	"esveikata-finder/internal/app/models"
)

type DirectoryUsecase interface {
	Specialists(ctx context.Context) ([]models.Specialist, error)
	Institutions(ctx context.Context) ([]models.Institution, error)
	// FilterSpecialists returns nil when the query is shorter than the
	// configured minimum length, and an empty slice when nothing matches.
	FilterSpecialists(ctx context.Context, query string) ([]models.Specialist, error)
	// MunicipalityOf returns an empty ID when the specialist's institution
	// is unknown.
	MunicipalityOf(ctx context.Context, specialist models.Specialist) (models.ID, error)
}
