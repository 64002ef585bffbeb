package contracts

import (
	"context"
	"esveikata-finder/internal/app/models"
)

type SpecialistClient interface {
	FindAll(ctx context.Context) ([]models.Specialist, error)
}

type InstitutionClient interface {
	FindAll(ctx context.Context) ([]models.Institution, error)
}

type AppointmentSlotClient interface {
	Search(ctx context.Context, query models.SlotQuery) ([]models.AppointmentSlot, error)
}
