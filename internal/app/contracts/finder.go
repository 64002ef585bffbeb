package contracts

import (
	"context"
	"esveikata-finder/internal/pkg/dto/responses"
)

type FinderUsecase interface {
	FindSpecialists(ctx context.Context, query string) ([]responses.Specialist, error)
	CreateSession(ctx context.Context) (*responses.Session, error)
	GetSession(ctx context.Context, sessionID string) (*responses.Session, error)
	UpdateQuery(ctx context.Context, sessionID, query string) (*responses.Session, error)
	SelectSpecialist(ctx context.Context, sessionID, specialistID string) (*responses.Session, error)
	SearchNow(ctx context.Context, sessionID string) (*responses.Session, error)
	ToggleTimedSearch(ctx context.Context, sessionID string) (*responses.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
