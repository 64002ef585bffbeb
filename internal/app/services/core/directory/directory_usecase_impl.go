package directory

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/exceptions"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type directoryUsecase struct {
	SpecialistClient  contracts.SpecialistClient
	InstitutionClient contracts.InstitutionClient
	RedisRepository   contracts.RedisRepository
	CacheTTL          time.Duration
	MinQueryLength    int
	Log               *zap.Logger
	group             singleflight.Group
}

func NewDirectoryUsecase(
	specialistClient contracts.SpecialistClient,
	institutionClient contracts.InstitutionClient,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	minQueryLength int,
	logger *zap.Logger,
) contracts.DirectoryUsecase {
	return &directoryUsecase{
		SpecialistClient:  specialistClient,
		InstitutionClient: institutionClient,
		RedisRepository:   redisRepository,
		CacheTTL:          cacheTTL,
		MinQueryLength:    minQueryLength,
		Log:               logger,
	}
}

func (uc *directoryUsecase) Specialists(ctx context.Context) ([]models.Specialist, error) {
	var specialists []models.Specialist
	err := loadCached(ctx, uc, constvars.RedisKeySpecialists, constvars.ResourceSpecialists, constvars.LoggingSpecialistCount, &specialists, func(ctx context.Context) (interface{}, int, error) {
		fetched, err := uc.SpecialistClient.FindAll(ctx)
		return fetched, len(fetched), err
	})
	if err != nil {
		return nil, err
	}
	return specialists, nil
}

func (uc *directoryUsecase) Institutions(ctx context.Context) ([]models.Institution, error) {
	var institutions []models.Institution
	err := loadCached(ctx, uc, constvars.RedisKeyInstitutions, constvars.ResourceInstitutions, constvars.LoggingInstitutionCount, &institutions, func(ctx context.Context) (interface{}, int, error) {
		fetched, err := uc.InstitutionClient.FindAll(ctx)
		return fetched, len(fetched), err
	})
	if err != nil {
		return nil, err
	}
	return institutions, nil
}

func (uc *directoryUsecase) FilterSpecialists(ctx context.Context, query string) ([]models.Specialist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("directoryUsecase.FilterSpecialists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchQueryKey, query),
	)

	if utf8.RuneCountInString(query) < uc.MinQueryLength {
		return nil, nil
	}

	specialists, err := uc.Specialists(ctx)
	if err != nil {
		uc.Log.Error("directoryUsecase.FilterSpecialists error loading specialists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	filtered := FilterSpecialists(query, specialists)
	uc.Log.Info("directoryUsecase.FilterSpecialists succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecialistCount, len(filtered)),
	)
	return filtered, nil
}

func (uc *directoryUsecase) MunicipalityOf(ctx context.Context, specialist models.Specialist) (models.ID, error) {
	if specialist.Institution.IstgID == "" {
		return "", nil
	}

	institutions, err := uc.Institutions(ctx)
	if err != nil {
		return "", err
	}

	for _, institution := range institutions {
		if institution.IstgID == specialist.Institution.IstgID {
			return institution.MunicipalityID, nil
		}
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Warn("directoryUsecase.MunicipalityOf institution not found, searching all municipalities",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialistIDKey, specialist.ID.String()),
	)
	return "", nil
}

// loadCached reads key from the cache into out, or calls fetch and caches
// its result. Concurrent misses for the same key share one fetch. Cache
// failures are logged and fall through to the remote.
func loadCached(
	ctx context.Context,
	uc *directoryUsecase,
	key, resource, countKey string,
	out interface{},
	fetch func(ctx context.Context) (interface{}, int, error),
) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("directoryUsecase.loadCached error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	if cached != "" {
		err = json.Unmarshal([]byte(cached), out)
		if err == nil {
			uc.Log.Debug("directoryUsecase.loadCached cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
			)
			return nil
		}
		uc.Log.Warn("directoryUsecase.loadCached discarding unreadable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}

	raw, err, _ := uc.group.Do(key, func() (interface{}, error) {
		fetched, count, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		uc.Log.Info("directoryUsecase.loadCached fetched from remote",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Int(countKey, count),
		)

		encoded, err := json.Marshal(fetched)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		err = uc.RedisRepository.Set(ctx, key, json.RawMessage(encoded), uc.CacheTTL)
		if err != nil {
			uc.Log.Warn("directoryUsecase.loadCached error writing cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
		return encoded, nil
	})
	if err != nil {
		uc.Log.Error("directoryUsecase.loadCached error fetching from remote",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Error(err),
		)
		return err
	}

	err = json.Unmarshal(raw.([]byte), out)
	if err != nil {
		return exceptions.ErrCannotUnmarshalJSON(err)
	}
	return nil
}
