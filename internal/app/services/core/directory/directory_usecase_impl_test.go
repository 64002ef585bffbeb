package directory

import (
	"context"
	"errors"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/app/services/shared/redis"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSpecialistClient struct {
	mock.Mock
}

func (m *MockSpecialistClient) FindAll(ctx context.Context) ([]models.Specialist, error) {
	args := m.Called(ctx)
	specialists, _ := args.Get(0).([]models.Specialist)
	return specialists, args.Error(1)
}

type MockInstitutionClient struct {
	mock.Mock
}

func (m *MockInstitutionClient) FindAll(ctx context.Context) ([]models.Institution, error) {
	args := m.Called(ctx)
	institutions, _ := args.Get(0).([]models.Institution)
	return institutions, args.Error(1)
}

var testSpecialists = []models.Specialist{
	{ID: "1", FullName: "Jonas Jonaitis", Institution: models.InstitutionReference{IstgID: "100"}, OrganizationID: "10"},
	{ID: "2", FullName: "Ona Onaitė", Institution: models.InstitutionReference{IstgID: "200"}, OrganizationID: "20"},
	{ID: "3", FullName: "Petras Petraitis", Institution: models.InstitutionReference{IstgID: "999"}},
}

var testInstitutions = []models.Institution{
	{IstgID: "100", MunicipalityID: "13"},
	{IstgID: "200", MunicipalityID: "21"},
}

func TestDirectoryUsecase_FilterSpecialists(t *testing.T) {
	specialistClient := new(MockSpecialistClient)
	specialistClient.On("FindAll", mock.Anything).Return(testSpecialists, nil).Once()

	uc := NewDirectoryUsecase(specialistClient, new(MockInstitutionClient), redis.NewMemoryRepository(), time.Hour, 3, zap.NewNop())
	ctx := context.Background()

	t.Run("Short Query Yields No List", func(t *testing.T) {
		filtered, err := uc.FilterSpecialists(ctx, "on")
		require.NoError(t, err)
		assert.Nil(t, filtered)
	})

	t.Run("Matches Both Names", func(t *testing.T) {
		filtered, err := uc.FilterSpecialists(ctx, "onai")
		require.NoError(t, err)
		assert.Equal(t, []string{"Jonas Jonaitis", "Ona Onaitė"}, names(filtered))
	})

	t.Run("Second Lookup Served From Cache", func(t *testing.T) {
		filtered, err := uc.FilterSpecialists(ctx, "petr")
		require.NoError(t, err)
		assert.Equal(t, []string{"Petras Petraitis"}, names(filtered))
	})

	specialistClient.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestDirectoryUsecase_RemoteError(t *testing.T) {
	specialistClient := new(MockSpecialistClient)
	specialistClient.On("FindAll", mock.Anything).Return(nil, errors.New("portal down"))

	uc := NewDirectoryUsecase(specialistClient, new(MockInstitutionClient), redis.NewMemoryRepository(), time.Hour, 3, zap.NewNop())

	filtered, err := uc.FilterSpecialists(context.Background(), "jonas")
	assert.Error(t, err)
	assert.Nil(t, filtered)
}

func TestDirectoryUsecase_MunicipalityOf(t *testing.T) {
	institutionClient := new(MockInstitutionClient)
	institutionClient.On("FindAll", mock.Anything).Return(testInstitutions, nil).Once()

	uc := NewDirectoryUsecase(new(MockSpecialistClient), institutionClient, redis.NewMemoryRepository(), time.Hour, 3, zap.NewNop())
	ctx := context.Background()

	municipality, err := uc.MunicipalityOf(ctx, testSpecialists[1])
	require.NoError(t, err)
	assert.Equal(t, models.ID("21"), municipality)

	municipality, err = uc.MunicipalityOf(ctx, testSpecialists[2])
	require.NoError(t, err)
	assert.Empty(t, municipality)

	municipality, err = uc.MunicipalityOf(ctx, models.Specialist{ID: "4"})
	require.NoError(t, err)
	assert.Empty(t, municipality)

	institutionClient.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestDirectoryUsecase_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	specialistClient := new(MockSpecialistClient)
	specialistClient.On("FindAll", mock.Anything).Return(testSpecialists, nil)

	uc := NewDirectoryUsecase(specialistClient, new(MockInstitutionClient), redis.NewRedisRepository(client), time.Minute, 3, zap.NewNop())
	ctx := context.Background()

	first, err := uc.Specialists(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSpecialists, first)
	assert.True(t, mr.Exists("esveikata:directory:specialists"))

	second, err := uc.Specialists(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSpecialists, second)
	specialistClient.AssertNumberOfCalls(t, "FindAll", 1)

	mr.FastForward(2 * time.Minute)
	_, err = uc.Specialists(ctx)
	require.NoError(t, err)
	specialistClient.AssertNumberOfCalls(t, "FindAll", 2)
}

func TestDirectoryUsecase_CacheDownFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	specialistClient := new(MockSpecialistClient)
	specialistClient.On("FindAll", mock.Anything).Return(testSpecialists, nil)

	uc := NewDirectoryUsecase(specialistClient, new(MockInstitutionClient), redis.NewRedisRepository(client), time.Minute, 3, zap.NewNop())

	specialists, err := uc.Specialists(context.Background())
	require.NoError(t, err)
	assert.Len(t, specialists, 3)
}

func TestDirectoryUsecase_ConcurrentMissesShareFetch(t *testing.T) {
	release := make(chan struct{})
	specialistClient := new(MockSpecialistClient)
	specialistClient.On("FindAll", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(testSpecialists, nil)

	uc := NewDirectoryUsecase(specialistClient, new(MockInstitutionClient), redis.NewMemoryRepository(), time.Hour, 3, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			specialists, err := uc.Specialists(context.Background())
			assert.NoError(t, err)
			assert.Len(t, specialists, 3)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	specialistClient.AssertNumberOfCalls(t, "FindAll", 1)
}
