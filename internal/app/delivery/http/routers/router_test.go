package routers

import (
	"bytes"
	"context"
	"esveikata-finder/internal/app/config"
	"esveikata-finder/internal/app/delivery/http/controllers"
	"esveikata-finder/internal/app/delivery/http/middlewares"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/dto/responses"
	"esveikata-finder/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockFinderUsecase struct {
	mock.Mock
}

func (m *MockFinderUsecase) FindSpecialists(ctx context.Context, query string) ([]responses.Specialist, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).([]responses.Specialist)
	return result, args.Error(1)
}

func (m *MockFinderUsecase) CreateSession(ctx context.Context) (*responses.Session, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockFinderUsecase) GetSession(ctx context.Context, sessionID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockFinderUsecase) UpdateQuery(ctx context.Context, sessionID, query string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID, query)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockFinderUsecase) SelectSpecialist(ctx context.Context, sessionID, specialistID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID, specialistID)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockFinderUsecase) SearchNow(ctx context.Context, sessionID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockFinderUsecase) ToggleTimedSearch(ctx context.Context, sessionID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockFinderUsecase) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(finderUsecase *MockFinderUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			MaxRequests:    1000,
			Timezone:       "Europe/Vilnius",
		},
	}
	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("esveikata_finder_sessions_active 0\n"))
	})
	SetupRoutes(
		router,
		internalConfig,
		middlewareInstance,
		metricsHandler,
		controllers.NewSpecialistController(logger, finderUsecase, time.Second),
		controllers.NewFinderController(logger, finderUsecase, time.Second),
	)
	return router
}

func serve(router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var decoded envelope
	json.Unmarshal(rr.Body.Bytes(), &decoded)
	return rr, decoded
}

func TestSpecialistRoutes(t *testing.T) {
	finderUsecase := new(MockFinderUsecase)
	router := newTestRouter(finderUsecase)

	t.Run("Filters By Query", func(t *testing.T) {
		finderUsecase.On("FindSpecialists", mock.Anything, "onai").
			Return([]responses.Specialist{{ID: "1", FullName: "Jonas Jonaitis"}, {ID: "2", FullName: "Ona Onaitė"}}, nil).Once()

		rr, body := serve(router, http.MethodGet, "/api/v1/specialists?query=onai", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, body.Success)
		var specialists []responses.Specialist
		require.NoError(t, json.Unmarshal(body.Data, &specialists))
		assert.Len(t, specialists, 2)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Rejects Control Characters", func(t *testing.T) {
		rr, body := serve(router, http.MethodGet, "/api/v1/specialists?query=on%00ai", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, body.Success)
	})

	finderUsecase.AssertExpectations(t)
}

func TestSessionRoutes(t *testing.T) {
	finderUsecase := new(MockFinderUsecase)
	router := newTestRouter(finderUsecase)
	session := &responses.Session{ID: "abc"}

	t.Run("Create", func(t *testing.T) {
		finderUsecase.On("CreateSession", mock.Anything).Return(session, nil).Once()

		rr, body := serve(router, http.MethodPost, "/api/v1/sessions", nil)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, constvars.CreateSessionSuccessMessage, body.Message)
	})

	t.Run("Get Unknown Session", func(t *testing.T) {
		finderUsecase.On("GetSession", mock.Anything, "missing").Return(nil, exceptions.ErrSessionNotFound("missing")).Once()

		rr, body := serve(router, http.MethodGet, "/api/v1/sessions/missing", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientSessionNotFound, body.Message)
	})

	t.Run("Update Query", func(t *testing.T) {
		finderUsecase.On("UpdateQuery", mock.Anything, "abc", "jonas").Return(session, nil).Once()

		rr, _ := serve(router, http.MethodPut, "/api/v1/sessions/abc/query", map[string]string{"query": "jonas"})

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Update Query With Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/abc/query", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Select Requires Specialist ID", func(t *testing.T) {
		rr, _ := serve(router, http.MethodPut, "/api/v1/sessions/abc/selection", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		finderUsecase.AssertNotCalled(t, "SelectSpecialist", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Select", func(t *testing.T) {
		finderUsecase.On("SelectSpecialist", mock.Anything, "abc", "2").Return(session, nil).Once()

		rr, _ := serve(router, http.MethodPut, "/api/v1/sessions/abc/selection", map[string]string{"specialist_id": "2"})

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Search", func(t *testing.T) {
		finderUsecase.On("SearchNow", mock.Anything, "abc").Return(session, nil).Once()

		rr, body := serve(router, http.MethodPost, "/api/v1/sessions/abc/search", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.SearchSlotsSuccessMessage, body.Message)
	})

	t.Run("Timed Search Without Selection", func(t *testing.T) {
		finderUsecase.On("ToggleTimedSearch", mock.Anything, "abc").Return(nil, exceptions.ErrNoSpecialistSelected()).Once()

		rr, body := serve(router, http.MethodPut, "/api/v1/sessions/abc/timed-search", nil)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, constvars.ErrClientNoSpecialistSelected, body.Message)
	})

	t.Run("Delete", func(t *testing.T) {
		finderUsecase.On("DeleteSession", mock.Anything, "abc").Return(nil).Once()

		rr, _ := serve(router, http.MethodDelete, "/api/v1/sessions/abc", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	finderUsecase.AssertExpectations(t)
}

func TestMetricsRoute(t *testing.T) {
	router := newTestRouter(new(MockFinderUsecase))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "esveikata_finder_sessions_active")
}
