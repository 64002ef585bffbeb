package esveikata

import (
	"context"
	"errors"
	"esveikata-finder/internal/app/config"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRequester(t *testing.T, handler http.HandlerFunc) *Requester {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewRequester(config.Esveikata{
		BaseUrl:                 server.URL + "/",
		RequestTimeoutInSeconds: 5,
		UserAgent:               "finder-test",
	}, zap.NewNop())
}

func TestSpecialistClient_FindAll(t *testing.T) {
	requester := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.EsveikataPathSpecialists, r.URL.Path)
		assert.Equal(t, "finder-test", r.Header.Get(constvars.HeaderUserAgent))
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`{"data":[
			{"id":101,"fullName":"Jonas Jonaitis","institution":{"istgId":7},"organizationId":"3001"},
			{"id":"102","fullName":"Ona Onaitė","institution":{"istgId":"8"},"organizationId":3002}
		]}`))
	})

	specialists, err := NewSpecialistClient(requester).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, specialists, 2)

	assert.Equal(t, models.ID("101"), specialists[0].ID)
	assert.Equal(t, models.ID("7"), specialists[0].Institution.IstgID)
	assert.Equal(t, models.ID("3001"), specialists[0].OrganizationID)
	assert.Equal(t, "Ona Onaitė", specialists[1].FullName)
	assert.Equal(t, models.ID("3002"), specialists[1].OrganizationID)
}

func TestInstitutionClient_FindAll(t *testing.T) {
	requester := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.EsveikataPathInstitutions, r.URL.Path)
		w.Write([]byte(`{"data":[{"istgId":7,"municipalityId":13}]}`))
	})

	institutions, err := NewInstitutionClient(requester).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, institutions, 1)
	assert.Equal(t, models.ID("13"), institutions[0].MunicipalityID)
}

func TestAppointmentSlotClient_Search(t *testing.T) {
	left := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	right := left.AddDate(0, 6, 0)

	var received url.Values
	requester := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.EsveikataPathAppointmentTimes, r.URL.Path)
		received = r.URL.Query()
		w.Write([]byte(`{"data":[{
			"healthcareServiceId":55,
			"healthcareServiceName":"Kardiologo konsultacija",
			"organizationId":3001,
			"organizationName":"Klinika",
			"earliestTime":1772359200000
		}]}`))
	})

	slots, err := NewAppointmentSlotClient(requester).Search(context.Background(), models.SlotQuery{
		MunicipalityID: "13",
		SpecialistID:   "101",
		OrganizationID: "3001",
		LeftBound:      left,
		RightBound:     right,
		Page:           0,
		Size:           50,
	})
	require.NoError(t, err)
	require.Len(t, slots, 1)

	assert.Equal(t, "13", received.Get(constvars.EsveikataParamMunicipalityID))
	assert.Equal(t, "101", received.Get(constvars.EsveikataParamSpecialistID))
	assert.Equal(t, "3001", received.Get(constvars.EsveikataParamOrganizationID))
	assert.Equal(t, "1772359200000", received.Get(constvars.EsveikataParamLeftBound))
	assert.Equal(t, "0", received.Get(constvars.EsveikataParamPage))
	assert.Equal(t, "50", received.Get(constvars.EsveikataParamSize))

	assert.Equal(t, models.ID("55"), slots[0].HealthcareServiceID)
	assert.Equal(t, int64(1772359200000), slots[0].EarliestTime.UnixMilli())
}

func TestAppointmentSlotClient_SearchOmitsUnknownMunicipality(t *testing.T) {
	var received url.Values
	requester := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		received = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	})

	slots, err := NewAppointmentSlotClient(requester).Search(context.Background(), models.SlotQuery{
		SpecialistID: "101",
		LeftBound:    time.Now(),
		RightBound:   time.Now().AddDate(0, 6, 0),
		Size:         50,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.False(t, received.Has(constvars.EsveikataParamMunicipalityID))
	assert.False(t, received.Has(constvars.EsveikataParamOrganizationID))
}

func TestRequester_Errors(t *testing.T) {
	t.Run("Unexpected Status", func(t *testing.T) {
		requester := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := NewSpecialistClient(requester).FindAll(context.Background())
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientRemoteServiceUnavailable, customErr.ClientMessage)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		requester := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": [`))
		})

		_, err := NewInstitutionClient(requester).FindAll(context.Background())
		require.Error(t, err)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		requester := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewSpecialistClient(requester).FindAll(ctx)
		require.Error(t, err)
	})
}

func TestRequester_Observe(t *testing.T) {
	requester := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	var observed []int
	requester.Observe = func(resource string, statusCode int, elapsed time.Duration) {
		assert.Equal(t, constvars.ResourceInstitutions, resource)
		observed = append(observed, statusCode)
	}

	_, err := NewInstitutionClient(requester).FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{http.StatusOK}, observed)
}
