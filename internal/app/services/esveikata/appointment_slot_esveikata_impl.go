package esveikata

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/pkg/constvars"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type appointmentSlotClient struct {
	requester *Requester
}

func NewAppointmentSlotClient(requester *Requester) contracts.AppointmentSlotClient {
	return &appointmentSlotClient{
		requester: requester,
	}
}

func (c *appointmentSlotClient) Search(ctx context.Context, query models.SlotQuery) ([]models.AppointmentSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.requester.Log.Info("appointmentSlotClient.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialistIDKey, query.SpecialistID.String()),
		zap.String(constvars.LoggingMunicipalityIDKey, query.MunicipalityID.String()),
		zap.Time(constvars.LoggingLeftBoundKey, query.LeftBound),
		zap.Time(constvars.LoggingRightBoundKey, query.RightBound),
	)

	var result models.Envelope[models.AppointmentSlot]
	err := c.requester.getJSON(ctx, constvars.EsveikataPathAppointmentTimes, buildSlotQueryParams(query), constvars.ResourceAppointmentSlot, &result)
	if err != nil {
		c.requester.Log.Error("appointmentSlotClient.Search error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.requester.Log.Info("appointmentSlotClient.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(result.Data)),
	)
	return result.Data, nil
}

func buildSlotQueryParams(query models.SlotQuery) url.Values {
	params := url.Values{}
	if query.MunicipalityID != "" {
		params.Set(constvars.EsveikataParamMunicipalityID, query.MunicipalityID.String())
	}
	params.Set(constvars.EsveikataParamSpecialistID, query.SpecialistID.String())
	if query.OrganizationID != "" {
		params.Set(constvars.EsveikataParamOrganizationID, query.OrganizationID.String())
	}
	params.Set(constvars.EsveikataParamLeftBound, strconv.FormatInt(query.LeftBound.UnixMilli(), 10))
	params.Set(constvars.EsveikataParamRightBound, strconv.FormatInt(query.RightBound.UnixMilli(), 10))
	params.Set(constvars.EsveikataParamPage, strconv.Itoa(query.Page))
	params.Set(constvars.EsveikataParamSize, strconv.Itoa(query.Size))
	return params
}
