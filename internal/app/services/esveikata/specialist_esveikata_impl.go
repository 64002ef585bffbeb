package esveikata

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/pkg/constvars"
)

type specialistClient struct {
	requester *Requester
}

func NewSpecialistClient(requester *Requester) contracts.SpecialistClient {
	return &specialistClient{
		requester: requester,
	}
}

func (c *specialistClient) FindAll(ctx context.Context) ([]models.Specialist, error) {
	var result models.Envelope[models.Specialist]
	err := c.requester.getJSON(ctx, constvars.EsveikataPathSpecialists, nil, constvars.ResourceSpecialists, &result)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
