package esveikata

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/pkg/constvars"
)

type institutionClient struct {
	requester *Requester
}

func NewInstitutionClient(requester *Requester) contracts.InstitutionClient {
	return &institutionClient{
		requester: requester,
	}
}

func (c *institutionClient) FindAll(ctx context.Context) ([]models.Institution, error) {
	var result models.Envelope[models.Institution]
	err := c.requester.getJSON(ctx, constvars.EsveikataPathInstitutions, nil, constvars.ResourceInstitutions, &result)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
