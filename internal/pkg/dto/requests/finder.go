package requests

type UpdateQuery struct {
	Query string `json:"query" validate:"max=100,search_query"`
}

type SelectSpecialist struct {
	SpecialistID string `json:"specialist_id" validate:"required,max=64"`
}
