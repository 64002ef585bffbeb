package models

type InstitutionReference struct {
	IstgID ID `json:"istgId"`
}

type Specialist struct {
	ID             ID                   `json:"id"`
	FullName       string               `json:"fullName"`
	Institution    InstitutionReference `json:"institution"`
	OrganizationID ID                   `json:"organizationId"`
}

type Institution struct {
	IstgID         ID `json:"istgId"`
	MunicipalityID ID `json:"municipalityId"`
}
