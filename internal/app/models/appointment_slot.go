package models

import "time"

type AppointmentSlot struct {
	HealthcareServiceID   ID          `json:"healthcareServiceId"`
	HealthcareServiceName string      `json:"healthcareServiceName"`
	OrganizationID        ID          `json:"organizationId"`
	OrganizationName      string      `json:"organizationName"`
	EarliestTime          EpochMillis `json:"earliestTime"`
}

// SlotQuery is one lookup against the appointment times endpoint.
// MunicipalityID is optional; the portal searches all municipalities when
// it is empty.
type SlotQuery struct {
	MunicipalityID ID
	SpecialistID   ID
	OrganizationID ID
	LeftBound      time.Time
	RightBound     time.Time
	Page           int
	Size           int
}
