package requests

import "time"

type NotificationSlot struct {
	ServiceName      string    `json:"service_name"`
	OrganizationName string    `json:"organization_name"`
	EarliestTime     time.Time `json:"earliest_time"`
	BookingURL       string    `json:"booking_url"`
}

type SlotsAvailableNotification struct {
	Type           string             `json:"type"`
	SessionID      string             `json:"session_id"`
	SpecialistID   string             `json:"specialist_id"`
	SpecialistName string             `json:"specialist_name"`
	FoundAt        time.Time          `json:"found_at"`
	Slots          []NotificationSlot `json:"slots"`
}
