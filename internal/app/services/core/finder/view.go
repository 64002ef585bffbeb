package finder

import (
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/dto/requests"
	"esveikata-finder/internal/pkg/dto/responses"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BookingURL builds the portal link that opens the registration page for
// slot with specialist preselected.
func BookingURL(baseURL string, slot models.AppointmentSlot, specialistID models.ID) string {
	params := url.Values{}
	params.Set(constvars.EsveikataParamOrganizationID, slot.OrganizationID.String())
	params.Set(constvars.EsveikataParamServiceID, slot.HealthcareServiceID.String())
	params.Set(constvars.EsveikataParamPractitionerID, specialistID.String())
	leftBound := ""
	if !slot.EarliestTime.IsZero() {
		leftBound = strconv.FormatInt(slot.EarliestTime.UnixMilli(), 10)
	}
	params.Set(constvars.EsveikataParamLeftBound, leftBound)

	return strings.TrimRight(baseURL, "/") + constvars.EsveikataPathRegistrations + "?" + params.Encode()
}

// FormatCountdown renders d as mm:ss. Negative durations render as 00:00.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return twoDigits(minutes) + ":" + twoDigits(seconds)
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func toSpecialistResponse(specialist models.Specialist, selected bool) responses.Specialist {
	return responses.Specialist{
		ID:             specialist.ID.String(),
		FullName:       specialist.FullName,
		InstitutionID:  specialist.Institution.IstgID.String(),
		OrganizationID: specialist.OrganizationID.String(),
		Selected:       selected,
	}
}

func toSlotResponse(slot models.AppointmentSlot, specialistID models.ID, loc *time.Location, baseURL string) responses.Slot {
	response := responses.Slot{
		ServiceName:      slot.HealthcareServiceName,
		OrganizationName: slot.OrganizationName,
		EarliestTime:     constvars.SlotMissingEarliestTime,
		BookingURL:       BookingURL(baseURL, slot, specialistID),
	}
	if response.ServiceName == "" {
		response.ServiceName = constvars.SlotMissingServiceName
	}
	if response.OrganizationName == "" {
		response.OrganizationName = constvars.SlotMissingOrganizationName
	}
	if !slot.EarliestTime.IsZero() {
		response.EarliestTime = slot.EarliestTime.In(loc).Format(constvars.SlotTimeLayout)
	}
	return response
}

// render converts a session state into its API view. next is the next
// timed search activation, zero when none is scheduled.
func render(sessionID string, state State, next, now time.Time, loc *time.Location, baseURL string) *responses.Session {
	view := &responses.Session{
		ID:                sessionID,
		Query:             state.Query,
		Searching:         state.Searching,
		TimedSearchActive: state.TimedSearch,
	}

	if state.Specialists != nil {
		view.Specialists = make([]responses.Specialist, 0, len(state.Specialists))
		for _, specialist := range state.Specialists {
			selected := state.Selected != nil && state.Selected.ID == specialist.ID
			view.Specialists = append(view.Specialists, toSpecialistResponse(specialist, selected))
		}
	}

	if state.Selected == nil {
		return view
	}

	selected := toSpecialistResponse(*state.Selected, true)
	view.SelectedSpecialist = &selected

	if state.TimedSearch && !next.IsZero() {
		view.NextSearchIn = FormatCountdown(next.Sub(now))
	}

	if state.Slots != nil {
		view.Slots = make([]responses.Slot, 0, len(state.Slots))
		for _, slot := range state.Slots {
			view.Slots = append(view.Slots, toSlotResponse(slot, state.Selected.ID, loc, baseURL))
		}
	}
	if len(state.Slots) == 0 {
		view.EmptyMessages = []string{constvars.SlotNoResults, constvars.SlotNoResultsHint}
	}

	return view
}

func buildNotification(sessionID string, specialist models.Specialist, slots []models.AppointmentSlot, foundAt time.Time, loc *time.Location, baseURL string) *requests.SlotsAvailableNotification {
	notification := &requests.SlotsAvailableNotification{
		Type:           constvars.NotificationTypeSlotsAvailable,
		SessionID:      sessionID,
		SpecialistID:   specialist.ID.String(),
		SpecialistName: specialist.FullName,
		FoundAt:        foundAt,
		Slots:          make([]requests.NotificationSlot, 0, len(slots)),
	}
	for _, slot := range slots {
		rendered := toSlotResponse(slot, specialist.ID, loc, baseURL)
		notification.Slots = append(notification.Slots, requests.NotificationSlot{
			ServiceName:      rendered.ServiceName,
			OrganizationName: rendered.OrganizationName,
			EarliestTime:     slot.EarliestTime.Time,
			BookingURL:       rendered.BookingURL,
		})
	}
	return notification
}
