package responses

type Specialist struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	InstitutionID  string `json:"institution_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	Selected       bool   `json:"selected,omitempty"`
}

type Slot struct {
	ServiceName      string `json:"service_name"`
	OrganizationName string `json:"organization_name"`
	EarliestTime     string `json:"earliest_time"`
	BookingURL       string `json:"booking_url"`
}

// Session is the rendered state of one finder session. Specialists is nil
// when the query is too short to filter; Slots is nil until a search for the
// current selection has completed.
type Session struct {
	ID                 string       `json:"id"`
	Query              string       `json:"query"`
	Specialists        []Specialist `json:"specialists"`
	SelectedSpecialist *Specialist  `json:"selected_specialist,omitempty"`
	Searching          bool         `json:"searching"`
	TimedSearchActive  bool         `json:"timed_search_active"`
	NextSearchIn       string       `json:"next_search_in,omitempty"`
	Slots              []Slot       `json:"slots"`
	EmptyMessages      []string     `json:"empty_messages,omitempty"`
}
