package constvars

const (
	GetSpecialistsSuccessMessage    = "specialists found"
	CreateSessionSuccessMessage     = "finder session created"
	GetSessionSuccessMessage        = "finder session retrieved"
	UpdateQuerySuccessMessage       = "search query updated"
	SelectSpecialistSuccessMessage  = "specialist selected"
	SearchSlotsSuccessMessage       = "appointment search completed"
	ToggleTimedSearchSuccessMessage = "timed search toggled"
	DeleteSessionSuccessMessage     = "finder session closed"
)
