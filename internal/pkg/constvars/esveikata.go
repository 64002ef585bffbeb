package constvars

const (
	EsveikataPathSpecialists      = "/api/searchesNew/specialists"
	EsveikataPathInstitutions     = "/api/searchesNew/institutions"
	EsveikataPathAppointmentTimes = "/api/searches/appointments/times"
	EsveikataPathRegistrations    = "/available-registrations"
)

const (
	EsveikataParamMunicipalityID = "municipalityId"
	EsveikataParamSpecialistID   = "specialistId"
	EsveikataParamOrganizationID = "organizationId"
	EsveikataParamLeftBound      = "leftBound"
	EsveikataParamRightBound     = "rightBound"
	EsveikataParamPage           = "page"
	EsveikataParamSize           = "size"
	EsveikataParamServiceID      = "serviceId"
	EsveikataParamPractitionerID = "practitionerId"
)

const (
	SearchWindowMonths = 6
	SlotTimeLayout     = "2006-01-02 15:04"
)

// Texts shown in place of missing slot fields.
const (
	SlotMissingServiceName      = "Nerastas paslaugos pavadinimas"
	SlotMissingOrganizationName = "Nerastas įstaigos pavadinimas"
	SlotMissingEarliestTime     = "Nerastas anksčiausias laikas"
	SlotNoResults               = "Nerasta rezultatų."
	SlotNoResultsHint           = "Naudokite automatinę paiešką norėdami gauti rezultatus, kai atsiras talonėlių."
)

const (
	RedisKeySpecialists  = "esveikata:directory:specialists"
	RedisKeyInstitutions = "esveikata:directory:institutions"
)

const (
	NotificationTypeSlotsAvailable = "slots_available"
)
