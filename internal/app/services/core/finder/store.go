package finder

import (
	"esveikata-finder/internal/app/models"
	"sync"
	"time"
)

// State is everything one finder session shows. It is only changed by
// dispatching actions through a Store.
type State struct {
	Query string
	// Specialists is nil when the query is too short to filter.
	Specialists []models.Specialist
	Selected    *models.Specialist
	// Generation increases on every selection. Search effects carry the
	// generation they were started for.
	Generation uint64
	Searching  bool
	// Slots is nil until a search for the current selection completes.
	Slots          []models.AppointmentSlot
	LastSearchedAt time.Time
	LastError      error
	TimedSearch    bool
}

type Action interface {
	isAction()
}

// SearchChanged sets the query text. The list stays as it was until the
// matching DirectoryLoaded arrives.
type SearchChanged struct {
	Query string
}

// DirectoryLoaded carries the filtered list for Query. It is dropped when
// the query has changed in the meantime.
type DirectoryLoaded struct {
	Query       string
	Specialists []models.Specialist
}

type SpecialistSelected struct {
	Specialist models.Specialist
}

type SearchStarted struct {
	Generation uint64
}

type ResultsReceived struct {
	Generation uint64
	Slots      []models.AppointmentSlot
	At         time.Time
}

type SearchFailed struct {
	Generation uint64
	Err        error
}

type TimerToggled struct {
	Active bool
}

func (SearchChanged) isAction()      {}
func (DirectoryLoaded) isAction()    {}
func (SpecialistSelected) isAction() {}
func (SearchStarted) isAction()      {}
func (ResultsReceived) isAction()    {}
func (SearchFailed) isAction()       {}
func (TimerToggled) isAction()       {}

// Reduce returns the state after applying action, and whether the action
// was applied. Actions for an older generation or an outdated query are
// not applied.
func Reduce(state State, action Action) (State, bool) {
	switch a := action.(type) {
	case SearchChanged:
		state.Query = a.Query
		return state, true

	case DirectoryLoaded:
		if a.Query != state.Query {
			return state, false
		}
		state.Specialists = a.Specialists
		return state, true

	case SpecialistSelected:
		selected := a.Specialist
		state.Selected = &selected
		state.Generation++
		state.Searching = false
		state.Slots = nil
		state.LastSearchedAt = time.Time{}
		state.LastError = nil
		return state, true

	case SearchStarted:
		if state.Selected == nil || a.Generation != state.Generation {
			return state, false
		}
		state.Searching = true
		return state, true

	case ResultsReceived:
		if a.Generation != state.Generation {
			return state, false
		}
		state.Searching = false
		state.Slots = a.Slots
		if state.Slots == nil {
			state.Slots = []models.AppointmentSlot{}
		}
		state.LastSearchedAt = a.At
		state.LastError = nil
		return state, true

	case SearchFailed:
		if a.Generation != state.Generation {
			return state, false
		}
		// previous results stay as they were
		state.Searching = false
		state.LastError = a.Err
		return state, true

	case TimerToggled:
		state.TimedSearch = a.Active
		return state, true
	}

	return state, false
}

// Store serializes actions against one State.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Dispatch(action Action) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, applied := Reduce(s.state, action)
	if applied {
		s.state = next
	}
	return s.state, applied
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
