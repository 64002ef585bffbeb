package finder

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/app/services/shared/metrics"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/dto/responses"
	"esveikata-finder/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dependencies are the collaborators shared by all sessions.
type Dependencies struct {
	Directory  contracts.DirectoryUsecase
	SlotClient contracts.AppointmentSlotClient
	Scheduler  contracts.Scheduler
	Notifier   contracts.SlotNotifier
	Metrics    *metrics.FinderMetrics
	Log        *zap.Logger
}

type Settings struct {
	// Period between timed searches.
	Period       time.Duration
	WindowMonths int
	PageSize     int
	Location     *time.Location
	// BookingBaseURL is the portal origin used for booking links.
	BookingBaseURL string
	Now            func() time.Time
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Session is one user's finder: a query, a filtered list, a selection and
// the lookups made for it.
type Session struct {
	ID       string
	deps     Dependencies
	settings Settings
	store    *Store

	mu        sync.Mutex
	baseCtx   context.Context
	closeBase context.CancelFunc
	genCtx    context.Context
	cancelGen context.CancelFunc
	handle    contracts.ScheduleHandle
	// schedule identifies the current timed search; jobs of a cancelled
	// schedule that still fire are ignored.
	schedule   uint64
	hadSlots   bool
	lastActive time.Time
	closed     bool
	wg         sync.WaitGroup
}

func NewSession(id string, deps Dependencies, settings Settings) *Session {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	baseCtx, closeBase := context.WithCancel(context.Background())
	return &Session{
		ID:         id,
		deps:       deps,
		settings:   settings,
		store:      NewStore(),
		baseCtx:    baseCtx,
		closeBase:  closeBase,
		genCtx:     baseCtx,
		lastActive: settings.now(),
	}
}

func (s *Session) State() State {
	return s.store.State()
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = s.settings.now()
	s.mu.Unlock()
}

// View renders the current state.
func (s *Session) View() *responses.Session {
	s.mu.Lock()
	handle := s.handle
	s.mu.Unlock()

	var next time.Time
	if handle != nil {
		next = handle.Next()
	}
	return render(s.ID, s.store.State(), next, s.settings.now(), s.settings.Location, s.settings.BookingBaseURL)
}

func (s *Session) UpdateQuery(ctx context.Context, query string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.touch()

	s.store.Dispatch(SearchChanged{Query: query})
	specialists, err := s.deps.Directory.FilterSpecialists(ctx, query)
	if err != nil {
		s.deps.Log.Error("Session.UpdateQuery error filtering specialists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.ID),
			zap.Error(err),
		)
		return err
	}

	s.store.Dispatch(DirectoryLoaded{Query: query, Specialists: specialists})
	return nil
}

// Select makes specialist the current selection and starts a lookup for it.
// Any lookup still running for the previous selection is cancelled and its
// result discarded. The returned channel is closed when the lookup ends.
func (s *Session) Select(ctx context.Context, specialist models.Specialist) (<-chan struct{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.touch()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, exceptions.ErrSessionNotFound(s.ID)
	}
	if s.cancelGen != nil {
		s.cancelGen()
	}
	state, _ := s.store.Dispatch(SpecialistSelected{Specialist: specialist})
	s.genCtx, s.cancelGen = context.WithCancel(s.baseCtx)
	genCtx := s.genCtx
	s.hadSlots = false
	s.mu.Unlock()

	s.deps.Log.Info("Session.Select called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, s.ID),
		zap.String(constvars.LoggingSpecialistIDKey, specialist.ID.String()),
		zap.Uint64(constvars.LoggingGenerationKey, state.Generation),
	)

	return s.startSearch(ctx, genCtx, state.Generation, specialist), nil
}

// SearchNow runs one lookup for the current selection and waits for it, or
// for ctx to end.
func (s *Session) SearchNow(ctx context.Context) error {
	s.touch()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return exceptions.ErrSessionNotFound(s.ID)
	}
	state := s.store.State()
	genCtx := s.genCtx
	s.mu.Unlock()

	if state.Selected == nil {
		return exceptions.ErrNoSpecialistSelected()
	}

	done := s.startSearch(ctx, genCtx, state.Generation, *state.Selected)
	select {
	case <-done:
	case <-ctx.Done():
	}
	return nil
}

// ToggleTimedSearch switches the repeating lookup on or off and reports the
// new setting. The first timed lookup runs one period after switching on.
// Changing the selection later does not restart the schedule; each run
// searches for whatever is selected at that moment.
func (s *Session) ToggleTimedSearch(ctx context.Context) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.touch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, exceptions.ErrSessionNotFound(s.ID)
	}

	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
		s.store.Dispatch(TimerToggled{Active: false})
		s.deps.Metrics.TimedSearchToggled(false)
		s.deps.Log.Info("Session.ToggleTimedSearch stopped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.ID),
		)
		return false, nil
	}

	state := s.store.State()
	if state.Selected == nil {
		return false, exceptions.ErrNoSpecialistSelected()
	}

	schedule := s.schedule + 1
	handle, err := s.deps.Scheduler.Every(s.settings.Period, func() {
		s.tick(schedule)
	})
	if err != nil {
		s.deps.Log.Error("Session.ToggleTimedSearch error scheduling search",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.ID),
			zap.Error(err),
		)
		return false, err
	}

	s.handle = handle
	s.schedule = schedule
	s.hadSlots = len(state.Slots) > 0
	s.store.Dispatch(TimerToggled{Active: true})
	s.deps.Metrics.TimedSearchToggled(true)
	s.deps.Log.Info("Session.ToggleTimedSearch started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, s.ID),
		zap.Duration(constvars.LoggingPeriodKey, s.settings.Period),
	)
	return true, nil
}

// Close stops the timed search, cancels running lookups and waits for them.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
		s.deps.Metrics.TimedSearchToggled(false)
	}
	s.closeBase()
	s.mu.Unlock()

	s.wg.Wait()
}

// Wait blocks until no lookup is running.
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) tick(schedule uint64) {
	s.mu.Lock()
	if s.closed || s.handle == nil || s.schedule != schedule {
		s.mu.Unlock()
		return
	}
	state := s.store.State()
	genCtx := s.genCtx
	if state.Selected == nil {
		s.mu.Unlock()
		return
	}
	if _, ok := s.store.Dispatch(SearchStarted{Generation: state.Generation}); !ok {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	s.search(genCtx, state.Generation, *state.Selected, true)
}

// startSearch marks the search as started and runs it in the background.
func (s *Session) startSearch(ctx context.Context, genCtx context.Context, generation uint64, specialist models.Specialist) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(done)
		return done
	}
	if _, ok := s.store.Dispatch(SearchStarted{Generation: generation}); !ok {
		s.mu.Unlock()
		s.deps.Metrics.ObserveLookup(constvars.OutcomeStale, false, 0)
		close(done)
		return done
	}
	s.wg.Add(1)
	s.mu.Unlock()

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	searchCtx := context.WithValue(genCtx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	go func() {
		defer s.wg.Done()
		defer close(done)
		s.search(searchCtx, generation, specialist, false)
	}()
	return done
}

// search performs the lookup for a generation that has already been
// marked as started.
func (s *Session) search(ctx context.Context, generation uint64, specialist models.Specialist, timed bool) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	start := s.settings.now()
	left, right := SearchWindow(start, s.settings.Location, s.settings.WindowMonths)

	s.deps.Log.Info("Session.search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, s.ID),
		zap.String(constvars.LoggingSpecialistIDKey, specialist.ID.String()),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
		zap.Time(constvars.LoggingLeftBoundKey, left),
		zap.Time(constvars.LoggingRightBoundKey, right),
	)

	var slots []models.AppointmentSlot
	municipalityID, err := s.deps.Directory.MunicipalityOf(ctx, specialist)
	if err == nil {
		slots, err = s.deps.SlotClient.Search(ctx, models.SlotQuery{
			MunicipalityID: municipalityID,
			SpecialistID:   specialist.ID,
			OrganizationID: specialist.OrganizationID,
			LeftBound:      left,
			RightBound:     right,
			Page:           0,
			Size:           s.settings.PageSize,
		})
	}
	elapsed := s.settings.now().Sub(start)

	if err != nil {
		_, applied := s.store.Dispatch(SearchFailed{Generation: generation, Err: err})
		outcome := constvars.OutcomeFailure
		if !applied {
			outcome = constvars.OutcomeStale
		}
		s.deps.Metrics.ObserveLookup(outcome, timed, elapsed)
		s.deps.Log.Error("Session.search error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.ID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
			zap.Bool(constvars.LoggingStaleKey, !applied),
			zap.Error(err),
		)
		return
	}

	_, applied := s.store.Dispatch(ResultsReceived{Generation: generation, Slots: slots, At: s.settings.now()})
	if !applied {
		s.deps.Metrics.ObserveLookup(constvars.OutcomeStale, timed, elapsed)
		s.deps.Log.Info("Session.search discarded results for previous selection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.ID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return
	}

	outcome := constvars.OutcomeSuccess
	if len(slots) == 0 {
		outcome = constvars.OutcomeEmpty
	}
	s.deps.Metrics.ObserveLookup(outcome, timed, elapsed)
	s.deps.Log.Info("Session.search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, s.ID),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)

	// Select resets the baseline under s.mu, so a newer generation seen
	// here means these slots belong to a previous selection.
	s.mu.Lock()
	if s.store.State().Generation != generation {
		s.mu.Unlock()
		return
	}
	notify := timed && len(slots) > 0 && !s.hadSlots
	s.hadSlots = len(slots) > 0
	s.mu.Unlock()

	if notify {
		s.notify(ctx, specialist, slots)
	}
}

func (s *Session) notify(ctx context.Context, specialist models.Specialist, slots []models.AppointmentSlot) {
	if s.deps.Notifier == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	notification := buildNotification(s.ID, specialist, slots, s.settings.now(), s.settings.Location, s.settings.BookingBaseURL)

	err := s.deps.Notifier.NotifySlotsAvailable(ctx, notification)
	s.deps.Metrics.ObserveNotification(err)
	if err != nil {
		s.deps.Log.Error("Session.notify error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, s.ID),
			zap.Error(err),
		)
	}
}
