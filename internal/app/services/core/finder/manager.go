package finder

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/dto/responses"
	"esveikata-finder/internal/pkg/exceptions"
	"esveikata-finder/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SessionManager keeps the open finder sessions and closes the ones that
// have been idle for longer than IdleTimeout.
type SessionManager struct {
	deps        Dependencies
	settings    Settings
	IdleTimeout time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
	janitor  contracts.ScheduleHandle
}

// NewSessionManager registers the idle-session janitor on deps.Scheduler
// when both idleTimeout and janitorInterval are positive.
func NewSessionManager(deps Dependencies, settings Settings, idleTimeout, janitorInterval time.Duration) (*SessionManager, error) {
	m := &SessionManager{
		deps:        deps,
		settings:    settings,
		IdleTimeout: idleTimeout,
		sessions:    make(map[string]*Session),
	}

	if idleTimeout > 0 && janitorInterval > 0 {
		handle, err := deps.Scheduler.Every(janitorInterval, func() {
			m.Reap(settings.now())
		})
		if err != nil {
			return nil, err
		}
		m.janitor = handle
	}

	return m, nil
}

var _ contracts.FinderUsecase = (*SessionManager)(nil)

func (m *SessionManager) FindSpecialists(ctx context.Context, query string) ([]responses.Specialist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.deps.Log.Info("SessionManager.FindSpecialists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchQueryKey, query),
	)

	specialists, err := m.deps.Directory.FilterSpecialists(ctx, query)
	if err != nil {
		m.deps.Log.Error("SessionManager.FindSpecialists error filtering specialists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if specialists == nil {
		return nil, nil
	}

	response := make([]responses.Specialist, len(specialists))
	for i, specialist := range specialists {
		response[i] = toSpecialistResponse(specialist, false)
	}

	m.deps.Log.Info("SessionManager.FindSpecialists succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecialistCount, len(response)),
	)
	return response, nil
}

func (m *SessionManager) CreateSession(ctx context.Context) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session := NewSession(utils.GenerateSessionID(), m.deps, m.settings)
	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	m.deps.Metrics.SessionOpened()

	m.deps.Log.Info("SessionManager.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return session.View(), nil
}

func (m *SessionManager) GetSession(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	session.touch()
	return session.View(), nil
}

func (m *SessionManager) UpdateQuery(ctx context.Context, sessionID, query string) (*responses.Session, error) {
	session, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	err = session.UpdateQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return session.View(), nil
}

// SelectSpecialist selects one of the specialists currently listed in the
// session and starts a lookup without waiting for it.
func (m *SessionManager) SelectSpecialist(ctx context.Context, sessionID, specialistID string) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	session, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	specialist, ok := findSpecialist(session.State().Specialists, models.ID(specialistID))
	if !ok {
		m.deps.Log.Warn("SessionManager.SelectSpecialist specialist not in current list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingSpecialistIDKey, specialistID),
		)
		return nil, exceptions.ErrSpecialistNotFound(specialistID)
	}

	_, err = session.Select(ctx, specialist)
	if err != nil {
		return nil, err
	}
	return session.View(), nil
}

func (m *SessionManager) SearchNow(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	err = session.SearchNow(ctx)
	if err != nil {
		return nil, err
	}
	return session.View(), nil
}

func (m *SessionManager) ToggleTimedSearch(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	_, err = session.ToggleTimedSearch(ctx)
	if err != nil {
		return nil, err
	}
	return session.View(), nil
}

func (m *SessionManager) DeleteSession(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	m.mu.Lock()
	session, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	if !ok {
		return exceptions.ErrSessionNotFound(sessionID)
	}

	session.Close()
	m.deps.Metrics.SessionClosed()
	m.deps.Log.Info("SessionManager.DeleteSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

// Reap closes sessions last used before now minus IdleTimeout and returns
// how many were closed.
func (m *SessionManager) Reap(now time.Time) int {
	if m.IdleTimeout <= 0 {
		return 0
	}
	cutoff := now.Add(-m.IdleTimeout)

	var expired []*Session
	m.mu.Lock()
	for id, session := range m.sessions {
		if session.LastActive().Before(cutoff) {
			expired = append(expired, session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, session := range expired {
		session.Close()
		m.deps.Metrics.SessionClosed()
		m.deps.Log.Info("SessionManager.Reap closed idle session",
			zap.String(constvars.LoggingSessionIDKey, session.ID),
		)
	}
	return len(expired)
}

// Len reports the number of open sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Stop cancels the janitor and closes every session.
func (m *SessionManager) Stop() {
	if m.janitor != nil {
		m.janitor.Cancel()
	}

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, session := range sessions {
		session.Close()
		m.deps.Metrics.SessionClosed()
	}
}

func (m *SessionManager) lookup(sessionID string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, exceptions.ErrSessionNotFound(sessionID)
	}
	return session, nil
}

func findSpecialist(specialists []models.Specialist, id models.ID) (models.Specialist, bool) {
	for _, specialist := range specialists {
		if specialist.ID == id {
			return specialist, true
		}
	}
	return models.Specialist{}, false
}
