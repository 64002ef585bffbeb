package finder

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/app/services/core/directory"
	"esveikata-finder/internal/pkg/dto/requests"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type fakeScheduler struct {
	mu      sync.Mutex
	handles []*fakeHandle
}

type fakeHandle struct {
	scheduler *fakeScheduler
	period    time.Duration
	job       func()
	next      time.Time
	cancelled bool
}

func (s *fakeScheduler) Every(period time.Duration, job func()) (contracts.ScheduleHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	handle := &fakeHandle{scheduler: s, period: period, job: job, next: time.Unix(0, 0).Add(period)}
	s.handles = append(s.handles, handle)
	return handle, nil
}

func (s *fakeScheduler) Stop() {}

// Fire runs every job that has not been cancelled, in order of scheduling.
func (s *fakeScheduler) Fire() {
	s.mu.Lock()
	var jobs []func()
	for _, handle := range s.handles {
		if !handle.cancelled {
			jobs = append(jobs, handle.job)
		}
	}
	s.mu.Unlock()

	for _, job := range jobs {
		job()
	}
}

// Job returns the job of the i-th scheduled handle, cancelled or not, to
// model an activation that was already due when its entry was removed.
func (s *fakeScheduler) Job(i int) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handles[i].job
}

func (s *fakeScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := 0
	for _, handle := range s.handles {
		if !handle.cancelled {
			active++
		}
	}
	return active
}

func (h *fakeHandle) Cancel() {
	h.scheduler.mu.Lock()
	defer h.scheduler.mu.Unlock()
	h.cancelled = true
}

func (h *fakeHandle) Next() time.Time {
	h.scheduler.mu.Lock()
	defer h.scheduler.mu.Unlock()
	if h.cancelled {
		return time.Time{}
	}
	return h.next
}

type fakeDirectory struct {
	specialists    []models.Specialist
	municipalities map[models.ID]models.ID
	minQueryLength int
	err            error
}

func (d *fakeDirectory) Specialists(ctx context.Context) ([]models.Specialist, error) {
	return d.specialists, d.err
}

func (d *fakeDirectory) Institutions(ctx context.Context) ([]models.Institution, error) {
	return nil, d.err
}

func (d *fakeDirectory) FilterSpecialists(ctx context.Context, query string) ([]models.Specialist, error) {
	if d.err != nil {
		return nil, d.err
	}
	if len([]rune(query)) < d.minQueryLength {
		return nil, nil
	}
	return directory.FilterSpecialists(query, d.specialists), nil
}

func (d *fakeDirectory) MunicipalityOf(ctx context.Context, specialist models.Specialist) (models.ID, error) {
	return d.municipalities[specialist.Institution.IstgID], nil
}

// fakeSlotClient answers from respond and records every query.
type fakeSlotClient struct {
	mu      sync.Mutex
	queries []models.SlotQuery
	respond func(ctx context.Context, query models.SlotQuery) ([]models.AppointmentSlot, error)
}

func (c *fakeSlotClient) Search(ctx context.Context, query models.SlotQuery) ([]models.AppointmentSlot, error) {
	c.mu.Lock()
	c.queries = append(c.queries, query)
	respond := c.respond
	c.mu.Unlock()
	if respond == nil {
		return nil, nil
	}
	return respond(ctx, query)
}

func (c *fakeSlotClient) Calls() []models.SlotQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.SlotQuery(nil), c.queries...)
}

func (c *fakeSlotClient) SetRespond(respond func(ctx context.Context, query models.SlotQuery) ([]models.AppointmentSlot, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.respond = respond
}

type MockSlotNotifier struct {
	mock.Mock
}

func (m *MockSlotNotifier) NotifySlotsAvailable(ctx context.Context, notification *requests.SlotsAvailableNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
