package scheduler

import (
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger adapts zap to the logger interface cron expects.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw("scheduler: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw("scheduler: "+msg, append(keysAndValues, "error", err)...)
}

type cronScheduler struct {
	cron *cron.Cron
	log  *zap.Logger
	once sync.Once
}

// NewCronScheduler starts a cron runner. A job that is still running when
// its next activation comes up is skipped for that activation.
func NewCronScheduler(logger *zap.Logger) contracts.Scheduler {
	adapter := cronLogger{sugar: logger.Sugar()}
	c := cron.New(
		cron.WithLogger(adapter),
		cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter)),
	)
	c.Start()
	return &cronScheduler{cron: c, log: logger}
}

func (s *cronScheduler) Every(period time.Duration, job func()) (contracts.ScheduleHandle, error) {
	if period < time.Second {
		return nil, exceptions.ErrInvalidPeriod(period)
	}

	id := s.cron.Schedule(cron.Every(period), cron.FuncJob(job))
	s.log.Debug("cronScheduler.Every scheduled job",
		zap.Int("entry_id", int(id)),
		zap.Duration(constvars.LoggingPeriodKey, period),
	)
	return &cronHandle{cron: s.cron, id: id}, nil
}

// Stop waits for running jobs to finish.
func (s *cronScheduler) Stop() {
	s.once.Do(func() {
		ctx := s.cron.Stop()
		<-ctx.Done()
	})
}

type cronHandle struct {
	cron *cron.Cron
	id   cron.EntryID
	once sync.Once
}

func (h *cronHandle) Cancel() {
	h.once.Do(func() {
		h.cron.Remove(h.id)
	})
}

func (h *cronHandle) Next() time.Time {
	return h.cron.Entry(h.id).Next
}
