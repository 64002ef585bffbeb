package contracts

import "time"

// ScheduleHandle owns exactly one scheduled job.
type ScheduleHandle interface {
	// Cancel removes the job. Further calls are no-ops.
	Cancel()
	// Next reports the next activation, or the zero time once cancelled.
	Next() time.Time
}

type Scheduler interface {
	Every(period time.Duration, job func()) (ScheduleHandle, error)
	Stop()
}
