package search

import "time"

// Timer is a pending quiet-period callback.
type Timer interface {
	Stop() bool
}

// Scheduler arms quiet-period timers.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
