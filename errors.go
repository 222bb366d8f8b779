package todo

import "errors"

var (
	// ErrEventRejected wraps every reason a before hook declines an event
	ErrEventRejected = errors.New("event was rejected by validators")

	ErrEmptyTitle      = errors.New("title is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNothingToClear  = errors.New("no completed tasks")
	ErrUnknownFilter   = errors.New("unknown filter")
	ErrUnknownPriority = errors.New("unknown priority")

	// ErrNoSnapshot is returned by Repository.Load when nothing has been saved yet
	ErrNoSnapshot = errors.New("no snapshot stored")
)
