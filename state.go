package todo

import (
	"fmt"
	"strings"
	"time"
)

// Priority ranks a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority returns the priority named by s, or ErrUnknownPriority
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// Valid reports whether p is one of the recognized priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Filter selects which tasks a view shows
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the recognized filters in display order
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter returns the filter named by s, or ErrUnknownFilter
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Valid reports whether f is one of the recognized filters
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Next cycles all -> active -> completed -> all
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Task represents a single to-do entry
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
}

// TaskInput carries the fields accepted by AddTask. Zero values take defaults.
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
}

// State is the full store state, including transient flags
type State struct {
	Tasks        []Task
	Filter       Filter
	DarkMode     bool
	SoundEnabled bool
	IsAnimating  bool
}

// Snapshot is the persisted subset of State
type Snapshot struct {
	Tasks        []Task
	Filter       Filter
	DarkMode     bool
	SoundEnabled bool
}

// DefaultState returns the state of a store with nothing hydrated
func DefaultState() State {
	return State{
		Tasks:        []Task{},
		Filter:       FilterAll,
		DarkMode:     true,
		SoundEnabled: true,
	}
}

// Snapshot returns the persisted subset of s
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Tasks:        copyTasks(s.Tasks),
		Filter:       s.Filter,
		DarkMode:     s.DarkMode,
		SoundEnabled: s.SoundEnabled,
	}
}

// clone returns a copy of s that shares no task storage with it
func (s State) clone() State {
	s.Tasks = copyTasks(s.Tasks)
	return s
}

func copyTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

func indexOfTask(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
