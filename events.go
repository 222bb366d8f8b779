package todo

import "time"

// Event is a state transition requested of the store
type Event interface {
	Type() string
	Timestamp() time.Time
	// Persisted reports whether committing the event writes a snapshot
	Persisted() bool
}

// TaskAdded event
type TaskAdded struct {
	Task Task
	Time time.Time
}

func (e TaskAdded) Type() string         { return "task_added" }
func (e TaskAdded) Timestamp() time.Time { return e.Time }
func (e TaskAdded) Persisted() bool      { return true }

// TaskToggled event
type TaskToggled struct {
	TaskID string
	Time   time.Time
}

func (e TaskToggled) Type() string         { return "task_toggled" }
func (e TaskToggled) Timestamp() time.Time { return e.Time }
func (e TaskToggled) Persisted() bool      { return true }

// TaskDeleted event
type TaskDeleted struct {
	TaskID string
	Time   time.Time
}

func (e TaskDeleted) Type() string         { return "task_deleted" }
func (e TaskDeleted) Timestamp() time.Time { return e.Time }
func (e TaskDeleted) Persisted() bool      { return true }

// TaskEdited event
type TaskEdited struct {
	TaskID string
	Title  string
	Time   time.Time
}

func (e TaskEdited) Type() string         { return "task_edited" }
func (e TaskEdited) Timestamp() time.Time { return e.Time }
func (e TaskEdited) Persisted() bool      { return true }

// CompletedCleared event. Removed is filled in by the before hook.
type CompletedCleared struct {
	Removed []string
	Time    time.Time
}

func (e CompletedCleared) Type() string         { return "completed_cleared" }
func (e CompletedCleared) Timestamp() time.Time { return e.Time }
func (e CompletedCleared) Persisted() bool      { return true }

// FilterChanged event
type FilterChanged struct {
	Filter Filter
	Time   time.Time
}

func (e FilterChanged) Type() string         { return "filter_changed" }
func (e FilterChanged) Timestamp() time.Time { return e.Time }
func (e FilterChanged) Persisted() bool      { return true }

// DarkModeToggled event
type DarkModeToggled struct {
	Time time.Time
}

func (e DarkModeToggled) Type() string         { return "dark_mode_toggled" }
func (e DarkModeToggled) Timestamp() time.Time { return e.Time }
func (e DarkModeToggled) Persisted() bool      { return true }

// SoundToggled event
type SoundToggled struct {
	Time time.Time
}

func (e SoundToggled) Type() string         { return "sound_toggled" }
func (e SoundToggled) Timestamp() time.Time { return e.Time }
func (e SoundToggled) Persisted() bool      { return true }

// AnimatingChanged event. Transient, never written to storage.
type AnimatingChanged struct {
	Animating bool
	Time      time.Time
}

func (e AnimatingChanged) Type() string         { return "animating_changed" }
func (e AnimatingChanged) Timestamp() time.Time { return e.Time }
func (e AnimatingChanged) Persisted() bool      { return false }
