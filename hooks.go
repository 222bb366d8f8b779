package todo

import (
	"fmt"
	"strings"
)

// ============================================================================
// BEFORE HOOKS - normalize an event against the current state, or reject it
// ============================================================================

// maxIDAttempts bounds retries when a generated id collides with an existing one
const maxIDAttempts = 16

func (s *Store) before(state State, event Event) (Event, error) {
	switch e := event.(type) {
	case TaskAdded:
		return s.beforeTaskAdded(state, e)
	case TaskToggled:
		return e, requireTask(state, e.TaskID)
	case TaskDeleted:
		return e, requireTask(state, e.TaskID)
	case TaskEdited:
		return beforeTaskEdited(state, e)
	case CompletedCleared:
		return beforeCompletedCleared(state, e)
	case FilterChanged:
		if !e.Filter.Valid() {
			return e, fmt.Errorf("%w: %w: %q", ErrEventRejected, ErrUnknownFilter, e.Filter)
		}
		return e, nil
	case DarkModeToggled, SoundToggled, AnimatingChanged:
		return e, nil
	}
	return event, fmt.Errorf("%w: unhandled event %s", ErrEventRejected, event.Type())
}

// beforeTaskAdded trims the title, applies defaults and assigns a fresh id
func (s *Store) beforeTaskAdded(state State, e TaskAdded) (Event, error) {
	task := e.Task
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return e, fmt.Errorf("%w: %w", ErrEventRejected, ErrEmptyTitle)
	}
	if !task.Priority.Valid() {
		task.Priority = PriorityMedium
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = e.Time
	}
	task.CreatedAt = task.CreatedAt.UTC().Round(0)

	id, err := s.uniqueID(state.Tasks)
	if err != nil {
		return e, fmt.Errorf("%w: %w", ErrEventRejected, err)
	}
	task.ID = id

	e.Task = task
	return e, nil
}

func (s *Store) uniqueID(tasks []Task) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if id != "" && indexOfTask(tasks, id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique id after %d attempts", maxIDAttempts)
}

func beforeTaskEdited(state State, e TaskEdited) (Event, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return e, fmt.Errorf("%w: %w", ErrEventRejected, ErrEmptyTitle)
	}
	return e, requireTask(state, e.TaskID)
}

// beforeCompletedCleared records which tasks the reducer will drop
func beforeCompletedCleared(state State, e CompletedCleared) (Event, error) {
	e.Removed = nil
	for _, task := range state.Tasks {
		if task.Completed {
			e.Removed = append(e.Removed, task.ID)
		}
	}
	if len(e.Removed) == 0 {
		return e, fmt.Errorf("%w: %w", ErrEventRejected, ErrNothingToClear)
	}
	return e, nil
}

func requireTask(state State, id string) error {
	if indexOfTask(state.Tasks, id) < 0 {
		return fmt.Errorf("%w: %w: %s", ErrEventRejected, ErrTaskNotFound, id)
	}
	return nil
}
