package todo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StorageKey names this application's snapshot in every backend
const StorageKey = "neo-brutalism-todo-storage"

// SnapshotVersion is written into every envelope
const SnapshotVersion = 0

// envelope is the on-disk shape: {"state": {...}, "version": 0}
type envelope struct {
	State   wireState `json:"state"`
	Version int       `json:"version"`
}

type wireState struct {
	Todos        []wireTask `json:"todos"`
	Filter       string     `json:"filter,omitempty"`
	DarkMode     *bool      `json:"darkMode,omitempty"`
	SoundEnabled *bool      `json:"soundEnabled,omitempty"`
}

// wireTask also reads "text", the title field of the older schema
type wireTask struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Text        string    `json:"text,omitempty"`
	Description string    `json:"description"`
	Priority    string    `json:"priority,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EncodeSnapshot serializes snap into the persisted envelope
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	todos := make([]wireTask, len(snap.Tasks))
	for i, task := range snap.Tasks {
		todos[i] = wireTask{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Priority:    string(task.Priority),
			Completed:   task.Completed,
			CreatedAt:   task.CreatedAt,
		}
	}

	darkMode, soundEnabled := snap.DarkMode, snap.SoundEnabled
	data, err := json.Marshal(envelope{
		State: wireState{
			Todos:        todos,
			Filter:       string(snap.Filter),
			DarkMode:     &darkMode,
			SoundEnabled: &soundEnabled,
		},
		Version: SnapshotVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses an envelope. Fields missing from the stored state
// take their defaults; values are not otherwise validated.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Snapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	defaults := DefaultState()
	snap := Snapshot{
		Tasks:        make([]Task, 0, len(env.State.Todos)),
		Filter:       Filter(env.State.Filter),
		DarkMode:     defaults.DarkMode,
		SoundEnabled: defaults.SoundEnabled,
	}
	if env.State.DarkMode != nil {
		snap.DarkMode = *env.State.DarkMode
	}
	if env.State.SoundEnabled != nil {
		snap.SoundEnabled = *env.State.SoundEnabled
	}

	for _, wt := range env.State.Todos {
		title := wt.Title
		if title == "" {
			title = wt.Text
		}
		snap.Tasks = append(snap.Tasks, Task{
			ID:          wt.ID,
			Title:       title,
			Description: wt.Description,
			Priority:    Priority(wt.Priority),
			Completed:   wt.Completed,
			CreatedAt:   wt.CreatedAt,
		})
	}
	return snap, nil
}

// sanitizeSnapshot restores the store invariants on hydrated data: titles
// trimmed and non-empty, ids present and unique, known priority and filter
func sanitizeSnapshot(snap Snapshot) Snapshot {
	seen := make(map[string]bool, len(snap.Tasks))
	tasks := make([]Task, 0, len(snap.Tasks))
	for _, task := range snap.Tasks {
		task.Title = strings.TrimSpace(task.Title)
		if task.ID == "" || task.Title == "" || seen[task.ID] {
			continue
		}
		seen[task.ID] = true
		if !task.Priority.Valid() {
			task.Priority = PriorityMedium
		}
		tasks = append(tasks, task)
	}
	snap.Tasks = tasks

	if !snap.Filter.Valid() {
		snap.Filter = FilterAll
	}
	return snap
}

func stateFromSnapshot(snap Snapshot) State {
	return State{
		Tasks:        copyTasks(snap.Tasks),
		Filter:       snap.Filter,
		DarkMode:     snap.DarkMode,
		SoundEnabled: snap.SoundEnabled,
	}
}
