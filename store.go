package todo

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fmizzell/todo/internal/logging"
)

// Store is the single source of truth for tasks and UI settings.
// It is safe for use by multiple goroutines; operations never interleave.
type Store struct {
	mu    sync.Mutex
	state State
	repo  Repository

	clock     func() time.Time
	newID     func() string
	onError   func(error)
	listeners listenerSet
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithClock sets the time source used for event and creation timestamps
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator sets the function used to propose task ids.
// Proposals that collide with an existing id are retried.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) { s.newID = newID }
}

// WithErrorHandler sets the side channel that receives persistence failures
func WithErrorHandler(fn func(error)) StoreOption {
	return func(s *Store) { s.onError = fn }
}

// NewStore creates a store and hydrates it once from repo. A nil repo keeps
// state in memory only. Hydration failures fall back to defaults.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	s := &Store{
		state:   DefaultState(),
		repo:    repo,
		clock:   time.Now,
		newID:   generateTaskID,
		onError: logPersistError,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.hydrate()
	return s
}

func generateTaskID() string {
	// Short UUID-based ID, collisions are retried by the before hook
	return "T-" + uuid.New().String()[:8]
}

func logPersistError(err error) {
	logging.Info("store", "failed to persist snapshot: %v", err)
}

func (s *Store) hydrate() {
	if s.repo == nil {
		return
	}

	snap, err := s.repo.Load()
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			logging.Debug("store", "no snapshot found, starting empty")
		} else {
			logging.Info("store", "ignoring unreadable snapshot: %v", err)
		}
		return
	}

	s.state = stateFromSnapshot(sanitizeSnapshot(snap))
	logging.Debug("store", "hydrated %d tasks (filter=%s)", len(s.state.Tasks), s.state.Filter)
}

// process runs an event through its before hook and reducer, commits the
// result, persists it and then notifies listeners
func (s *Store) process(event Event) (Change, bool) {
	s.mu.Lock()

	event, err := s.before(s.state, event)
	if err != nil {
		s.mu.Unlock()
		logging.Debug("store", "%s ignored: %v", event.Type(), err)
		return Change{}, false
	}

	s.state = reduce(s.state, event)
	var saveErr error
	if event.Persisted() {
		saveErr = s.persist(s.state.Snapshot())
	}
	change := Change{Event: event, State: s.state.clone()}
	// Queued under the lock so listeners see changes in commit order
	s.listeners.enqueue(change)
	s.mu.Unlock()

	if saveErr != nil && s.onError != nil {
		s.onError(saveErr)
	}
	s.listeners.drain()
	return change, true
}

// persist writes snap. The caller reports failures after releasing the
// lock; they never reach state.
func (s *Store) persist(snap Snapshot) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Save(snap)
}

// Flush writes the current snapshot and returns any storage error
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		return nil
	}
	return s.repo.Save(s.state.Snapshot())
}

// Subscribe registers a listener and returns a function that removes it
func (s *Store) Subscribe(fn Listener) func() {
	return s.listeners.add(fn)
}

// ============================================================================
// MUTATIONS
// ============================================================================

// AddTask appends a new task. It returns false, changing nothing, when the
// title is blank.
func (s *Store) AddTask(input TaskInput) (Task, bool) {
	change, ok := s.process(TaskAdded{
		Task: Task{
			Title:       input.Title,
			Description: input.Description,
			Priority:    input.Priority,
			Completed:   input.Completed,
			CreatedAt:   input.CreatedAt,
		},
		Time: s.clock(),
	})
	if !ok {
		return Task{}, false
	}
	return change.Event.(TaskAdded).Task, true
}

// ToggleTask flips the completion of task id; unknown ids are ignored
func (s *Store) ToggleTask(id string) bool {
	_, ok := s.process(TaskToggled{TaskID: id, Time: s.clock()})
	return ok
}

// DeleteTask removes task id; unknown ids are ignored
func (s *Store) DeleteTask(id string) bool {
	_, ok := s.process(TaskDeleted{TaskID: id, Time: s.clock()})
	return ok
}

// EditTask replaces the title of task id with the trimmed newTitle.
// Blank titles and unknown ids are ignored.
func (s *Store) EditTask(id, newTitle string) bool {
	_, ok := s.process(TaskEdited{TaskID: id, Title: newTitle, Time: s.clock()})
	return ok
}

// ClearCompleted removes every completed task and returns how many were removed
func (s *Store) ClearCompleted() int {
	change, ok := s.process(CompletedCleared{Time: s.clock()})
	if !ok {
		return 0
	}
	return len(change.Event.(CompletedCleared).Removed)
}

// SetFilter selects the active filter. Unrecognized filters are ignored.
func (s *Store) SetFilter(f Filter) bool {
	_, ok := s.process(FilterChanged{Filter: f, Time: s.clock()})
	return ok
}

// ToggleDarkMode flips dark mode and returns the new value
func (s *Store) ToggleDarkMode() bool {
	change, _ := s.process(DarkModeToggled{Time: s.clock()})
	return change.State.DarkMode
}

// ToggleSound flips the sound flag and returns the new value
func (s *Store) ToggleSound() bool {
	change, _ := s.process(SoundToggled{Time: s.clock()})
	return change.State.SoundEnabled
}

// SetIsAnimating sets the transient animation flag. It is never persisted.
func (s *Store) SetIsAnimating(animating bool) {
	s.process(AnimatingChanged{Animating: animating, Time: s.clock()})
}

// ============================================================================
// QUERIES
// ============================================================================

// State returns a copy of the full state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Snapshot returns the persisted subset of the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Tasks returns all tasks in insertion order
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTasks(s.state.Tasks)
}

// Task returns the task with the given id
func (s *Store) Task(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOfTask(s.state.Tasks, id); i >= 0 {
		return s.state.Tasks[i], true
	}
	return Task{}, false
}

func (s *Store) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Filter
}

func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DarkMode
}

func (s *Store) SoundEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SoundEnabled
}

func (s *Store) IsAnimating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAnimating
}

// FilteredTasks returns the tasks matching the current filter, in insertion order
func (s *Store) FilteredTasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterTasks(s.state.Tasks, s.state.Filter)
}

// ActiveCount returns the number of tasks not yet completed
func (s *Store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CountActive(s.state.Tasks)
}

// CompletedCount returns the number of completed tasks
func (s *Store) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CountCompleted(s.state.Tasks)
}
