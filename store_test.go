package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTodoJourney walks the end-to-end scenario: add, toggle, rejected add,
// edit, clear completed
func TestTodoJourney(t *testing.T) {
	s, _ := newTestStore()
	assert.Empty(t, s.Tasks())

	task, ok := s.AddTask(TaskInput{Title: "Buy milk"})
	require.True(t, ok)
	assert.Len(t, s.Tasks(), 1)
	assert.False(t, task.Completed)

	assert.True(t, s.ToggleTask(task.ID))
	got, _ := s.Task(task.ID)
	assert.True(t, got.Completed)
	assert.Equal(t, 0, s.ActiveCount())
	assert.Equal(t, 1, s.CompletedCount())

	_, ok = s.AddTask(TaskInput{Title: "  "})
	assert.False(t, ok)
	assert.Len(t, s.Tasks(), 1)

	assert.True(t, s.EditTask(task.ID, "Buy oat milk"))
	got, _ = s.Task(task.ID)
	assert.Equal(t, "Buy oat milk", got.Title)

	assert.Equal(t, 1, s.ClearCompleted())
	assert.Empty(t, s.Tasks())
}

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore(nil)

	assert.Empty(t, s.Tasks())
	assert.Equal(t, FilterAll, s.Filter())
	assert.True(t, s.DarkMode())
	assert.True(t, s.SoundEnabled())
	assert.False(t, s.IsAnimating())
}

func TestAddTaskAppliesDefaults(t *testing.T) {
	s, _ := newTestStore()

	task, ok := s.AddTask(TaskInput{Title: "  Write report  "})
	require.True(t, ok)

	assert.Equal(t, "T1", task.ID)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.False(t, task.Completed)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 1, 0, time.UTC), task.CreatedAt)
}

func TestAddTaskKeepsProvidedFields(t *testing.T) {
	s, _ := newTestStore()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	task, ok := s.AddTask(TaskInput{
		Title:       "Call the bank",
		Description: "ask about the fee",
		Priority:    PriorityHigh,
		Completed:   true,
		CreatedAt:   created,
	})
	require.True(t, ok)

	assert.Equal(t, "ask about the fee", task.Description)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.True(t, task.Completed)
	assert.Equal(t, created, task.CreatedAt)
}

func TestAddTaskUnknownPriorityFallsBackToMedium(t *testing.T) {
	s, _ := newTestStore()

	task, ok := s.AddTask(TaskInput{Title: "Sweep", Priority: "urgent"})
	require.True(t, ok)
	assert.Equal(t, PriorityMedium, task.Priority)
}

func TestAddTaskGrowsByOneWithUniqueIDs(t *testing.T) {
	s := NewStore(nil)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		before := len(s.Tasks())
		task, ok := s.AddTask(TaskInput{Title: "task"})
		require.True(t, ok)
		assert.Len(t, s.Tasks(), before+1)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestAddTaskRetriesCollidingIDs(t *testing.T) {
	ids := []string{"A", "A", "A", "B"}
	next := 0
	s := NewStore(nil, WithIDGenerator(func() string {
		id := ids[next]
		next++
		return id
	}))

	first, ok := s.AddTask(TaskInput{Title: "one"})
	require.True(t, ok)
	second, ok := s.AddTask(TaskInput{Title: "two"})
	require.True(t, ok)

	assert.Equal(t, "A", first.ID)
	assert.Equal(t, "B", second.ID)
}

func TestAddTaskRejectsBlankTitle(t *testing.T) {
	s, repo := newTestStore()
	s.AddTask(TaskInput{Title: "keep me"})
	before := s.Tasks()
	saves := repo.Saves()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, ok := s.AddTask(TaskInput{Title: title})
		assert.False(t, ok)
	}

	assert.Equal(t, before, s.Tasks())
	assert.Equal(t, saves, repo.Saves())
}

func TestToggleTaskTwiceRestoresCompletion(t *testing.T) {
	s, _ := newTestStore()
	task, _ := s.AddTask(TaskInput{Title: "Stretch"})

	s.ToggleTask(task.ID)
	s.ToggleTask(task.ID)

	got, _ := s.Task(task.ID)
	assert.False(t, got.Completed)
}

func TestToggleTaskUnknownIDIsNoop(t *testing.T) {
	s, repo := newTestStore()
	s.AddTask(TaskInput{Title: "Stretch"})
	before := s.Tasks()
	saves := repo.Saves()

	assert.False(t, s.ToggleTask("missing"))
	assert.Equal(t, before, s.Tasks())
	assert.Equal(t, saves, repo.Saves())
}

func TestDeleteTask(t *testing.T) {
	s, _ := newTestStore()
	a, _ := s.AddTask(TaskInput{Title: "a"})
	b, _ := s.AddTask(TaskInput{Title: "b"})
	c, _ := s.AddTask(TaskInput{Title: "c"})

	assert.True(t, s.DeleteTask(b.ID))
	assert.Equal(t, []string{a.ID, c.ID}, taskIDs(s.Tasks()))

	assert.False(t, s.DeleteTask(b.ID))
	assert.Len(t, s.Tasks(), 2)
}

func TestEditTask(t *testing.T) {
	s, repo := newTestStore()
	task, _ := s.AddTask(TaskInput{Title: "Draft", Description: "notes"})

	assert.True(t, s.EditTask(task.ID, "  Final draft "))
	got, _ := s.Task(task.ID)
	assert.Equal(t, "Final draft", got.Title)
	assert.Equal(t, "notes", got.Description)
	assert.Equal(t, task.CreatedAt, got.CreatedAt)

	saves := repo.Saves()
	assert.False(t, s.EditTask(task.ID, "   "))
	got, _ = s.Task(task.ID)
	assert.Equal(t, "Final draft", got.Title)
	assert.Equal(t, saves, repo.Saves(), "rejected edit must not persist")

	assert.False(t, s.EditTask("missing", "anything"))
}

func TestClearCompletedPreservesSurvivorOrder(t *testing.T) {
	s, _ := newTestStore()
	var ids []string
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		task, _ := s.AddTask(TaskInput{Title: title})
		ids = append(ids, task.ID)
	}
	s.ToggleTask(ids[1])
	s.ToggleTask(ids[3])

	assert.Equal(t, 2, s.ClearCompleted())

	assert.Equal(t, []string{ids[0], ids[2], ids[4]}, taskIDs(s.Tasks()))
	assert.Equal(t, 0, s.CompletedCount())
	assert.Equal(t, 0, s.ClearCompleted())
}

func TestFilteredTasks(t *testing.T) {
	s, _ := newTestStore()
	var ids []string
	for _, title := range []string{"a", "b", "c", "d"} {
		task, _ := s.AddTask(TaskInput{Title: title})
		ids = append(ids, task.ID)
	}
	s.ToggleTask(ids[0])
	s.ToggleTask(ids[2])

	assert.Equal(t, ids, taskIDs(s.FilteredTasks()))

	require.True(t, s.SetFilter(FilterActive))
	active := s.FilteredTasks()
	assert.Equal(t, []string{ids[1], ids[3]}, taskIDs(active))
	for _, task := range active {
		assert.False(t, task.Completed)
	}

	require.True(t, s.SetFilter(FilterCompleted))
	completed := s.FilteredTasks()
	assert.Equal(t, []string{ids[0], ids[2]}, taskIDs(completed))
	for _, task := range completed {
		assert.True(t, task.Completed)
	}
}

func TestCountsSumToTotal(t *testing.T) {
	s, _ := newTestStore()
	for i := 0; i < 7; i++ {
		task, _ := s.AddTask(TaskInput{Title: "x"})
		if i%3 == 0 {
			s.ToggleTask(task.ID)
		}
		assert.Equal(t, len(s.Tasks()), s.ActiveCount()+s.CompletedCount())
	}
	assert.Equal(t, 3, s.CompletedCount())
	assert.Equal(t, 4, s.ActiveCount())
}

func TestSetFilterRejectsUnknownValues(t *testing.T) {
	s, repo := newTestStore()
	s.SetFilter(FilterActive)
	saves := repo.Saves()

	assert.False(t, s.SetFilter("done"))
	assert.Equal(t, FilterActive, s.Filter())
	assert.Equal(t, saves, repo.Saves())
}

func TestToggleSettings(t *testing.T) {
	s, repo := newTestStore()

	assert.False(t, s.ToggleDarkMode())
	assert.False(t, s.DarkMode())
	assert.True(t, s.ToggleDarkMode())

	assert.False(t, s.ToggleSound())
	assert.False(t, s.SoundEnabled())

	assert.Equal(t, 3, repo.Saves())
}

func TestSetIsAnimatingIsNotPersisted(t *testing.T) {
	s, repo := newTestStore()

	s.SetIsAnimating(true)
	assert.True(t, s.IsAnimating())
	assert.Equal(t, 0, repo.Saves())

	s.SetIsAnimating(false)
	assert.False(t, s.IsAnimating())
}

func TestReturnedSlicesDoNotAliasState(t *testing.T) {
	s, _ := newTestStore()
	task, _ := s.AddTask(TaskInput{Title: "original"})

	tasks := s.Tasks()
	tasks[0].Title = "mutated"
	state := s.State()
	state.Tasks[0].Completed = true

	got, _ := s.Task(task.ID)
	assert.Equal(t, "original", got.Title)
	assert.False(t, got.Completed)
}

func TestDefaultIDFormat(t *testing.T) {
	id := generateTaskID()
	assert.Regexp(t, `^T-[0-9a-f]{8}$`, id)
}
