package todo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenersNotifiedAfterCommit(t *testing.T) {
	s, repo := newTestStore()

	var changes []Change
	var savesSeen []int
	s.Subscribe(func(c Change) {
		changes = append(changes, c)
		savesSeen = append(savesSeen, repo.Saves())
	})

	task, _ := s.AddTask(TaskInput{Title: "Listen"})
	s.ToggleTask(task.ID)
	s.SetIsAnimating(true)

	require.Len(t, changes, 3)
	assert.Equal(t, "task_added", changes[0].Event.Type())
	assert.Equal(t, "task_toggled", changes[1].Event.Type())
	assert.Equal(t, "animating_changed", changes[2].Event.Type())

	// State is already committed and saved when the listener runs
	assert.Len(t, changes[0].State.Tasks, 1)
	assert.True(t, changes[1].State.Tasks[0].Completed)
	assert.True(t, changes[2].State.IsAnimating)
	assert.Equal(t, []int{1, 2, 2}, savesSeen)
}

func TestListenersNotNotifiedForRejectedOperations(t *testing.T) {
	s, _ := newTestStore()
	calls := 0
	s.Subscribe(func(Change) { calls++ })

	s.AddTask(TaskInput{Title: " "})
	s.ToggleTask("missing")
	s.DeleteTask("missing")
	s.EditTask("missing", "x")
	s.ClearCompleted()
	s.SetFilter("nope")

	assert.Equal(t, 0, calls)
}

func TestListenersRunInSubscriptionOrder(t *testing.T) {
	s, _ := newTestStore()
	var order []string
	s.Subscribe(func(Change) { order = append(order, "first") })
	s.Subscribe(func(Change) { order = append(order, "second") })

	s.ToggleDarkMode()

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe(t *testing.T) {
	s, _ := newTestStore()
	calls := 0
	unsubscribe := s.Subscribe(func(Change) { calls++ })

	s.ToggleSound()
	unsubscribe()
	unsubscribe()
	s.ToggleSound()

	assert.Equal(t, 1, calls)
}

func TestListenerMayCallBackIntoStore(t *testing.T) {
	s, _ := newTestStore()

	var counts []int
	s.Subscribe(TypedListenerFunc[TaskAdded](func(e TaskAdded, _ State) {
		counts = append(counts, s.ActiveCount())
		if e.Task.Title == "parent" {
			s.AddTask(TaskInput{Title: "follow-up"})
		}
	}).Listener())

	s.AddTask(TaskInput{Title: "parent"})
	s.ToggleDarkMode()

	assert.Equal(t, []int{1, 2}, counts)
	assert.Len(t, s.Tasks(), 2)
}

func TestNestedChangesReachLaterListenersInCommitOrder(t *testing.T) {
	s, _ := newTestStore()

	s.Subscribe(TypedListenerFunc[TaskAdded](func(e TaskAdded, _ State) {
		if e.Task.Title == "parent" {
			s.AddTask(TaskInput{Title: "child"})
		}
	}).Listener())

	var titles []string
	var last State
	s.Subscribe(TypedListenerFunc[TaskAdded](func(e TaskAdded, st State) {
		titles = append(titles, e.Task.Title)
		last = st
	}).Listener())

	s.AddTask(TaskInput{Title: "parent"})

	assert.Equal(t, []string{"parent", "child"}, titles)
	assert.Len(t, last.Tasks, 2)
}

func TestConcurrentOperationsDoNotInterleave(t *testing.T) {
	s := NewStore(NewMemoryRepository())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task, ok := s.AddTask(TaskInput{Title: "concurrent"})
			if ok {
				s.ToggleTask(task.ID)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, s.Tasks(), 20)
	assert.Equal(t, 20, s.CompletedCount())
	assert.Equal(t, len(s.Tasks()), s.ActiveCount()+s.CompletedCount())
}
