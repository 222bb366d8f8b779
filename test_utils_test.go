package todo

import (
	"fmt"
	"time"
)

// Test utilities - shared helpers for tests

// testClock returns a clock that advances one second per call from a fixed start
func testClock() func() time.Time {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

// sequentialIDs returns an id generator yielding T1, T2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("T%d", n)
	}
}

// newTestStore creates a store on an in-memory repository with deterministic ids and time
func newTestStore(opts ...StoreOption) (*Store, *MemoryRepository) {
	repo := NewMemoryRepository()
	opts = append([]StoreOption{WithClock(testClock()), WithIDGenerator(sequentialIDs())}, opts...)
	return NewStore(repo, opts...), repo
}

func taskIDs(tasks []Task) []string {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}
