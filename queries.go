package todo

// FilterTasks returns the tasks matching f without reordering them.
// The result never aliases tasks.
func FilterTasks(tasks []Task, f Filter) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		switch f {
		case FilterActive:
			if task.Completed {
				continue
			}
		case FilterCompleted:
			if !task.Completed {
				continue
			}
		}
		result = append(result, task)
	}
	return result
}

// CountActive counts tasks not yet completed
func CountActive(tasks []Task) int {
	n := 0
	for _, task := range tasks {
		if !task.Completed {
			n++
		}
	}
	return n
}

// CountCompleted counts completed tasks
func CountCompleted(tasks []Task) int {
	return len(tasks) - CountActive(tasks)
}

// EmptyMessage is the headline shown when f matches no tasks
func EmptyMessage(f Filter) string {
	switch f {
	case FilterActive:
		return "No active tasks. All tasks are done!"
	case FilterCompleted:
		return "No completed tasks. Complete some tasks!"
	}
	return "No tasks yet. Add some tasks to get started!"
}
