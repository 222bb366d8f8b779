package todo

// reduce applies a validated event to state. Reducers never modify the
// task slice they are given; committed states may still be shared with
// listeners.
func reduce(state State, event Event) State {
	switch e := event.(type) {
	case TaskAdded:
		return reduceTaskAdded(state, e)
	case TaskToggled:
		return reduceTaskToggled(state, e)
	case TaskDeleted:
		return reduceTaskDeleted(state, e)
	case TaskEdited:
		return reduceTaskEdited(state, e)
	case CompletedCleared:
		return reduceCompletedCleared(state, e)
	case FilterChanged:
		state.Filter = e.Filter
	case DarkModeToggled:
		state.DarkMode = !state.DarkMode
	case SoundToggled:
		state.SoundEnabled = !state.SoundEnabled
	case AnimatingChanged:
		state.IsAnimating = e.Animating
	}
	return state
}

// reduceTaskAdded appends, keeping insertion order as display order
func reduceTaskAdded(state State, e TaskAdded) State {
	tasks := make([]Task, len(state.Tasks), len(state.Tasks)+1)
	copy(tasks, state.Tasks)
	state.Tasks = append(tasks, e.Task)
	return state
}

func reduceTaskToggled(state State, e TaskToggled) State {
	i := indexOfTask(state.Tasks, e.TaskID)
	if i < 0 {
		return state
	}
	state.Tasks = copyTasks(state.Tasks)
	state.Tasks[i].Completed = !state.Tasks[i].Completed
	return state
}

func reduceTaskDeleted(state State, e TaskDeleted) State {
	tasks := make([]Task, 0, len(state.Tasks))
	for _, task := range state.Tasks {
		if task.ID != e.TaskID {
			tasks = append(tasks, task)
		}
	}
	state.Tasks = tasks
	return state
}

func reduceTaskEdited(state State, e TaskEdited) State {
	i := indexOfTask(state.Tasks, e.TaskID)
	if i < 0 {
		return state
	}
	state.Tasks = copyTasks(state.Tasks)
	state.Tasks[i].Title = e.Title
	return state
}

// reduceCompletedCleared drops completed tasks, survivors keep their relative order
func reduceCompletedCleared(state State, e CompletedCleared) State {
	tasks := make([]Task, 0, len(state.Tasks))
	for _, task := range state.Tasks {
		if !task.Completed {
			tasks = append(tasks, task)
		}
	}
	state.Tasks = tasks
	return state
}
