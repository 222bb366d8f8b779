package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <task-id>",
	Short: "Toggle a task between active and completed",
	Args:  cobra.ExactArgs(1),
	Run:   toggleTask,
}

func toggleTask(cmd *cobra.Command, args []string) {
	taskID := args[0]

	s := mustOpenSession()
	if !s.store.ToggleTask(taskID) {
		s.mustClose()
		fatal("Task not found: %s", taskID)
	}
	s.mustClose()

	task, _ := s.store.Task(taskID)
	if task.Completed {
		fmt.Printf("✓ Task completed: %s\n", taskID)
	} else {
		fmt.Printf("○ Task reopened: %s\n", taskID)
	}
	fmt.Printf("  %s\n", task.Title)
}
