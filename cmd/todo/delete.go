package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <task-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run:     deleteTask,
}

var clearCompletedCmd = &cobra.Command{
	Use:   "clear-completed",
	Short: "Delete every completed task",
	Args:  cobra.NoArgs,
	Run:   clearCompleted,
}

func deleteTask(cmd *cobra.Command, args []string) {
	taskID := args[0]

	s := mustOpenSession()
	task, found := s.store.Task(taskID)
	if !found || !s.store.DeleteTask(taskID) {
		s.mustClose()
		fatal("Task not found: %s", taskID)
	}
	s.mustClose()

	fmt.Printf("✓ Task deleted: %s\n", taskID)
	fmt.Printf("  %s\n", task.Title)
}

func clearCompleted(cmd *cobra.Command, args []string) {
	s := mustOpenSession()
	removed := s.store.ClearCompleted()
	s.mustClose()

	if removed == 0 {
		fmt.Println("No completed tasks to clear.")
		return
	}
	fmt.Printf("✓ Cleared %d completed task(s)\n", removed)
}
