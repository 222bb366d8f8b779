package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <task-id> <title...>",
	Short: "Change a task's title",
	Args:  cobra.MinimumNArgs(2),
	Run:   editTask,
}

func editTask(cmd *cobra.Command, args []string) {
	taskID := args[0]
	title := strings.Join(args[1:], " ")
	if strings.TrimSpace(title) == "" {
		fatal("Task title cannot be empty")
	}

	s := mustOpenSession()
	ok := s.store.EditTask(taskID, title)
	s.mustClose()
	if !ok {
		fatal("Task not found: %s", taskID)
	}

	task, _ := s.store.Task(taskID)
	fmt.Printf("✓ Task updated: %s\n", taskID)
	fmt.Printf("  Title: %s\n", task.Title)
}
