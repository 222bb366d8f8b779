package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fmizzell/todo"
)

var (
	addTitle       string
	addDescription string
	addPriority    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Long:  `Add a new task to the end of the list. Blank titles are rejected.`,
	Run:   addTask,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Task title (required)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(todo.PriorityMedium), "Priority: low, medium or high")
	if err := addCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("Failed to mark title flag as required: %v", err))
	}
}

func addTask(cmd *cobra.Command, args []string) {
	if strings.TrimSpace(addTitle) == "" {
		fatal("Task title cannot be empty")
	}
	priority, err := todo.ParsePriority(addPriority)
	if err != nil {
		fatal("%v", err)
	}

	s := mustOpenSession()
	task, ok := s.store.AddTask(todo.TaskInput{
		Title:       addTitle,
		Description: strings.TrimSpace(addDescription),
		Priority:    priority,
	})
	s.mustClose()
	if !ok {
		fatal("Task was not added")
	}

	fmt.Printf("✓ Task created: %s\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	if task.Description != "" {
		fmt.Printf("  Description: %s\n", task.Description)
	}
	fmt.Printf("  Priority: %s\n", task.Priority)
}
