package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmizzell/todo"
)

var filterFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List tasks in insertion order. Uses the stored filter unless --filter is given.`,
	Run:   listTasks,
}

func init() {
	listCmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "Filter: all, active or completed (aliases: todo, pending, done)")
}

func listTasks(cmd *cobra.Command, args []string) {
	s := mustOpenSession()
	defer s.mustClose()

	filter := s.store.Filter()
	if filterFlag != "" {
		f, err := parseFilterArg(filterFlag)
		if err != nil {
			fatal("%v", err)
		}
		filter = f
	}

	all := s.store.Tasks()
	tasks := todo.FilterTasks(all, filter)

	fmt.Printf("📋 Tasks (%s):\n", filter)
	fmt.Println()

	if len(tasks) == 0 {
		fmt.Println(todo.EmptyMessage(filter))
	}
	for _, task := range tasks {
		fmt.Println(formatTask(task))
		if task.Description != "" {
			fmt.Printf("   %s\n", task.Description)
		}
	}

	fmt.Println()
	fmt.Printf("%d active, %d completed\n", todo.CountActive(all), todo.CountCompleted(all))
}
