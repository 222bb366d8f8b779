package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmizzell/todo/internal/config"
	"github.com/fmizzell/todo/internal/logging"
)

var (
	workspaceFlag string
	backendFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Task list with durable local storage",
	Long: `todo keeps a task list in the current workspace (or --workspace).
State is stored under .todo/ using the file, sqlite or memory backend.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace directory (default: $TODO_WORKSPACE or current directory)")
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "", "Storage backend: file, sqlite or memory")

	rootCmd.AddCommand(addCmd, listCmd, toggleCmd, editCmd, deleteCmd, clearCompletedCmd)
	rootCmd.AddCommand(filterCmd, darkModeCmd, soundCmd, tuiCmd)
}

func main() {
	if config.LoadDotEnv() {
		logging.Debug("config", "loaded .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// fatal prints to stderr and exits
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
