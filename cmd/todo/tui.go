package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fmizzell/todo/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive task list",
	Args:  cobra.NoArgs,
	Run:   runTUI,
}

func runTUI(cmd *cobra.Command, args []string) {
	s := mustOpenSession()
	defer s.mustClose()

	if err := tui.Run(s.store, filepath.Join(s.cfg.WorkspaceDir, ".todo", "debug.log")); err != nil {
		fatal("TUI failed: %v", err)
	}
}
