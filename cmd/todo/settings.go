package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter [all|active|completed]",
	Short: "Show or set the stored list filter",
	Args:  cobra.MaximumNArgs(1),
	Run:   setFilter,
}

var darkModeCmd = &cobra.Command{
	Use:   "dark-mode",
	Short: "Toggle dark mode",
	Args:  cobra.NoArgs,
	Run:   toggleDarkMode,
}

var soundCmd = &cobra.Command{
	Use:   "sound",
	Short: "Toggle sound effects",
	Args:  cobra.NoArgs,
	Run:   toggleSound,
}

func setFilter(cmd *cobra.Command, args []string) {
	s := mustOpenSession()
	defer s.mustClose()

	if len(args) == 0 {
		fmt.Printf("Filter: %s\n", s.store.Filter())
		return
	}

	f, err := parseFilterArg(args[0])
	if err != nil {
		fatal("%v", err)
	}
	s.store.SetFilter(f)
	fmt.Printf("✓ Filter set to %s\n", f)
}

func toggleDarkMode(cmd *cobra.Command, args []string) {
	s := mustOpenSession()
	defer s.mustClose()

	fmt.Printf("Dark mode: %s\n", onOff(s.store.ToggleDarkMode()))
}

func toggleSound(cmd *cobra.Command, args []string) {
	s := mustOpenSession()
	defer s.mustClose()

	fmt.Printf("Sound: %s\n", onOff(s.store.ToggleSound()))
}
