// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DayOptions captures the day bucket selection flags for todo commands.
type DayOptions struct {
	Day      string
	Weekly   bool
	All      bool
	Selected bool
}

// AddDayArgs wires the day bucket flag on the provided command.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "today",
		"Specify the day bucket (Mon..Sun, a full day name, or today).")
}

// AddWeeklyArg registers the weekly bucket flag.
func AddWeeklyArg(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().BoolVarP(&o.Weekly, "weekly", "w", false,
		"Use the current-week bucket instead of a day.")
}

// AddScopeArgs registers flags that widen or narrow the listing scope.
func AddScopeArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"List every day bucket.")
	cmd.Flags().BoolVar(&o.Selected, "selected", false,
		"List only the focus selection.")
}
