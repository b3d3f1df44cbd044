package options

import (
	"github.com/spf13/cobra"
)

// HorizonOptions captures the goal horizon flag.
type HorizonOptions struct {
	Horizon string
	All     bool
}

func AddHorizonArgs(cmd *cobra.Command, o *HorizonOptions) {
	cmd.Flags().StringVar(&o.Horizon, "horizon", "weekly",
		"Specify the goal horizon: yearly, quarterly, or weekly.")
}

func AddAllHorizonsArg(cmd *cobra.Command, o *HorizonOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"List goals for every horizon.")
}
