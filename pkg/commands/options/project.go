package options

import (
	"github.com/spf13/cobra"
)

// ProjectOptions captures project creation and selection flags.
type ProjectOptions struct {
	ProjectID   string
	Description string
	UseAI       bool
	Due         string
}

func AddProjectArgs(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Describe the project or milestone.")
	cmd.Flags().BoolVar(&o.UseAI, "ai", false,
		"Enable AI milestone generation for this project.")
}

func AddProjectIDArgs(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVarP(&o.ProjectID, "project", "p", "",
		"Specify the parent project id.")
}

func AddDueArg(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVar(&o.Due, "due", "",
		"Due date in YYYY-MM-DD form.")
}
