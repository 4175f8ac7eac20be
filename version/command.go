package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jongio/bonsai-core/cliout"
)

// NewCommand creates a version command. The global --output flag selects
// between the labelled view and JSON through cliout.
func NewCommand(info *Info) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shown := *info
			if shown.GoVersion == "" {
				shown.GoVersion = runtime.Version()
			}

			if quiet && !cliout.IsJSON() {
				cliout.Plain("%s", shown.Version)
				return nil
			}

			return cliout.Print(&shown, func() {
				cliout.Header(fmt.Sprintf("%s Version", shown.Name))
				cliout.Label("Version", shown.Version)
				cliout.Label("Build Date", shown.BuildDate)
				cliout.Label("Git Commit", shown.GitCommit)
				cliout.Label("Go", shown.GoVersion)
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
