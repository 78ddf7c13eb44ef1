package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const VERSION = "v0.1.0"

// VersionCmd is an initialized Version command for the root command list
var VersionCmd = Version{}

// Version is a CLI command implementation that displays the version information.
type Version struct {
}

// Returns 'version'
func (c *Version) Name() string {
	return "version"
}

// Description returns the 'version' command short form help
func (c *Version) Description() string {
	return "Displays the current version"
}

func (c *Version) Command() *cobra.Command {
	return &cobra.Command{
		Use:   c.Name(),
		Short: c.Description(),
		Long:  "Displays the flight-deals version in the format v<major>.<minor>.<build> e.g. v0.1.0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", VERSION)
			return nil
		},
	}
}
