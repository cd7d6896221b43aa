package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the released version of the linkage tool.
const Version = "0.1.0"

const modulePath = "github.com/kinematics-lab/linkage"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the linkage version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "linkage v%s\nmodule: %s\n", Version, modulePath)
		return nil
	},
}
