// Package cli implements the linkage command-line interface: project file
// editing through the undo-capable document layer, and commit history in
// the data directory. See docs/ARCHITECTURE.md § CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kinematics-lab/linkage/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagFile      string
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "linkage",
	Short:   "Linkage is a planar linkage mechanism editor",
	Version: Version,
	Long: `Linkage edits planar linkage mechanism designs: points, links,
driver inputs and stored configurations, kept consistent through an
undo-capable command layer. Designs live in a YAML project file; commits
snapshot the design into a local history database.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)

		// Config supplies defaults; explicit flags win.
		flags := cmd.Flags()
		if s := cfg.GetString(cfgKeyFile); s != "" && !flags.Changed("file") {
			flagFile = s
		}
		if s := cfg.GetString(cfgKeyAuthor); s != "" && !flags.Changed("author") {
			commitAuthor = s
		}
		if s := cfg.GetString(cfgKeyBranch); s != "" && !flags.Changed("branch") {
			commitBranch = s
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "linkage.yaml", "project file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pointCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(inputCmd)
	rootCmd.AddCommand(storageCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(checkoutCmd)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

// resolveConfigDir follows the precedence chain:
// --config-dir flag > LINKAGE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir follows the precedence chain:
// --data-dir flag > config.yaml data_dir > LINKAGE_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
