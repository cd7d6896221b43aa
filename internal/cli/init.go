package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kinematics-lab/linkage/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a linkage workspace",
	Long: `Create the configuration and data directories, the commit
database and an empty project file. Existing files are left alone.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.WriteFile(configPath, []byte(defaultConfigYAML), 0o644); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("finalize commit store: %w", err)
	}

	if _, err := os.Stat(flagFile); os.IsNotExist(err) {
		if err := project.New().SaveFile(flagFile); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Linkage workspace initialized")
	return nil
}
