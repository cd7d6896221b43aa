package cli

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir = "data_dir"
	cfgKeyFile    = "file"
	cfgKeyAuthor  = "author"
	cfgKeyBranch  = "branch"
)

// defaultConfigYAML is the content written to config.yaml by init.
const defaultConfigYAML = `# Linkage CLI configuration

# Data directory for the commit database (optional; overridable by --data-dir)
# data_dir:

# Default project file (overridable by --file)
# file: linkage.yaml

# Default author and branch for commits
# author: anonymous
# branch: master
`

// loadConfig reads config.yaml from the config directory. A missing file is
// not an error; init creates it.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
