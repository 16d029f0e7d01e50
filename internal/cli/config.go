// Config loading for the camflow CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/openmill/camflow/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir = "data_dir"
)

// defaultConfigYAML is the content written to config.yaml by init.
const defaultConfigYAML = `# Camflow CLI configuration

# Data directory for the project history (optional; overridden by the
# --data-dir flag and the CAMFLOW_DATA_DIR environment variable)
# data_dir:
`

// loadConfig reads config.yaml from the config directory using Viper.
// A missing file is not an error: every key has a working default.
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

// resolveDataDir returns the data directory following the precedence
// chain: --data-dir flag > CAMFLOW_DATA_DIR env > config.yaml data_dir >
// platform default.
func resolveDataDir() (string, error) {
	if flags.dataDir != "" || os.Getenv(paths.EnvDataDir) != "" {
		return paths.ResolveDataDir(flags.dataDir)
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return "", err
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return "", err
	}
	if dir := v.GetString(cfgKeyDataDir); dir != "" {
		return filepath.Abs(dir)
	}
	return paths.DefaultDataDir()
}
