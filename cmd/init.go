package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/dfalex/lex"
)

// initCmd: dfalex init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := initConfigurationFile(afero.NewOsFs(), cfgFile)
		if err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

func initConfigurationFile(fs afero.Fs, configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = lex.DefaultConfigPath
	}

	d, err := yaml.Marshal(lex.DefaultConfig())
	if err != nil {
		return "", err
	}

	if err := afero.WriteFile(fs, configurationPath, d, 0o644); err != nil {
		return "", err
	}
	return configurationPath, nil
}
