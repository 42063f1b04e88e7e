package commands

import (
	"github.com/spf13/cobra"

	cfg "github.com/nanorpc/nanorpc/config"
	cmtos "github.com/nanorpc/nanorpc/internal/os"
)

// InitFilesCmd initializes the nanorpc home directory.
var InitFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the nanorpc home directory",
	Args:  cobra.NoArgs,
	RunE:  initFiles,
}

var overwrite bool

func init() {
	InitFilesCmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing config file with the current settings")
}

func initFiles(*cobra.Command, []string) error {
	return initFilesWithConfig(config)
}

func initFilesWithConfig(config *cfg.Config) error {
	configFile := config.ConfigFile()
	if cmtos.FileExists(configFile) && !overwrite {
		logger.Info("Found config file", "path", configFile)
		return nil
	}

	cfg.EnsureRoot(config.RootDir)
	cfg.WriteConfigFile(configFile, config)
	logger.Info("Generated config file", "path", configFile)
	return nil
}
