package commands

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/nanorpc/nanorpc/config"
	"github.com/nanorpc/nanorpc/libs/cli"
	cmtflags "github.com/nanorpc/nanorpc/libs/cli/flags"
	"github.com/nanorpc/nanorpc/libs/log"
)

var (
	config = cfg.DefaultConfig()
	logger = log.NewLoggerWithColor(os.Stderr, os.Getenv("NO_COLOR") == "")
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", config.LogLevel, "log level")
	cmd.PersistentFlags().String("log_format", config.LogFormat, "log format (plain|json)")
	cmd.PersistentFlags().String("rpc.address", config.RPC.Address, "node RPC endpoint")
	cmd.PersistentFlags().Duration("rpc.timeout", config.RPC.Timeout, "timeout of a single call (0 disables it)")
}

// ConfigHome returns the home directory: $NANORPCHOME when set, the --home
// flag otherwise.
func ConfigHome(cmd *cobra.Command) (string, error) {
	if home := os.Getenv("NANORPCHOME"); home != "" {
		return home, nil
	}
	// Default: $HOME/.nanorpc
	return cmd.Flags().GetString(cli.HomeFlag)
}

// ParseConfig retrieves the default environment configuration,
// sets up the nanorpc root and ensures that the root exists.
func ParseConfig(cmd *cobra.Command) (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	err := viper.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	home, err := ConfigHome(cmd)
	if err != nil {
		return nil, err
	}
	conf.SetRoot(home)
	cfg.EnsureRoot(conf.RootDir)
	if err := conf.ValidateBasic(); err != nil {
		return nil, errors.Wrap(err, "error in config file")
	}
	return conf, nil
}

// RootCmd is the root command for nanorpc.
var RootCmd = &cobra.Command{
	Use:   "nanorpc",
	Short: "Command line client for the Nano node RPC",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		config, err = ParseConfig(cmd)
		if err != nil {
			return err
		}

		if config.LogFormat == cfg.LogFormatJSON {
			logger = log.NewJSONLogger(os.Stderr)
		}

		logger, err = cmtflags.ParseLogLevel(config.LogLevel, logger, cfg.DefaultLogLevel)
		if err != nil {
			return err
		}

		if viper.GetBool(cli.TraceFlag) {
			logger = log.NewTracingLogger(logger)
		}

		logger.Debug("config loaded", "home", config.RootDir, "rpc", config.RPC.Address)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		if !config.Instrumentation.Prometheus || cmd.Name() == VersionCmd.Name() {
			return nil
		}
		return writeMetrics(cmd.ErrOrStderr(), config.Instrumentation.Namespace)
	},
}
