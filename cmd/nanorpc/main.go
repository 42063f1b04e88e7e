package main

import (
	"os"
	"path/filepath"

	cmd "github.com/nanorpc/nanorpc/cmd/nanorpc/commands"
	cfg "github.com/nanorpc/nanorpc/config"
	"github.com/nanorpc/nanorpc/libs/cli"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.InitFilesCmd,
		cmd.VersionCmd,
		cmd.BalanceCmd,
		cmd.BalancesCmd,
		cmd.AccountInfoCmd,
		cmd.BlockCountCmd,
		cmd.HistoryCmd,
		cmd.FrontiersCmd,
		cmd.PendingCmd,
		cmd.RepresentativesCmd,
		cmd.ConvertCmd,
		cmd.SendCmd,
	)

	cmd := cli.PrepareMainCmd(rootCmd, "NANORPC", os.ExpandEnv(filepath.Join("$HOME", cfg.DefaultDirName)))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
