package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	cmtjson "github.com/nanorpc/nanorpc/libs/json"
	"github.com/nanorpc/nanorpc/version"
)

var verbose bool

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, _ []string) {
		nanorpcVersion := version.NanoRPCSemVer
		if version.GitCommitHash != "" {
			nanorpcVersion += "+" + version.GitCommitHash
		}

		if verbose {
			values, err := cmtjson.MarshalIndent(struct {
				NanoRPC     string `json:"nanorpc"`
				RPCProtocol string `json:"rpc_protocol"`
			}{
				NanoRPC:     nanorpcVersion,
				RPCProtocol: version.RPCProtocol,
			}, "", "  ")
			if err != nil {
				panic(fmt.Sprintf("failed to marshal version info: %v", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(values))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), nanorpcVersion)
		}
	},
}

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show protocol version")
}
