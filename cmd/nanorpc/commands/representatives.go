package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RepresentativesCmd prints every representative known to the node.
var RepresentativesCmd = &cobra.Command{
	Use:   "representatives",
	Short: "Show the representatives known to the node and their voting weight",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		reps, err := c.Representatives(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "representatives")
		}
		return printResult(cmd, reps, func(w io.Writer) {
			fmt.Fprintln(w, "ACCOUNT\tWEIGHT")
			for _, r := range reps {
				fmt.Fprintf(w, "%s\t%s\n", r.Account, r.Weight)
			}
		})
	},
}
