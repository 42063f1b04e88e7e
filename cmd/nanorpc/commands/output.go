package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cfg "github.com/nanorpc/nanorpc/config"
	cmtjson "github.com/nanorpc/nanorpc/libs/json"
)

// printResult writes v as indented JSON when the output is json, and calls
// text with a column-aligned writer otherwise.
func printResult(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if config.Output == cfg.OutputJSON {
		bz, err := cmtjson.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode result")
		}
		_, err = fmt.Fprintln(out, string(bz))
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}
