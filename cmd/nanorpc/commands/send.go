package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// SendCmd sends raw from one wallet account to another account.
var SendCmd = &cobra.Command{
	Use:   "send <wallet> <source> <destination> <amount>",
	Short: "Send an amount in raw from a wallet account to another account",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		wallet, source, destination := args[0], args[1], args[2]
		amount, err := parseAmount(args[3], true)
		if err != nil {
			return err
		}
		if amount.IsZero() {
			return errors.New("amount must be greater than zero")
		}

		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		res, err := c.Send(cmd.Context(), wallet, source, destination, amount.String())
		if err != nil {
			return errors.Wrap(err, "send")
		}
		logger.Info("sent", "source", source, "destination", destination, "amount", amount.String(), "block", res.Block)
		return printResult(cmd, res, func(w io.Writer) {
			fmt.Fprintln(w, res.Block)
		})
	},
}
