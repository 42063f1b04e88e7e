package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nanorpc/nanorpc/rpc/client"
)

const (
	directionFrom = "from"
	directionTo   = "to"
)

var offline bool

// conversionResult is what convert prints in json output.
type conversionResult struct {
	Amount string
}

// ConvertCmd converts amounts between raw and Mrai, krai or rai.
var ConvertCmd = &cobra.Command{
	Use:   "convert <from|to> <mrai|krai|rai> <amount>",
	Short: "Convert an amount from raw to a unit, or from a unit to raw",
	Long: `Convert an amount from raw to a unit, or from a unit to raw.

"convert from mrai 1000000000000000000000000000000" prints 1: the amount is
read in raw and shown in Mrai. "convert to mrai 1" goes the other way.
The node does the arithmetic unless --offline is given.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		direction, unit, amount := args[0], args[1], args[2]
		if direction != directionFrom && direction != directionTo {
			return errors.Errorf("direction must be %q or %q, got %q", directionFrom, directionTo, direction)
		}
		if _, ok := unitExponents[unit]; !ok {
			return errors.Errorf("unit must be one of mrai, krai, rai, got %q", unit)
		}
		d, err := parseAmount(amount, direction == directionFrom)
		if err != nil {
			return err
		}

		var converted string
		if offline {
			converted, err = convertOffline(direction, unit, d)
		} else {
			converted, err = convertOnline(cmd.Context(), direction, unit, d.String())
		}
		if err != nil {
			return err
		}
		return printResult(cmd, conversionResult{Amount: converted}, func(w io.Writer) {
			fmt.Fprintln(w, converted)
		})
	},
}

func convertOnline(ctx context.Context, direction, unit, amount string) (string, error) {
	c, err := NewClient(config, logger)
	if err != nil {
		return "", err
	}
	fn, action := conversion(c, direction, unit)
	converted, err := fn(ctx, amount)
	if err != nil {
		return "", errors.Wrap(err, action)
	}
	return converted, nil
}

func conversion(c client.ConversionClient, direction, unit string) (func(context.Context, string) (string, error), string) {
	action := unit + "_" + direction + "_raw"
	switch action {
	case "mrai_from_raw":
		return c.MraiFromRaw, action
	case "mrai_to_raw":
		return c.MraiToRaw, action
	case "krai_from_raw":
		return c.KraiFromRaw, action
	case "krai_to_raw":
		return c.KraiToRaw, action
	case "rai_from_raw":
		return c.RaiFromRaw, action
	default:
		return c.RaiToRaw, action
	}
}

func init() {
	ConvertCmd.Flags().BoolVar(&offline, "offline", false, "convert locally instead of asking the node")
}
