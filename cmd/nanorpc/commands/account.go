package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nanorpc/nanorpc/rpc/client"
	ctypes "github.com/nanorpc/nanorpc/rpc/core/types"
)

var (
	infoOpts     client.AccountInfoOptions
	historyCount int
	pendingCount int
)

// BalanceCmd prints the balance of one account.
var BalanceCmd = &cobra.Command{
	Use:   "balance <account>",
	Short: "Show the balance and pending amount of an account, in raw",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		bal, err := c.AccountBalance(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrap(err, "account_balance")
		}
		return printResult(cmd, bal, func(w io.Writer) {
			printBalances(w, []ctypes.AccountBalance{*bal})
		})
	},
}

// BalancesCmd prints the balances of several accounts.
var BalancesCmd = &cobra.Command{
	Use:   "balances <account>...",
	Short: "Show the balances of several accounts, in raw",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		balances, err := c.AccountsBalances(cmd.Context(), args)
		if err != nil {
			return errors.Wrap(err, "accounts_balances")
		}
		return printResult(cmd, balances, func(w io.Writer) {
			printBalances(w, balances)
		})
	},
}

func printBalances(w io.Writer, balances []ctypes.AccountBalance) {
	fmt.Fprintln(w, "ACCOUNT\tBALANCE\tPENDING")
	for _, b := range balances {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Account, b.Balance, b.Pending)
	}
}

// AccountInfoCmd prints the summary of an account.
var AccountInfoCmd = &cobra.Command{
	Use:   "account-info <account>",
	Short: "Show frontier, open block, balance and block count of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		info, err := c.AccountInfoWithOptions(cmd.Context(), args[0], infoOpts)
		if err != nil {
			return errors.Wrap(err, "account_info")
		}
		return printResult(cmd, info, func(w io.Writer) {
			fmt.Fprintf(w, "frontier\t%s\n", info.Frontier)
			fmt.Fprintf(w, "open_block\t%s\n", info.OpenBlock)
			fmt.Fprintf(w, "representative_block\t%s\n", info.RepresentativeBlock)
			fmt.Fprintf(w, "balance\t%s\n", info.Balance)
			fmt.Fprintf(w, "modified_timestamp\t%d\n", info.ModifiedTimestamp)
			fmt.Fprintf(w, "block_count\t%d\n", info.BlockCount)
			if infoOpts.Representative {
				fmt.Fprintf(w, "representative\t%s\n", info.Representative)
			}
			if infoOpts.Weight {
				fmt.Fprintf(w, "weight\t%s\n", info.Weight)
			}
			if infoOpts.Pending {
				fmt.Fprintf(w, "pending\t%s\n", info.Pending)
			}
		})
	},
}

// BlockCountCmd prints the number of blocks of an account chain.
var BlockCountCmd = &cobra.Command{
	Use:   "block-count <account>",
	Short: "Show the number of blocks in an account chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		res, err := c.AccountBlockCount(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrap(err, "account_block_count")
		}
		return printResult(cmd, res, func(w io.Writer) {
			fmt.Fprintln(w, res.BlockCount)
		})
	},
}

// HistoryCmd prints the latest blocks of an account chain.
var HistoryCmd = &cobra.Command{
	Use:   "history <account>",
	Short: "Show the latest blocks of an account chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyCount <= 0 {
			return errors.Errorf("count must be positive, got %d", historyCount)
		}
		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		res, err := c.AccountHistory(cmd.Context(), args[0], historyCount)
		if err != nil {
			return errors.Wrap(err, "account_history")
		}
		return printResult(cmd, res, func(w io.Writer) {
			fmt.Fprintln(w, "HASH\tTYPE\tACCOUNT\tAMOUNT")
			for _, e := range res.History {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Hash, e.Type, e.Account, e.Amount)
			}
		})
	},
}

// FrontiersCmd prints the frontier block of several accounts.
var FrontiersCmd = &cobra.Command{
	Use:   "frontiers <account>...",
	Short: "Show the latest block of several account chains",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		frontiers, err := c.AccountsFrontiers(cmd.Context(), args)
		if err != nil {
			return errors.Wrap(err, "accounts_frontiers")
		}
		return printResult(cmd, frontiers, func(w io.Writer) {
			fmt.Fprintln(w, "ACCOUNT\tFRONTIER")
			for _, f := range frontiers {
				fmt.Fprintf(w, "%s\t%s\n", f.Account, f.Block)
			}
		})
	},
}

// PendingCmd prints the blocks waiting to be received by several accounts.
var PendingCmd = &cobra.Command{
	Use:   "pending <account>...",
	Short: "Show the blocks waiting to be received by several accounts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if pendingCount <= 0 {
			return errors.Errorf("count must be positive, got %d", pendingCount)
		}
		c, err := NewClient(config, logger)
		if err != nil {
			return err
		}
		pending, err := c.AccountsPending(cmd.Context(), args, pendingCount)
		if err != nil {
			return errors.Wrap(err, "accounts_pending")
		}
		return printResult(cmd, pending, func(w io.Writer) {
			fmt.Fprintln(w, "ACCOUNT\tBLOCK")
			for _, p := range pending {
				for _, b := range p.Blocks {
					fmt.Fprintf(w, "%s\t%s\n", p.Account, b)
				}
			}
		})
	},
}

func init() {
	AccountInfoCmd.Flags().BoolVar(&infoOpts.Representative, "representative", false, "also show the representative")
	AccountInfoCmd.Flags().BoolVar(&infoOpts.Weight, "weight", false, "also show the voting weight")
	AccountInfoCmd.Flags().BoolVar(&infoOpts.Pending, "pending", false, "also show the pending amount")
	HistoryCmd.Flags().IntVar(&historyCount, "count", 10, "number of blocks to show")
	PendingCmd.Flags().IntVar(&pendingCount, "count", 10, "maximum number of blocks per account")
}
