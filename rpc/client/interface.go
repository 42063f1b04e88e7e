package client

/*
The client package provides a general purpose interface (Client) for talking
to a Nano node, as well as a set of smaller interfaces grouping related
actions.

The http package provides the implementation backed by the node's JSON RPC
endpoint; the mock package wraps arbitrary implementations for tests.

Amounts are decimal strings of raw unless a method says otherwise; they are
passed to and from the node untouched.
*/

import (
	"context"

	ctypes "github.com/nanorpc/nanorpc/rpc/core/types"
)

// Client describes the full set of actions a node client supports.
type Client interface {
	AccountsClient
	ConversionClient
	ReceiveClient
	RepresentativesClient
	SendClient
}

// AccountsClient covers account queries and wallet account management.
type AccountsClient interface {
	AccountBalance(ctx context.Context, account string) (*ctypes.AccountBalance, error)
	AccountBlockCount(ctx context.Context, account string) (*ctypes.ResultAccountBlockCount, error)
	AccountInfo(ctx context.Context, account string) (*ctypes.ResultAccountInfo, error)
	AccountInfoWithOptions(ctx context.Context, account string, opts AccountInfoOptions) (*ctypes.ResultAccountInfo, error)
	AccountCreate(ctx context.Context, wallet string) (*ctypes.ResultAccount, error)
	AccountCreateWithWork(ctx context.Context, wallet string, work bool) (*ctypes.ResultAccount, error)
	AccountGet(ctx context.Context, key string) (*ctypes.ResultAccount, error)
	AccountHistory(ctx context.Context, account string, count int) (*ctypes.ResultAccountHistory, error)
	AccountList(ctx context.Context, wallet string) (*ctypes.ResultAccountList, error)
	AccountMove(ctx context.Context, wallet, source string, accounts []string) (*ctypes.ResultAccountMove, error)
	AccountKey(ctx context.Context, account string) (*ctypes.ResultAccountKey, error)
	AccountRemove(ctx context.Context, wallet, account string) (*ctypes.ResultAccountRemove, error)
	AccountRepresentative(ctx context.Context, account string) (*ctypes.ResultRepresentative, error)
	AccountRepresentativeSet(ctx context.Context, wallet, account, representative string) (*ctypes.ResultBlock, error)
	AccountWeight(ctx context.Context, account string) (*ctypes.ResultAccountWeight, error)
	AccountsBalances(ctx context.Context, accounts []string) ([]ctypes.AccountBalance, error)
	AccountsCreate(ctx context.Context, wallet string, count int) (*ctypes.ResultAccountsCreate, error)
	AccountsCreateWithWork(ctx context.Context, wallet string, count int, work bool) (*ctypes.ResultAccountsCreate, error)
	AccountsFrontiers(ctx context.Context, accounts []string) ([]ctypes.Frontier, error)
	AccountsPending(ctx context.Context, accounts []string, count int) ([]ctypes.AccountPending, error)
}

// ConversionClient converts amounts between raw and the named units. The
// node does the arithmetic; results are returned exactly as received.
type ConversionClient interface {
	MraiFromRaw(ctx context.Context, amount string) (string, error)
	MraiToRaw(ctx context.Context, amount string) (string, error)
	KraiFromRaw(ctx context.Context, amount string) (string, error)
	KraiToRaw(ctx context.Context, amount string) (string, error)
	RaiFromRaw(ctx context.Context, amount string) (string, error)
	RaiToRaw(ctx context.Context, amount string) (string, error)
}

// ReceiveClient covers receiving pending blocks.
type ReceiveClient interface {
	Receive(ctx context.Context, wallet, account, block string) (*ctypes.ResultBlock, error)
	ReceiveMinimum(ctx context.Context) (*ctypes.ResultAmount, error)
	ReceiveMinimumSet(ctx context.Context, amount string) error
}

// RepresentativesClient covers representatives and their weights.
type RepresentativesClient interface {
	Representatives(ctx context.Context) ([]ctypes.Representative, error)
	WalletRepresentative(ctx context.Context, wallet string) (*ctypes.ResultRepresentative, error)
	WalletRepresentativeSet(ctx context.Context, wallet, representative string) error
}

// SendClient sends funds between accounts.
type SendClient interface {
	Send(ctx context.Context, wallet, source, destination, amount string) (*ctypes.ResultBlock, error)
}

// AccountInfoOptions selects the optional fields of account_info.
type AccountInfoOptions struct {
	Representative bool
	Weight         bool
	Pending        bool
}

// DefaultAccountInfoOptions requests none of the optional fields.
var DefaultAccountInfoOptions = AccountInfoOptions{}
