package http

import (
	"context"
	"net/http"
	"time"

	"github.com/nanorpc/nanorpc/rpc/client"
	ctypes "github.com/nanorpc/nanorpc/rpc/core/types"
	jsonrpcclient "github.com/nanorpc/nanorpc/rpc/jsonrpc/client"
	"github.com/nanorpc/nanorpc/rpc/jsonrpc/types"
)

/*
HTTP is a Client implementation that communicates with a Nano node over its
JSON RPC endpoint.

Every method builds one request and hands it to a single Invoke; a reply
carrying an error member surfaces as jsonrpcclient.ErrProtocol with the
node's message, and a failed exchange as jsonrpcclient.ErrCommunication.
Nothing is retried.

Request batching and websocket subscriptions are not supported.

Example:

	c, err := New("http://localhost:7076")
	if err != nil {
		// handle error
	}

	bal, err := c.AccountBalance(ctx, "xrb_3t6k35gi95xu6tergt6p69ck76ogmitsa8mnijtpxm9fkcm736xtoncuohr3")
	if err != nil {
		// handle error
	}
	fmt.Println(bal.Balance, bal.Pending)
*/
type HTTP struct {
	remote string
	caller *jsonrpcclient.Caller
}

var _ client.Client = (*HTTP)(nil)

// New takes a remote endpoint in the form <protocol>://<host>:<port>. An
// empty remote means jsonrpcclient.DefaultAddress.
// An error is returned on invalid remote.
func New(remote string, opts ...jsonrpcclient.CallerOption) (*HTTP, error) {
	return NewWithTimeout(remote, jsonrpcclient.DefaultTimeout, opts...)
}

// NewWithTimeout does the same thing as New, except you can set a Timeout
// for http.Client. A Timeout of zero means no timeout.
func NewWithTimeout(remote string, timeout time.Duration, opts ...jsonrpcclient.CallerOption) (*HTTP, error) {
	t, err := jsonrpcclient.NewHTTPTransport(remote, jsonrpcclient.WithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	return &HTTP{remote: t.Address(), caller: jsonrpcclient.NewCaller(t, opts...)}, nil
}

// NewWithClient allows for setting a custom http client (See New).
// The function panics if the provided client is nil.
func NewWithClient(remote string, c *http.Client, opts ...jsonrpcclient.CallerOption) (*HTTP, error) {
	if c == nil {
		panic("nil http.Client provided")
	}
	t, err := jsonrpcclient.NewHTTPTransport(remote, jsonrpcclient.WithHTTPClient(c))
	if err != nil {
		return nil, err
	}
	return &HTTP{remote: t.Address(), caller: jsonrpcclient.NewCaller(t, opts...)}, nil
}

// NewWithTransport returns a client sending requests through t.
func NewWithTransport(t jsonrpcclient.Transport, opts ...jsonrpcclient.CallerOption) *HTTP {
	return &HTTP{caller: jsonrpcclient.NewCaller(t, opts...)}
}

// Remote returns the remote network address, or "" for a client built on a
// custom transport.
func (c *HTTP) Remote() string {
	return c.remote
}

func call[T any](ctx context.Context, c *HTTP, b *types.Builder) (*T, error) {
	return jsonrpcclient.Invoke[T](ctx, c.caller, b.Build())
}

//-----------------------------------------------------------------------------
// Accounts

// AccountBalance returns the balance and pending amount of account, in raw.
func (c *HTTP) AccountBalance(ctx context.Context, account string) (*ctypes.AccountBalance, error) {
	result, err := call[ctypes.AccountBalance](ctx, c, types.Action("account_balance").
		Param("account", account))
	if err != nil {
		return nil, err
	}
	result.Account = account
	return result, nil
}

func (c *HTTP) AccountBlockCount(ctx context.Context, account string) (*ctypes.ResultAccountBlockCount, error) {
	return call[ctypes.ResultAccountBlockCount](ctx, c, types.Action("account_block_count").
		Param("account", account))
}

func (c *HTTP) AccountInfo(ctx context.Context, account string) (*ctypes.ResultAccountInfo, error) {
	return c.AccountInfoWithOptions(ctx, account, client.DefaultAccountInfoOptions)
}

func (c *HTTP) AccountInfoWithOptions(
	ctx context.Context,
	account string,
	opts client.AccountInfoOptions,
) (*ctypes.ResultAccountInfo, error) {
	return call[ctypes.ResultAccountInfo](ctx, c, types.Action("account_info").
		Param("account", account).
		Param("representative", opts.Representative).
		Param("weight", opts.Weight).
		Param("pending", opts.Pending))
}

// AccountCreate creates an account in wallet, generating its work.
func (c *HTTP) AccountCreate(ctx context.Context, wallet string) (*ctypes.ResultAccount, error) {
	return c.AccountCreateWithWork(ctx, wallet, true)
}

func (c *HTTP) AccountCreateWithWork(ctx context.Context, wallet string, work bool) (*ctypes.ResultAccount, error) {
	return call[ctypes.ResultAccount](ctx, c, types.Action("account_create").
		Param("wallet", wallet).
		Param("work", work))
}

// AccountGet returns the account number of a public key.
func (c *HTTP) AccountGet(ctx context.Context, key string) (*ctypes.ResultAccount, error) {
	return call[ctypes.ResultAccount](ctx, c, types.Action("account_get").
		Param("key", key))
}

func (c *HTTP) AccountHistory(ctx context.Context, account string, count int) (*ctypes.ResultAccountHistory, error) {
	return call[ctypes.ResultAccountHistory](ctx, c, types.Action("account_history").
		Param("account", account).
		Param("count", count))
}

func (c *HTTP) AccountList(ctx context.Context, wallet string) (*ctypes.ResultAccountList, error) {
	return call[ctypes.ResultAccountList](ctx, c, types.Action("account_list").
		Param("wallet", wallet))
}

// AccountMove moves accounts from the source wallet into wallet.
func (c *HTTP) AccountMove(
	ctx context.Context,
	wallet, source string,
	accounts []string,
) (*ctypes.ResultAccountMove, error) {
	return call[ctypes.ResultAccountMove](ctx, c, types.Action("account_move").
		Param("wallet", wallet).
		Param("source", source).
		Param("accounts", accounts))
}

// AccountKey returns the public key of account.
func (c *HTTP) AccountKey(ctx context.Context, account string) (*ctypes.ResultAccountKey, error) {
	return call[ctypes.ResultAccountKey](ctx, c, types.Action("account_key").
		Param("account", account))
}

func (c *HTTP) AccountRemove(ctx context.Context, wallet, account string) (*ctypes.ResultAccountRemove, error) {
	return call[ctypes.ResultAccountRemove](ctx, c, types.Action("account_remove").
		Param("wallet", wallet).
		Param("account", account))
}

func (c *HTTP) AccountRepresentative(ctx context.Context, account string) (*ctypes.ResultRepresentative, error) {
	return call[ctypes.ResultRepresentative](ctx, c, types.Action("account_representative").
		Param("account", account))
}

// AccountRepresentativeSet changes the representative of an account in
// wallet and returns the hash of the change block.
func (c *HTTP) AccountRepresentativeSet(
	ctx context.Context,
	wallet, account, representative string,
) (*ctypes.ResultBlock, error) {
	return call[ctypes.ResultBlock](ctx, c, types.Action("account_representative_set").
		Param("wallet", wallet).
		Param("account", account).
		Param("representative", representative))
}

func (c *HTTP) AccountWeight(ctx context.Context, account string) (*ctypes.ResultAccountWeight, error) {
	return call[ctypes.ResultAccountWeight](ctx, c, types.Action("account_weight").
		Param("account", account))
}

// AccountsBalances returns one entry per requested account known to the
// node.
func (c *HTTP) AccountsBalances(ctx context.Context, accounts []string) ([]ctypes.AccountBalance, error) {
	result, err := call[ctypes.ResultAccountsBalances](ctx, c, types.Action("accounts_balances").
		Param("accounts", accounts))
	if err != nil {
		return nil, err
	}
	return result.Entries(), nil
}

// AccountsCreate creates count accounts in wallet, generating their work.
func (c *HTTP) AccountsCreate(ctx context.Context, wallet string, count int) (*ctypes.ResultAccountsCreate, error) {
	return c.AccountsCreateWithWork(ctx, wallet, count, true)
}

func (c *HTTP) AccountsCreateWithWork(
	ctx context.Context,
	wallet string,
	count int,
	work bool,
) (*ctypes.ResultAccountsCreate, error) {
	return call[ctypes.ResultAccountsCreate](ctx, c, types.Action("accounts_create").
		Param("wallet", wallet).
		Param("count", count).
		Param("work", work))
}

func (c *HTTP) AccountsFrontiers(ctx context.Context, accounts []string) ([]ctypes.Frontier, error) {
	result, err := call[ctypes.ResultAccountsFrontiers](ctx, c, types.Action("accounts_frontiers").
		Param("accounts", accounts))
	if err != nil {
		return nil, err
	}
	return result.Entries(), nil
}

// AccountsPending returns up to count pending block hashes per account.
func (c *HTTP) AccountsPending(ctx context.Context, accounts []string, count int) ([]ctypes.AccountPending, error) {
	result, err := call[ctypes.ResultAccountsPending](ctx, c, types.Action("accounts_pending").
		Param("accounts", accounts).
		Param("count", count))
	if err != nil {
		return nil, err
	}
	return result.Entries(), nil
}

//-----------------------------------------------------------------------------
// Receive

// Receive receives the pending block into account and returns the hash of
// the receive block.
func (c *HTTP) Receive(ctx context.Context, wallet, account, block string) (*ctypes.ResultBlock, error) {
	return call[ctypes.ResultBlock](ctx, c, types.Action("receive").
		Param("wallet", wallet).
		Param("account", account).
		Param("block", block))
}

// ReceiveMinimum returns the smallest amount, in raw, the node auto-receives.
func (c *HTTP) ReceiveMinimum(ctx context.Context) (*ctypes.ResultAmount, error) {
	return call[ctypes.ResultAmount](ctx, c, types.Action("receive_minimum"))
}

func (c *HTTP) ReceiveMinimumSet(ctx context.Context, amount string) error {
	_, err := call[ctypes.ResultSuccess](ctx, c, types.Action("receive_minimum_set").
		Param("amount", amount))
	return err
}

//-----------------------------------------------------------------------------
// Representatives

// Representatives returns every representative known to the node with its
// voting weight.
func (c *HTTP) Representatives(ctx context.Context) ([]ctypes.Representative, error) {
	result, err := call[ctypes.ResultRepresentatives](ctx, c, types.Action("representatives"))
	if err != nil {
		return nil, err
	}
	return result.Entries(), nil
}

func (c *HTTP) WalletRepresentative(ctx context.Context, wallet string) (*ctypes.ResultRepresentative, error) {
	return call[ctypes.ResultRepresentative](ctx, c, types.Action("wallet_representative").
		Param("wallet", wallet))
}

func (c *HTTP) WalletRepresentativeSet(ctx context.Context, wallet, representative string) error {
	_, err := call[ctypes.ResultWalletRepresentativeSet](ctx, c, types.Action("wallet_representative_set").
		Param("wallet", wallet).
		Param("representative", representative))
	return err
}

//-----------------------------------------------------------------------------
// Send

// Send moves amount raw from source to destination and returns the hash of
// the send block.
func (c *HTTP) Send(ctx context.Context, wallet, source, destination, amount string) (*ctypes.ResultBlock, error) {
	return call[ctypes.ResultBlock](ctx, c, types.Action("send").
		Param("wallet", wallet).
		Param("source", source).
		Param("destination", destination).
		Param("amount", amount))
}
