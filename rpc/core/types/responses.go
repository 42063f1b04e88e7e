package coretypes

import (
	"bytes"

	cmtjson "github.com/nanorpc/nanorpc/libs/json"
	"github.com/nanorpc/nanorpc/rpc/jsonrpc/types"
)

// Flag values the node uses for boolean outcomes.
const (
	flagTrue = "1"
)

// AccountBalance is the balance of one account, in raw.
type AccountBalance struct {
	Account string `json:"account,omitempty"`
	Balance string
	Pending string
}

func (b *AccountBalance) SetKey(key string) { b.Account = key }

// Frontier is the latest block of an account chain.
type Frontier struct {
	Account string
	Block   string
}

// AccountPending lists the hashes of blocks waiting to be received by an
// account.
type AccountPending struct {
	Account string
	Blocks  []string
}

// Representative is a representative account and its voting weight in raw.
type Representative struct {
	Account string
	Weight  string
}

// Number of blocks in an account chain.
type ResultAccountBlockCount struct {
	BlockCount int64 `json:"block_count,string"`
}

// Account summary. Representative, Weight and Pending are only filled when
// requested.
type ResultAccountInfo struct {
	Frontier            string
	OpenBlock           string
	RepresentativeBlock string
	Balance             string
	ModifiedTimestamp   int64 `json:"modified_timestamp,string"`
	BlockCount          int64 `json:"block_count,string"`
	Representative      string `json:"representative,omitempty"`
	Weight              string `json:"weight,omitempty"`
	Pending             string `json:"pending,omitempty"`
}

// Account created in or resolved for a wallet or key.
type ResultAccount struct {
	Account string
}

// HistoryEntry is one block of an account history.
type HistoryEntry struct {
	Hash    string
	Type    string
	Account string
	Amount  string
}

// Latest blocks of an account, newest first.
type ResultAccountHistory struct {
	History []HistoryEntry
}

// Accounts of a wallet.
type ResultAccountList struct {
	Accounts []string
}

// Outcome of moving accounts between wallets.
type ResultAccountMove struct {
	Moved string
}

// IsMoved reports whether the node moved the accounts.
func (r ResultAccountMove) IsMoved() bool { return r.Moved == flagTrue }

// Public key of an account.
type ResultAccountKey struct {
	Key string
}

// Outcome of removing an account from a wallet.
type ResultAccountRemove struct {
	Removed string
}

// IsRemoved reports whether the node removed the account.
func (r ResultAccountRemove) IsRemoved() bool { return r.Removed == flagTrue }

// Representative of an account or a wallet.
type ResultRepresentative struct {
	Representative string
}

// Hash of the block a state-changing call produced.
type ResultBlock struct {
	Block string
}

// Voting weight of an account.
type ResultAccountWeight struct {
	Weight string
}

// Balances keyed by account.
type ResultAccountsBalances struct {
	Balances types.Mapping[AccountBalance]
}

// Entries returns one AccountBalance per account.
func (r ResultAccountsBalances) Entries() []AccountBalance {
	return types.Reshape(r.Balances)
}

// Accounts created in a wallet.
type ResultAccountsCreate struct {
	Accounts []string
}

// Frontier hashes keyed by account.
type ResultAccountsFrontiers struct {
	Frontiers types.Mapping[string]
}

// Entries returns one Frontier per account.
func (r ResultAccountsFrontiers) Entries() []Frontier {
	return types.ReshapeFunc(r.Frontiers, func(account, block string) Frontier {
		return Frontier{Account: account, Block: block}
	})
}

// BlockList is a list of block hashes. The node writes an empty list as "".
type BlockList []string

func (l *BlockList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte(`""`)) {
		*l = BlockList{}
		return nil
	}
	var hashes []string
	if err := cmtjson.Unmarshal(data, &hashes); err != nil {
		return err
	}
	*l = hashes
	return nil
}

// Pending block hashes keyed by account.
type ResultAccountsPending struct {
	Blocks types.Mapping[BlockList]
}

// Entries returns one AccountPending per account.
func (r ResultAccountsPending) Entries() []AccountPending {
	return types.ReshapeFunc(r.Blocks, func(account string, blocks BlockList) AccountPending {
		return AccountPending{Account: account, Blocks: []string(blocks)}
	})
}

// Amount returned by the unit conversions and receive_minimum.
type ResultAmount struct {
	Amount string
}

// Acknowledgement of receive_minimum_set.
type ResultSuccess struct {
	Success string
}

// Weights keyed by representative account.
type ResultRepresentatives struct {
	Representatives types.Mapping[string]
}

// Entries returns one Representative per account.
func (r ResultRepresentatives) Entries() []Representative {
	return types.ReshapeFunc(r.Representatives, func(account, weight string) Representative {
		return Representative{Account: account, Weight: weight}
	})
}

// Outcome of wallet_representative_set.
type ResultWalletRepresentativeSet struct {
	Set string
}

// IsSet reports whether the node changed the representative.
func (r ResultWalletRepresentativeSet) IsSet() bool { return r.Set == flagTrue }
