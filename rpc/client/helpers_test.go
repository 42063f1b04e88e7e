package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanorpc/nanorpc/rpc/client"
	"github.com/nanorpc/nanorpc/rpc/client/http"
	"github.com/nanorpc/nanorpc/rpc/client/mock"
	jsonrpcclient "github.com/nanorpc/nanorpc/rpc/jsonrpc/client"
)

const account = "xrb_3t6k35gi95xu6tergt6p69ck76ogmitsa8mnijtpxm9fkcm736xtoncuohr3"

func TestWaitForBlockCount(t *testing.T) {
	assert, require := assert.New(t), require.New(t)
	ctx := context.Background()

	// test with error result - immediate failure
	n := mock.NewNode().Fail("account_block_count", errors.New("bye"))
	r := mock.NewRecorder(n)
	c := http.NewWithTransport(r)

	// connection failure always leads to error
	err := client.WaitForBlockCount(ctx, c, account, 8, nil)
	require.Error(err)
	require.ErrorAs(err, &jsonrpcclient.ErrCommunication{})
	// we called account_block_count once to check
	require.Len(r.Calls, 1)

	// now set current block count to 10
	n.Reply("account_block_count", `{"block_count":"10"}`)

	// we will not wait for more than 10 blocks
	err = client.WaitForBlockCount(ctx, c, account, 40, nil)
	require.Error(err)
	require.ErrorAs(err, &client.ErrWaitThreshold{})

	// we called account_block_count once more to check
	require.Len(r.Calls, 2)

	// waiting for the past returns immediately
	err = client.WaitForBlockCount(ctx, c, account, 5, nil)
	require.NoError(err)
	// we called account_block_count once more to check
	require.Len(r.Calls, 3)

	// we use the callback to update the block count
	myWaiter := func(delta int64) error {
		// update the count for the next call
		n.Reply("account_block_count", `{"block_count":"15"}`)
		return client.DefaultWaitStrategy(delta)
	}

	// we wait for a few blocks
	err = client.WaitForBlockCount(ctx, c, account, 12, myWaiter)
	require.NoError(err)
	// we called account_block_count twice more
	require.Len(r.Calls, 5)

	pre := r.Calls[3]
	require.NoError(pre.Error)
	assert.JSONEq(`{"block_count":"10"}`, pre.Response.(string))

	post := r.Calls[4]
	require.NoError(post.Error)
	assert.JSONEq(`{"block_count":"15"}`, post.Response.(string))
	assert.Equal(map[string]any{"account": account}, post.Args)
}

func TestWaitForBlockCountProtocolError(t *testing.T) {
	n := mock.NewNode().Reply("account_block_count", `{"error":"Bad account number"}`)
	c := http.NewWithTransport(n)

	err := client.WaitForBlockCount(context.Background(), c, "xrb_bad", 1, nil)
	assert.True(t, jsonrpcclient.IsProtocolError(err, "Bad account number"))
}

func TestWaitForBlockCountCanceled(t *testing.T) {
	n := mock.NewNode().Reply("account_block_count", `{"block_count":"1"}`)
	c := http.NewWithTransport(n)

	ctx, cancel := context.WithCancel(context.Background())
	waiter := func(int64) error {
		cancel()
		return nil
	}
	err := client.WaitForBlockCount(ctx, c, account, 3, waiter)
	assert.ErrorIs(t, err, context.Canceled)
}
