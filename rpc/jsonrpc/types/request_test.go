package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStampsAction(t *testing.T) {
	for n := 0; n < 8; n++ {
		b := Action("account_balance")
		for i := 0; i < n; i++ {
			b.Param(fmt.Sprintf("p%d", i), i)
		}
		req := b.Build()

		assert.Equal(t, "account_balance", req.Action())
		v, ok := req.Get(ActionKey)
		require.True(t, ok)
		assert.Equal(t, req.Action(), v)
		assert.Len(t, req.Params(), n+1)
		assert.Equal(t, ActionKey, req.Keys()[0])
	}
}

func TestActionParamCannotOverrideAction(t *testing.T) {
	req := Action("send").Param("action", "receive").Param("wallet", "W").Build()

	assert.Equal(t, "send", req.Action())
	assert.Equal(t, "send", req.Params()[ActionKey])
	assert.Equal(t, []string{"action", "wallet"}, req.Keys())
}

func TestParamLastWriteWins(t *testing.T) {
	req := Action("account_history").
		Param("account", "a").
		Param("count", 1).
		Param("account", "b").
		Build()

	assert.Equal(t, []string{"action", "account", "count"}, req.Keys())
	v, _ := req.Get("account")
	assert.Equal(t, "b", v)
}

func TestBuiltRequestIsFrozen(t *testing.T) {
	b := Action("account_info").Param("account", "a")
	req := b.Build()
	b.Param("account", "b").Param("pending", true)

	assert.Equal(t, []string{"action", "account"}, req.Keys())
	v, _ := req.Get("account")
	assert.Equal(t, "a", v)

	params := req.Params()
	params["account"] = "c"
	v, _ = req.Get("account")
	assert.Equal(t, "a", v)
}

func TestRequestMarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
		want string
	}{
		{
			"no params",
			Action("representatives").Build(),
			`{"action":"representatives"}`,
		},
		{
			"insertion order",
			Action("send").
				Param("wallet", "W").
				Param("source", "S").
				Param("destination", "D").
				Param("amount", "1000").
				Build(),
			`{"action":"send","wallet":"W","source":"S","destination":"D","amount":"1000"}`,
		},
		{
			"value kinds",
			Action("accounts_pending").
				Param("accounts", []string{"a", "b"}).
				Param("count", 2).
				Param("work", false).
				Build(),
			`{"action":"accounts_pending","accounts":["a","b"],"count":2,"work":false}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bz, err := tc.req.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(bz))
		})
	}
}

func TestRequestString(t *testing.T) {
	req := Action("account_key").Param("account", "xrb_1").Build()
	assert.Equal(t, "account_key account=xrb_1", req.String())
}

func TestRequestStringWithoutParams(t *testing.T) {
	assert.Equal(t, "representatives", Action("representatives").Build().String())
	assert.NotPanics(t, func() {
		assert.Equal(t, "", Request{}.String())
	})
}
