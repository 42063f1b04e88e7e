package coretypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmtjson "github.com/nanorpc/nanorpc/libs/json"
)

const (
	testAccount = "xrb_3t6k35gi95xu6tergt6p69ck76ogmitsa8mnijtpxm9fkcm736xtoncuohr3"
	testOther   = "xrb_3i1aq1cchnmbn9x5rsbap8b15akfh7wj7pwskuzi7ahz8oq6cobd99d4r3b7"
)

func TestAccountInfo(t *testing.T) {
	reply := `{
		"frontier": "ECCB8CB65CD3106EDA8CE9AA893FEAD497A91BCA903890CBD7A5C59F06AB9113",
		"open_block": "991CF190094C00F0B68E2E5F75F6BEE95A2E0BD93CEAA4A6734DB9F19B728948",
		"representative_block": "991CF190094C00F0B68E2E5F75F6BEE95A2E0BD93CEAA4A6734DB9F19B728948",
		"balance": "325586539664609129644855132177",
		"modified_timestamp": "1501793775",
		"block_count": "42"
	}`

	var info ResultAccountInfo
	require.NoError(t, cmtjson.Unmarshal([]byte(reply), &info))
	assert.Equal(t, "ECCB8CB65CD3106EDA8CE9AA893FEAD497A91BCA903890CBD7A5C59F06AB9113", info.Frontier)
	assert.Equal(t, "991CF190094C00F0B68E2E5F75F6BEE95A2E0BD93CEAA4A6734DB9F19B728948", info.OpenBlock)
	assert.Equal(t, info.OpenBlock, info.RepresentativeBlock)
	assert.Equal(t, "325586539664609129644855132177", info.Balance)
	assert.EqualValues(t, 1501793775, info.ModifiedTimestamp)
	assert.EqualValues(t, 42, info.BlockCount)
	assert.Empty(t, info.Representative)
}

func TestAccountsBalancesEntries(t *testing.T) {
	reply := `{"balances":{
		"` + testAccount + `":{"balance":"325586539664609129644855132177","pending":"2309370940000000000000000000000000"},
		"` + testOther + `":{"balance":"10000","pending":"0"}}}`

	var res ResultAccountsBalances
	require.NoError(t, cmtjson.Unmarshal([]byte(reply), &res))

	assert.Equal(t, []AccountBalance{
		{Account: testAccount, Balance: "325586539664609129644855132177", Pending: "2309370940000000000000000000000000"},
		{Account: testOther, Balance: "10000", Pending: "0"},
	}, res.Entries())

	// Entries are built anew on every call.
	first := res.Entries()
	first[0].Balance = "0"
	assert.Equal(t, "325586539664609129644855132177", res.Entries()[0].Balance)
}

func TestAccountsFrontiersEntries(t *testing.T) {
	reply := `{"frontiers":{
		"` + testAccount + `":"791AF413173EEE674A6FCF633B5DFC0F3C33F397F0DA08E987D9E0741D40D81A",
		"` + testOther + `":"6A32397F4E95AF025DE29D9BF1ACE864D5404362258E06489FABDBA9DCCC046F"}}`

	var res ResultAccountsFrontiers
	require.NoError(t, cmtjson.Unmarshal([]byte(reply), &res))
	assert.Equal(t, []Frontier{
		{Account: testAccount, Block: "791AF413173EEE674A6FCF633B5DFC0F3C33F397F0DA08E987D9E0741D40D81A"},
		{Account: testOther, Block: "6A32397F4E95AF025DE29D9BF1ACE864D5404362258E06489FABDBA9DCCC046F"},
	}, res.Entries())
}

func TestAccountsPendingEntries(t *testing.T) {
	const burn = "xrb_1111111111111111111111111111111111111111111111111117353trpda"
	testCases := []struct {
		name  string
		reply string
		want  []AccountPending
	}{
		{
			"blocks",
			`{"blocks":{"` + burn + `":["142A538F36833D1CC78B94E11C766F75818F8B940771335C6C1B8AB880C5BB1D"],"` + testAccount + `":[]}}`,
			[]AccountPending{
				{Account: burn, Blocks: []string{"142A538F36833D1CC78B94E11C766F75818F8B940771335C6C1B8AB880C5BB1D"}},
				{Account: testAccount, Blocks: []string{}},
			},
		},
		{
			"one account without blocks",
			`{"blocks":{"xrb_a":["142A"],"xrb_b":""}}`,
			[]AccountPending{
				{Account: "xrb_a", Blocks: []string{"142A"}},
				{Account: "xrb_b", Blocks: []string{}},
			},
		},
		{"none", `{"blocks":""}`, []AccountPending{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var res ResultAccountsPending
			require.NoError(t, cmtjson.Unmarshal([]byte(tc.reply), &res))
			assert.Equal(t, tc.want, res.Entries())
		})
	}
}

func TestBlockListRejectsOtherStrings(t *testing.T) {
	var res ResultAccountsPending
	err := cmtjson.Unmarshal([]byte(`{"blocks":{"xrb_a":"142A"}}`), &res)
	assert.Error(t, err)
}

func TestRepresentativesEntries(t *testing.T) {
	reply := `{"representatives":{
		"xrb_1111111111111111111111111111111111111111111111111117353trpda":"3822372327060170000000000000000000000",
		"xrb_1111111111111111111111111111111111111111111111111awsq94gtecn":"30999999999999999999999999000000"}}`

	var res ResultRepresentatives
	require.NoError(t, cmtjson.Unmarshal([]byte(reply), &res))
	entries := res.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Representative{
		Account: "xrb_1111111111111111111111111111111111111111111111111117353trpda",
		Weight:  "3822372327060170000000000000000000000",
	}, entries[0])
}

func TestFlags(t *testing.T) {
	assert.True(t, ResultAccountMove{Moved: "1"}.IsMoved())
	assert.False(t, ResultAccountMove{Moved: "0"}.IsMoved())
	assert.True(t, ResultAccountRemove{Removed: "1"}.IsRemoved())
	assert.False(t, ResultAccountRemove{}.IsRemoved())
	assert.True(t, ResultWalletRepresentativeSet{Set: "1"}.IsSet())
}

func TestAccountHistory(t *testing.T) {
	reply := `{"history":[{
		"hash":"ECCB8CB65CD3106EDA8CE9AA893FEAD497A91BCA903890CBD7A5C59F06AB9113",
		"type":"send",
		"account":"xrb_1111111111111111111111111111111111111111111111111111hifc8npp",
		"amount":"205676479000000000000000000000000000000"}]}`

	var res ResultAccountHistory
	require.NoError(t, cmtjson.Unmarshal([]byte(reply), &res))
	require.Len(t, res.History, 1)
	assert.Equal(t, HistoryEntry{
		Hash:    "ECCB8CB65CD3106EDA8CE9AA893FEAD497A91BCA903890CBD7A5C59F06AB9113",
		Type:    "send",
		Account: "xrb_1111111111111111111111111111111111111111111111111111hifc8npp",
		Amount:  "205676479000000000000000000000000000000",
	}, res.History[0])
}
