package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	d, err := parseAmount("1000000000000000000000000000000", true)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000000000", d.String())

	d, err = parseAmount("0.25", false)
	require.NoError(t, err)
	assert.Equal(t, "0.25", d.String())

	_, err = parseAmount("0.25", true)
	assert.Error(t, err)
	_, err = parseAmount("-1", false)
	assert.Error(t, err)
	_, err = parseAmount("abc", false)
	assert.Error(t, err)
}

func TestConvertOffline(t *testing.T) {
	cases := []struct {
		direction, unit, amount, want string
	}{
		{directionFrom, "mrai", "1000000000000000000000000000000", "1"},
		{directionFrom, "krai", "1000000000000000000000000000000", "1000"},
		{directionFrom, "rai", "1000000000000000000000000000000", "1000000"},
		{directionFrom, "mrai", "1", "0.000000000000000000000000000001"},
		{directionTo, "mrai", "1", "1000000000000000000000000000000"},
		{directionTo, "krai", "1", "1000000000000000000000000000"},
		{directionTo, "rai", "1", "1000000000000000000000000"},
		{directionTo, "mrai", "0.5", "500000000000000000000000000000"},
	}
	for _, tc := range cases {
		d, err := parseAmount(tc.amount, tc.direction == directionFrom)
		require.NoError(t, err, tc)
		got, err := convertOffline(tc.direction, tc.unit, d)
		require.NoError(t, err, tc)
		assert.Equal(t, tc.want, got, tc)
	}

	d, err := parseAmount("0.0000000000000000000000001", false)
	require.NoError(t, err)
	_, err = convertOffline(directionTo, "rai", d)
	assert.Error(t, err)

	_, err = convertOffline("sideways", "rai", d)
	assert.Error(t, err)
	_, err = convertOffline(directionTo, "nano", d)
	assert.Error(t, err)
}
