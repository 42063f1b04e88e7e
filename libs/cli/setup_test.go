package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupEnv(t *testing.T) {
	cases := []struct {
		args     []string
		env      map[string]string
		expected string
	}{
		{nil, nil, ""},
		{[]string{"--foobar", "bang!"}, nil, "bang!"},
		// make sure reset is good
		{nil, nil, ""},
		// test both variants of the prefix
		{nil, map[string]string{"DEMO_FOOBAR": "good"}, "good"},
		{nil, map[string]string{"DEMOFOOBAR": "silly"}, "silly"},
		// and that cli overrides env...
		{
			[]string{"--foobar", "important"},
			map[string]string{"DEMO_FOOBAR": "ignored"}, "important",
		},
	}

	for idx, tc := range cases {
		i := fmt.Sprintf("%d", idx)
		// test command that store value of foobar in local variable
		var foo string
		demo := &cobra.Command{
			Use: "demo",
			RunE: func(*cobra.Command, []string) error {
				foo = viper.GetString("foobar")
				return nil
			},
		}
		demo.Flags().String("foobar", "", "Some test value from config")
		cmd := PrepareBaseCmd(demo, "DEMO", "/qwerty/asdfgh") // some missing dir..
		cmd.Exit = func(int) {}

		viper.Reset()
		args := append([]string{cmd.Use}, tc.args...)
		err := RunWithArgs(cmd, args, tc.env)
		require.NoError(t, err, i)
		assert.Equal(t, tc.expected, foo, i)
	}
}

func TestSetupConfig(t *testing.T) {
	// we pre-create two config files we can refer to in the rest of
	// the test cases.
	cval1 := "fubble"
	conf1 := t.TempDir()
	err := WriteConfigVals(conf1, map[string]string{"boo": cval1})
	require.NoError(t, err)

	cases := []struct {
		args     []string
		env      map[string]string
		expected string
	}{
		{nil, nil, ""},
		// setting on the command line
		{[]string{"--boo", "haha"}, nil, "haha"},
		{[]string{"--home", conf1}, nil, cval1},
		// test both variants of the prefix
		{nil, map[string]string{"RD_BOO": "bang"}, "bang"},
		{nil, map[string]string{"RD_HOME": conf1}, cval1},
		{nil, map[string]string{"RDHOME": conf1}, cval1},
	}

	for idx, tc := range cases {
		i := fmt.Sprintf("%d", idx)
		// test command that store value of foobar in local variable
		var foo string
		boo := &cobra.Command{
			Use: "reader",
			RunE: func(*cobra.Command, []string) error {
				foo = viper.GetString("boo")
				return nil
			},
		}
		boo.Flags().String("boo", "", "Some test value from config")
		cmd := PrepareBaseCmd(boo, "RD", "/qwerty/asdfgh") // some missing dir...
		cmd.Exit = func(int) {}

		viper.Reset()
		args := append([]string{cmd.Use}, tc.args...)
		err := RunWithArgs(cmd, args, tc.env)
		require.NoError(t, err, i)
		assert.Equal(t, tc.expected, foo, i)
	}
}

func TestSetupOutput(t *testing.T) {
	cases := []struct {
		args    []string
		wantErr bool
	}{
		{nil, false},
		{[]string{"--output", "json"}, false},
		{[]string{"-o", "text"}, false},
		{[]string{"--output", "yaml"}, true},
	}

	for idx, tc := range cases {
		i := fmt.Sprintf("%d", idx)
		out := &cobra.Command{
			Use:  "printer",
			RunE: func(*cobra.Command, []string) error { return nil },
		}
		cmd := PrepareMainCmd(out, "PR", "/qwerty/asdfgh")
		cmd.Exit = func(int) {}

		viper.Reset()
		args := append([]string{cmd.Use}, tc.args...)
		_, _, err := RunCaptureWithArgs(cmd, args, nil)
		if tc.wantErr {
			assert.Error(t, err, i)
		} else {
			assert.NoError(t, err, i)
		}
	}
}

type exitCodeError struct{ code int }

func (e exitCodeError) Error() string { return "exit " + fmt.Sprint(e.code) }
func (e exitCodeError) ExitCode() int { return e.code }

func TestSetupExitCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{errors.New("plain failure"), 1},
		{exitCodeError{3}, 3},
		{fmt.Errorf("wrapped: %w", exitCodeError{4}), 4},
	}

	for idx, tc := range cases {
		i := fmt.Sprintf("%d", idx)
		failing := &cobra.Command{
			Use:  "failer",
			RunE: func(*cobra.Command, []string) error { return tc.err },
		}
		cmd := PrepareBaseCmd(failing, "FAIL", "/qwerty/asdfgh")
		var code int
		cmd.Exit = func(c int) { code = c }

		viper.Reset()
		_, stderr, err := RunCaptureWithArgs(cmd, []string{cmd.Use}, nil)
		require.Error(t, err, i)
		assert.Equal(t, tc.code, code, i)
		assert.True(t, strings.HasPrefix(stderr, "ERROR: "), i)
	}
}
