package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"address", "config", "seed", "seed-out", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "a", cmd.Flags().Lookup("address").Shorthand)
}

func TestRootCmd_TooManyArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"http://example.com", "http://example.org"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"ftp://example.com"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting configs")
}

func TestRootCmd_Version(t *testing.T) {
	buildVersion, buildDate, buildCommit = "v1.2.3", "2026-10-18", "abc123"
	t.Cleanup(func() { buildVersion, buildDate, buildCommit = "", "", "" })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "v1.2.3 (commit abc123, built 2026-10-18)")
}
