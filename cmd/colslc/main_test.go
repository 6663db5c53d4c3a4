package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaceys/slices/filter"
)

func TestRootCmd(t *testing.T) {
	cmd := rootCmd()
	cmd.SetIn(strings.NewReader("alpha  beta   gamma\none    two    three\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-f", "1", "-f", "3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "alpha gamma\none three\n", out.String())
}

func TestRootCmd_NoFilters(t *testing.T) {
	cmd := rootCmd()
	cmd.SetIn(strings.NewReader("alpha  beta   gamma\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "alpha  beta   gamma\n", out.String())
}

func TestRootCmd_InvalidFilter(t *testing.T) {
	cmd := rootCmd()
	cmd.SetIn(strings.NewReader("alpha beta\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-f", "abc"})

	require.ErrorIs(t, cmd.Execute(), filter.ErrInvalidFilter)
	assert.Empty(t, out.String())
}
