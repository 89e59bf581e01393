// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (stdout, stderr string, code int) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	code = execute(cmd)
	return out.String(), errOut.String(), code
}

func TestNext(t *testing.T) {
	out, _, code := run("next", "0-59/30 0-23/2 * * *", "--tz", "UTC", "-n", "5", "--from", "2021-01-01T01:01:00Z")
	require.Equal(t, 0, code)
	assert.Equal(t, strings.Join([]string{
		"2021-01-01T02:00:00Z",
		"2021-01-01T02:30:00Z",
		"2021-01-01T04:00:00Z",
		"2021-01-01T04:30:00Z",
		"2021-01-01T06:00:00Z",
	}, "\n")+"\n", out)
}

func TestNext_Until(t *testing.T) {
	out, _, code := run("next", "0 0 L * *", "--tz", "UTC", "-n", "0",
		"--from", "2020-01-01T00:00", "--until", "2020-04-01T00:00")
	require.Equal(t, 0, code)
	assert.Equal(t, "2020-01-31T00:00:00Z\n2020-02-29T00:00:00Z\n2020-03-31T00:00:00Z\n", out)
}

func TestNext_Unbounded(t *testing.T) {
	_, stderr, code := run("next", "* * * * *", "-n", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--count or --until")
}

func TestNext_ParseError(t *testing.T) {
	_, stderr, code := run("next", "60 * * * *")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "syntax error in minute field: '60'")
}

func TestNext_BadZone(t *testing.T) {
	_, stderr, code := run("next", "* * * * *", "--tz", "Nowhere/Atlantis")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--tz")
}

func TestMatch(t *testing.T) {
	out, _, code := run("match", "0 9 * * MON-FRI", "2021-01-04T09:00:00Z", "--tz", "UTC")
	assert.Equal(t, 0, code)
	assert.Equal(t, "true\n", out)

	out, stderr, code := run("match", "0 9 * * MON-FRI", "2021-01-03T09:00:00Z", "--tz", "UTC")
	assert.Equal(t, 1, code)
	assert.Equal(t, "false\n", out)
	assert.Empty(t, stderr)
}

func TestMatch_Verbose(t *testing.T) {
	_, stderr, code := run("match", "* * * * *", "2021-01-04T09:00:00Z", "--tz", "UTC", "-v")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "due=true")
}

func TestVersion(t *testing.T) {
	out, _, code := run("version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "cronseq dev (commit: none)\n", out)
}
