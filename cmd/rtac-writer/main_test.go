package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtac-writer/internal/mapping"
)

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{name: "missing inputs", args: nil, expected: exitUsage},
		{name: "unknown flag", args: []string{"-nope"}, expected: exitUsage},
		{name: "bad variant", args: []string{"-scada", "a.xlsx", "-devices", ".", "-variant", "counter"}, expected: exitUsage},
		{name: "bad log level", args: []string{"-scada", "a.xlsx", "-devices", ".", "-log-level", "loud"}, expected: exitUsage},
		{name: "help", args: []string{"-h"}, expected: exitOK},
		{name: "version", args: []string{"-version"}, expected: exitOK},
		{name: "unreadable SCADA map", args: []string{"-scada", "absent.xlsx", "-devices", "."}, expected: exitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			assert.Equal(t, tt.expected, run(tt.args, &stdout, &stderr))
		})
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.Equal(t, exitOK, run([]string{"-version"}, &stdout, &stderr))
	assert.Equal(t, "rtac-writer dev\n", stdout.String())
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, log.WARN, lvl)

	_, err = parseLevel("verbose")
	require.Error(t, err)
}

func TestRun_InitProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	var stdout, stderr bytes.Buffer

	require.Equal(t, exitOK, run([]string{"-init-profile", path}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), path)

	loaded, err := mapping.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mapping.DefaultProfile(), loaded)

	missingDir := filepath.Join(t.TempDir(), "absent", "profile.yaml")
	assert.Equal(t, exitError, run([]string{"-init-profile", missingDir}, &stdout, &stderr))
}
