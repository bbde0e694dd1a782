package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, subcmd := range cmd.Commands() {
		if subcmd.Name() == name {
			return subcmd
		}
	}
	return nil
}

func TestRootCmd(t *testing.T) {
	for _, name := range []string{
		"subjects", "session", "stats", "streak",
		"tasks", "todos", "exams", "achievements",
		"migrate", "version",
	} {
		assert.NotNil(t, findSubcommand(rootCmd, name), "%s command should be registered", name)
	}
}

func TestSessionCmd(t *testing.T) {
	cmd := sessionCmd()

	for _, name := range []string{"start", "pause", "resume", "status", "stop", "watch"} {
		assert.NotNil(t, findSubcommand(cmd, name), "session %s subcommand should exist", name)
	}

	start := findSubcommand(cmd, "start")
	require.NotNil(t, start)
	flag := start.Flag("yes")
	require.NotNil(t, flag, "start should have a --yes flag")
	assert.Equal(t, "false", flag.DefValue)

	stop := findSubcommand(cmd, "stop")
	require.NotNil(t, stop)
	assert.NotNil(t, stop.Flag("yes"), "stop should have a --yes flag")
}

func TestStatsCmdPeriodFlag(t *testing.T) {
	cmd := statsCmd()

	flag := cmd.Flag("period")
	require.NotNil(t, flag, "period flag should exist")
	assert.Equal(t, "week", flag.DefValue, "default period should be the trailing week")
}

func TestTodoPeriodKey(t *testing.T) {
	tests := []struct {
		name    string
		period  string
		wantErr bool
	}{
		{name: "day", period: "day"},
		{name: "week", period: "week"},
		{name: "month", period: "month"},
		{name: "invalid", period: "year", wantErr: true},
		{name: "empty", period: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := todoPeriodKey(tt.period)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, key)
		})
	}
}

func TestAddExamCmdRequiresDate(t *testing.T) {
	cmd := addExamCmd()

	flag := cmd.Flag("date")
	require.NotNil(t, flag)

	annotations := flag.Annotations[cobra.BashCompOneRequiredFlag]
	require.NotEmpty(t, annotations, "date flag should be required")
	assert.Equal(t, "true", annotations[0])
}
