package main

import (
	"testing"

	"github.com/GriffinCanCode/filemanager/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigUsername(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{name: "default", args: nil, want: "User"},
		{name: "environment", env: "Env", args: nil, want: "Env"},
		{name: "flag overrides environment", env: "Env", args: []string{"--username=Alice"}, want: "Alice"},
		{name: "single dash flag", args: []string{"-username", "Bob"}, want: "Bob"},
		{name: "empty flag keeps environment", env: "Env", args: []string{"--username="}, want: "Env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("FM_USERNAME", tt.env)
			}

			cfg, err := loadConfig(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Session.Username)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig([]string{"--verbose"})
	assert.Error(t, err)

	t.Setenv("FM_COMPRESSION", "lzma")
	_, err = loadConfig(nil)
	assert.Error(t, err)
}

func TestLoggerConfig(t *testing.T) {
	lc := loggerConfig(config.LogConfig{Level: "warn", Output: "stderr"})
	assert.Equal(t, "warn", lc.Level)
	assert.False(t, lc.Development)
	assert.Equal(t, []string{"stderr"}, lc.OutputPaths)

	lc = loggerConfig(config.LogConfig{Level: "info", Development: true, Output: "/tmp/fm.log"})
	assert.Equal(t, "info", lc.Level)
	assert.True(t, lc.Development)
	assert.Equal(t, []string{"/tmp/fm.log"}, lc.OutputPaths)

	lc = loggerConfig(config.LogConfig{Development: true})
	assert.Equal(t, "debug", lc.Level)
}
