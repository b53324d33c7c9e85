package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-c", "/etc/panel.json",
		"-home", "/srv/home",
		"-request-timeout", "10s",
		"-display", ":2",
		"-keyboard-timeout", "4s",
		"-disable-keyboard",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/etc/panel.json", cfg.JSONFilePath)
	assert.Equal(t, "/srv/home", cfg.Mailspring.HomeDir)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, ":2", cfg.Keyboard.Display)
	assert.Equal(t, 4*time.Second, cfg.Keyboard.Timeout)
	assert.True(t, cfg.Keyboard.Disabled)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/tmp/x.json"})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Mailspring.HomeDir)
	assert.False(t, cfg.Keyboard.Disabled)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "ipv4", input: "0.0.0.0:6379", want: "0.0.0.0:6379"},
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "missing port", input: "127.0.0.1", wantErr: true},
		{name: "non-numeric port", input: "127.0.0.1:http", wantErr: true},
		{name: "zero port", input: "127.0.0.1:0", wantErr: true},
		{name: "port too large", input: "127.0.0.1:70000", wantErr: true},
		{name: "bad host", input: "example:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
