package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	return &Config{
		Transport:      TransportHTTP,
		ServerAddrHTTP: "http://127.0.0.1:8080",
		ServerAddrGRPC: "127.0.0.1:50051",
		SessionDBPath:  "blog_session.db",
		RequestTimeout: 10 * time.Second,
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(defaults(), &c))
}

func TestLoadConfig(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"transport":        "grpc",
		"server_addr_grpc": "json:1",
		"request_timeout":  "3s",
	})

	tests := []struct {
		name    string
		args    []string
		want    func(*Config)
		wantErr bool
	}{
		{name: "defaults", args: nil, want: func(*Config) {}},
		{
			name: "json then flags",
			args: []string{"-c", path, "-g", "flag:2", "-f", "/tmp/s.db"},
			want: func(c *Config) {
				c.Transport = TransportGRPC
				c.ServerAddrGRPC = "flag:2"
				c.SessionDBPath = "/tmp/s.db"
				c.RequestTimeout = 3 * time.Second
			},
		},
		{
			name: "flags only",
			args: []string{"-transport", "grpc", "-a", "http://blog:80", "-r", "1m"},
			want: func(c *Config) {
				c.Transport = TransportGRPC
				c.ServerAddrHTTP = "http://blog:80"
				c.RequestTimeout = time.Minute
			},
		},
		{name: "unknown transport", args: []string{"-transport", "smtp"}, wantErr: true},
		{name: "bad timeout", args: []string{"-r", "later"}, wantErr: true},
		{name: "missing config file", args: []string{"-c", "/nope/cli.json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}
