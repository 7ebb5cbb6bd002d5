package config

import (
	"fmt"
	"time"
)

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Config holds runtime settings for the blog CLI.
type Config struct {
	Transport      string
	ServerAddrHTTP string
	ServerAddrGRPC string
	SessionDBPath  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.Transport = TransportHTTP
	c.ServerAddrHTTP = "http://127.0.0.1:8080"
	c.ServerAddrGRPC = "127.0.0.1:50051"
	c.SessionDBPath = "blog_session.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// the flags in args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	switch cfg.Transport {
	case TransportHTTP, TransportGRPC:
	default:
		return nil, fmt.Errorf("config: unknown transport %q, want %q or %q", cfg.Transport, TransportHTTP, TransportGRPC)
	}
	return cfg, nil
}
