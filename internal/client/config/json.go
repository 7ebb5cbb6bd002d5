package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophblog/internal/flagx"
	"github.com/dmitrijs2005/gophblog/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI config file.
type JsonConfig struct {
	Transport      string         `json:"transport"`
	ServerAddrHTTP string         `json:"server_addr_http"`
	ServerAddrGRPC string         `json:"server_addr_grpc"`
	SessionDBPath  string         `json:"session_db_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays the non-empty values of the file named by -c/-config.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.Transport != "" {
		cfg.Transport = jc.Transport
	}
	if jc.ServerAddrHTTP != "" {
		cfg.ServerAddrHTTP = jc.ServerAddrHTTP
	}
	if jc.ServerAddrGRPC != "" {
		cfg.ServerAddrGRPC = jc.ServerAddrGRPC
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}
