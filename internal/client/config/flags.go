package config

import (
	"flag"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/flagx"
)

// parseFlags overlays the CLI flags found in args and ignores the rest.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-transport", "-a", "-g", "-f", "-r"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "transport: http or grpc")
	fs.StringVar(&cfg.ServerAddrHTTP, "a", cfg.ServerAddrHTTP, "REST API base URL")
	fs.StringVar(&cfg.ServerAddrGRPC, "g", cfg.ServerAddrGRPC, "gRPC address and port")
	fs.StringVar(&cfg.SessionDBPath, "f", cfg.SessionDBPath, "session store file")
	fs.DurationVar(&cfg.RequestTimeout, "r", cfg.RequestTimeout, "per-request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
