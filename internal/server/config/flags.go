package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophblog/internal/flagx"
)

// parseFlags overlays the server flags found in args.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g. ":8080")
//	-g string     gRPC bind address (e.g. ":50051")
//	-d string     PostgreSQL DSN; empty keeps in-memory storage
//	-s string     JWT HMAC secret key
//	-t duration   token validity (e.g. "24h")
//	-o string     comma-separated CORS origins
//
// Other flags in args are ignored so the config file flag can share the
// command line.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-d", "-s", "-t", "-o"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	origins := fs.String("o", strings.Join(config.CORSOrigins, ","), "comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	config.CORSOrigins = splitList(*origins)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
