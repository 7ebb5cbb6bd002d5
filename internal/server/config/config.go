// Package config handles configuration for the blog server: defaults,
// an optional JSON file, environment variables and command-line flags.
package config

import (
	"fmt"
	"time"
)

// DefaultSecretKey signs tokens when nothing else is configured.
// Only suitable for local development.
const DefaultSecretKey = "secretKey"

// Config holds runtime settings for the blog server.
//
// Fields:
//   - EndpointAddrHTTP / EndpointAddrGRPC: bind addresses of the two transports.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects in-memory storage.
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - TokenValidityDuration: lifetime of issued tokens.
//   - CORSOrigins: origins allowed by the REST CORS middleware.
//   - ShutdownTimeout: upper bound for graceful HTTP shutdown.
type Config struct {
	EndpointAddrHTTP      string        `env:"BLOG_HTTP_ADDR"`
	EndpointAddrGRPC      string        `env:"BLOG_GRPC_ADDR"`
	DatabaseDSN           string        `env:"DATABASE_URL"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"BLOG_TOKEN_TTL"`
	CORSOrigins           []string      `env:"CORS_ORIGINS" envSeparator:","`
	ShutdownTimeout       time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = DefaultSecretKey
	c.TokenValidityDuration = 24 * time.Hour
	c.CORSOrigins = []string{"*"}
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then the process environment, then the flags in args.
// args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	return load(args, nil)
}

// load is LoadConfig with an injectable environment; nil means os.Environ.
func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("config: secret key must not be empty")
	}
	if c.TokenValidityDuration <= 0 {
		return fmt.Errorf("config: token validity must be positive, got %s", c.TokenValidityDuration)
	}
	if c.EndpointAddrHTTP == "" && c.EndpointAddrGRPC == "" {
		return fmt.Errorf("config: at least one endpoint address is required")
	}
	return nil
}
