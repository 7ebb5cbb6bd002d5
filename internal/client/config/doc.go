// Package config loads runtime configuration for the blog CLI.
//
// Sources, later overriding earlier:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-transport string   "http" or "grpc"
//	-a string           base URL of the REST API
//	-g string           host:port of the gRPC endpoint
//	-f string           path of the SQLite session store
//	-r duration         per-request timeout
//
// # JSON schema
//
//	{
//	  "transport": "grpc",
//	  "server_addr_http": "http://127.0.0.1:8080",
//	  "server_addr_grpc": "127.0.0.1:50051",
//	  "session_db_path": "blog_session.db",
//	  "request_timeout": "10s"
//	}
package config
