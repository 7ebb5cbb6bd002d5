// Package client is the blog API client.
//
// Client is the transport-neutral contract. HTTPClient speaks to the REST
// API and GRPCClient to the gRPC services. Given the same call script they
// return the same values and the same sentinel errors (ErrValidation,
// ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict, ErrInternal,
// ErrUnavailable), so callers never branch on the transport.
//
// InitDatabase opens the local SQLite session store used by the CLI.
package client
