// Package common contains constants and sentinel errors shared by the blog
// server, its transports and the client.
package common

// AuthorizationHeaderName is the HTTP header and gRPC metadata key carrying
// the bearer credential.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the signed token inside the authorization value.
const BearerPrefix = "Bearer "

// UserIDHeaderName is the gRPC header metadata key echoing the resolved
// caller id back to the client.
const UserIDHeaderName = "x-user-id"

// RequestIDHeaderName carries a per-request correlation id on gRPC calls.
const RequestIDHeaderName = "x-request-id"

// HTTP route layout shared by the REST server and the HTTP client.
const (
	APIPrefix        = "/api"
	PublicScope      = "/v0"
	ProtectedScope   = "/v1"
	RouteRegister    = "/auth/register"
	RouteLogin       = "/auth/login"
	RoutePosts       = "/posts"
	RouteHealth      = "/health"
	QueryParamLimit  = "limit"
	QueryParamOffset = "offset"
)
