// Package common contains shared constants and sentinel errors used across
// the authentication server layers. Callers should use errors.Is to
// match the sentinel values.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token
// on protected routes.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in the Authorization
// header value.
const BearerPrefix = "Bearer "
