// Package server holds configuration for the HTTP server layer.
//
// It defines the listening port and the optional API key used by the auth
// middleware. An empty API key disables authentication, which is only
// intended for local development against a local MinIO instance.
package server
