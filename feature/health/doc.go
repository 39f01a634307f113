// Package health provides dependency health checks.
//
// Unlike the 'files' package which performs storage operations on behalf of
// callers, this package only inspects the state of the service's
// dependencies: whether the storage provider answers, whether the configured
// bucket exists, and whether the upload ledger database is connected.
//
// # HTTP Endpoints
//
//   - GET /health : Runs all checks. Returns 503 when storage is unreachable.
package health
