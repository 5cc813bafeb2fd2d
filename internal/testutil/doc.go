// Package testutil starts disposable PostgreSQL instances for integration tests.
// Its helpers are only compiled with the integration build tag.
package testutil
