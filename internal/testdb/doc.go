//go:build integration

// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests are skipped unless CLORO_TEST_DATABASE_URL or DATABASE_URL is set.
// GetTestDB applies the embedded migrations once per test binary, and WithTx
// runs each test inside a transaction that is always rolled back.
package testdb
