//go:build integration

// Package testdb provides utilities for tests that run against a real
// PostgreSQL database.
//
// Tests using it live behind the integration build tag and skip themselves
// when no database URL is configured:
//
//	func TestProductStore(t *testing.T) {
//	    db := testdb.Open(t)   // skips without DATABASE_URL, migrates, truncates
//	    s := postgres.NewProductStore(db)
//	    ...
//	}
//
// Environment variables, first non-empty wins: DATABASE_URL, MART_TEST_DB_URL.
package testdb
