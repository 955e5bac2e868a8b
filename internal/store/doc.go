// Package store defines the persistence contracts for back-office resources,
// users and revoked tokens, plus the sentinel errors every implementation
// maps its failures onto. The gorm implementation lives in platform/postgres;
// in-memory versions for tests live in mocks.
package store
