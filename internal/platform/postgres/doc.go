// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// A database/sql pool opened with the pgx driver is shared by goose
// migrations and by gorm, which backs every repository.
package postgres
