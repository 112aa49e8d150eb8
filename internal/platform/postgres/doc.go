// Package postgres implements the internal/store interfaces on PostgreSQL
// through database/sql and the pgx driver. Statements are built with
// squirrel; the schema lives in the embedded goose migrations.
package postgres
