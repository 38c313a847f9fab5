// Package pgstore provides PostgreSQL-backed implementations of the reminder
// configuration sources: time windows, notification groups, and per-user
// channel configurations.
//
// All stores operate over a shared *pgxpool.Pool, typically opened through
// pkg/pg. The schema lives in the goose migrations under
// internal/db/migrations.
package pgstore
