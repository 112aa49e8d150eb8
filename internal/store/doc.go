// Package store defines the persistence contracts for questions and per-user
// learning statistics, together with the shared error values and transaction
// helper that implementations and services rely on.
package store
