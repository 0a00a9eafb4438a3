// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist
// or delete data, abstracting SQL logic away from the service layer.
package repository

import (
	"context"

	"github.com/deppfellow/contact-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool (and pgx.Tx) the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Submission *SubmissionRepository
}

// NewRepositories builds every repository on top of the shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Submission: NewSubmissionRepository(s.DB.Pool),
	}
}
