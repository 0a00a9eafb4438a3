package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/contact-api/internal/model/submission"
	"github.com/deppfellow/contact-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// ErrSubmissionNotFound is wrapped by every lookup or delete that matched
// no row. The "table:" prefix lets sqlerr.HandleError name the resource.
var ErrSubmissionNotFound = fmt.Errorf("%scontact_submissions: %w", sqlerr.TablePrefix, pgx.ErrNoRows)

const (
	listSubmissionsQuery = `
		SELECT id, name, email, subject, message, created_at
		FROM contact_submissions
		ORDER BY id ASC`

	getSubmissionQuery = `
		SELECT id, name, email, subject, message, created_at
		FROM contact_submissions
		WHERE id = $1`

	insertSubmissionQuery = `
		INSERT INTO contact_submissions (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	deleteSubmissionQuery = `DELETE FROM contact_submissions WHERE id = $1`

	deleteAllSubmissionsQuery = `DELETE FROM contact_submissions`
)

type SubmissionRepository struct {
	db DBTX
}

func NewSubmissionRepository(db DBTX) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// List returns every submission ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *SubmissionRepository) List(ctx context.Context) ([]submission.Submission, error) {
	rows, err := r.db.Query(ctx, listSubmissionsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]submission.Submission, 0)
	for rows.Next() {
		var s submission.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return submissions, nil
}

func (r *SubmissionRepository) Get(ctx context.Context, id int64) (*submission.Submission, error) {
	var s submission.Submission
	err := r.db.QueryRow(ctx, getSubmissionQuery, id).
		Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("submission %d: %w", id, ErrSubmissionNotFound)
		}
		return nil, fmt.Errorf("failed to get submission %d: %w", id, err)
	}

	return &s, nil
}

// Insert persists fields and returns the stored row with its assigned id
// and creation time.
func (r *SubmissionRepository) Insert(ctx context.Context, fields submission.Fields) (*submission.Submission, error) {
	s := submission.Submission{
		Name:    fields.Name,
		Email:   fields.Email,
		Subject: fields.Subject,
		Message: fields.Message,
	}

	err := r.db.QueryRow(ctx, insertSubmissionQuery, s.Name, s.Email, s.Subject, s.Message).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert submission: %w", err)
	}

	return &s, nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteSubmissionQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %d: %w", id, ErrSubmissionNotFound)
	}

	return nil
}

// DeleteAll removes every submission and reports how many rows went.
func (r *SubmissionRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteAllSubmissionsQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to delete submissions: %w", err)
	}

	return tag.RowsAffected(), nil
}
