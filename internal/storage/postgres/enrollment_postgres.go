package postgres

import (
	"context"
	"fmt"
	"time"

	"LearnHub/internal/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentPostgres struct {
	db *pgxpool.Pool
}

func NewEnrollmentPostgres(db *pgxpool.Pool) *EnrollmentPostgres {
	return &EnrollmentPostgres{db: db}
}

// Enroll is idempotent: enrolling twice leaves the original record in place.
func (r *EnrollmentPostgres) Enroll(ctx context.Context, userID, courseID int64) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO enrollments (user_id, course_id, enrolled_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID, courseID, now); err != nil {
		return fmt.Errorf("failed to enroll: %w", err)
	}
	return nil
}

// Unenroll deletes the enrollment and cascades to the pair's progress and
// rating records in a single transaction.
func (r *EnrollmentPostgres) Unenroll(ctx context.Context, userID, courseID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmdTag, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE user_id = $1 AND course_id = $2`, userID, courseID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrNotEnrolled
	}

	if _, err := tx.Exec(ctx, `DELETE FROM course_progress WHERE user_id = $1 AND course_id = $2`, userID, courseID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM ratings WHERE user_id = $1 AND course_id = $2`, userID, courseID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *EnrollmentPostgres) IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2
		)
	`, userID, courseID).Scan(&exists)
	return exists, err
}

func (r *EnrollmentPostgres) EnrolledCourseIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT course_id FROM enrollments WHERE user_id = $1 ORDER BY enrolled_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
