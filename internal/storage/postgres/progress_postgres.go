package postgres

import (
	"context"
	"errors"
	"fmt"

	"LearnHub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProgressPostgres struct {
	db *pgxpool.Pool
}

func NewProgressPostgres(db *pgxpool.Pool) *ProgressPostgres {
	return &ProgressPostgres{db: db}
}

// CourseProgress returns nil without error when the pair has no record yet;
// a missing record means an implied 0%.
func (r *ProgressPostgres) CourseProgress(ctx context.Context, userID, courseID int64) (*models.CourseProgress, error) {
	const query = `
		SELECT user_id, course_id, completed_lessons, last_accessed, progress_percentage
		  FROM course_progress
		 WHERE user_id = $1 AND course_id = $2
	`
	p := &models.CourseProgress{}
	err := r.db.QueryRow(ctx, query, userID, courseID).Scan(
		&p.UserID, &p.CourseID, &p.CompletedLessons, &p.LastAccessed, &p.ProgressPercentage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *ProgressPostgres) UserProgress(ctx context.Context, userID int64) ([]models.CourseProgress, error) {
	const query = `
		SELECT user_id, course_id, completed_lessons, last_accessed, progress_percentage
		  FROM course_progress
		 WHERE user_id = $1
		 ORDER BY last_accessed DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	var records []models.CourseProgress
	for rows.Next() {
		var p models.CourseProgress
		if err := rows.Scan(&p.UserID, &p.CourseID, &p.CompletedLessons, &p.LastAccessed, &p.ProgressPercentage); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func (r *ProgressPostgres) SaveProgress(ctx context.Context, progress *models.CourseProgress) error {
	query := `
		INSERT INTO course_progress (user_id, course_id, completed_lessons, last_accessed, progress_percentage)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, course_id) DO UPDATE
		   SET completed_lessons   = EXCLUDED.completed_lessons,
		       last_accessed       = EXCLUDED.last_accessed,
		       progress_percentage = EXCLUDED.progress_percentage
	`
	_, err := r.db.Exec(ctx, query,
		progress.UserID,
		progress.CourseID,
		progress.CompletedLessons,
		progress.LastAccessed,
		progress.ProgressPercentage,
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}
