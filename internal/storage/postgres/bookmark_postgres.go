package postgres

import (
	"context"
	"fmt"

	"LearnHub/internal/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookmarkPostgres struct {
	db *pgxpool.Pool
}

func NewBookmarkPostgres(db *pgxpool.Pool) *BookmarkPostgres {
	return &BookmarkPostgres{db: db}
}

func (r *BookmarkPostgres) AddBookmark(ctx context.Context, userID, courseID int64) error {
	query := `
		INSERT INTO bookmarks (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID, courseID); err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

func (r *BookmarkPostgres) RemoveBookmark(ctx context.Context, userID, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND course_id = $2`, userID, courseID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrNotBookmarked
	}
	return nil
}

func (r *BookmarkPostgres) IsBookmarked(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM bookmarks WHERE user_id = $1 AND course_id = $2
		)
	`, userID, courseID).Scan(&exists)
	return exists, err
}

func (r *BookmarkPostgres) BookmarkedCourseIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT course_id FROM bookmarks WHERE user_id = $1 ORDER BY course_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
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
