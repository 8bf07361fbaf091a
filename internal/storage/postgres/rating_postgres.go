package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RatingPostgres struct {
	db *pgxpool.Pool
}

func NewRatingPostgres(db *pgxpool.Pool) *RatingPostgres {
	return &RatingPostgres{db: db}
}

func (r *RatingPostgres) CreateRating(ctx context.Context, rating *models.Rating) (int64, error) {
	now := time.Now().UTC()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	query := `
		INSERT INTO ratings (user_id, course_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		rating.UserID, rating.CourseID, rating.Value, rating.CreatedAt, rating.UpdatedAt,
	).Scan(&rating.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, app_errors.ErrAlreadyRated
		}
		return 0, fmt.Errorf("failed to insert rating: %w", err)
	}
	return rating.ID, nil
}

func (r *RatingPostgres) UpdateRating(ctx context.Context, userID, courseID int64, value int) error {
	query := `
		UPDATE ratings
		   SET rating = $3, updated_at = NOW()
		 WHERE user_id = $1 AND course_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query, userID, courseID, value)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrRatingNotFound
	}
	return nil
}

func (r *RatingPostgres) DeleteRating(ctx context.Context, userID, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ratings WHERE user_id = $1 AND course_id = $2`, userID, courseID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrRatingNotFound
	}
	return nil
}

// UserRating returns nil without error when the user never rated the course.
func (r *RatingPostgres) UserRating(ctx context.Context, userID, courseID int64) (*models.Rating, error) {
	const query = `
		SELECT id, user_id, course_id, rating, created_at, updated_at
		  FROM ratings
		 WHERE user_id = $1 AND course_id = $2
	`
	rating := &models.Rating{}
	err := r.db.QueryRow(ctx, query, userID, courseID).Scan(
		&rating.ID, &rating.UserID, &rating.CourseID, &rating.Value, &rating.CreatedAt, &rating.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rating, nil
}

func (r *RatingPostgres) RatingsByCourse(ctx context.Context, courseID int64) ([]models.Rating, error) {
	const query = `
		SELECT id, user_id, course_id, rating, created_at, updated_at
		  FROM ratings
		 WHERE course_id = $1
		 ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var rec models.Rating
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CourseID, &rec.Value, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, rec)
	}
	return ratings, rows.Err()
}

func (r *RatingPostgres) CourseRatingSummary(ctx context.Context, courseID int64) (models.RatingSummary, error) {
	const query = `
		SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0), COUNT(*)
		  FROM ratings
		 WHERE course_id = $1
	`
	var summary models.RatingSummary
	err := r.db.QueryRow(ctx, query, courseID).Scan(&summary.Average, &summary.Count)
	if err != nil {
		return models.RatingSummary{}, err
	}
	return summary, nil
}
