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

type CoursePostgres struct {
	db *pgxpool.Pool
}

func NewCoursePostgres(db *pgxpool.Pool) *CoursePostgres {
	return &CoursePostgres{db: db}
}

func (r *CoursePostgres) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	query := `
		INSERT INTO courses (title, description, thumbnail, instructor, duration, category, difficulty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		course.Title,
		course.Description,
		course.Thumbnail,
		course.Instructor,
		course.Duration,
		course.Category,
		course.Difficulty,
		course.CreatedAt,
		course.UpdatedAt,
	).Scan(&course.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert course: %w", err)
	}
	return course.ID, nil
}

func (r *CoursePostgres) UpdateCourse(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		   SET title       = $2,
		       description = $3,
		       thumbnail   = $4,
		       instructor  = $5,
		       duration    = $6,
		       category    = $7,
		       difficulty  = $8,
		       updated_at  = NOW()
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Thumbnail,
		course.Instructor,
		course.Duration,
		course.Category,
		course.Difficulty,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse removes the course and everything hanging off it: lessons,
// enrollments, progress, ratings, notes and bookmarks, in one transaction.
func (r *CoursePostgres) DeleteCourse(ctx context.Context, courseID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, q := range []string{
		`DELETE FROM notes WHERE course_id = $1`,
		`DELETE FROM bookmarks WHERE course_id = $1`,
		`DELETE FROM ratings WHERE course_id = $1`,
		`DELETE FROM course_progress WHERE course_id = $1`,
		`DELETE FROM enrollments WHERE course_id = $1`,
		`DELETE FROM lessons WHERE course_id = $1`,
	} {
		if _, err := tx.Exec(ctx, q, courseID); err != nil {
			return err
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return tx.Commit(ctx)
}

func (r *CoursePostgres) UpdateThumbnail(ctx context.Context, courseID int64, objectKey string) error {
	query := `UPDATE courses SET thumbnail = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, courseID, objectKey)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) CourseByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `
		SELECT id, title, description, thumbnail, instructor, duration, category, difficulty, created_at, updated_at
		  FROM courses
		 WHERE id = $1
	`
	course := &models.Course{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Thumbnail,
		&course.Instructor,
		&course.Duration,
		&course.Category,
		&course.Difficulty,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}

	course.Lessons, err = r.LessonsByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (r *CoursePostgres) ListCourses(ctx context.Context) ([]models.Course, error) {
	const query = `
		SELECT id, title, description, thumbnail, instructor, duration, category, difficulty, created_at, updated_at
		  FROM courses
		 ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Thumbnail, &c.Instructor, &c.Duration, &c.Category, &c.Difficulty, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	for i := range courses {
		courses[i].Lessons, err = r.LessonsByCourse(ctx, courses[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return courses, nil
}

func (r *CoursePostgres) LessonsByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	const query = `
		SELECT id, course_id, title, content, duration, ord, type
		  FROM lessons
		 WHERE course_id = $1
		 ORDER BY ord
	`
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var l models.Lesson
		if err := rows.Scan(&l.ID, &l.CourseID, &l.Title, &l.Content, &l.Duration, &l.Order, &l.Type); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (r *CoursePostgres) LessonByID(ctx context.Context, lessonID int64) (*models.Lesson, error) {
	const query = `
		SELECT id, course_id, title, content, duration, ord, type
		  FROM lessons
		 WHERE id = $1
	`
	lesson := &models.Lesson{}
	err := r.db.QueryRow(ctx, query, lessonID).Scan(
		&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Content, &lesson.Duration, &lesson.Order, &lesson.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (r *CoursePostgres) CreateLesson(ctx context.Context, lesson *models.Lesson) (int64, error) {
	query := `
		INSERT INTO lessons (course_id, title, content, duration, ord, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		lesson.CourseID, lesson.Title, lesson.Content, lesson.Duration, lesson.Order, lesson.Type,
	).Scan(&lesson.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lesson: %w", err)
	}
	return lesson.ID, nil
}

// DeleteLesson prunes the lesson from every completion set of its course
// and recomputes the cached percentages, in one transaction with the delete.
func (r *CoursePostgres) DeleteLesson(ctx context.Context, lessonID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var courseID int64
	err = tx.QueryRow(ctx, `DELETE FROM lessons WHERE id = $1 RETURNING course_id`, lessonID).Scan(&courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return app_errors.ErrLessonNotFound
		}
		return err
	}

	const pruneQuery = `
		UPDATE course_progress cp
		   SET completed_lessons = array_remove(cp.completed_lessons, $1),
		       progress_percentage = CASE
		           WHEN (SELECT COUNT(*) FROM lessons WHERE course_id = $2) = 0 THEN 0
		           ELSE ROUND(cardinality(array_remove(cp.completed_lessons, $1))::numeric
		                / (SELECT COUNT(*) FROM lessons WHERE course_id = $2) * 100)
		       END
		 WHERE cp.course_id = $2
	`
	if _, err := tx.Exec(ctx, pruneQuery, lessonID, courseID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CoursePostgres) MaxLessonOrder(ctx context.Context, courseID int64) (int, error) {
	var maxOrder int
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(ord), 0) FROM lessons WHERE course_id = $1`, courseID).Scan(&maxOrder)
	if err != nil {
		return 0, err
	}
	return maxOrder, nil
}
