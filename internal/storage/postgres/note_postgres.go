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

type NotePostgres struct {
	db *pgxpool.Pool
}

func NewNotePostgres(db *pgxpool.Pool) *NotePostgres {
	return &NotePostgres{db: db}
}

func (r *NotePostgres) CreateNote(ctx context.Context, note *models.Note) (int64, error) {
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now
	query := `
		INSERT INTO notes (course_id, lesson_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		note.CourseID, note.LessonID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt,
	).Scan(&note.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert note: %w", err)
	}
	return note.ID, nil
}

// UpdateNote keeps the original id and creation time; only title, content
// and the updated_at stamp change.
func (r *NotePostgres) UpdateNote(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		   SET title = $2, content = $3, updated_at = $4
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, note.ID, note.Title, note.Content, note.UpdatedAt)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrNoteNotFound
	}
	return nil
}

func (r *NotePostgres) DeleteNote(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrNoteNotFound
	}
	return nil
}

func (r *NotePostgres) NoteByID(ctx context.Context, id int64) (*models.Note, error) {
	const query = `
		SELECT id, course_id, lesson_id, title, content, created_at, updated_at
		  FROM notes
		 WHERE id = $1
	`
	note := &models.Note{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&note.ID, &note.CourseID, &note.LessonID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (r *NotePostgres) NotesByCourse(ctx context.Context, courseID int64) ([]models.Note, error) {
	const query = `
		SELECT id, course_id, lesson_id, title, content, created_at, updated_at
		  FROM notes
		 WHERE course_id = $1
		 ORDER BY created_at DESC
	`
	return r.queryNotes(ctx, query, courseID)
}

func (r *NotePostgres) NotesByLesson(ctx context.Context, courseID, lessonID int64) ([]models.Note, error) {
	const query = `
		SELECT id, course_id, lesson_id, title, content, created_at, updated_at
		  FROM notes
		 WHERE course_id = $1 AND lesson_id = $2
		 ORDER BY created_at DESC
	`
	return r.queryNotes(ctx, query, courseID, lessonID)
}

// SearchNotes matches the term against title or content, case-insensitive.
// courseID/lessonID of 0 mean unscoped.
func (r *NotePostgres) SearchNotes(ctx context.Context, term string, courseID, lessonID int64) ([]models.Note, error) {
	const query = `
		SELECT id, course_id, lesson_id, title, content, created_at, updated_at
		  FROM notes
		 WHERE (title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%')
		   AND ($2 = 0 OR course_id = $2)
		   AND ($3 = 0 OR lesson_id = $3)
		 ORDER BY created_at DESC
	`
	return r.queryNotes(ctx, query, term, courseID, lessonID)
}

func (r *NotePostgres) queryNotes(ctx context.Context, query string, args ...interface{}) ([]models.Note, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.CourseID, &n.LessonID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
