package notes

import (
	"context"
	"strings"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
}

type noteRepo interface {
	CreateNote(ctx context.Context, note *models.Note) (int64, error)
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, id int64) error
	NoteByID(ctx context.Context, id int64) (*models.Note, error)
	NotesByCourse(ctx context.Context, courseID int64) ([]models.Note, error)
	NotesByLesson(ctx context.Context, courseID, lessonID int64) ([]models.Note, error)
	SearchNotes(ctx context.Context, term string, courseID, lessonID int64) ([]models.Note, error)
}

type NotesService struct {
	log        logger.Log
	courseRepo courseRepo
	noteRepo   noteRepo
}

func NewNotesService(l logger.Log, c courseRepo, n noteRepo) *NotesService {
	return &NotesService{
		log:        l,
		courseRepo: c,
		noteRepo:   n,
	}
}

// CreateNote requires a course, a lesson within it and non-blank title and
// content.
func (s *NotesService) CreateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	if err := validateNote(&note); err != nil {
		return nil, err
	}
	if err := s.checkLesson(ctx, note.CourseID, note.LessonID); err != nil {
		return nil, err
	}
	if _, err := s.noteRepo.CreateNote(ctx, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces title and content, keeping the note's identity and
// creation time.
func (s *NotesService) UpdateNote(ctx context.Context, id int64, title, content string) (*models.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, app_errors.ErrMissingNoteFields
	}
	note, err := s.noteRepo.NoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now().UTC()
	if err := s.noteRepo.UpdateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NotesService) DeleteNote(ctx context.Context, id int64) error {
	return s.noteRepo.DeleteNote(ctx, id)
}

func (s *NotesService) NoteByID(ctx context.Context, id int64) (*models.Note, error) {
	return s.noteRepo.NoteByID(ctx, id)
}

// CourseNotes returns the course's notes, newest first.
func (s *NotesService) CourseNotes(ctx context.Context, courseID int64) ([]models.Note, error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.noteRepo.NotesByCourse(ctx, courseID)
}

func (s *NotesService) LessonNotes(ctx context.Context, courseID, lessonID int64) ([]models.Note, error) {
	if err := s.checkLesson(ctx, courseID, lessonID); err != nil {
		return nil, err
	}
	return s.noteRepo.NotesByLesson(ctx, courseID, lessonID)
}

// SearchNotes matches the term against titles and content, optionally
// scoped to a course or lesson (zero means unscoped). A blank term matches
// everything in scope.
func (s *NotesService) SearchNotes(ctx context.Context, term string, courseID, lessonID int64) ([]models.Note, error) {
	return s.noteRepo.SearchNotes(ctx, strings.TrimSpace(term), courseID, lessonID)
}

func (s *NotesService) checkLesson(ctx context.Context, courseID, lessonID int64) error {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return err
	}
	for _, l := range course.Lessons {
		if l.ID == lessonID {
			return nil
		}
	}
	return app_errors.ErrLessonNotInCourse
}

func validateNote(note *models.Note) error {
	if note.CourseID == 0 || note.LessonID == 0 {
		return app_errors.ErrMissingNoteFields
	}
	if strings.TrimSpace(note.Title) == "" || strings.TrimSpace(note.Content) == "" {
		return app_errors.ErrMissingNoteFields
	}
	return nil
}
