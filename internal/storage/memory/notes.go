package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
)

type NoteMemory struct {
	s *Storage
}

func NewNoteMemory(s *Storage) *NoteMemory {
	return &NoteMemory{s: s}
}

func (r *NoteMemory) CreateNote(_ context.Context, note *models.Note) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextNoteID++
	note.ID = r.s.nextNoteID
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now
	stored := *note
	r.s.notes[note.ID] = &stored
	return note.ID, nil
}

func (r *NoteMemory) UpdateNote(_ context.Context, note *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.notes[note.ID]
	if !ok {
		return app_errors.ErrNoteNotFound
	}
	existing.Title = note.Title
	existing.Content = note.Content
	existing.UpdatedAt = note.UpdatedAt
	return nil
}

func (r *NoteMemory) DeleteNote(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notes[id]; !ok {
		return app_errors.ErrNoteNotFound
	}
	delete(r.s.notes, id)
	return nil
}

func (r *NoteMemory) NoteByID(_ context.Context, id int64) (*models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	note, ok := r.s.notes[id]
	if !ok {
		return nil, app_errors.ErrNoteNotFound
	}
	cp := *note
	return &cp, nil
}

func (r *NoteMemory) NotesByCourse(_ context.Context, courseID int64) ([]models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(n *models.Note) bool { return n.CourseID == courseID }), nil
}

func (r *NoteMemory) NotesByLesson(_ context.Context, courseID, lessonID int64) ([]models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(n *models.Note) bool {
		return n.CourseID == courseID && n.LessonID == lessonID
	}), nil
}

// SearchNotes matches the term against title or content, case-insensitive.
// courseID/lessonID of 0 mean unscoped.
func (r *NoteMemory) SearchNotes(_ context.Context, term string, courseID, lessonID int64) ([]models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	term = strings.ToLower(term)
	return r.collect(func(n *models.Note) bool {
		if courseID != 0 && n.CourseID != courseID {
			return false
		}
		if lessonID != 0 && n.LessonID != lessonID {
			return false
		}
		return strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term)
	}), nil
}

// collect must run under the lock; notes come back newest first.
func (r *NoteMemory) collect(match func(*models.Note) bool) []models.Note {
	var notes []models.Note
	for _, n := range r.s.notes {
		if match(n) {
			notes = append(notes, *n)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.After(notes[j].CreatedAt) })
	return notes
}
