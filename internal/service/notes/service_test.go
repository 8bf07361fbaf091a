package notes

import (
	"context"
	"errors"
	"testing"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/internal/storage/memory"
	"LearnHub/pkg/logger"
)

func newTestService(t *testing.T) (*NotesService, *models.Course) {
	t.Helper()
	store := memory.New()
	courses := memory.NewCourseMemory(store)
	course := &models.Course{
		Title: "Go Basics",
		Lessons: []models.Lesson{
			{Title: "Setup", Order: 1, Type: models.LessonTypeVideo},
			{Title: "Syntax", Order: 2, Type: models.LessonTypeText},
		},
	}
	if _, err := courses.CreateCourse(context.Background(), course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	return NewNotesService(logger.New("local"), courses, memory.NewNoteMemory(store)), course
}

func TestCreateNoteValidation(t *testing.T) {
	svc, course := newTestService(t)
	ctx := context.Background()

	cases := []models.Note{
		{CourseID: course.ID, LessonID: course.Lessons[0].ID, Title: "  ", Content: "body"},
		{CourseID: course.ID, LessonID: course.Lessons[0].ID, Title: "title", Content: ""},
		{CourseID: course.ID, Title: "title", Content: "body"},
		{LessonID: course.Lessons[0].ID, Title: "title", Content: "body"},
	}
	for i, note := range cases {
		if _, err := svc.CreateNote(ctx, note); !errors.Is(err, app_errors.ErrMissingNoteFields) {
			t.Errorf("case %d: expected ErrMissingNoteFields, got %v", i, err)
		}
	}

	note := models.Note{CourseID: course.ID, LessonID: 9999, Title: "title", Content: "body"}
	if _, err := svc.CreateNote(ctx, note); !errors.Is(err, app_errors.ErrLessonNotInCourse) {
		t.Errorf("expected ErrLessonNotInCourse, got %v", err)
	}
}

func TestUpdateNoteKeepsIdentity(t *testing.T) {
	svc, course := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateNote(ctx, models.Note{
		CourseID: course.ID,
		LessonID: course.Lessons[0].ID,
		Title:    "First draft",
		Content:  "original",
	})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	updated, err := svc.UpdateNote(ctx, created.ID, "Final", "revised")
	if err != nil {
		t.Fatalf("update note: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("expected ID %d preserved, got %d", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("expected CreatedAt preserved, got %v != %v", updated.CreatedAt, created.CreatedAt)
	}
	if updated.Title != "Final" || updated.Content != "revised" {
		t.Errorf("unexpected content after update: %+v", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("expected UpdatedAt to move forward")
	}
}

func TestUpdateMissingNote(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateNote(context.Background(), 42, "t", "c")
	if !errors.Is(err, app_errors.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestCourseNotesNewestFirst(t *testing.T) {
	svc, course := newTestService(t)
	ctx := context.Background()

	for _, title := range []string{"oldest", "middle", "newest"} {
		if _, err := svc.CreateNote(ctx, models.Note{
			CourseID: course.ID,
			LessonID: course.Lessons[0].ID,
			Title:    title,
			Content:  "body",
		}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	got, err := svc.CourseNotes(ctx, course.ID)
	if err != nil {
		t.Fatalf("course notes: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(got))
	}
	if got[0].Title != "newest" || got[2].Title != "oldest" {
		t.Errorf("expected newest-first ordering, got %q .. %q", got[0].Title, got[2].Title)
	}
}

func TestLessonNotesScoped(t *testing.T) {
	svc, course := newTestService(t)
	ctx := context.Background()

	for _, lessonID := range []int64{course.Lessons[0].ID, course.Lessons[1].ID} {
		if _, err := svc.CreateNote(ctx, models.Note{
			CourseID: course.ID,
			LessonID: lessonID,
			Title:    "note",
			Content:  "body",
		}); err != nil {
			t.Fatalf("create note: %v", err)
		}
	}

	got, err := svc.LessonNotes(ctx, course.ID, course.Lessons[0].ID)
	if err != nil {
		t.Fatalf("lesson notes: %v", err)
	}
	if len(got) != 1 || got[0].LessonID != course.Lessons[0].ID {
		t.Fatalf("expected 1 note scoped to lesson, got %+v", got)
	}
}

func TestSearchNotes(t *testing.T) {
	svc, course := newTestService(t)
	ctx := context.Background()

	notes := []models.Note{
		{CourseID: course.ID, LessonID: course.Lessons[0].ID, Title: "Goroutines", Content: "channels and select"},
		{CourseID: course.ID, LessonID: course.Lessons[1].ID, Title: "Slices", Content: "len and cap"},
	}
	for _, n := range notes {
		if _, err := svc.CreateNote(ctx, n); err != nil {
			t.Fatalf("create note: %v", err)
		}
	}

	got, err := svc.SearchNotes(ctx, "CHANNELS", 0, 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Goroutines" {
		t.Fatalf("expected case-insensitive content match, got %+v", got)
	}

	got, err = svc.SearchNotes(ctx, "", course.ID, course.Lessons[1].ID)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Slices" {
		t.Fatalf("expected blank term to match everything in lesson scope, got %+v", got)
	}
}

func TestDeleteNote(t *testing.T) {
	svc, course := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateNote(ctx, models.Note{
		CourseID: course.ID,
		LessonID: course.Lessons[0].ID,
		Title:    "gone soon",
		Content:  "body",
	})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if err := svc.DeleteNote(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteNote(ctx, created.ID); !errors.Is(err, app_errors.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound on second delete, got %v", err)
	}
}
