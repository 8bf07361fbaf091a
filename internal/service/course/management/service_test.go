package management

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/internal/storage/memory"
	"LearnHub/pkg/logger"
)

func newTestService(t *testing.T) (*CourseManagementService, *memory.CourseMemory, *memory.CourseSearchMemory) {
	t.Helper()
	store := memory.New()
	courses := memory.NewCourseMemory(store)
	search := memory.NewCourseSearchMemory(store)
	svc := NewCourseManagementService(logger.New("local"), courses, search, memory.NewThumbnailMemory())
	return svc, courses, search
}

func TestCreateCourseNormalizesLessons(t *testing.T) {
	svc, courses, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateCourse(ctx, models.Course{
		Title: "Go Basics",
		Lessons: []models.Lesson{
			{Title: "Setup", Type: "webinar"},
			{Title: "Syntax", Type: models.LessonTypeText},
		},
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	course, err := courses.CourseByID(ctx, id)
	if err != nil {
		t.Fatalf("load course: %v", err)
	}
	if course.Lessons[0].Type != models.LessonTypeVideo {
		t.Errorf("expected unknown lesson type to default to video, got %q", course.Lessons[0].Type)
	}
	if course.Lessons[1].Type != models.LessonTypeText {
		t.Errorf("expected valid lesson type kept, got %q", course.Lessons[1].Type)
	}
	if course.Lessons[0].Order != 1 || course.Lessons[1].Order != 2 {
		t.Errorf("expected sequential orders, got %d and %d", course.Lessons[0].Order, course.Lessons[1].Order)
	}
}

func TestCreatedCourseIsSearchable(t *testing.T) {
	svc, _, search := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateCourse(ctx, models.Course{Title: "Distributed Systems", Category: "architecture"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	ids, err := search.Search(ctx, "distributed", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(ids) != 1 || ids[0] != id {
		t.Fatalf("expected search hit for course %d, got %v", id, ids)
	}
}

func TestDeleteCourseRemovesSearchDoc(t *testing.T) {
	svc, _, search := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateCourse(ctx, models.Course{Title: "Short-lived"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	if err := svc.DeleteCourse(ctx, id); err != nil {
		t.Fatalf("delete course: %v", err)
	}

	ids, err := search.Search(ctx, "short-lived", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no hits after delete, got %v", ids)
	}

	if err := svc.DeleteCourse(ctx, id); !errors.Is(err, app_errors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound on second delete, got %v", err)
	}
}

func TestAddLessonAppendsAtEnd(t *testing.T) {
	svc, courses, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateCourse(ctx, models.Course{
		Title: "Go Basics",
		Lessons: []models.Lesson{
			{Title: "Setup", Order: 1, Type: models.LessonTypeVideo},
			{Title: "Syntax", Order: 2, Type: models.LessonTypeVideo},
		},
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	lessonID, err := svc.AddLesson(ctx, models.Lesson{CourseID: id, Title: "Review", Type: models.LessonTypeQuiz})
	if err != nil {
		t.Fatalf("add lesson: %v", err)
	}

	course, err := courses.CourseByID(ctx, id)
	if err != nil {
		t.Fatalf("load course: %v", err)
	}
	last := course.Lessons[len(course.Lessons)-1]
	if last.ID != lessonID || last.Order != 3 {
		t.Fatalf("expected new lesson appended with order 3, got %+v", last)
	}
}

func TestDeleteLessonPrunesProgress(t *testing.T) {
	store := memory.New()
	courses := memory.NewCourseMemory(store)
	enrollments := memory.NewEnrollmentMemory(store)
	progress := memory.NewProgressMemory(store)
	svc := NewCourseManagementService(logger.New("local"), courses, memory.NewCourseSearchMemory(store), memory.NewThumbnailMemory())
	ctx := context.Background()

	course := &models.Course{
		Title: "Go Basics",
		Lessons: []models.Lesson{
			{Title: "One", Order: 1, Type: models.LessonTypeVideo},
			{Title: "Two", Order: 2, Type: models.LessonTypeVideo},
			{Title: "Three", Order: 3, Type: models.LessonTypeVideo},
			{Title: "Four", Order: 4, Type: models.LessonTypeVideo},
		},
	}
	if _, err := courses.CreateCourse(ctx, course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	if err := enrollments.Enroll(ctx, 1, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	completed := make([]int64, 0, len(course.Lessons))
	for _, l := range course.Lessons {
		completed = append(completed, l.ID)
	}
	if err := progress.SaveProgress(ctx, &models.CourseProgress{
		UserID: 1, CourseID: course.ID,
		CompletedLessons:   completed,
		ProgressPercentage: 100,
	}); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	for _, l := range course.Lessons[:3] {
		if err := svc.DeleteLesson(ctx, l.ID); err != nil {
			t.Fatalf("delete lesson %d: %v", l.ID, err)
		}
	}

	p, err := progress.CourseProgress(ctx, 1, course.ID)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if len(p.CompletedLessons) != 1 || p.CompletedLessons[0] != course.Lessons[3].ID {
		t.Fatalf("expected only the surviving lesson in the completion set, got %v", p.CompletedLessons)
	}
	if p.ProgressPercentage != 100 {
		t.Errorf("expected 1 of 1 lessons = 100%%, got %d", p.ProgressPercentage)
	}

	if err := svc.DeleteLesson(ctx, course.Lessons[3].ID); err != nil {
		t.Fatalf("delete last lesson: %v", err)
	}
	p, err = progress.CourseProgress(ctx, 1, course.ID)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if len(p.CompletedLessons) != 0 || p.ProgressPercentage != 0 {
		t.Fatalf("expected empty completion set at 0%%, got %+v", p)
	}
}

func TestUploadThumbnail(t *testing.T) {
	svc, courses, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateCourse(ctx, models.Course{Title: "Go Basics"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	data := []byte("png-bytes")
	url, err := svc.UploadThumbnail(ctx, id, "cover.png", bytes.NewReader(data), int64(len(data)), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url == "" {
		t.Fatal("expected a resolvable thumbnail URL")
	}

	course, err := courses.CourseByID(ctx, id)
	if err != nil {
		t.Fatalf("load course: %v", err)
	}
	if course.Thumbnail == "" {
		t.Fatal("expected thumbnail key saved on course")
	}
}

func TestUploadThumbnailRejectsNonImage(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateCourse(ctx, models.Course{Title: "Go Basics"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	data := []byte("%PDF-1.4")
	_, err = svc.UploadThumbnail(ctx, id, "cover.pdf", bytes.NewReader(data), int64(len(data)), "application/pdf")
	if !errors.Is(err, app_errors.ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestUploadThumbnailRejectsOversized(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateCourse(ctx, models.Course{Title: "Go Basics"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	_, err = svc.UploadThumbnail(ctx, id, "cover.png", bytes.NewReader(nil), maxThumbnailSizeBytes+1, "image/png")
	if !errors.Is(err, app_errors.ErrFileSize) {
		t.Fatalf("expected ErrFileSize, got %v", err)
	}
}
