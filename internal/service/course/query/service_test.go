package query

import (
	"context"
	"testing"

	"LearnHub/internal/models"
	"LearnHub/internal/storage/memory"
	"LearnHub/pkg/logger"
)

type env struct {
	svc         *CourseQueryService
	courses     *memory.CourseMemory
	enrollments *memory.EnrollmentMemory
	progress    *memory.ProgressMemory
	ratings     *memory.RatingMemory
	bookmarks   *memory.BookmarkMemory
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.New()
	e := &env{
		courses:     memory.NewCourseMemory(store),
		enrollments: memory.NewEnrollmentMemory(store),
		progress:    memory.NewProgressMemory(store),
		ratings:     memory.NewRatingMemory(store),
		bookmarks:   memory.NewBookmarkMemory(store),
	}
	e.svc = NewCourseQueryService(
		logger.New("local"),
		e.courses,
		e.enrollments,
		e.progress,
		e.ratings,
		e.bookmarks,
		memory.NewCourseSearchMemory(store),
		memory.NewThumbnailMemory(),
	)
	return e
}

func (e *env) addCourse(t *testing.T, title, category string, lessons int) *models.Course {
	t.Helper()
	course := &models.Course{Title: title, Category: category}
	for i := 0; i < lessons; i++ {
		course.Lessons = append(course.Lessons, models.Lesson{Title: title, Order: i + 1, Type: models.LessonTypeVideo})
	}
	if _, err := e.courses.CreateCourse(context.Background(), course); err != nil {
		t.Fatalf("create course %q: %v", title, err)
	}
	return course
}

func TestCourseByIDFoldsUserState(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := e.addCourse(t, "Go Basics", "programming", 2)

	if err := e.enrollments.Enroll(ctx, 1, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := e.bookmarks.AddBookmark(ctx, 1, course.ID); err != nil {
		t.Fatalf("bookmark: %v", err)
	}
	if _, err := e.ratings.CreateRating(ctx, &models.Rating{UserID: 1, CourseID: course.ID, Value: 4}); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if err := e.progress.SaveProgress(ctx, &models.CourseProgress{
		UserID: 1, CourseID: course.ID,
		CompletedLessons:   []int64{course.Lessons[0].ID},
		ProgressPercentage: 50,
	}); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	detail, err := e.svc.CourseByID(ctx, 1, course.ID)
	if err != nil {
		t.Fatalf("course by id: %v", err)
	}
	if !detail.Enrolled || !detail.Bookmarked {
		t.Errorf("expected enrolled and bookmarked, got %+v", detail)
	}
	if detail.UserRating == nil || *detail.UserRating != 4 {
		t.Errorf("expected user rating 4, got %v", detail.UserRating)
	}
	if detail.AverageRating != 4 || detail.RatingCount != 1 {
		t.Errorf("expected summary {4 1}, got {%v %d}", detail.AverageRating, detail.RatingCount)
	}
	if detail.Progress == nil || detail.Progress.ProgressPercentage != 50 {
		t.Fatalf("expected 50%% progress, got %+v", detail.Progress)
	}
	if !detail.Lessons[0].Completed || detail.Lessons[1].Completed {
		t.Errorf("expected only first lesson completed, got %+v", detail.Lessons)
	}
}

func TestCourseByIDWithoutUserState(t *testing.T) {
	e := newEnv(t)
	course := e.addCourse(t, "Untouched", "misc", 1)

	detail, err := e.svc.CourseByID(context.Background(), 1, course.ID)
	if err != nil {
		t.Fatalf("course by id: %v", err)
	}
	if detail.Enrolled || detail.Bookmarked || detail.UserRating != nil || detail.Progress != nil {
		t.Fatalf("expected blank user state, got %+v", detail)
	}
}

func TestCoursesBlankTermReturnsCatalog(t *testing.T) {
	e := newEnv(t)
	e.addCourse(t, "Go Basics", "programming", 1)
	e.addCourse(t, "SQL Deep Dive", "databases", 1)
	e.addCourse(t, "Advanced Go", "programming", 1)

	for _, term := range []string{"", "   "} {
		details, err := e.svc.Courses(context.Background(), 1, term)
		if err != nil {
			t.Fatalf("courses %q: %v", term, err)
		}
		if len(details) != 3 {
			t.Errorf("term %q: expected full catalog of 3, got %d", term, len(details))
		}
	}
}

func TestCoursesSearchFilters(t *testing.T) {
	e := newEnv(t)
	e.addCourse(t, "Go Basics", "programming", 1)
	e.addCourse(t, "SQL Deep Dive", "databases", 1)
	e.addCourse(t, "Advanced Go", "programming", 1)

	details, err := e.svc.Courses(context.Background(), 1, "go")
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "go", len(details))
	}
	for _, d := range details {
		if d.Title != "Go Basics" && d.Title != "Advanced Go" {
			t.Errorf("unexpected match %q", d.Title)
		}
	}

	details, err = e.svc.Courses(context.Background(), 1, "databases")
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(details) != 1 || details[0].Title != "SQL Deep Dive" {
		t.Fatalf("expected category match on SQL Deep Dive, got %+v", details)
	}
}

func TestEnrolledAndBookmarkedCourses(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	first := e.addCourse(t, "First", "a", 1)
	second := e.addCourse(t, "Second", "b", 1)
	third := e.addCourse(t, "Third", "c", 1)

	if err := e.enrollments.Enroll(ctx, 1, first.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := e.enrollments.Enroll(ctx, 1, second.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := e.bookmarks.AddBookmark(ctx, 1, third.ID); err != nil {
		t.Fatalf("bookmark: %v", err)
	}

	enrolled, err := e.svc.EnrolledCourses(ctx, 1)
	if err != nil {
		t.Fatalf("enrolled courses: %v", err)
	}
	if len(enrolled) != 2 {
		t.Fatalf("expected 2 enrolled courses, got %d", len(enrolled))
	}
	for _, d := range enrolled {
		if !d.Enrolled {
			t.Errorf("course %d listed as enrolled but flag unset", d.ID)
		}
	}

	bookmarked, err := e.svc.BookmarkedCourses(ctx, 1)
	if err != nil {
		t.Fatalf("bookmarked courses: %v", err)
	}
	if len(bookmarked) != 1 || bookmarked[0].ID != third.ID {
		t.Fatalf("expected bookmarked course %d, got %+v", third.ID, bookmarked)
	}
}

func TestThumbnailPassthrough(t *testing.T) {
	e := newEnv(t)
	course := &models.Course{Title: "Hosted", Thumbnail: "https://cdn.example.com/pic.png"}
	if _, err := e.courses.CreateCourse(context.Background(), course); err != nil {
		t.Fatalf("create course: %v", err)
	}

	detail, err := e.svc.CourseByID(context.Background(), 1, course.ID)
	if err != nil {
		t.Fatalf("course by id: %v", err)
	}
	if detail.ThumbnailURL != "https://cdn.example.com/pic.png" {
		t.Fatalf("expected absolute URL passthrough, got %q", detail.ThumbnailURL)
	}
}
