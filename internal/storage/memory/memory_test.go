package memory

import (
	"bytes"
	"context"
	"io"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSeed(t *testing.T) {
	store := New()
	if err := store.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ctx := context.Background()

	users := NewUserMemory(store)
	student, err := users.UserByName(ctx, "student")
	if err != nil {
		t.Fatalf("student lookup: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte("password")); err != nil {
		t.Error("seeded password does not verify")
	}

	courses, err := NewCourseMemory(store).ListCourses(ctx)
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("expected 3 seeded courses, got %d", len(courses))
	}

	progress, err := NewProgressMemory(store).CourseProgress(ctx, student.ID, 1)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress == nil || progress.ProgressPercentage != 50 || len(progress.CompletedLessons) != 2 {
		t.Errorf("expected 2 of 4 lessons done (50%%), got %+v", progress)
	}

	summary, err := NewRatingMemory(store).CourseRatingSummary(ctx, 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Average != 4.5 || summary.Count != 4 {
		t.Errorf("expected summary {4.5 4}, got %+v", summary)
	}

	bookmarks, err := NewBookmarkMemory(store).BookmarkedCourseIDs(ctx, student.ID)
	if err != nil {
		t.Fatalf("bookmarks: %v", err)
	}
	if len(bookmarks) != 2 || bookmarks[0] != 1 || bookmarks[1] != 3 {
		t.Errorf("expected bookmarks [1 3], got %v", bookmarks)
	}

	notes, err := NewNoteMemory(store).NotesByCourse(ctx, 1)
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("expected 2 seeded notes, got %d", len(notes))
	}
}

func TestSeededCatalogSearch(t *testing.T) {
	store := New()
	if err := store.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	search := NewCourseSearchMemory(store)
	ctx := context.Background()

	cases := []struct {
		term string
		want []int64
	}{
		{"go", []int64{1}},
		{"POSTGRESQL", []int64{2}},
		{"Ada Okafor", []int64{3}},
		{"nothing matches this", nil},
	}
	for _, tc := range cases {
		got, err := search.Search(ctx, tc.term, 10)
		if err != nil {
			t.Fatalf("search %q: %v", tc.term, err)
		}
		if len(got) != len(tc.want) {
			t.Errorf("search %q: expected %v, got %v", tc.term, tc.want, got)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("search %q: expected %v, got %v", tc.term, tc.want, got)
			}
		}
	}
}

func TestThumbnailMemoryRoundTrip(t *testing.T) {
	thumbs := NewThumbnailMemory()
	ctx := context.Background()

	data := []byte{0x89, 'P', 'N', 'G'}
	key, err := thumbs.UploadThumbnail(ctx, 7, "cover.png", bytes.NewReader(data), int64(len(data)), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if key != "courses/7/thumbnail.png" {
		t.Errorf("unexpected object key %q", key)
	}

	url, err := thumbs.GetThumbnailURL(ctx, key)
	if err != nil || url != key {
		t.Errorf("expected key echoed as URL, got %q %v", url, err)
	}

	if err := thumbs.DeleteThumbnail(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestUploadThumbnailReadsWholeStream(t *testing.T) {
	thumbs := NewThumbnailMemory()

	var r io.Reader = bytes.NewReader(bytes.Repeat([]byte("x"), 1024))
	if _, err := thumbs.UploadThumbnail(context.Background(), 1, "a.jpg", r, 1024, "image/jpeg"); err != nil {
		t.Fatalf("upload: %v", err)
	}
}
