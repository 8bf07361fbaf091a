package memory

import (
	"context"
	"sort"

	"LearnHub/internal/app_errors"
)

type BookmarkMemory struct {
	s *Storage
}

func NewBookmarkMemory(s *Storage) *BookmarkMemory {
	return &BookmarkMemory{s: s}
}

func (r *BookmarkMemory) AddBookmark(_ context.Context, userID, courseID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	set, ok := r.s.bookmarks[userID]
	if !ok {
		set = make(map[int64]bool)
		r.s.bookmarks[userID] = set
	}
	set[courseID] = true
	return nil
}

func (r *BookmarkMemory) RemoveBookmark(_ context.Context, userID, courseID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	set := r.s.bookmarks[userID]
	if !set[courseID] {
		return app_errors.ErrNotBookmarked
	}
	delete(set, courseID)
	return nil
}

func (r *BookmarkMemory) IsBookmarked(_ context.Context, userID, courseID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.bookmarks[userID][courseID], nil
}

func (r *BookmarkMemory) BookmarkedCourseIDs(_ context.Context, userID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	set := r.s.bookmarks[userID]
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
