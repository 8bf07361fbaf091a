package memory

import (
	"context"
	"sort"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
)

type CourseMemory struct {
	s *Storage
}

func NewCourseMemory(s *Storage) *CourseMemory {
	return &CourseMemory{s: s}
}

func (r *CourseMemory) CreateCourse(_ context.Context, course *models.Course) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextCourseID++
	course.ID = r.s.nextCourseID
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	for i := range course.Lessons {
		r.s.nextLessonID++
		course.Lessons[i].ID = r.s.nextLessonID
		course.Lessons[i].CourseID = course.ID
	}
	r.s.courses[course.ID] = copyCourse(course)
	return course.ID, nil
}

func (r *CourseMemory) UpdateCourse(_ context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.courses[course.ID]
	if !ok {
		return app_errors.ErrCourseNotFound
	}
	updated := copyCourse(course)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.Lessons = existing.Lessons
	r.s.courses[course.ID] = updated
	return nil
}

func (r *CourseMemory) DeleteCourse(_ context.Context, courseID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.courses[courseID]; !ok {
		return app_errors.ErrCourseNotFound
	}
	delete(r.s.courses, courseID)

	for key := range r.s.enrollments {
		if key.courseID == courseID {
			delete(r.s.enrollments, key)
		}
	}
	for key := range r.s.progress {
		if key.courseID == courseID {
			delete(r.s.progress, key)
		}
	}
	for key := range r.s.ratings {
		if key.courseID == courseID {
			delete(r.s.ratings, key)
		}
	}
	for id, note := range r.s.notes {
		if note.CourseID == courseID {
			delete(r.s.notes, id)
		}
	}
	for _, set := range r.s.bookmarks {
		delete(set, courseID)
	}
	return nil
}

func (r *CourseMemory) UpdateThumbnail(_ context.Context, courseID int64, objectKey string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	course, ok := r.s.courses[courseID]
	if !ok {
		return app_errors.ErrCourseNotFound
	}
	course.Thumbnail = objectKey
	course.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *CourseMemory) CourseByID(_ context.Context, id int64) (*models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	course, ok := r.s.courses[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return copyCourse(course), nil
}

func (r *CourseMemory) ListCourses(_ context.Context) ([]models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	courses := make([]models.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		courses = append(courses, *copyCourse(c))
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *CourseMemory) LessonByID(_ context.Context, lessonID int64) (*models.Lesson, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.courses {
		for _, l := range c.Lessons {
			if l.ID == lessonID {
				lesson := l
				return &lesson, nil
			}
		}
	}
	return nil, app_errors.ErrLessonNotFound
}

func (r *CourseMemory) CreateLesson(_ context.Context, lesson *models.Lesson) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	course, ok := r.s.courses[lesson.CourseID]
	if !ok {
		return 0, app_errors.ErrCourseNotFound
	}
	r.s.nextLessonID++
	lesson.ID = r.s.nextLessonID
	course.Lessons = append(course.Lessons, *lesson)
	sort.Slice(course.Lessons, func(i, j int) bool { return course.Lessons[i].Order < course.Lessons[j].Order })
	return lesson.ID, nil
}

// DeleteLesson also prunes the lesson from every completion set of the
// course and recomputes the cached percentages against the new total.
func (r *CourseMemory) DeleteLesson(_ context.Context, lessonID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, course := range r.s.courses {
		for i, l := range course.Lessons {
			if l.ID == lessonID {
				course.Lessons = append(course.Lessons[:i], course.Lessons[i+1:]...)
				r.pruneProgress(course.ID, lessonID, len(course.Lessons))
				return nil
			}
		}
	}
	return app_errors.ErrLessonNotFound
}

func (r *CourseMemory) pruneProgress(courseID, lessonID int64, lessonTotal int) {
	for key, p := range r.s.progress {
		if key.courseID != courseID {
			continue
		}
		for i, id := range p.CompletedLessons {
			if id == lessonID {
				p.CompletedLessons = append(p.CompletedLessons[:i], p.CompletedLessons[i+1:]...)
				break
			}
		}
		p.ProgressPercentage = models.CompletionPercent(len(p.CompletedLessons), lessonTotal)
	}
}

func (r *CourseMemory) MaxLessonOrder(_ context.Context, courseID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	course, ok := r.s.courses[courseID]
	if !ok {
		return 0, app_errors.ErrCourseNotFound
	}
	maxOrder := 0
	for _, l := range course.Lessons {
		if l.Order > maxOrder {
			maxOrder = l.Order
		}
	}
	return maxOrder, nil
}
