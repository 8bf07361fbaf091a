package memory

import (
	"time"

	"LearnHub/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed fills the storage with a small demo catalog: two users ("student" /
// "admin", both with password "password"), three courses, one enrollment with
// partial progress, a few ratings, bookmarks and notes. Meant for local runs
// without Postgres.
func (s *Storage) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	s.nextUserID = 2
	s.users[1] = &models.User{
		ID:       1,
		Username: "student",
		Password: string(hash),
		Email:    "student@example.com",
		Roles:    []string{models.ClientRole},
	}
	s.users[2] = &models.User{
		ID:       2,
		Username: "admin",
		Password: string(hash),
		Email:    "admin@example.com",
		Roles:    []string{models.ClientRole, models.AdminRole},
	}

	courses := []*models.Course{
		{
			Title:       "Introduction to Go",
			Description: "Syntax, tooling and the standard library, from zero to a working HTTP service.",
			Thumbnail:   "https://placehold.co/600x400?text=Go",
			Instructor:  "Sarah Chen",
			Duration:    "6 hours",
			Category:    "Programming",
			Difficulty:  models.DifficultyBeginner,
			Lessons: []models.Lesson{
				{Title: "Getting Started", Content: "Installing the toolchain and writing hello world.", Duration: "20 min", Order: 1, Type: models.LessonTypeVideo},
				{Title: "Types and Structs", Content: "Value semantics, methods and composition.", Duration: "35 min", Order: 2, Type: models.LessonTypeVideo},
				{Title: "Error Handling", Content: "Errors as values, wrapping and sentinel errors.", Duration: "30 min", Order: 3, Type: models.LessonTypeText},
				{Title: "Checkpoint Quiz", Content: "Short quiz covering the first three lessons.", Duration: "15 min", Order: 4, Type: models.LessonTypeQuiz},
			},
		},
		{
			Title:       "Relational Databases in Practice",
			Description: "Schema design, indexing and transactions with PostgreSQL.",
			Thumbnail:   "https://placehold.co/600x400?text=SQL",
			Instructor:  "Miguel Torres",
			Duration:    "8 hours",
			Category:    "Databases",
			Difficulty:  models.DifficultyIntermediate,
			Lessons: []models.Lesson{
				{Title: "Modeling Data", Content: "Tables, keys and normal forms.", Duration: "40 min", Order: 1, Type: models.LessonTypeVideo},
				{Title: "Indexes", Content: "B-trees, covering indexes and when they hurt.", Duration: "45 min", Order: 2, Type: models.LessonTypeVideo},
				{Title: "Transactions", Content: "Isolation levels and common anomalies.", Duration: "50 min", Order: 3, Type: models.LessonTypeText},
			},
		},
		{
			Title:       "Distributed Systems Fundamentals",
			Description: "Consensus, replication and failure modes of systems that span machines.",
			Thumbnail:   "https://placehold.co/600x400?text=DS",
			Instructor:  "Ada Okafor",
			Duration:    "12 hours",
			Category:    "Systems",
			Difficulty:  models.DifficultyAdvanced,
			Lessons: []models.Lesson{
				{Title: "Time and Ordering", Content: "Clocks, happens-before and logical timestamps.", Duration: "55 min", Order: 1, Type: models.LessonTypeVideo},
				{Title: "Replication", Content: "Leader-based and quorum replication.", Duration: "60 min", Order: 2, Type: models.LessonTypeVideo},
				{Title: "Consensus", Content: "Why agreement is hard and how Raft approaches it.", Duration: "70 min", Order: 3, Type: models.LessonTypeText},
				{Title: "Design Exercise", Content: "Sketch a replicated log for a given workload.", Duration: "90 min", Order: 4, Type: models.LessonTypeAssignment},
			},
		},
	}
	for _, c := range courses {
		s.nextCourseID++
		c.ID = s.nextCourseID
		c.CreatedAt = now
		c.UpdatedAt = now
		for i := range c.Lessons {
			s.nextLessonID++
			c.Lessons[i].ID = s.nextLessonID
			c.Lessons[i].CourseID = c.ID
		}
		s.courses[c.ID] = c
	}

	s.enrollments[pairKey{1, 1}] = models.Enrollment{UserID: 1, CourseID: 1, EnrolledAt: now.Add(-72 * time.Hour)}
	s.enrollments[pairKey{1, 2}] = models.Enrollment{UserID: 1, CourseID: 2, EnrolledAt: now.Add(-24 * time.Hour)}

	// Two of four lessons done in course 1: 50%.
	s.progress[pairKey{1, 1}] = &models.CourseProgress{
		UserID:             1,
		CourseID:           1,
		CompletedLessons:   []int64{s.courses[1].Lessons[0].ID, s.courses[1].Lessons[1].ID},
		LastAccessed:       now.Add(-2 * time.Hour),
		ProgressPercentage: 50,
	}

	// Course 1 averages 4.5 over four ratings.
	for _, r := range []struct {
		userID int64
		value  int
	}{{1, 5}, {3, 4}, {4, 5}, {5, 4}} {
		s.nextRatingID++
		s.ratings[pairKey{r.userID, 1}] = &models.Rating{
			ID:        s.nextRatingID,
			UserID:    r.userID,
			CourseID:  1,
			Value:     r.value,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	s.bookmarks[1] = map[int64]bool{1: true, 3: true}

	for _, n := range []models.Note{
		{CourseID: 1, LessonID: s.courses[1].Lessons[1].ID, Title: "Struct embedding", Content: "Embedding promotes methods; not inheritance."},
		{CourseID: 1, LessonID: s.courses[1].Lessons[2].ID, Title: "errors.Is vs As", Content: "Is for sentinels, As for typed errors."},
	} {
		s.nextNoteID++
		n.ID = s.nextNoteID
		n.CreatedAt = now.Add(time.Duration(s.nextNoteID) * time.Minute)
		n.UpdatedAt = n.CreatedAt
		note := n
		s.notes[n.ID] = &note
	}

	return nil
}
