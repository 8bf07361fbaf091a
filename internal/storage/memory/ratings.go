package memory

import (
	"context"
	"math"
	"sort"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
)

type RatingMemory struct {
	s *Storage
}

func NewRatingMemory(s *Storage) *RatingMemory {
	return &RatingMemory{s: s}
}

func (r *RatingMemory) CreateRating(_ context.Context, rating *models.Rating) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pairKey{rating.UserID, rating.CourseID}
	if _, ok := r.s.ratings[key]; ok {
		return 0, app_errors.ErrAlreadyRated
	}
	r.s.nextRatingID++
	rating.ID = r.s.nextRatingID
	now := time.Now().UTC()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	stored := *rating
	r.s.ratings[key] = &stored
	return rating.ID, nil
}

func (r *RatingMemory) UpdateRating(_ context.Context, userID, courseID int64, value int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rating, ok := r.s.ratings[pairKey{userID, courseID}]
	if !ok {
		return app_errors.ErrRatingNotFound
	}
	rating.Value = value
	rating.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *RatingMemory) DeleteRating(_ context.Context, userID, courseID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pairKey{userID, courseID}
	if _, ok := r.s.ratings[key]; !ok {
		return app_errors.ErrRatingNotFound
	}
	delete(r.s.ratings, key)
	return nil
}

func (r *RatingMemory) UserRating(_ context.Context, userID, courseID int64) (*models.Rating, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rating, ok := r.s.ratings[pairKey{userID, courseID}]
	if !ok {
		return nil, nil
	}
	cp := *rating
	return &cp, nil
}

func (r *RatingMemory) RatingsByCourse(_ context.Context, courseID int64) ([]models.Rating, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ratings []models.Rating
	for key, rec := range r.s.ratings {
		if key.courseID == courseID {
			ratings = append(ratings, *rec)
		}
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].CreatedAt.After(ratings[j].CreatedAt) })
	return ratings, nil
}

func (r *RatingMemory) CourseRatingSummary(_ context.Context, courseID int64) (models.RatingSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sum, count := 0, 0
	for key, rec := range r.s.ratings {
		if key.courseID == courseID {
			sum += rec.Value
			count++
		}
	}
	if count == 0 {
		return models.RatingSummary{}, nil
	}
	average := math.Round(float64(sum)/float64(count)*10) / 10
	return models.RatingSummary{Average: average, Count: count}, nil
}
