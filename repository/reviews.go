package repository

import (
	"context"

	"learnsphere/domain"
	"learnsphere/storage"
)

type reviewRepository struct {
	col *collection[domain.Review]
}

func NewReviewRepository(store storage.Store) domain.ReviewRepository {
	return &reviewRepository{col: newCollection[domain.Review](store, reviewsKey)}
}

func (r *reviewRepository) All(ctx context.Context) ([]domain.Review, error) {
	return r.col.load(ctx)
}

func (r *reviewRepository) ByCourse(ctx context.Context, courseID string) ([]domain.Review, error) {
	reviews, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.Review
	for _, review := range reviews {
		if review.CourseID == courseID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func (r *reviewRepository) ByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Review, error) {
	reviews, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if reviews[i].UserID == userID && reviews[i].CourseID == courseID {
			return &reviews[i], nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

// Upsert drops any earlier review by the same (user, course) pair before
// appending, one review per user per course.
func (r *reviewRepository) Upsert(ctx context.Context, review *domain.Review) error {
	return r.col.mutate(ctx, func(reviews []domain.Review) ([]domain.Review, error) {
		kept := reviews[:0]
		for _, existing := range reviews {
			if existing.UserID == review.UserID && existing.CourseID == review.CourseID {
				continue
			}
			kept = append(kept, existing)
		}
		return append(kept, *review), nil
	})
}
