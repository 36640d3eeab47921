package service

import (
	"context"
	"time"

	"learnsphere/domain"

	"github.com/google/uuid"
)

type reviewService struct {
	repo    domain.ReviewRepository
	courses domain.CourseRepository
}

func NewReviewService(repo domain.ReviewRepository, courses domain.CourseRepository) domain.ReviewUseCase {
	return &reviewService{repo: repo, courses: courses}
}

func (s *reviewService) AddReview(ctx context.Context, userID, userName, courseID string, rating int, comment string) (*domain.Review, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	review := domain.Review{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserName: userName,
		CourseID: courseID,
		Rating:   rating,
		Comment:  comment,
		Date:     time.Now().Format("2006-01-02"),
	}

	if err := s.repo.Upsert(ctx, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *reviewService) CourseReviews(ctx context.Context, courseID string) ([]domain.Review, error) {
	return s.repo.ByCourse(ctx, courseID)
}

func (s *reviewService) UserReview(ctx context.Context, userID, courseID string) (*domain.Review, error) {
	return s.repo.ByUserAndCourse(ctx, userID, courseID)
}

func (s *reviewService) AverageRating(ctx context.Context, courseID string) (float64, error) {
	reviews, err := s.repo.ByCourse(ctx, courseID)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews)), nil
}
