package domain

import "context"

type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	CourseID string `json:"courseId"`
	Rating   int    `json:"rating"` // 1-5
	Comment  string `json:"comment"`
	Date     string `json:"date"` // YYYY-MM-DD
}

type ReviewRepository interface {
	All(ctx context.Context) ([]Review, error)
	ByCourse(ctx context.Context, courseID string) ([]Review, error)
	ByUserAndCourse(ctx context.Context, userID, courseID string) (*Review, error)
	// Upsert replaces any earlier review by the same (user, course) pair.
	Upsert(ctx context.Context, review *Review) error
}

type ReviewUseCase interface {
	AddReview(ctx context.Context, userID, userName, courseID string, rating int, comment string) (*Review, error)
	CourseReviews(ctx context.Context, courseID string) ([]Review, error)
	UserReview(ctx context.Context, userID, courseID string) (*Review, error)
	// AverageRating returns 0 when the course has no reviews; the mean is
	// not rounded, presentation rounds for display.
	AverageRating(ctx context.Context, courseID string) (float64, error)
}
