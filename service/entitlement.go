package service

import (
	"context"

	"learnsphere/domain"
)

type entitlementService struct {
	repo    domain.EntitlementRepository
	courses domain.CourseRepository
	bundles domain.BundleRepository
}

func NewEntitlementService(
	repo domain.EntitlementRepository,
	courses domain.CourseRepository,
	bundles domain.BundleRepository,
) domain.EntitlementUseCase {
	return &entitlementService{repo: repo, courses: courses, bundles: bundles}
}

// EnrollCourse snapshots the course as it exists right now; later edits to
// the catalog do not reach the student's copy.
func (s *entitlementService) EnrollCourse(ctx context.Context, userID, courseID string) error {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	return s.repo.AddEnrolledCourse(ctx, userID, *course)
}

func (s *entitlementService) PurchaseBundle(ctx context.Context, userID, bundleID string) error {
	bundle, err := s.bundles.GetByID(ctx, bundleID)
	if err != nil {
		return err
	}
	return s.repo.AddPurchasedBundle(ctx, userID, *bundle)
}

func (s *entitlementService) EnrolledCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	return s.repo.EnrolledCourses(ctx, userID)
}

func (s *entitlementService) PurchasedBundles(ctx context.Context, userID string) ([]domain.Bundle, error) {
	return s.repo.PurchasedBundles(ctx, userID)
}

func (s *entitlementService) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	return s.repo.IsEnrolled(ctx, userID, courseID)
}

func (s *entitlementService) IsPurchased(ctx context.Context, userID, bundleID string) (bool, error) {
	return s.repo.IsPurchased(ctx, userID, bundleID)
}
