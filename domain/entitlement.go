package domain

import "context"

// Entitlements are snapshots: the full course/bundle record is copied at
// enroll/purchase time, so later catalog edits do not reach into what a
// student already owns.

type EntitlementRepository interface {
	EnrolledCourses(ctx context.Context, userID string) ([]Course, error)
	PurchasedBundles(ctx context.Context, userID string) ([]Bundle, error)
	// AddEnrolledCourse and AddPurchasedBundle are idempotent: a second call
	// with the same entity id is a no-op, membership is at-most-one.
	AddEnrolledCourse(ctx context.Context, userID string, course Course) error
	AddPurchasedBundle(ctx context.Context, userID string, bundle Bundle) error
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
	IsPurchased(ctx context.Context, userID, bundleID string) (bool, error)
}

type EntitlementUseCase interface {
	EnrollCourse(ctx context.Context, userID, courseID string) error
	PurchaseBundle(ctx context.Context, userID, bundleID string) error
	EnrolledCourses(ctx context.Context, userID string) ([]Course, error)
	PurchasedBundles(ctx context.Context, userID string) ([]Bundle, error)
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
	IsPurchased(ctx context.Context, userID, bundleID string) (bool, error)
}
