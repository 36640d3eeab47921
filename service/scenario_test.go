package service

import (
	"context"
	"testing"

	"learnsphere/domain"
	"learnsphere/repository"
	"learnsphere/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the demo flow end to end on one shared store: seed the catalog,
// register a student, enroll, purchase, review, then verify the student's
// snapshots survive a catalog edit.
func TestStudentJourney(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, repository.SeedDemoData(ctx, store, false))

	courseRepo := repository.NewCourseRepository(store)
	bundleRepo := repository.NewBundleRepository(store)

	auth := NewAuthService(repository.NewUserRepository(store), testSecret)
	courses := NewCourseService(courseRepo)
	bundles := NewBundleService(bundleRepo)
	reviews := NewReviewService(repository.NewReviewRepository(store), courseRepo)
	entitlements := NewEntitlementService(repository.NewEntitlementRepository(store), courseRepo, bundleRepo)

	// Student signs up and lands on their dashboard.
	registered, err := auth.Register(ctx, "sam@example.com", "sam-password", "sam", domain.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/student", registered.Redirect)
	studentID := registered.User.ID

	// Browse the seeded catalog.
	catalog, err := courses.List(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 5)

	// Enroll in the React course and buy the full-stack bundle.
	require.NoError(t, entitlements.EnrollCourse(ctx, studentID, "1"))
	require.NoError(t, entitlements.PurchaseBundle(ctx, studentID, "1"))

	enrolled, err := entitlements.EnrolledCourses(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "Advanced React Patterns", enrolled[0].Title)

	purchased, err := entitlements.PurchasedBundles(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, purchased, 1)
	assert.Equal(t, "Full Stack Developer Bundle", purchased[0].Title)

	// Leave a review; the seeded course already has two.
	_, err = reviews.AddReview(ctx, studentID, registered.User.Name, "1", 5, "loved it")
	require.NoError(t, err)

	courseReviews, err := reviews.CourseReviews(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, courseReviews, 3)

	average, err := reviews.AverageRating(ctx, "1")
	require.NoError(t, err)
	assert.InDelta(t, (5+4+5)/3.0, average, 1e-9)

	// An educator renames the course; the marketer reprices the bundle.
	newTitle := "React, The Hard Parts"
	_, err = courses.Update(ctx, "1", domain.CourseUpdate{Title: &newTitle})
	require.NoError(t, err)

	newPrice := 250.0
	_, err = bundles.Update(ctx, "1", domain.BundleUpdate{DiscountedPrice: &newPrice})
	require.NoError(t, err)

	// The student's snapshots keep the terms they signed up under.
	enrolled, err = entitlements.EnrolledCourses(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, "Advanced React Patterns", enrolled[0].Title)

	purchased, err = entitlements.PurchasedBundles(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, float64(300), purchased[0].DiscountedPrice)

	// Logging back in works with the stored credentials.
	loggedIn, err := auth.Login(ctx, "SAM@example.com", "sam-password")
	require.NoError(t, err)
	assert.Equal(t, studentID, loggedIn.User.ID)
}
