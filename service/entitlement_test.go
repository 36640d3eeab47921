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

type entitlementFixture struct {
	entitlements domain.EntitlementUseCase
	courses      domain.CourseRepository
	bundles      domain.BundleRepository
}

func newEntitlementFixture() entitlementFixture {
	store := storage.NewMemoryStore()
	courseRepo := repository.NewCourseRepository(store)
	bundleRepo := repository.NewBundleRepository(store)

	return entitlementFixture{
		entitlements: NewEntitlementService(repository.NewEntitlementRepository(store), courseRepo, bundleRepo),
		courses:      courseRepo,
		bundles:      bundleRepo,
	}
}

func TestEnrollCourse(t *testing.T) {
	ctx := context.Background()
	fix := newEntitlementFixture()

	course := domain.Course{Title: "Go Basics", Price: 50}
	require.NoError(t, fix.courses.Create(ctx, &course))

	require.NoError(t, fix.entitlements.EnrollCourse(ctx, "u1", course.ID))

	enrolled, err := fix.entitlements.IsEnrolled(ctx, "u1", course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestEnrollUnknownCourse(t *testing.T) {
	fix := newEntitlementFixture()

	err := fix.entitlements.EnrollCourse(context.Background(), "u1", "ghost")
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestEnrollTwiceKeepsOneCopy(t *testing.T) {
	ctx := context.Background()
	fix := newEntitlementFixture()

	course := domain.Course{Title: "Go Basics"}
	require.NoError(t, fix.courses.Create(ctx, &course))

	require.NoError(t, fix.entitlements.EnrollCourse(ctx, "u1", course.ID))
	require.NoError(t, fix.entitlements.EnrollCourse(ctx, "u1", course.ID))

	courses, err := fix.entitlements.EnrolledCourses(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestEnrollmentSnapshotSurvivesCatalogEdit(t *testing.T) {
	ctx := context.Background()
	fix := newEntitlementFixture()

	course := domain.Course{Title: "Original Title", Price: 100}
	require.NoError(t, fix.courses.Create(ctx, &course))
	require.NoError(t, fix.entitlements.EnrollCourse(ctx, "u1", course.ID))

	newTitle := "Renamed"
	newPrice := 150.0
	_, err := fix.courses.Update(ctx, course.ID, domain.CourseUpdate{Title: &newTitle, Price: &newPrice})
	require.NoError(t, err)

	enrolled, err := fix.entitlements.EnrolledCourses(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "Original Title", enrolled[0].Title)
	assert.Equal(t, float64(100), enrolled[0].Price)
}

func TestPurchaseBundle(t *testing.T) {
	ctx := context.Background()
	fix := newEntitlementFixture()

	bundle := domain.Bundle{Title: "Full Stack", OriginalPrice: 500, DiscountedPrice: 300}
	require.NoError(t, fix.bundles.Create(ctx, &bundle))

	require.NoError(t, fix.entitlements.PurchaseBundle(ctx, "u1", bundle.ID))

	purchased, err := fix.entitlements.IsPurchased(ctx, "u1", bundle.ID)
	require.NoError(t, err)
	assert.True(t, purchased)

	bundles, err := fix.entitlements.PurchasedBundles(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, float64(300), bundles[0].DiscountedPrice)
}

func TestPurchaseUnknownBundle(t *testing.T) {
	fix := newEntitlementFixture()

	err := fix.entitlements.PurchaseBundle(context.Background(), "u1", "ghost")
	assert.ErrorIs(t, err, domain.ErrBundleNotFound)
}

func TestEntitlementsIsolatedBetweenUsers(t *testing.T) {
	ctx := context.Background()
	fix := newEntitlementFixture()

	course := domain.Course{Title: "Go Basics"}
	require.NoError(t, fix.courses.Create(ctx, &course))
	require.NoError(t, fix.entitlements.EnrollCourse(ctx, "u1", course.ID))

	enrolled, err := fix.entitlements.IsEnrolled(ctx, "u2", course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}
