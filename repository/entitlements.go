package repository

import (
	"context"
	"sync"

	"learnsphere/domain"
	"learnsphere/storage"
)

type entitlementRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewEntitlementRepository(store storage.Store) domain.EntitlementRepository {
	return &entitlementRepository{store: store}
}

func enrolledKey(userID string) string {
	return enrolledCoursesKeyPrefix + userID
}

func purchasedKey(userID string) string {
	return purchasedBundlesKeyPrefix + userID
}

func (r *entitlementRepository) EnrolledCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	return loadList[domain.Course](ctx, r.store, enrolledKey(userID))
}

func (r *entitlementRepository) PurchasedBundles(ctx context.Context, userID string) ([]domain.Bundle, error) {
	return loadList[domain.Bundle](ctx, r.store, purchasedKey(userID))
}

func (r *entitlementRepository) AddEnrolledCourse(ctx context.Context, userID string, course domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := enrolledKey(userID)
	courses, err := loadList[domain.Course](ctx, r.store, key)
	if err != nil {
		return err
	}
	for _, existing := range courses {
		if existing.ID == course.ID {
			return nil
		}
	}
	return saveList(ctx, r.store, key, append(courses, course))
}

func (r *entitlementRepository) AddPurchasedBundle(ctx context.Context, userID string, bundle domain.Bundle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := purchasedKey(userID)
	bundles, err := loadList[domain.Bundle](ctx, r.store, key)
	if err != nil {
		return err
	}
	for _, existing := range bundles {
		if existing.ID == bundle.ID {
			return nil
		}
	}
	return saveList(ctx, r.store, key, append(bundles, bundle))
}

func (r *entitlementRepository) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	courses, err := loadList[domain.Course](ctx, r.store, enrolledKey(userID))
	if err != nil {
		return false, err
	}
	for _, course := range courses {
		if course.ID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *entitlementRepository) IsPurchased(ctx context.Context, userID, bundleID string) (bool, error) {
	bundles, err := loadList[domain.Bundle](ctx, r.store, purchasedKey(userID))
	if err != nil {
		return false, err
	}
	for _, bundle := range bundles {
		if bundle.ID == bundleID {
			return true, nil
		}
	}
	return false, nil
}
