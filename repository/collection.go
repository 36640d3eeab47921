package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"learnsphere/storage"
)

// Persisted-state layout: one JSON array per key. Key names predate this
// service and must not change, stored data has no version field.
const (
	coursesKey = "courses"
	bundlesKey = "bundles"
	usersKey   = "users"
	reviewsKey = "course_reviews"

	enrolledCoursesKeyPrefix  = "enrolledCourses_"
	purchasedBundlesKeyPrefix = "purchasedBundles_"
)

func loadList[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

func saveList[T any](ctx context.Context, store storage.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// collection owns one entity type's persisted list. Every mutation is a
// read-modify-write of the whole list; the mutex makes each collection a
// single-writer resource so overlapping mutations cannot lose updates.
type collection[T any] struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

func newCollection[T any](store storage.Store, key string) *collection[T] {
	return &collection[T]{store: store, key: key}
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	return loadList[T](ctx, c.store, c.key)
}

// mutate runs fn on the freshest snapshot under the collection lock and
// persists whatever fn returns. fn returning an error aborts without writing.
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return saveList(ctx, c.store, c.key, updated)
}
