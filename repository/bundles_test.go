package repository

import (
	"context"
	"testing"

	"learnsphere/domain"
	"learnsphere/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewBundleRepository(storage.NewMemoryStore())

	bundle := domain.Bundle{Title: "Starter Pack", Courses: 3, OriginalPrice: 300, DiscountedPrice: 200, Discount: 33}
	require.NoError(t, repo.Create(ctx, &bundle))
	assert.NotEmpty(t, bundle.ID)

	stored, err := repo.GetByID(ctx, bundle.ID)
	require.NoError(t, err)
	assert.Equal(t, "Starter Pack", stored.Title)
	assert.Equal(t, 3, stored.Courses)
}

func TestBundleGetByIDMissing(t *testing.T) {
	repo := NewBundleRepository(storage.NewMemoryStore())

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrBundleNotFound)
}

func TestBundleUpdateShallowMerge(t *testing.T) {
	ctx := context.Background()
	repo := NewBundleRepository(storage.NewMemoryStore())

	bundle := domain.Bundle{Title: "Before", Courses: 4, OriginalPrice: 400}
	require.NoError(t, repo.Create(ctx, &bundle))

	updated, err := repo.Update(ctx, bundle.ID, domain.BundleUpdate{
		Title:   strPtr("After"),
		Courses: intPtr(6),
	})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, 6, updated.Courses)
	assert.Equal(t, float64(400), updated.OriginalPrice)
}

func TestBundleUpdateMissing(t *testing.T) {
	repo := NewBundleRepository(storage.NewMemoryStore())

	_, err := repo.Update(context.Background(), "ghost", domain.BundleUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrBundleNotFound)
}

func TestBundleDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewBundleRepository(storage.NewMemoryStore())

	bundle := domain.Bundle{Title: "Doomed"}
	require.NoError(t, repo.Create(ctx, &bundle))
	require.NoError(t, repo.Delete(ctx, bundle.ID))

	bundles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bundles)
}
