package repository

import (
	"context"

	"learnsphere/domain"
	"learnsphere/storage"

	"github.com/google/uuid"
)

type bundleRepository struct {
	col *collection[domain.Bundle]
}

func NewBundleRepository(store storage.Store) domain.BundleRepository {
	return &bundleRepository{col: newCollection[domain.Bundle](store, bundlesKey)}
}

func (r *bundleRepository) List(ctx context.Context) ([]domain.Bundle, error) {
	return r.col.load(ctx)
}

func (r *bundleRepository) GetByID(ctx context.Context, id string) (*domain.Bundle, error) {
	bundles, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bundles {
		if bundles[i].ID == id {
			return &bundles[i], nil
		}
	}
	return nil, domain.ErrBundleNotFound
}

func (r *bundleRepository) Create(ctx context.Context, bundle *domain.Bundle) error {
	bundle.ID = uuid.NewString()

	return r.col.mutate(ctx, func(bundles []domain.Bundle) ([]domain.Bundle, error) {
		return append(bundles, *bundle), nil
	})
}

func (r *bundleRepository) Update(ctx context.Context, id string, patch domain.BundleUpdate) (*domain.Bundle, error) {
	var updated domain.Bundle

	err := r.col.mutate(ctx, func(bundles []domain.Bundle) ([]domain.Bundle, error) {
		for i := range bundles {
			if bundles[i].ID != id {
				continue
			}
			applyBundlePatch(&bundles[i], patch)
			updated = bundles[i]
			return bundles, nil
		}
		return nil, domain.ErrBundleNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *bundleRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(bundles []domain.Bundle) ([]domain.Bundle, error) {
		kept := bundles[:0]
		for _, bundle := range bundles {
			if bundle.ID != id {
				kept = append(kept, bundle)
			}
		}
		return kept, nil
	})
}

func applyBundlePatch(bundle *domain.Bundle, patch domain.BundleUpdate) {
	if patch.Title != nil {
		bundle.Title = *patch.Title
	}
	if patch.Description != nil {
		bundle.Description = *patch.Description
	}
	if patch.Courses != nil {
		bundle.Courses = *patch.Courses
	}
	if patch.OriginalPrice != nil {
		bundle.OriginalPrice = *patch.OriginalPrice
	}
	if patch.DiscountedPrice != nil {
		bundle.DiscountedPrice = *patch.DiscountedPrice
	}
	if patch.Discount != nil {
		bundle.Discount = *patch.Discount
	}
}
