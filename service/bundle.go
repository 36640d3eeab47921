package service

import (
	"context"

	"learnsphere/domain"
)

type bundleService struct {
	repo domain.BundleRepository
}

func NewBundleService(repo domain.BundleRepository) domain.BundleUseCase {
	return &bundleService{repo: repo}
}

func (s *bundleService) List(ctx context.Context) ([]domain.Bundle, error) {
	return s.repo.List(ctx)
}

func (s *bundleService) GetByID(ctx context.Context, id string) (*domain.Bundle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bundleService) Create(ctx context.Context, bundle *domain.Bundle) error {
	// Marketers usually send only the original price and the discount
	// percentage; derive the sale price for them. A caller-supplied
	// discountedPrice wins, and updates never re-derive it.
	if bundle.DiscountedPrice == 0 && bundle.Discount > 0 {
		bundle.DiscountedPrice = bundle.OriginalPrice * (1 - bundle.Discount/100)
	}
	return s.repo.Create(ctx, bundle)
}

func (s *bundleService) Update(ctx context.Context, id string, patch domain.BundleUpdate) (*domain.Bundle, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *bundleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
