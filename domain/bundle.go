package domain

import "context"

// Bundle groups several courses under one discounted price. The
// originalPrice/discount/discountedPrice relationship is computed once at
// creation when the caller omits discountedPrice; updates may let the three
// fields drift apart, matching the product's existing behavior.
type Bundle struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Courses         int     `json:"courses"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Discount        float64 `json:"discount"`
}

type BundleUpdate struct {
	Title           *string
	Description     *string
	Courses         *int
	OriginalPrice   *float64
	DiscountedPrice *float64
	Discount        *float64
}

type BundleRepository interface {
	List(ctx context.Context) ([]Bundle, error)
	GetByID(ctx context.Context, id string) (*Bundle, error)
	Create(ctx context.Context, bundle *Bundle) error
	Update(ctx context.Context, id string, patch BundleUpdate) (*Bundle, error)
	Delete(ctx context.Context, id string) error
}

type BundleUseCase interface {
	List(ctx context.Context) ([]Bundle, error)
	GetByID(ctx context.Context, id string) (*Bundle, error)
	Create(ctx context.Context, bundle *Bundle) error
	Update(ctx context.Context, id string, patch BundleUpdate) (*Bundle, error)
	Delete(ctx context.Context, id string) error
}
