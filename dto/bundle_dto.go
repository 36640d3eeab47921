package dto

import "learnsphere/domain"

type CreateBundleRequest struct {
	Title       string  `json:"title" binding:"required,notblank,min=3,max=120"`
	Description string  `json:"description" binding:"required,max=2000"`
	Courses     int     `json:"courses" binding:"required,gte=1"`
	// DiscountedPrice may be omitted; the service derives it from the
	// discount percentage.
	OriginalPrice   float64 `json:"originalPrice" binding:"required,gt=0"`
	DiscountedPrice float64 `json:"discountedPrice" binding:"omitempty,gt=0"`
	Discount        float64 `json:"discount" binding:"gte=0,lte=90"`
}

func MapCreateBundleRequest(req *CreateBundleRequest) domain.Bundle {
	return domain.Bundle{
		Title:           req.Title,
		Description:     req.Description,
		Courses:         req.Courses,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		Discount:        req.Discount,
	}
}

type UpdateBundleRequest struct {
	Title           *string  `json:"title" binding:"omitempty,notblank,min=3,max=120"`
	Description     *string  `json:"description" binding:"omitempty,max=2000"`
	Courses         *int     `json:"courses" binding:"omitempty,gte=1"`
	OriginalPrice   *float64 `json:"originalPrice" binding:"omitempty,gt=0"`
	DiscountedPrice *float64 `json:"discountedPrice" binding:"omitempty,gt=0"`
	Discount        *float64 `json:"discount" binding:"omitempty,gte=0,lte=90"`
}

func MapUpdateBundleRequest(req *UpdateBundleRequest) domain.BundleUpdate {
	return domain.BundleUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Courses:         req.Courses,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		Discount:        req.Discount,
	}
}
