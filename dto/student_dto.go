package dto

type EnrollRequest struct {
	CourseID string `json:"course_id" binding:"required,notblank"`
}

type PurchaseRequest struct {
	BundleID string `json:"bundle_id" binding:"required,notblank"`
}
