package domain

import "context"

// Module is one unit of course content. Video holds the raw upload payload
// while a request is in flight; it is never persisted and the course
// repository clears it before every write.
type Module struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	VideoUploaded bool   `json:"videoUploaded"`
	VideoPreview  string `json:"videoPreview,omitempty"`
	Video         []byte `json:"-"`
}

// Course field names keep the JSON shape of the persisted catalog, so data
// written by earlier versions of the product loads without migration.
type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Instructor    string   `json:"instructor"`
	InstructorBio string   `json:"instructorBio,omitempty"`
	Duration      string   `json:"duration"`
	Students      int      `json:"students"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Modules       []Module `json:"modules,omitempty"`
}

// CourseUpdate is a shallow-merge patch: nil fields are left untouched.
type CourseUpdate struct {
	Title         *string
	Description   *string
	Instructor    *string
	InstructorBio *string
	Duration      *string
	Students      *int
	Price         *float64
	Category      *string
	Thumbnail     *string
	Modules       *[]Module
}

type CourseRepository interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, id string, patch CourseUpdate) (*Course, error)
	Delete(ctx context.Context, id string) error
}

type CourseUseCase interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, id string, patch CourseUpdate) (*Course, error)
	Delete(ctx context.Context, id string) error
}
