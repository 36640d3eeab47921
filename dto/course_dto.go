package dto

import "learnsphere/domain"

type ModuleRequest struct {
	ID            string `json:"id"`
	Title         string `json:"title" binding:"required,notblank,max=120"`
	Description   string `json:"description" binding:"max=2000"`
	Duration      string `json:"duration" binding:"max=40"`
	VideoUploaded bool   `json:"videoUploaded"`
	VideoPreview  string `json:"videoPreview" binding:"omitempty,url"`
}

type CreateCourseRequest struct {
	Title         string          `json:"title" binding:"required,notblank,min=3,max=120"`
	Description   string          `json:"description" binding:"required,max=2000"`
	Instructor    string          `json:"instructor" binding:"required,notblank,max=80"`
	InstructorBio string          `json:"instructorBio" binding:"max=2000"`
	Duration      string          `json:"duration" binding:"max=40"`
	Price         float64         `json:"price" binding:"gte=0"`
	Category      string          `json:"category" binding:"required,notblank,max=60"`
	Thumbnail     string          `json:"thumbnail" binding:"omitempty,url"`
	Modules       []ModuleRequest `json:"modules" binding:"omitempty,dive"`
}

func MapCreateCourseRequest(req *CreateCourseRequest) domain.Course {
	return domain.Course{
		Title:         req.Title,
		Description:   req.Description,
		Instructor:    req.Instructor,
		InstructorBio: req.InstructorBio,
		Duration:      req.Duration,
		Price:         req.Price,
		Category:      req.Category,
		Thumbnail:     req.Thumbnail,
		Modules:       mapModules(req.Modules),
	}
}

type UpdateCourseRequest struct {
	Title         *string          `json:"title" binding:"omitempty,notblank,min=3,max=120"`
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
	Instructor    *string          `json:"instructor" binding:"omitempty,notblank,max=80"`
	InstructorBio *string          `json:"instructorBio" binding:"omitempty,max=2000"`
	Duration      *string          `json:"duration" binding:"omitempty,max=40"`
	Price         *float64         `json:"price" binding:"omitempty,gte=0"`
	Category      *string          `json:"category" binding:"omitempty,notblank,max=60"`
	Thumbnail     *string          `json:"thumbnail" binding:"omitempty,url"`
	Modules       *[]ModuleRequest `json:"modules" binding:"omitempty,dive"`
}

func MapUpdateCourseRequest(req *UpdateCourseRequest) domain.CourseUpdate {
	patch := domain.CourseUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Instructor:    req.Instructor,
		InstructorBio: req.InstructorBio,
		Duration:      req.Duration,
		Price:         req.Price,
		Category:      req.Category,
		Thumbnail:     req.Thumbnail,
	}
	if req.Modules != nil {
		modules := mapModules(*req.Modules)
		patch.Modules = &modules
	}
	return patch
}

func mapModules(reqs []ModuleRequest) []domain.Module {
	if reqs == nil {
		return nil
	}
	modules := make([]domain.Module, 0, len(reqs))
	for _, m := range reqs {
		modules = append(modules, domain.Module{
			ID:            m.ID,
			Title:         m.Title,
			Description:   m.Description,
			Duration:      m.Duration,
			VideoUploaded: m.VideoUploaded,
			VideoPreview:  m.VideoPreview,
		})
	}
	return modules
}
