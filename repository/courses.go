package repository

import (
	"context"

	"learnsphere/domain"
	"learnsphere/storage"

	"github.com/google/uuid"
)

type courseRepository struct {
	col *collection[domain.Course]
}

func NewCourseRepository(store storage.Store) domain.CourseRepository {
	return &courseRepository{col: newCollection[domain.Course](store, coursesKey)}
}

func (r *courseRepository) List(ctx context.Context) ([]domain.Course, error) {
	return r.col.load(ctx)
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	courses, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	course.ID = uuid.NewString()
	course.Students = 0
	course.Modules = sanitizeModules(course.Modules)

	return r.col.mutate(ctx, func(courses []domain.Course) ([]domain.Course, error) {
		return append(courses, *course), nil
	})
}

func (r *courseRepository) Update(ctx context.Context, id string, patch domain.CourseUpdate) (*domain.Course, error) {
	var updated domain.Course

	err := r.col.mutate(ctx, func(courses []domain.Course) ([]domain.Course, error) {
		for i := range courses {
			if courses[i].ID != id {
				continue
			}
			applyCoursePatch(&courses[i], patch)
			courses[i].Modules = sanitizeModules(courses[i].Modules)
			updated = courses[i]
			return courses, nil
		}
		return nil, domain.ErrCourseNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(ctx, func(courses []domain.Course) ([]domain.Course, error) {
		kept := courses[:0]
		for _, course := range courses {
			if course.ID != id {
				kept = append(kept, course)
			}
		}
		return kept, nil
	})
}

func applyCoursePatch(course *domain.Course, patch domain.CourseUpdate) {
	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.Instructor != nil {
		course.Instructor = *patch.Instructor
	}
	if patch.InstructorBio != nil {
		course.InstructorBio = *patch.InstructorBio
	}
	if patch.Duration != nil {
		course.Duration = *patch.Duration
	}
	if patch.Students != nil {
		course.Students = *patch.Students
	}
	if patch.Price != nil {
		course.Price = *patch.Price
	}
	if patch.Category != nil {
		course.Category = *patch.Category
	}
	if patch.Thumbnail != nil {
		course.Thumbnail = *patch.Thumbnail
	}
	if patch.Modules != nil {
		course.Modules = *patch.Modules
	}
}

// sanitizeModules guarantees every module has a stable id and drops the raw
// upload payload so it never ends up in the persisted JSON.
func sanitizeModules(modules []domain.Module) []domain.Module {
	for i := range modules {
		if modules[i].ID == "" {
			modules[i].ID = uuid.NewString()
		}
		modules[i].Video = nil
	}
	return modules
}
