package service

import (
	"context"

	"learnsphere/domain"
)

type courseService struct {
	repo domain.CourseRepository
}

func NewCourseService(repo domain.CourseRepository) domain.CourseUseCase {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.repo.List(ctx)
}

func (s *courseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *courseService) Create(ctx context.Context, course *domain.Course) error {
	return s.repo.Create(ctx, course)
}

func (s *courseService) Update(ctx context.Context, id string, patch domain.CourseUpdate) (*domain.Course, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
