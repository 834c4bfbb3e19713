package service

import (
	"context"

	"elearning-service/internal/models"
	"elearning-service/internal/repository"
)

type CourseService struct {
	Repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, payload models.CourseCreate) (*models.Course, error) {
	course := &models.Course{
		Title:       payload.Title,
		Description: payload.Description,
	}
	if err := s.Repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}
