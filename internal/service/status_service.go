package service

import (
	"context"
	"time"

	"elearning-service/internal/models"
	"elearning-service/internal/repository"
)

type StatusService struct {
	Repo *repository.StatusRepository
}

func NewStatusService(repo *repository.StatusRepository) *StatusService {
	return &StatusService{Repo: repo}
}

func (s *StatusService) CreateStatusCheck(ctx context.Context, payload models.StatusCheckCreate) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ClientName: payload.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusService) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	checks, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	return checks, nil
}
