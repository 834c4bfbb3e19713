package service

import (
	"context"
	"errors"
	"fmt"

	"elearning-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type chapterStore interface {
	FindByID(ctx context.Context, id string) (*models.Chapter, error)
	Create(ctx context.Context, chapter *models.Chapter) error
}

type ChapterService struct {
	store chapterStore
}

func NewChapterService(store chapterStore) *ChapterService {
	return &ChapterService{store: store}
}

func (s *ChapterService) GetChapter(ctx context.Context, id string) (*models.Chapter, error) {
	chapter, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return chapter, nil
}

// CreateChapter stores the chapter with its embedded sections. Each section
// must carry the payload field its type tag requires. The course reference
// is stored as-is; existence of the course is not checked.
func (s *ChapterService) CreateChapter(ctx context.Context, payload models.ChapterCreate) (*models.Chapter, error) {
	for i := range payload.Sections {
		if err := payload.Sections[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: section %d: %v", ErrInvalidSection, i, err)
		}
	}

	chapter := &models.Chapter{
		CourseID: payload.CourseID,
		Title:    payload.Title,
		Order:    payload.Order,
		Sections: payload.Sections,
	}
	if chapter.Sections == nil {
		chapter.Sections = []models.ChapterSection{}
	}
	if err := s.store.Create(ctx, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}
