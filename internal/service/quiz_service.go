package service

import (
	"context"
	"errors"

	"elearning-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type quizStore interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
}

type QuizService struct {
	store quizStore
}

func NewQuizService(store quizStore) *QuizService {
	return &QuizService{store: store}
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return quiz, nil
}

// CreateQuiz stores the quiz whole. correct_key membership in the options
// is not checked; a question whose correct_key matches no option can never
// be answered correctly.
func (s *QuizService) CreateQuiz(ctx context.Context, payload models.QuizCreate) (*models.Quiz, error) {
	quiz := &models.Quiz{
		Title:     payload.Title,
		Questions: payload.Questions,
	}
	if quiz.Questions == nil {
		quiz.Questions = []models.QuizQuestion{}
	}
	if err := s.store.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// AttemptQuiz fetches the quiz and grades the submitted answers against it.
func (s *QuizService) AttemptQuiz(ctx context.Context, quizID string, answers []models.QuizAnswer) (*models.QuizAttemptResult, error) {
	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	result := quiz.Grade(answers)
	return &result, nil
}
