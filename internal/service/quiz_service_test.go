package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"elearning-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeQuizStore struct {
	quizzes map[string]*models.Quiz
	nextID  int
}

func (f *fakeQuizStore) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	if quiz, ok := f.quizzes[id]; ok {
		return quiz, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeQuizStore) Create(ctx context.Context, quiz *models.Quiz) error {
	if f.quizzes == nil {
		f.quizzes = make(map[string]*models.Quiz)
	}
	f.nextID++
	quiz.ID = strconv.Itoa(f.nextID)
	f.quizzes[quiz.ID] = quiz
	return nil
}

func TestAttemptQuizEndToEnd(t *testing.T) {
	store := &fakeQuizStore{}
	svc := NewQuizService(store)

	quiz, err := svc.CreateQuiz(context.Background(), models.QuizCreate{
		Title: "AR Basics",
		Questions: []models.QuizQuestion{
			{
				ID:       "q1",
				Question: "Pick A",
				Options: []models.QuizOption{
					{Key: "A", Text: "first"},
					{Key: "B", Text: "second"},
				},
				CorrectKey: "A",
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuiz() error = %v", err)
	}

	result, err := svc.AttemptQuiz(context.Background(), quiz.ID, []models.QuizAnswer{
		{QuestionID: "q1", ChoiceKey: "A"},
	})
	if err != nil {
		t.Fatalf("AttemptQuiz() error = %v", err)
	}
	want := models.QuizAttemptResult{Score: 100, CorrectCount: 1, Total: 1}
	if *result != want {
		t.Errorf("AttemptQuiz() = %+v, want %+v", *result, want)
	}
}

func TestAttemptQuizNotFound(t *testing.T) {
	svc := NewQuizService(&fakeQuizStore{})

	_, err := svc.AttemptQuiz(context.Background(), "missing", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AttemptQuiz() error = %v, want ErrNotFound", err)
	}
}

func TestGetQuizNotFound(t *testing.T) {
	svc := NewQuizService(&fakeQuizStore{})

	_, err := svc.GetQuiz(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetQuiz() error = %v, want ErrNotFound", err)
	}
}

func TestCreateQuizDefaultsQuestions(t *testing.T) {
	svc := NewQuizService(&fakeQuizStore{})

	quiz, err := svc.CreateQuiz(context.Background(), models.QuizCreate{Title: "Empty"})
	if err != nil {
		t.Fatalf("CreateQuiz() error = %v", err)
	}
	if quiz.Questions == nil {
		t.Error("expected empty question slice, got nil")
	}

	result, err := svc.AttemptQuiz(context.Background(), quiz.ID, []models.QuizAnswer{
		{QuestionID: "q1", ChoiceKey: "A"},
	})
	if err != nil {
		t.Fatalf("AttemptQuiz() error = %v", err)
	}
	if result.Score != 0 || result.Total != 0 {
		t.Errorf("empty quiz attempt = %+v, want score 0 total 0", *result)
	}
}
