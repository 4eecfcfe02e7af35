package service

import (
	"context"
	"time"

	"learnboard/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockStore ---
type MockStore struct {
	mock.Mock
}

func (m *MockStore) AnswersByUser(ctx context.Context, userID string, filters domain.AnswerFilters) ([]domain.AnswerRecord, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerRecord), args.Error(1)
}

func (m *MockStore) QuizzesByUser(ctx context.Context, userID string, query domain.QuizQuery) ([]domain.QuizRecord, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizRecord), args.Error(1)
}

func (m *MockStore) QuizCompletionsByUser(ctx context.Context, userID string, quizID string) ([]domain.QuizCompletionRecord, error) {
	args := m.Called(ctx, userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizCompletionRecord), args.Error(1)
}

func (m *MockStore) QuizQuestionLinks(ctx context.Context) ([]domain.QuizQuestionLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestionLink), args.Error(1)
}

func (m *MockStore) AllTopics(ctx context.Context) ([]domain.TopicRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopicRecord), args.Error(1)
}

func (m *MockStore) TopicProgressByUser(ctx context.Context, userID string) ([]domain.TopicProgressRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopicProgressRecord), args.Error(1)
}

func (m *MockStore) FlashcardsByUser(ctx context.Context, userID string, rng *domain.DateRange) ([]domain.FlashcardRecord, error) {
	args := m.Called(ctx, userID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlashcardRecord), args.Error(1)
}

func (m *MockStore) ExamsByUser(ctx context.Context, userID string, rng *domain.DateRange) ([]domain.ExamRecord, error) {
	args := m.Called(ctx, userID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExamRecord), args.Error(1)
}

func (m *MockStore) ExamSessionsByUser(ctx context.Context, userID string, rng *domain.DateRange) ([]domain.ExamSessionRecord, error) {
	args := m.Called(ctx, userID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExamSessionRecord), args.Error(1)
}

func (m *MockStore) QuestionsByIDs(ctx context.Context, ids []string) ([]domain.QuestionRecord, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionRecord), args.Error(1)
}

// --- MockExplainer ---
type MockExplainer struct {
	mock.Mock
}

func (m *MockExplainer) Explain(ctx context.Context, questionText string, correctAnswer string) (string, error) {
	args := m.Called(ctx, questionText, correctAnswer)
	return args.String(0), args.Error(1)
}

var testNow = time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func strPtr(s string) *string { return &s }
