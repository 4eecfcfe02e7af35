package service

import (
	"context"
	"sort"
	"strings"

	"learnboard/internal/analytics"
	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentExplanations = 4

// QuizReviewService returns the latest answers of a quiz with their explanations.
type QuizReviewService interface {
	GetQuizReview(ctx context.Context, userID, quizID string) (*dto.QuizReview, error)
}

type quizReviewServiceImpl struct {
	store     domain.StoreClient
	explainer domain.ExplanationProvider
}

// NewQuizReviewService creates a QuizReviewService. explainer may be nil, in which
// case only stored explanations are returned.
func NewQuizReviewService(store domain.StoreClient, explainer domain.ExplanationProvider) QuizReviewService {
	return &quizReviewServiceImpl{store: store, explainer: explainer}
}

// GetQuizReview implements QuizReviewService
func (s *quizReviewServiceImpl) GetQuizReview(ctx context.Context, userID, quizID string) (*dto.QuizReview, error) {
	if strings.TrimSpace(quizID) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("quizId")}
	}

	answers, err := s.store.AnswersByUser(ctx, userID, domain.AnswerFilters{QuizID: quizID})
	if err != nil {
		return nil, domain.NewFetchError("answers", err)
	}

	latest := analytics.LatestQuizAnswers(answers)
	sort.SliceStable(latest, func(i, j int) bool {
		if !latest[i].CreatedAt.Equal(latest[j].CreatedAt) {
			return latest[i].CreatedAt.Before(latest[j].CreatedAt)
		}
		return latest[i].ID < latest[j].ID
	})

	review := &dto.QuizReview{
		QuizID:         quizID,
		TotalQuestions: len(latest),
		Items:          make([]dto.QuizReviewItem, len(latest)),
	}
	for i, a := range latest {
		review.Items[i] = dto.QuizReviewItem{
			QuestionID:       a.QuestionID,
			IsCorrect:        a.IsCorrect,
			AnsweredAt:       a.CreatedAt,
			TimeTakenSeconds: a.TimeTakenSeconds,
		}
		if a.IsCorrect {
			review.CorrectAnswers++
		}
	}

	s.enrich(ctx, review.Items)
	return review, nil
}

// enrich fills question text and explanations. Failures leave the fields empty.
func (s *quizReviewServiceImpl) enrich(ctx context.Context, items []dto.QuizReviewItem) {
	if len(items) == 0 {
		return
	}
	appLogger := logger.Get()

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.QuestionID
	}
	questions, err := s.store.QuestionsByIDs(ctx, ids)
	if err != nil {
		appLogger.Warn("Skipping quiz review enrichment",
			zap.Error(domain.NewEnrichmentError("questions", err)))
		return
	}
	byID := make(map[string]domain.QuestionRecord, len(questions))
	for _, q := range questions {
		byID[q.QuestionID] = q
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentExplanations)
	for i := range items {
		q, ok := byID[items[i].QuestionID]
		if !ok {
			continue
		}
		item := &items[i]
		text, answer := q.Text, q.CorrectAnswer
		item.QuestionText = &text
		item.CorrectAnswer = &answer

		if q.Explanation != nil && *q.Explanation != "" {
			explanation := *q.Explanation
			item.Explanation = &explanation
			continue
		}
		if s.explainer == nil {
			continue
		}
		g.Go(func() error {
			explanation, err := s.explainer.Explain(ctx, text, answer)
			if err != nil {
				appLogger.Warn("Failed to generate explanation",
					zap.String("question_id", item.QuestionID),
					zap.Error(domain.NewEnrichmentError("explanation", err)))
				return nil
			}
			item.Explanation = &explanation
			return nil
		})
	}
	_ = g.Wait()
}
