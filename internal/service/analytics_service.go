package service

import (
	"context"
	"time"

	"learnboard/internal/analytics"
	"learnboard/internal/domain"
	"learnboard/internal/dto"

	"golang.org/x/sync/errgroup"
)

const minHeatmapYear = 1970

// AnalyticsService serves the analytics endpoints and their combined bundle.
type AnalyticsService interface {
	ProgressOverTime(ctx context.Context, userID string, from, to *time.Time) ([]dto.ProgressPoint, error)
	ActivityHeatmap(ctx context.Context, userID string, year int) ([]dto.HeatmapDay, error)
	AccuracyBreakdown(ctx context.Context, userID string) (*dto.AccuracyBreakdown, error)
	QuizPerformanceTrend(ctx context.Context, userID string) ([]dto.QuizTrendPoint, error)
	FlashcardAnalytics(ctx context.Context, userID string) (*dto.FlashcardAnalytics, error)
	BestWorstTopics(ctx context.Context, userID string) (*dto.BestWorstTopics, error)
	GetComprehensive(ctx context.Context, userID string) (*dto.ComprehensiveAnalytics, error)
}

type analyticsServiceImpl struct {
	store domain.StoreClient
	clock Clock
}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(store domain.StoreClient, clock Clock) AnalyticsService {
	return &analyticsServiceImpl{store: store, clock: clock}
}

// progressWindow resolves the requested dates into a day range. Missing bounds
// default to the trailing DefaultProgressDays ending today.
func progressWindow(from, to *time.Time, today time.Time) (domain.DateRange, error) {
	end := today
	if to != nil {
		end = *to
	}
	start := analytics.AddDays(end.In(today.Location()), -(analytics.DefaultProgressDays - 1))
	if from != nil {
		start = *from
	}

	rng := analytics.DayRange(start.In(today.Location()), end)
	if !rng.From.Before(rng.To) {
		return domain.DateRange{}, domain.ValidationErrors{
			{Field: "from", Code: domain.CodeOutOfRange, Message: "from must not be after to"},
		}
	}
	days := int(rng.To.Sub(rng.From).Round(24*time.Hour) / (24 * time.Hour))
	if days > analytics.MaxProgressDays {
		return domain.DateRange{}, domain.ValidationErrors{
			domain.NewOutOfRangeError("from", days, 1, analytics.MaxProgressDays),
		}
	}
	return rng, nil
}

// ProgressOverTime implements AnalyticsService
func (s *analyticsServiceImpl) ProgressOverTime(ctx context.Context, userID string, from, to *time.Time) ([]dto.ProgressPoint, error) {
	rng, err := progressWindow(from, to, s.clock())
	if err != nil {
		return nil, err
	}

	answers, err := s.store.AnswersByUser(ctx, userID, domain.AnswerFilters{Range: &rng})
	if err != nil {
		return nil, domain.NewFetchError("answers", err)
	}
	return analytics.ProgressOverTime(answers, rng), nil
}

func (s *analyticsServiceImpl) validateYear(year int, today time.Time) error {
	if year == 0 {
		return nil
	}
	if year < minHeatmapYear || year > today.Year()+1 {
		return domain.ValidationErrors{domain.NewOutOfRangeError("year", year, minHeatmapYear, today.Year()+1)}
	}
	return nil
}

// ActivityHeatmap implements AnalyticsService. year 0 selects the trailing window.
func (s *analyticsServiceImpl) ActivityHeatmap(ctx context.Context, userID string, year int) ([]dto.HeatmapDay, error) {
	today := s.clock()
	if err := s.validateYear(year, today); err != nil {
		return nil, err
	}
	window := analytics.HeatmapWindow(year, today)

	var src analytics.HeatmapSources
	g, gctx := errgroup.WithContext(ctx)
	goFetch(g, "answers", &src.Answers, func() ([]domain.AnswerRecord, error) {
		return s.store.AnswersByUser(gctx, userID, domain.AnswerFilters{Range: &window})
	})
	goFetch(g, "flashcards", &src.Flashcards, func() ([]domain.FlashcardRecord, error) {
		return s.store.FlashcardsByUser(gctx, userID, &window)
	})
	goFetch(g, "quizzes", &src.Quizzes, func() ([]domain.QuizRecord, error) {
		return s.store.QuizzesByUser(gctx, userID, domain.QuizQuery{Order: domain.SortOldestFirst, Range: &window})
	})
	goFetch(g, "exams", &src.Exams, func() ([]domain.ExamRecord, error) {
		return s.store.ExamsByUser(gctx, userID, &window)
	})
	goFetch(g, "exam sessions", &src.ExamSessions, func() ([]domain.ExamSessionRecord, error) {
		return s.store.ExamSessionsByUser(gctx, userID, &window)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analytics.BuildHeatmap(window, src), nil
}

// AccuracyBreakdown implements AnalyticsService
func (s *analyticsServiceImpl) AccuracyBreakdown(ctx context.Context, userID string) (*dto.AccuracyBreakdown, error) {
	var (
		answers  []domain.AnswerRecord
		progress []domain.TopicProgressRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	goFetch(g, "answers", &answers, func() ([]domain.AnswerRecord, error) {
		return s.store.AnswersByUser(gctx, userID, domain.AnswerFilters{})
	})
	goFetch(g, "topic progress", &progress, func() ([]domain.TopicProgressRecord, error) {
		return s.store.TopicProgressByUser(gctx, userID)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown := analytics.BuildAccuracyBreakdown(answers, progress)
	return &breakdown, nil
}

// QuizPerformanceTrend implements AnalyticsService
func (s *analyticsServiceImpl) QuizPerformanceTrend(ctx context.Context, userID string) ([]dto.QuizTrendPoint, error) {
	var (
		completions []domain.QuizCompletionRecord
		quizzes     []domain.QuizRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	goFetch(g, "quiz completions", &completions, func() ([]domain.QuizCompletionRecord, error) {
		return s.store.QuizCompletionsByUser(gctx, userID, "")
	})
	goFetch(g, "quizzes", &quizzes, func() ([]domain.QuizRecord, error) {
		return s.store.QuizzesByUser(gctx, userID, domain.QuizQuery{Order: domain.SortNewestFirst})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analytics.BuildQuizTrend(completions, quizzes), nil
}

// FlashcardAnalytics implements AnalyticsService
func (s *analyticsServiceImpl) FlashcardAnalytics(ctx context.Context, userID string) (*dto.FlashcardAnalytics, error) {
	cards, err := s.store.FlashcardsByUser(ctx, userID, nil)
	if err != nil {
		return nil, domain.NewFetchError("flashcards", err)
	}
	result := analytics.BuildFlashcardAnalytics(cards, s.clock())
	return &result, nil
}

// BestWorstTopics implements AnalyticsService
func (s *analyticsServiceImpl) BestWorstTopics(ctx context.Context, userID string) (*dto.BestWorstTopics, error) {
	progress, err := s.store.TopicProgressByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewFetchError("topic progress", err)
	}
	ranked := analytics.RankTopics(progress)
	return &ranked, nil
}

// GetComprehensive implements AnalyticsService. All rows are fetched in one batch;
// each builder applies its own window to them.
func (s *analyticsServiceImpl) GetComprehensive(ctx context.Context, userID string) (*dto.ComprehensiveAnalytics, error) {
	today := s.clock()
	progressRange := analytics.TrailingDays(today, analytics.DefaultProgressDays)
	heatmapRange := analytics.HeatmapWindow(0, today)

	var (
		answers     []domain.AnswerRecord
		quizzes     []domain.QuizRecord
		completions []domain.QuizCompletionRecord
		progress    []domain.TopicProgressRecord
		cards       []domain.FlashcardRecord
		exams       []domain.ExamRecord
		sessions    []domain.ExamSessionRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	goFetch(g, "answers", &answers, func() ([]domain.AnswerRecord, error) {
		return s.store.AnswersByUser(gctx, userID, domain.AnswerFilters{})
	})
	goFetch(g, "quizzes", &quizzes, func() ([]domain.QuizRecord, error) {
		return s.store.QuizzesByUser(gctx, userID, domain.QuizQuery{Order: domain.SortNewestFirst})
	})
	goFetch(g, "quiz completions", &completions, func() ([]domain.QuizCompletionRecord, error) {
		return s.store.QuizCompletionsByUser(gctx, userID, "")
	})
	goFetch(g, "topic progress", &progress, func() ([]domain.TopicProgressRecord, error) {
		return s.store.TopicProgressByUser(gctx, userID)
	})
	goFetch(g, "flashcards", &cards, func() ([]domain.FlashcardRecord, error) {
		return s.store.FlashcardsByUser(gctx, userID, nil)
	})
	goFetch(g, "exams", &exams, func() ([]domain.ExamRecord, error) {
		return s.store.ExamsByUser(gctx, userID, &heatmapRange)
	})
	goFetch(g, "exam sessions", &sessions, func() ([]domain.ExamSessionRecord, error) {
		return s.store.ExamSessionsByUser(gctx, userID, &heatmapRange)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ComprehensiveAnalytics{
		ProgressOverTime: analytics.ProgressOverTime(answers, progressRange),
		ActivityHeatmap: analytics.BuildHeatmap(heatmapRange, analytics.HeatmapSources{
			Answers:      answers,
			Flashcards:   cards,
			Quizzes:      quizzes,
			Exams:        exams,
			ExamSessions: sessions,
		}),
		AccuracyBreakdown:    analytics.BuildAccuracyBreakdown(answers, progress),
		QuizPerformanceTrend: analytics.BuildQuizTrend(completions, quizzes),
		FlashcardAnalytics:   analytics.BuildFlashcardAnalytics(cards, today),
		BestWorstTopics:      analytics.RankTopics(progress),
	}, nil
}
