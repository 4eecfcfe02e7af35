package service

import (
	"context"

	"learnboard/internal/analytics"
	"learnboard/internal/domain"
	"learnboard/internal/dto"

	"golang.org/x/sync/errgroup"
)

// DashboardService composes the dashboard endpoints. Every method fetches its rows
// concurrently and fails as a whole when any fetch fails.
type DashboardService interface {
	GetStats(ctx context.Context, userID string) (*dto.DashboardStats, error)
	GetRecentActivity(ctx context.Context, userID string, limit int) ([]dto.Activity, error)
	GetTopicProgress(ctx context.Context, userID string) ([]dto.TopicRollup, error)
	GetAllTopicProgress(ctx context.Context, userID string) ([]dto.TopicProgressItem, error)
	GetFullDashboard(ctx context.Context, userID string, limit int) (*dto.FullDashboard, error)
}

type dashboardServiceImpl struct {
	store        domain.StoreClient
	clock        Clock
	defaultLimit int
}

// NewDashboardService creates a DashboardService. defaultLimit applies when a
// caller passes no activity limit.
func NewDashboardService(store domain.StoreClient, clock Clock, defaultLimit int) DashboardService {
	if defaultLimit <= 0 || defaultLimit > analytics.MaxActivityLimit {
		defaultLimit = analytics.DefaultActivityLimit
	}
	return &dashboardServiceImpl{store: store, clock: clock, defaultLimit: defaultLimit}
}

func (s *dashboardServiceImpl) limitOrDefault(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > analytics.MaxActivityLimit {
		return analytics.MaxActivityLimit
	}
	return limit
}

// GetStats implements DashboardService
func (s *dashboardServiceImpl) GetStats(ctx context.Context, userID string) (*dto.DashboardStats, error) {
	var in analytics.StatsInput

	g, gctx := errgroup.WithContext(ctx)
	goFetch(g, "answers", &in.Answers, func() ([]domain.AnswerRecord, error) {
		return s.store.AnswersByUser(gctx, userID, domain.AnswerFilters{})
	})
	goFetch(g, "quizzes", &in.Quizzes, func() ([]domain.QuizRecord, error) {
		return s.store.QuizzesByUser(gctx, userID, domain.QuizQuery{Order: domain.SortNewestFirst})
	})
	goFetch(g, "quiz completions", &in.Completions, func() ([]domain.QuizCompletionRecord, error) {
		return s.store.QuizCompletionsByUser(gctx, userID, "")
	})
	goFetch(g, "topics", &in.Topics, func() ([]domain.TopicRecord, error) {
		return s.store.AllTopics(gctx)
	})
	goFetch(g, "topic progress", &in.Progress, func() ([]domain.TopicProgressRecord, error) {
		return s.store.TopicProgressByUser(gctx, userID)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := analytics.BuildDashboardStats(in, s.clock())
	return &stats, nil
}

// GetRecentActivity implements DashboardService
func (s *dashboardServiceImpl) GetRecentActivity(ctx context.Context, userID string, limit int) ([]dto.Activity, error) {
	limit = s.limitOrDefault(limit)

	var (
		quizzes     []domain.QuizRecord
		completions []domain.QuizCompletionRecord
		answers     []domain.AnswerRecord
		links       []domain.QuizQuestionLink
	)
	g, gctx := errgroup.WithContext(ctx)
	goFetch(g, "quizzes", &quizzes, func() ([]domain.QuizRecord, error) {
		return s.store.QuizzesByUser(gctx, userID, domain.QuizQuery{Order: domain.SortNewestFirst, Limit: limit})
	})
	goFetch(g, "quiz completions", &completions, func() ([]domain.QuizCompletionRecord, error) {
		return s.store.QuizCompletionsByUser(gctx, userID, "")
	})
	goFetch(g, "answers", &answers, func() ([]domain.AnswerRecord, error) {
		return s.store.AnswersByUser(gctx, userID, domain.AnswerFilters{})
	})
	goFetch(g, "quiz question links", &links, func() ([]domain.QuizQuestionLink, error) {
		return s.store.QuizQuestionLinks(gctx)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analytics.AssembleRecentActivity(quizzes, completions, answers, links, limit), nil
}

func (s *dashboardServiceImpl) fetchTopics(ctx context.Context, userID string) ([]domain.TopicRecord, []domain.TopicProgressRecord, error) {
	var (
		topics   []domain.TopicRecord
		progress []domain.TopicProgressRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	goFetch(g, "topics", &topics, func() ([]domain.TopicRecord, error) {
		return s.store.AllTopics(gctx)
	})
	goFetch(g, "topic progress", &progress, func() ([]domain.TopicProgressRecord, error) {
		return s.store.TopicProgressByUser(gctx, userID)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return topics, progress, nil
}

// GetTopicProgress implements DashboardService
func (s *dashboardServiceImpl) GetTopicProgress(ctx context.Context, userID string) ([]dto.TopicRollup, error) {
	topics, progress, err := s.fetchTopics(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.RollupTopics(topics, progress), nil
}

// GetAllTopicProgress implements DashboardService
func (s *dashboardServiceImpl) GetAllTopicProgress(ctx context.Context, userID string) ([]dto.TopicProgressItem, error) {
	topics, progress, err := s.fetchTopics(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.AllTopicProgress(topics, progress), nil
}

// GetFullDashboard implements DashboardService. One batch of fetches serves the
// stats, the activity feed and the topic rollup.
func (s *dashboardServiceImpl) GetFullDashboard(ctx context.Context, userID string, limit int) (*dto.FullDashboard, error) {
	limit = s.limitOrDefault(limit)

	var (
		in    analytics.StatsInput
		links []domain.QuizQuestionLink
	)
	g, gctx := errgroup.WithContext(ctx)
	goFetch(g, "answers", &in.Answers, func() ([]domain.AnswerRecord, error) {
		return s.store.AnswersByUser(gctx, userID, domain.AnswerFilters{})
	})
	goFetch(g, "quizzes", &in.Quizzes, func() ([]domain.QuizRecord, error) {
		return s.store.QuizzesByUser(gctx, userID, domain.QuizQuery{Order: domain.SortNewestFirst})
	})
	goFetch(g, "quiz completions", &in.Completions, func() ([]domain.QuizCompletionRecord, error) {
		return s.store.QuizCompletionsByUser(gctx, userID, "")
	})
	goFetch(g, "topics", &in.Topics, func() ([]domain.TopicRecord, error) {
		return s.store.AllTopics(gctx)
	})
	goFetch(g, "topic progress", &in.Progress, func() ([]domain.TopicProgressRecord, error) {
		return s.store.TopicProgressByUser(gctx, userID)
	})
	goFetch(g, "quiz question links", &links, func() ([]domain.QuizQuestionLink, error) {
		return s.store.QuizQuestionLinks(gctx)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Quizzes arrive newest first, so the feed's quizzes are the head of the list.
	recent := in.Quizzes
	if len(recent) > limit {
		recent = recent[:limit]
	}

	return &dto.FullDashboard{
		Stats:          analytics.BuildDashboardStats(in, s.clock()),
		RecentActivity: analytics.AssembleRecentActivity(recent, in.Completions, in.Answers, links, limit),
		TopicProgress:  analytics.RollupTopics(in.Topics, in.Progress),
	}, nil
}
