package analytics

import (
	"time"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
)

// StatsInput is the snapshot the dashboard summary is computed from.
type StatsInput struct {
	Answers     []domain.AnswerRecord
	Quizzes     []domain.QuizRecord
	Completions []domain.QuizCompletionRecord
	Topics      []domain.TopicRecord
	Progress    []domain.TopicProgressRecord
}

// BuildDashboardStats combines the score, streak and topic rollup figures.
func BuildDashboardStats(in StatsInput, today time.Time) dto.DashboardStats {
	scores := AggregateScores(in.Answers)

	completed := make(map[string]struct{}, len(in.Completions))
	for _, c := range in.Completions {
		completed[c.QuizID] = struct{}{}
	}

	return dto.DashboardStats{
		TotalQuizzes:      len(in.Quizzes),
		CompletedQuizzes:  len(completed),
		QuestionsAnswered: scores.QuestionsAnswered,
		CorrectAnswers:    scores.CorrectAnswers,
		AverageScore:      scores.AverageScore,
		StudyStreak:       CalculateStreak(AnswerTimestamps(in.Answers), today),
		TopicsStudied:     len(RollupTopics(in.Topics, in.Progress)),
	}
}
