package analytics

import (
	"sort"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/util"
)

const (
	TrendSize          = 20
	movingAverageWidth = 3
	untitledQuiz       = "Untitled quiz"
)

// BuildQuizTrend lists the most recent TrendSize completions, oldest first. Each
// point carries the mean of its score and up to two preceding scores.
func BuildQuizTrend(completions []domain.QuizCompletionRecord, quizzes []domain.QuizRecord) []dto.QuizTrendPoint {
	titles := make(map[string]string, len(quizzes))
	for _, q := range quizzes {
		titles[q.QuizID] = q.Title
	}

	sorted := make([]domain.QuizCompletionRecord, len(completions))
	copy(sorted, completions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CompletedAt.Equal(sorted[j].CompletedAt) {
			return sorted[i].CompletedAt.Before(sorted[j].CompletedAt)
		}
		return sorted[i].QuizID < sorted[j].QuizID
	})

	points := make([]dto.QuizTrendPoint, 0, len(sorted))
	for i, c := range sorted {
		start := i - movingAverageWidth + 1
		if start < 0 {
			start = 0
		}
		window := make([]float64, 0, movingAverageWidth)
		for _, w := range sorted[start : i+1] {
			window = append(window, w.ScorePercentage)
		}

		title, ok := titles[c.QuizID]
		if !ok || title == "" {
			title = untitledQuiz
		}
		points = append(points, dto.QuizTrendPoint{
			QuizID:        c.QuizID,
			Title:         title,
			CompletedAt:   c.CompletedAt,
			Score:         util.RoundTo(c.ScorePercentage, 1),
			MovingAverage: util.RoundTo(util.Mean(window), 1),
		})
	}

	if len(points) > TrendSize {
		points = points[len(points)-TrendSize:]
	}
	return points
}
