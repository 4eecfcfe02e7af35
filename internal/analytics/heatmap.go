package analytics

import (
	"sort"
	"time"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
)

// DefaultHeatmapDays is the trailing window used when no year is requested.
const DefaultHeatmapDays = 30

// HeatmapSources are the five event streams merged into the heatmap.
type HeatmapSources struct {
	Answers      []domain.AnswerRecord
	Flashcards   []domain.FlashcardRecord
	Quizzes      []domain.QuizRecord
	Exams        []domain.ExamRecord
	ExamSessions []domain.ExamSessionRecord
}

// HeatmapWindow returns January 1st to December 31st of year, or the trailing
// DefaultHeatmapDays ending today when year is 0. Dates are in the location of today.
func HeatmapWindow(year int, today time.Time) domain.DateRange {
	if year == 0 {
		return TrailingDays(today, DefaultHeatmapDays)
	}
	loc := today.Location()
	return domain.DateRange{
		From: StartOfDate(year, time.January, 1, loc),
		To:   StartOfDate(year+1, time.January, 1, loc),
	}
}

// BuildHeatmap merges the sources into per-date activity counts inside window.
// Every answer, quiz, exam and exam session counts once on its creation date.
// A flashcard counts on its creation date and again on its update date when the
// update falls on a different date inside the window. Output is ordered by date.
func BuildHeatmap(window domain.DateRange, src HeatmapSources) []dto.HeatmapDay {
	loc := window.From.Location()
	counts := make(map[string]int)
	add := func(t time.Time) {
		if window.Contains(t) {
			counts[DateKey(t, loc)]++
		}
	}

	for _, a := range src.Answers {
		add(a.CreatedAt)
	}
	for _, f := range src.Flashcards {
		add(f.CreatedAt)
		if DateKey(f.UpdatedAt, loc) != DateKey(f.CreatedAt, loc) {
			add(f.UpdatedAt)
		}
	}
	for _, q := range src.Quizzes {
		add(q.CreatedAt)
	}
	for _, e := range src.Exams {
		add(e.CreatedAt)
	}
	for _, s := range src.ExamSessions {
		add(s.CreatedAt)
	}

	out := make([]dto.HeatmapDay, 0, len(counts))
	for date, n := range counts {
		out = append(out, dto.HeatmapDay{Date: date, ActivityCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
