package analytics

import (
	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/util"
)

const (
	DefaultProgressDays = 30
	MaxProgressDays     = 366
)

// ProgressOverTime returns one point per calendar date of rng, oldest first.
// Dates without answers are present with zero counts. rng must start at midnight;
// its location decides the calendar.
func ProgressOverTime(answers []domain.AnswerRecord, rng domain.DateRange) []dto.ProgressPoint {
	loc := rng.From.Location()

	type dayAcc struct{ answered, correct int }
	byDate := make(map[string]*dayAcc)
	for _, a := range answers {
		if !rng.Contains(a.CreatedAt) {
			continue
		}
		key := DateKey(a.CreatedAt, loc)
		acc, ok := byDate[key]
		if !ok {
			acc = &dayAcc{}
			byDate[key] = acc
		}
		acc.answered++
		if a.IsCorrect {
			acc.correct++
		}
	}

	out := make([]dto.ProgressPoint, 0)
	for d := rng.From; d.Before(rng.To); d = AddDays(d, 1) {
		key := d.Format(DateLayout)
		p := dto.ProgressPoint{Date: key}
		if acc, ok := byDate[key]; ok {
			p.QuestionsAnswered = acc.answered
			p.CorrectAnswers = acc.correct
			p.Accuracy = util.RoundToInt(util.Percentage(acc.correct, acc.answered))
		}
		out = append(out, p)
	}
	return out
}
