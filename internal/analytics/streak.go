package analytics

import (
	"time"

	"learnboard/internal/domain"
)

// AnswerTimestamps extracts the creation time of every answer.
func AnswerTimestamps(answers []domain.AnswerRecord) []time.Time {
	out := make([]time.Time, len(answers))
	for i, a := range answers {
		out[i] = a.CreatedAt
	}
	return out
}

// CalculateStreak counts consecutive calendar days with activity, ending today.
// Calendar dates are taken in the location of today. A day without activity,
// including today itself, ends the streak. Timestamps after today are ignored.
func CalculateStreak(timestamps []time.Time, today time.Time) int {
	loc := today.Location()
	todayKey := DateKey(today, loc)

	active := make(map[string]struct{}, len(timestamps))
	for _, ts := range timestamps {
		// Keys are YYYY-MM-DD, so string order is date order.
		if key := DateKey(ts, loc); key <= todayKey {
			active[key] = struct{}{}
		}
	}

	y, m, d := today.Date()
	streak := 0
	for streak < len(active) {
		// Noon exists on every date, so stepping back by calendar date never skips one.
		key := time.Date(y, m, d-streak, 12, 0, 0, 0, loc).Format(DateLayout)
		if _, ok := active[key]; !ok {
			break
		}
		streak++
	}
	return streak
}
