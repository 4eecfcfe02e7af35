package analytics

import (
	"sort"
	"time"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/util"
)

const recentCardDays = 7

// BuildFlashcardAnalytics summarises the user's flashcards by mastery status.
// Cards without a status count as new.
func BuildFlashcardAnalytics(cards []domain.FlashcardRecord, today time.Time) dto.FlashcardAnalytics {
	result := dto.FlashcardAnalytics{ByMastery: []dto.MasteryCount{}}
	if len(cards) == 0 {
		return result
	}

	recent := TrailingDays(today, recentCardDays)
	counts := make(map[string]int)
	var easeSum float64
	for _, c := range cards {
		status := c.MasteryStatus
		if status == "" {
			status = domain.MasteryNew
		}
		counts[status]++
		easeSum += c.EaseFactor
		if recent.Contains(c.CreatedAt) {
			result.CreatedLast7Days++
		}
	}

	for status, n := range counts {
		result.ByMastery = append(result.ByMastery, dto.MasteryCount{Status: status, Count: n})
	}
	sort.Slice(result.ByMastery, func(i, j int) bool { return result.ByMastery[i].Status < result.ByMastery[j].Status })

	result.TotalCards = len(cards)
	result.MasteryRate = util.RoundToInt(util.Percentage(counts[domain.MasteryMastered], len(cards)))
	result.AverageEaseFactor = util.RoundTo(easeSum/float64(len(cards)), 2)
	return result
}
