package analytics

import (
	"sort"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/util"
)

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 50
)

func latestCompletions(completions []domain.QuizCompletionRecord) map[string]domain.QuizCompletionRecord {
	latest := make(map[string]domain.QuizCompletionRecord, len(completions))
	for _, c := range completions {
		cur, ok := latest[c.QuizID]
		if !ok || c.CompletedAt.After(cur.CompletedAt) {
			latest[c.QuizID] = c
		}
	}
	return latest
}

func questionsPerQuiz(links []domain.QuizQuestionLink) map[string]int {
	seen := make(map[domain.QuizQuestionLink]struct{}, len(links))
	counts := make(map[string]int)
	for _, l := range links {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		counts[l.QuizID]++
	}
	return counts
}

func answeredPerQuiz(answers []domain.AnswerRecord) map[string]int {
	seen := make(map[answerKey]struct{}, len(answers))
	counts := make(map[string]int)
	for _, a := range answers {
		if a.QuizID == nil {
			continue
		}
		key := answerKey{quizID: *a.QuizID, questionID: a.QuestionID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		counts[*a.QuizID]++
	}
	return counts
}

// AssembleRecentActivity merges quiz creations and quiz completions into one feed,
// most recent first, capped at limit. Every quiz yields a creation entry. A
// completion entry exists only when a completion record exists; answers alone never
// mark a quiz as completed.
func AssembleRecentActivity(
	quizzes []domain.QuizRecord,
	completions []domain.QuizCompletionRecord,
	answers []domain.AnswerRecord,
	links []domain.QuizQuestionLink,
	limit int,
) []dto.Activity {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	completed := latestCompletions(completions)
	sizes := questionsPerQuiz(links)
	answered := answeredPerQuiz(answers)

	out := make([]dto.Activity, 0, 2*len(quizzes))
	for _, q := range quizzes {
		total := sizes[q.QuizID]

		if c, ok := completed[q.QuizID]; ok {
			score := util.RoundToInt(c.ScorePercentage)
			completedTotal := total
			if completedTotal == 0 {
				completedTotal = c.TotalQuestions
			}
			out = append(out, dto.Activity{
				ID:             "complete_" + q.QuizID,
				Type:           dto.ActivityQuizCompleted,
				QuizID:         q.QuizID,
				Title:          "Completed \"" + q.Title + "\" quiz",
				Score:          &score,
				CompletedAt:    c.CompletedAt,
				Topic:          q.TopicName,
				TotalQuestions: completedTotal,
			})
		}

		n := answered[q.QuizID]
		out = append(out, dto.Activity{
			ID:                "create_" + q.QuizID,
			Type:              dto.ActivityQuizCreated,
			QuizID:            q.QuizID,
			Title:             "Created \"" + q.Title + "\" quiz",
			CompletedAt:       q.CreatedAt,
			Topic:             q.TopicName,
			TotalQuestions:    total,
			AnsweredQuestions: &n,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CompletedAt.Equal(out[j].CompletedAt) {
			return out[i].CompletedAt.After(out[j].CompletedAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
