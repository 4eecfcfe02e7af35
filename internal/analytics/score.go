package analytics

import (
	"sort"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/util"
)

type answerKey struct {
	quizID     string
	questionID string
}

// LatestQuizAnswers drops answers without a quiz and keeps, for every
// (quiz, question) pair, only the most recent answer. Equal timestamps keep
// the record with the greater ID. The result is ordered by quiz then question.
func LatestQuizAnswers(answers []domain.AnswerRecord) []domain.AnswerRecord {
	latest := make(map[answerKey]domain.AnswerRecord)
	for _, a := range answers {
		if a.QuizID == nil || *a.QuizID == "" {
			continue
		}
		key := answerKey{quizID: *a.QuizID, questionID: a.QuestionID}
		cur, ok := latest[key]
		if !ok || a.CreatedAt.After(cur.CreatedAt) || (a.CreatedAt.Equal(cur.CreatedAt) && a.ID > cur.ID) {
			latest[key] = a
		}
	}

	out := make([]domain.AnswerRecord, 0, len(latest))
	for _, a := range latest {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if *out[i].QuizID != *out[j].QuizID {
			return *out[i].QuizID < *out[j].QuizID
		}
		return out[i].QuestionID < out[j].QuestionID
	})
	return out
}

// AggregateScores computes the dashboard score figures. The average score is the
// unweighted mean of per-quiz percentages, never pooled question accuracy.
func AggregateScores(answers []domain.AnswerRecord) dto.ScoreSummary {
	deduped := LatestQuizAnswers(answers)

	summary := dto.ScoreSummary{PerQuiz: []dto.QuizScore{}}
	var percentages []float64

	// deduped is sorted by quiz, so each quiz is a contiguous run.
	for i := 0; i < len(deduped); {
		quizID := *deduped[i].QuizID
		score := dto.QuizScore{QuizID: quizID}
		for ; i < len(deduped) && *deduped[i].QuizID == quizID; i++ {
			score.Answered++
			if deduped[i].IsCorrect {
				score.Correct++
			}
		}
		pct := util.Percentage(score.Correct, score.Answered)
		score.Percentage = util.RoundTo(pct, 2)
		percentages = append(percentages, pct)

		summary.QuestionsAnswered += score.Answered
		summary.CorrectAnswers += score.Correct
		summary.PerQuiz = append(summary.PerQuiz, score)
	}

	summary.QuizzesTaken = len(summary.PerQuiz)
	summary.AverageScore = util.RoundToInt(util.Mean(percentages))
	return summary
}
