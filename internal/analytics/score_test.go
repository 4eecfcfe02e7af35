package analytics

import (
	"testing"

	"learnboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateScores_AverageOfQuizPercentages(t *testing.T) {
	answers := []domain.AnswerRecord{
		quizAnswer("a1", "quiz-a", "q1", true, daysAgo(1)),
		quizAnswer("b1", "quiz-b", "q1", true, daysAgo(1)),
		quizAnswer("b2", "quiz-b", "q2", false, daysAgo(1)),
		quizAnswer("b3", "quiz-b", "q3", false, daysAgo(1)),
		quizAnswer("b4", "quiz-b", "q4", false, daysAgo(1)),
	}

	summary := AggregateScores(answers)

	// (100 + 25) / 2 = 62.5, not the pooled 2/5 = 40.
	assert.Equal(t, 63, summary.AverageScore)
	assert.Equal(t, 5, summary.QuestionsAnswered)
	assert.Equal(t, 2, summary.CorrectAnswers)
	assert.Equal(t, 2, summary.QuizzesTaken)
	require.Len(t, summary.PerQuiz, 2)
	assert.Equal(t, "quiz-a", summary.PerQuiz[0].QuizID)
	assert.Equal(t, 100.0, summary.PerQuiz[0].Percentage)
	assert.Equal(t, 25.0, summary.PerQuiz[1].Percentage)
}

func TestAggregateScores_LatestAttemptWins(t *testing.T) {
	t.Run("later correct answer replaces earlier wrong one", func(t *testing.T) {
		answers := []domain.AnswerRecord{
			quizAnswer("old", "quiz-a", "q1", false, daysAgo(3)),
			quizAnswer("new", "quiz-a", "q1", true, daysAgo(1)),
		}
		summary := AggregateScores(answers)
		assert.Equal(t, 100, summary.AverageScore)
		assert.Equal(t, 1, summary.QuestionsAnswered)
		assert.Equal(t, 1, summary.CorrectAnswers)
	})

	t.Run("later wrong answer replaces earlier correct one regardless of input order", func(t *testing.T) {
		answers := []domain.AnswerRecord{
			quizAnswer("new", "quiz-a", "q1", false, daysAgo(1)),
			quizAnswer("old", "quiz-a", "q1", true, daysAgo(3)),
		}
		summary := AggregateScores(answers)
		assert.Equal(t, 0, summary.AverageScore)
		assert.Equal(t, 0, summary.CorrectAnswers)
	})

	t.Run("same question in different quizzes is not a duplicate", func(t *testing.T) {
		answers := []domain.AnswerRecord{
			quizAnswer("a", "quiz-a", "q1", true, daysAgo(1)),
			quizAnswer("b", "quiz-b", "q1", false, daysAgo(1)),
		}
		summary := AggregateScores(answers)
		assert.Equal(t, 2, summary.QuestionsAnswered)
		assert.Equal(t, 50, summary.AverageScore)
	})
}

func TestAggregateScores_FlashcardAnswersExcluded(t *testing.T) {
	answers := []domain.AnswerRecord{
		flashcardAnswer("f1", "q1", false, daysAgo(0)),
		flashcardAnswer("f2", "q2", false, daysAgo(0)),
		quizAnswer("a1", "quiz-a", "q1", true, daysAgo(0)),
	}
	summary := AggregateScores(answers)
	assert.Equal(t, 100, summary.AverageScore)
	assert.Equal(t, 1, summary.QuestionsAnswered)
}

func TestAggregateScores_Empty(t *testing.T) {
	summary := AggregateScores(nil)
	assert.Equal(t, 0, summary.AverageScore)
	assert.Equal(t, 0, summary.QuestionsAnswered)
	assert.NotNil(t, summary.PerQuiz)
	assert.Empty(t, summary.PerQuiz)
}

func TestAggregateScores_Idempotent(t *testing.T) {
	answers := []domain.AnswerRecord{
		quizAnswer("a1", "quiz-b", "q2", true, daysAgo(2)),
		quizAnswer("a2", "quiz-a", "q1", false, daysAgo(1)),
		quizAnswer("a3", "quiz-b", "q1", true, daysAgo(1)),
	}
	assert.Equal(t, AggregateScores(answers), AggregateScores(answers))
}

func TestLatestQuizAnswers_TieBreaksOnID(t *testing.T) {
	at := daysAgo(1)
	answers := []domain.AnswerRecord{
		quizAnswer("b", "quiz-a", "q1", true, at),
		quizAnswer("a", "quiz-a", "q1", false, at),
	}
	latest := LatestQuizAnswers(answers)
	require.Len(t, latest, 1)
	assert.Equal(t, "b", latest[0].ID)
}
