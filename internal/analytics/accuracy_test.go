package analytics

import (
	"testing"

	"learnboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAccuracyBreakdown(t *testing.T) {
	answers := []domain.AnswerRecord{
		quizAnswer("a1", "quiz-a", "q1", true, daysAgo(1)),
		quizAnswer("a2", "quiz-a", "q1", false, daysAgo(2)),
		flashcardAnswer("a3", "q2", true, daysAgo(0)),
	}
	progress := []domain.TopicProgressRecord{
		progressRow("t1", "Algebra", 0.5, 4, 2, nil),
		progressRow("t2", "Geometry", 0.9, 10, 9, nil),
		progressRow("t3", "Untouched", 0, 0, 0, nil),
	}

	breakdown := BuildAccuracyBreakdown(answers, progress)

	assert.Equal(t, 3, breakdown.Overall.Total)
	assert.Equal(t, 2, breakdown.Overall.Correct)
	assert.Equal(t, 1, breakdown.Overall.Incorrect)
	assert.Equal(t, 67, breakdown.Overall.Accuracy)

	require.Len(t, breakdown.ByTopic, 2)
	assert.Equal(t, "t2", breakdown.ByTopic[0].TopicID)
	assert.Equal(t, 90, breakdown.ByTopic[0].Accuracy)
	assert.Equal(t, "t1", breakdown.ByTopic[1].TopicID)
}

func TestBuildAccuracyBreakdown_Empty(t *testing.T) {
	breakdown := BuildAccuracyBreakdown(nil, nil)
	assert.Equal(t, 0, breakdown.Overall.Accuracy)
	assert.NotNil(t, breakdown.ByTopic)
}
