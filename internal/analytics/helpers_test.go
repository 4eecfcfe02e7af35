package analytics

import (
	"time"

	"learnboard/internal/domain"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// fixedNow anchors every calendar test: Wednesday 2024-05-15 14:30 UTC.
var fixedNow = time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}

func quizAnswer(id, quizID, questionID string, correct bool, at time.Time) domain.AnswerRecord {
	return domain.AnswerRecord{
		ID:         id,
		UserID:     "user-1",
		QuestionID: questionID,
		QuizID:     strPtr(quizID),
		IsCorrect:  correct,
		CreatedAt:  at,
	}
}

func flashcardAnswer(id, questionID string, correct bool, at time.Time) domain.AnswerRecord {
	return domain.AnswerRecord{ID: id, UserID: "user-1", QuestionID: questionID, IsCorrect: correct, CreatedAt: at}
}
