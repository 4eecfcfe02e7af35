package dto

import "time"

// QuizReviewItem is the latest answer the user gave to one question of a quiz.
type QuizReviewItem struct {
	QuestionID       string    `json:"question_id"`
	QuestionText     *string   `json:"question_text,omitempty"`
	CorrectAnswer    *string   `json:"correct_answer,omitempty"`
	IsCorrect        bool      `json:"is_correct"`
	AnsweredAt       time.Time `json:"answered_at"`
	TimeTakenSeconds *int      `json:"time_taken_seconds,omitempty"`
	Explanation      *string   `json:"explanation,omitempty"`
}

// QuizReview is the response of GET /quizzes/:quizId/review.
type QuizReview struct {
	QuizID         string           `json:"quiz_id"`
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	Items          []QuizReviewItem `json:"items"`
}
