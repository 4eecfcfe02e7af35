package models

import (
	"database/sql"
	"time"
)

// Row models of the analytics tables. Columns are selected with quoted lowercase
// aliases so Oracle and PostgreSQL return the same names.

type Answer struct {
	ID               string         `db:"id"`
	UserID           string         `db:"user_id"`
	QuestionID       string         `db:"question_id"`
	QuizID           sql.NullString `db:"quiz_id"`
	SessionID        sql.NullString `db:"session_id"`
	TopicID          sql.NullString `db:"topic_id"`
	IsCorrect        bool           `db:"is_correct"`
	TimeTakenSeconds sql.NullInt64  `db:"time_taken_seconds"`
	CreatedAt        time.Time      `db:"created_at"`
}

type Quiz struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Title     string         `db:"title"`
	TopicID   sql.NullString `db:"topic_id"`
	TopicName sql.NullString `db:"topic_name"`
	CreatedAt time.Time      `db:"created_at"`
}

type QuizCompletion struct {
	ID               string    `db:"id"`
	QuizID           string    `db:"quiz_id"`
	UserID           string    `db:"user_id"`
	CompletedAt      time.Time `db:"completed_at"`
	ScorePercentage  float64   `db:"score_percentage"`
	TotalQuestions   int       `db:"total_questions"`
	CorrectAnswers   int       `db:"correct_answers"`
	TimeSpentSeconds int       `db:"time_spent_seconds"`
}

type QuizQuestion struct {
	QuizID     string `db:"quiz_id"`
	QuestionID string `db:"question_id"`
}

type Topic struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	ParentTopicID sql.NullString `db:"parent_topic_id"`
}

type TopicProgress struct {
	UserID             string       `db:"user_id"`
	TopicID            string       `db:"topic_id"`
	TopicName          string       `db:"topic_name"`
	ProficiencyLevel   float64      `db:"proficiency_level"`
	QuestionsAttempted int          `db:"questions_attempted"`
	QuestionsCorrect   int          `db:"questions_correct"`
	LastActivity       sql.NullTime `db:"last_activity"`
}

type Flashcard struct {
	ID               string         `db:"id"`
	UserID           string         `db:"user_id"`
	TopicID          sql.NullString `db:"topic_id"`
	SourceQuestionID sql.NullString `db:"source_question_id"`
	MasteryStatus    sql.NullString `db:"mastery_status"`
	EaseFactor       float64        `db:"ease_factor"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type Exam struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}

type ExamSession struct {
	ID        string    `db:"id"`
	ExamID    string    `db:"exam_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Question struct {
	ID            string         `db:"id"`
	QuestionText  string         `db:"question_text"`
	CorrectAnswer string         `db:"correct_answer"`
	Explanation   sql.NullString `db:"explanation"`
}
