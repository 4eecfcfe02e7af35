package domain

import "time"

// AnswerRecord is one answered question. A user may answer the same quiz question
// several times; only the most recent record counts towards scores.
type AnswerRecord struct {
	ID               string
	UserID           string
	QuestionID       string
	QuizID           *string // nil for flashcard reviews
	SessionID        *string
	TopicID          *string
	IsCorrect        bool
	CreatedAt        time.Time
	TimeTakenSeconds *int
}

// QuizRecord is a quiz created by a user.
type QuizRecord struct {
	QuizID    string
	UserID    string
	Title     string
	TopicID   *string
	TopicName *string
	CreatedAt time.Time
}

// QuizCompletionRecord is the authoritative marker that a quiz was taken.
type QuizCompletionRecord struct {
	QuizID           string
	UserID           string
	CompletedAt      time.Time
	ScorePercentage  float64
	TotalQuestions   int
	CorrectAnswers   int
	TimeSpentSeconds int
}

// QuizQuestionLink ties a question to a quiz.
type QuizQuestionLink struct {
	QuizID     string
	QuestionID string
}

// TopicRecord is a node of the two-level topic tree. Parents have no ParentTopicID.
type TopicRecord struct {
	TopicID       string
	Name          string
	ParentTopicID *string
}

// IsParent reports whether the topic sits at the top of the tree.
func (t TopicRecord) IsParent() bool {
	return t.ParentTopicID == nil || *t.ParentTopicID == ""
}

// TopicProgressRecord is the per (user, topic) progress row maintained upstream.
type TopicProgressRecord struct {
	UserID             string
	TopicID            string
	TopicName          string
	ProficiencyLevel   float64 // 0..1
	QuestionsAttempted int
	QuestionsCorrect   int
	LastActivity       *time.Time
}

// FlashcardRecord is a flashcard owned by a user.
type FlashcardRecord struct {
	ID               string
	UserID           string
	TopicID          *string
	SourceQuestionID *string
	MasteryStatus    string
	EaseFactor       float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Mastery statuses used by flashcards.
const (
	MasteryNew      = "new"
	MasteryLearning = "learning"
	MasteryReview   = "review"
	MasteryMastered = "mastered"
)

// ExamRecord is an exam created by a user.
type ExamRecord struct {
	ExamID    string
	UserID    string
	Title     string
	CreatedAt time.Time
}

// ExamSessionRecord is one attempt at an exam.
type ExamSessionRecord struct {
	SessionID string
	ExamID    string
	UserID    string
	CreatedAt time.Time
}

// QuestionRecord carries the fields the quiz review needs from a question.
type QuestionRecord struct {
	QuestionID    string
	Text          string
	CorrectAnswer string
	Explanation   *string
}
