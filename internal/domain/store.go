package domain

import (
	"context"
	"time"
)

// SortOrder is the creation-time ordering requested from the store.
type SortOrder string

const (
	SortNewestFirst SortOrder = "desc"
	SortOldestFirst SortOrder = "asc"
)

// DateRange is a half-open interval [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// AnswerFilters narrows AnswersByUser. Empty fields do not filter.
type AnswerFilters struct {
	QuizID    string
	SessionID string
	TopicID   string
	Range     *DateRange
}

// QuizQuery narrows QuizzesByUser. Limit <= 0 means no limit.
type QuizQuery struct {
	Order SortOrder
	Limit int
	Range *DateRange
}

// StoreClient is the read-only query surface the analytics engine consumes.
// Implementations own timeouts; every call honours ctx cancellation.
type StoreClient interface {
	AnswersByUser(ctx context.Context, userID string, filters AnswerFilters) ([]AnswerRecord, error)
	QuizzesByUser(ctx context.Context, userID string, query QuizQuery) ([]QuizRecord, error)
	// QuizCompletionsByUser returns every completion of the user, or only those of quizID when set.
	QuizCompletionsByUser(ctx context.Context, userID string, quizID string) ([]QuizCompletionRecord, error)
	// QuizQuestionLinks returns the links of all quizzes, not only the user's.
	QuizQuestionLinks(ctx context.Context) ([]QuizQuestionLink, error)
	AllTopics(ctx context.Context) ([]TopicRecord, error)
	TopicProgressByUser(ctx context.Context, userID string) ([]TopicProgressRecord, error)
	// FlashcardsByUser matches cards created or updated inside rng when rng is set.
	FlashcardsByUser(ctx context.Context, userID string, rng *DateRange) ([]FlashcardRecord, error)
	ExamsByUser(ctx context.Context, userID string, rng *DateRange) ([]ExamRecord, error)
	ExamSessionsByUser(ctx context.Context, userID string, rng *DateRange) ([]ExamSessionRecord, error)
	QuestionsByIDs(ctx context.Context, ids []string) ([]QuestionRecord, error)
}

// TransactionManager runs fn inside one database transaction. Only the seed
// command writes; the analytics engine never does.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
