package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"learnboard/internal/domain"
	"learnboard/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// SQLXStore implements domain.StoreClient on top of sqlx. Queries are written with
// '?' placeholders and rebound for the connected driver.
type SQLXStore struct {
	db           DBTX
	queryTimeout time.Duration
}

// NewSQLXStore creates the read store. A queryTimeout of 0 leaves the caller's deadline alone.
func NewSQLXStore(db DBTX, queryTimeout time.Duration) *SQLXStore {
	return &SQLXStore{db: db, queryTimeout: queryTimeout}
}

var _ domain.StoreClient = (*SQLXStore)(nil)

func (s *SQLXStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func (s *SQLXStore) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	exec := GetExecutor(ctx, s.db)
	return exec.SelectContext(ctx, dest, exec.Rebind(query), args...)
}

// whereClause accumulates AND-ed conditions and their arguments in order.
type whereClause struct {
	conds []string
	args  []interface{}
}

func (w *whereClause) add(cond string, args ...interface{}) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *whereClause) addRange(column string, rng *domain.DateRange) {
	if rng == nil {
		return
	}
	w.add(fmt.Sprintf("%s >= ? AND %s < ?", column, column), rng.From, rng.To)
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

const answerColumns = `
		a.id "id",
		a.user_id "user_id",
		a.question_id "question_id",
		a.quiz_id "quiz_id",
		a.session_id "session_id",
		a.topic_id "topic_id",
		a.is_correct "is_correct",
		a.time_taken_seconds "time_taken_seconds",
		a.created_at "created_at"`

// AnswersByUser implements domain.StoreClient
func (s *SQLXStore) AnswersByUser(ctx context.Context, userID string, filters domain.AnswerFilters) ([]domain.AnswerRecord, error) {
	var w whereClause
	w.add("a.user_id = ?", userID)
	if filters.QuizID != "" {
		w.add("a.quiz_id = ?", filters.QuizID)
	}
	if filters.SessionID != "" {
		w.add("a.session_id = ?", filters.SessionID)
	}
	if filters.TopicID != "" {
		w.add("a.topic_id = ?", filters.TopicID)
	}
	w.addRange("a.created_at", filters.Range)

	query := `SELECT` + answerColumns + `
	FROM answers a` + w.String() + `
	ORDER BY a.created_at ASC, a.id ASC`

	var rows []models.Answer
	if err := s.selectAll(ctx, &rows, query, w.args...); err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	out := make([]domain.AnswerRecord, len(rows))
	for i := range rows {
		out[i] = toDomainAnswer(&rows[i])
	}
	return out, nil
}

// QuizzesByUser implements domain.StoreClient
func (s *SQLXStore) QuizzesByUser(ctx context.Context, userID string, q domain.QuizQuery) ([]domain.QuizRecord, error) {
	var w whereClause
	w.add("q.user_id = ?", userID)
	w.addRange("q.created_at", q.Range)

	order := "DESC"
	if q.Order == domain.SortOldestFirst {
		order = "ASC"
	}

	query := `SELECT
		q.id "id",
		q.user_id "user_id",
		q.title "title",
		q.topic_id "topic_id",
		t.name "topic_name",
		q.created_at "created_at"
	FROM quizzes q
	LEFT JOIN topics t ON t.id = q.topic_id` + w.String() + `
	ORDER BY q.created_at ` + order + `, q.id ` + order

	args := w.args
	if q.Limit > 0 {
		query += `
	FETCH FIRST ? ROWS ONLY`
		args = append(args, q.Limit)
	}

	var rows []models.Quiz
	if err := s.selectAll(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get quizzes: %w", err)
	}
	out := make([]domain.QuizRecord, len(rows))
	for i := range rows {
		out[i] = toDomainQuiz(&rows[i])
	}
	return out, nil
}

// QuizCompletionsByUser implements domain.StoreClient
func (s *SQLXStore) QuizCompletionsByUser(ctx context.Context, userID string, quizID string) ([]domain.QuizCompletionRecord, error) {
	var w whereClause
	w.add("c.user_id = ?", userID)
	if quizID != "" {
		w.add("c.quiz_id = ?", quizID)
	}

	query := `SELECT
		c.id "id",
		c.quiz_id "quiz_id",
		c.user_id "user_id",
		c.completed_at "completed_at",
		c.score_percentage "score_percentage",
		c.total_questions "total_questions",
		c.correct_answers "correct_answers",
		c.time_spent_seconds "time_spent_seconds"
	FROM quiz_completions c` + w.String() + `
	ORDER BY c.completed_at ASC, c.id ASC`

	var rows []models.QuizCompletion
	if err := s.selectAll(ctx, &rows, query, w.args...); err != nil {
		return nil, fmt.Errorf("failed to get quiz completions: %w", err)
	}
	out := make([]domain.QuizCompletionRecord, len(rows))
	for i := range rows {
		out[i] = toDomainQuizCompletion(&rows[i])
	}
	return out, nil
}

// QuizQuestionLinks implements domain.StoreClient
func (s *SQLXStore) QuizQuestionLinks(ctx context.Context) ([]domain.QuizQuestionLink, error) {
	query := `SELECT
		qq.quiz_id "quiz_id",
		qq.question_id "question_id"
	FROM quiz_questions qq
	ORDER BY qq.quiz_id ASC, qq.question_id ASC`

	var rows []models.QuizQuestion
	if err := s.selectAll(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get quiz question links: %w", err)
	}
	out := make([]domain.QuizQuestionLink, len(rows))
	for i, r := range rows {
		out[i] = domain.QuizQuestionLink{QuizID: r.QuizID, QuestionID: r.QuestionID}
	}
	return out, nil
}

// AllTopics implements domain.StoreClient
func (s *SQLXStore) AllTopics(ctx context.Context) ([]domain.TopicRecord, error) {
	query := `SELECT
		t.id "id",
		t.name "name",
		t.parent_topic_id "parent_topic_id"
	FROM topics t
	ORDER BY t.name ASC, t.id ASC`

	var rows []models.Topic
	if err := s.selectAll(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get topics: %w", err)
	}
	out := make([]domain.TopicRecord, len(rows))
	for i := range rows {
		out[i] = toDomainTopic(&rows[i])
	}
	return out, nil
}

// TopicProgressByUser implements domain.StoreClient
func (s *SQLXStore) TopicProgressByUser(ctx context.Context, userID string) ([]domain.TopicProgressRecord, error) {
	query := `SELECT
		p.user_id "user_id",
		p.topic_id "topic_id",
		t.name "topic_name",
		p.proficiency_level "proficiency_level",
		p.questions_attempted "questions_attempted",
		p.questions_correct "questions_correct",
		p.last_activity "last_activity"
	FROM user_topic_progress p
	JOIN topics t ON t.id = p.topic_id
	WHERE p.user_id = ?
	ORDER BY t.name ASC, p.topic_id ASC`

	var rows []models.TopicProgress
	if err := s.selectAll(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get topic progress: %w", err)
	}
	out := make([]domain.TopicProgressRecord, len(rows))
	for i := range rows {
		out[i] = toDomainTopicProgress(&rows[i])
	}
	return out, nil
}

// FlashcardsByUser implements domain.StoreClient
func (s *SQLXStore) FlashcardsByUser(ctx context.Context, userID string, rng *domain.DateRange) ([]domain.FlashcardRecord, error) {
	var w whereClause
	w.add("f.user_id = ?", userID)
	if rng != nil {
		w.add("((f.created_at >= ? AND f.created_at < ?) OR (f.updated_at >= ? AND f.updated_at < ?))",
			rng.From, rng.To, rng.From, rng.To)
	}

	query := `SELECT
		f.id "id",
		f.user_id "user_id",
		f.topic_id "topic_id",
		f.source_question_id "source_question_id",
		f.mastery_status "mastery_status",
		f.ease_factor "ease_factor",
		f.created_at "created_at",
		f.updated_at "updated_at"
	FROM flashcards f` + w.String() + `
	ORDER BY f.created_at ASC, f.id ASC`

	var rows []models.Flashcard
	if err := s.selectAll(ctx, &rows, query, w.args...); err != nil {
		return nil, fmt.Errorf("failed to get flashcards: %w", err)
	}
	out := make([]domain.FlashcardRecord, len(rows))
	for i := range rows {
		out[i] = toDomainFlashcard(&rows[i])
	}
	return out, nil
}

// ExamsByUser implements domain.StoreClient
func (s *SQLXStore) ExamsByUser(ctx context.Context, userID string, rng *domain.DateRange) ([]domain.ExamRecord, error) {
	var w whereClause
	w.add("e.user_id = ?", userID)
	w.addRange("e.created_at", rng)

	query := `SELECT
		e.id "id",
		e.user_id "user_id",
		e.title "title",
		e.created_at "created_at"
	FROM exams e` + w.String() + `
	ORDER BY e.created_at ASC, e.id ASC`

	var rows []models.Exam
	if err := s.selectAll(ctx, &rows, query, w.args...); err != nil {
		return nil, fmt.Errorf("failed to get exams: %w", err)
	}
	out := make([]domain.ExamRecord, len(rows))
	for i, r := range rows {
		out[i] = domain.ExamRecord{ExamID: r.ID, UserID: r.UserID, Title: r.Title, CreatedAt: r.CreatedAt}
	}
	return out, nil
}

// ExamSessionsByUser implements domain.StoreClient
func (s *SQLXStore) ExamSessionsByUser(ctx context.Context, userID string, rng *domain.DateRange) ([]domain.ExamSessionRecord, error) {
	var w whereClause
	w.add("es.user_id = ?", userID)
	w.addRange("es.created_at", rng)

	query := `SELECT
		es.id "id",
		es.exam_id "exam_id",
		es.user_id "user_id",
		es.created_at "created_at"
	FROM exam_sessions es` + w.String() + `
	ORDER BY es.created_at ASC, es.id ASC`

	var rows []models.ExamSession
	if err := s.selectAll(ctx, &rows, query, w.args...); err != nil {
		return nil, fmt.Errorf("failed to get exam sessions: %w", err)
	}
	out := make([]domain.ExamSessionRecord, len(rows))
	for i, r := range rows {
		out[i] = domain.ExamSessionRecord{SessionID: r.ID, ExamID: r.ExamID, UserID: r.UserID, CreatedAt: r.CreatedAt}
	}
	return out, nil
}

// QuestionsByIDs implements domain.StoreClient
func (s *SQLXStore) QuestionsByIDs(ctx context.Context, ids []string) ([]domain.QuestionRecord, error) {
	if len(ids) == 0 {
		return []domain.QuestionRecord{}, nil
	}

	query, args, err := sqlx.In(`SELECT
		qs.id "id",
		qs.question_text "question_text",
		qs.correct_answer "correct_answer",
		qs.explanation "explanation"
	FROM questions qs
	WHERE qs.id IN (?)
	ORDER BY qs.id ASC`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build questions query: %w", err)
	}

	var rows []models.Question
	if err := s.selectAll(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	out := make([]domain.QuestionRecord, len(rows))
	for i := range rows {
		out[i] = toDomainQuestion(&rows[i])
	}
	return out, nil
}
