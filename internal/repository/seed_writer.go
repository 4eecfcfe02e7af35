package repository

import (
	"context"
	"database/sql"
	"fmt"

	"learnboard/internal/domain"
	"learnboard/internal/repository/models"
	"learnboard/internal/util"
)

// SQLXSeedWriter inserts demo rows. It joins the transaction found in ctx.
type SQLXSeedWriter struct {
	db DBTX
}

func NewSQLXSeedWriter(db DBTX) *SQLXSeedWriter {
	return &SQLXSeedWriter{db: db}
}

func (w *SQLXSeedWriter) exec(ctx context.Context, what, query string, arg interface{}) error {
	if _, err := GetExecutor(ctx, w.db).NamedExecContext(ctx, query, arg); err != nil {
		return fmt.Errorf("failed to insert %s: %w", what, err)
	}
	return nil
}

func (w *SQLXSeedWriter) InsertTopic(ctx context.Context, t domain.TopicRecord) error {
	return w.exec(ctx, "topic",
		`INSERT INTO topics (id, name, parent_topic_id) VALUES (:id, :name, :parent_topic_id)`,
		models.Topic{ID: t.TopicID, Name: t.Name, ParentTopicID: util.PtrToNullString(t.ParentTopicID)})
}

func (w *SQLXSeedWriter) InsertQuestion(ctx context.Context, topicID string, q domain.QuestionRecord) error {
	return w.exec(ctx, "question",
		`INSERT INTO questions (id, topic_id, question_text, correct_answer, explanation)
		VALUES (:id, :topic_id, :question_text, :correct_answer, :explanation)`,
		struct {
			models.Question
			TopicID sql.NullString `db:"topic_id"`
		}{
			Question: models.Question{
				ID:            q.QuestionID,
				QuestionText:  q.Text,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   util.PtrToNullString(q.Explanation),
			},
			TopicID: util.StringToNullString(topicID),
		})
}

func (w *SQLXSeedWriter) InsertQuiz(ctx context.Context, q domain.QuizRecord) error {
	return w.exec(ctx, "quiz",
		`INSERT INTO quizzes (id, user_id, title, topic_id, created_at) VALUES (:id, :user_id, :title, :topic_id, :created_at)`,
		models.Quiz{ID: q.QuizID, UserID: q.UserID, Title: q.Title, TopicID: util.PtrToNullString(q.TopicID), CreatedAt: q.CreatedAt})
}

func (w *SQLXSeedWriter) LinkQuestion(ctx context.Context, l domain.QuizQuestionLink) error {
	return w.exec(ctx, "quiz question",
		`INSERT INTO quiz_questions (quiz_id, question_id) VALUES (:quiz_id, :question_id)`,
		models.QuizQuestion{QuizID: l.QuizID, QuestionID: l.QuestionID})
}

func (w *SQLXSeedWriter) InsertAnswer(ctx context.Context, a domain.AnswerRecord) error {
	m := models.Answer{
		ID:         a.ID,
		UserID:     a.UserID,
		QuestionID: a.QuestionID,
		QuizID:     util.PtrToNullString(a.QuizID),
		SessionID:  util.PtrToNullString(a.SessionID),
		TopicID:    util.PtrToNullString(a.TopicID),
		IsCorrect:  a.IsCorrect,
		CreatedAt:  a.CreatedAt,
	}
	if a.TimeTakenSeconds != nil {
		m.TimeTakenSeconds = sql.NullInt64{Int64: int64(*a.TimeTakenSeconds), Valid: true}
	}
	return w.exec(ctx, "answer",
		`INSERT INTO answers (id, user_id, question_id, quiz_id, session_id, topic_id, is_correct, time_taken_seconds, created_at)
		VALUES (:id, :user_id, :question_id, :quiz_id, :session_id, :topic_id, :is_correct, :time_taken_seconds, :created_at)`,
		m)
}

func (w *SQLXSeedWriter) InsertCompletion(ctx context.Context, c domain.QuizCompletionRecord) error {
	return w.exec(ctx, "quiz completion",
		`INSERT INTO quiz_completions (id, quiz_id, user_id, completed_at, score_percentage, total_questions, correct_answers, time_spent_seconds)
		VALUES (:id, :quiz_id, :user_id, :completed_at, :score_percentage, :total_questions, :correct_answers, :time_spent_seconds)`,
		models.QuizCompletion{
			ID:               util.NewULID(),
			QuizID:           c.QuizID,
			UserID:           c.UserID,
			CompletedAt:      c.CompletedAt,
			ScorePercentage:  c.ScorePercentage,
			TotalQuestions:   c.TotalQuestions,
			CorrectAnswers:   c.CorrectAnswers,
			TimeSpentSeconds: c.TimeSpentSeconds,
		})
}

func (w *SQLXSeedWriter) InsertTopicProgress(ctx context.Context, p domain.TopicProgressRecord) error {
	m := models.TopicProgress{
		UserID:             p.UserID,
		TopicID:            p.TopicID,
		ProficiencyLevel:   p.ProficiencyLevel,
		QuestionsAttempted: p.QuestionsAttempted,
		QuestionsCorrect:   p.QuestionsCorrect,
	}
	if p.LastActivity != nil {
		m.LastActivity = util.TimeToNullTime(*p.LastActivity)
	}
	return w.exec(ctx, "topic progress",
		`INSERT INTO user_topic_progress (user_id, topic_id, proficiency_level, questions_attempted, questions_correct, last_activity)
		VALUES (:user_id, :topic_id, :proficiency_level, :questions_attempted, :questions_correct, :last_activity)`,
		m)
}

func (w *SQLXSeedWriter) InsertFlashcard(ctx context.Context, f domain.FlashcardRecord) error {
	return w.exec(ctx, "flashcard",
		`INSERT INTO flashcards (id, user_id, topic_id, source_question_id, mastery_status, ease_factor, created_at, updated_at)
		VALUES (:id, :user_id, :topic_id, :source_question_id, :mastery_status, :ease_factor, :created_at, :updated_at)`,
		models.Flashcard{
			ID:               f.ID,
			UserID:           f.UserID,
			TopicID:          util.PtrToNullString(f.TopicID),
			SourceQuestionID: util.PtrToNullString(f.SourceQuestionID),
			MasteryStatus:    util.StringToNullString(f.MasteryStatus),
			EaseFactor:       f.EaseFactor,
			CreatedAt:        f.CreatedAt,
			UpdatedAt:        f.UpdatedAt,
		})
}

func (w *SQLXSeedWriter) InsertExam(ctx context.Context, e domain.ExamRecord) error {
	return w.exec(ctx, "exam",
		`INSERT INTO exams (id, user_id, title, created_at) VALUES (:id, :user_id, :title, :created_at)`,
		models.Exam{ID: e.ExamID, UserID: e.UserID, Title: e.Title, CreatedAt: e.CreatedAt})
}

func (w *SQLXSeedWriter) InsertExamSession(ctx context.Context, s domain.ExamSessionRecord) error {
	return w.exec(ctx, "exam session",
		`INSERT INTO exam_sessions (id, exam_id, user_id, created_at) VALUES (:id, :exam_id, :user_id, :created_at)`,
		models.ExamSession{ID: s.SessionID, ExamID: s.ExamID, UserID: s.UserID, CreatedAt: s.CreatedAt})
}
