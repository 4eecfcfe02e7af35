package main

import (
	"context"
	"fmt"
	"time"

	"learnboard/cmd/seed_demo_data/internal/seedmodels"
	"learnboard/internal/domain"
	"learnboard/internal/util"
)

// seedPlan holds the rows of one learner in insertion order.
type seedPlan struct {
	Topics       []domain.TopicRecord
	Questions    []plannedQuestion
	Quizzes      []domain.QuizRecord
	Links        []domain.QuizQuestionLink
	Answers      []domain.AnswerRecord
	Completions  []domain.QuizCompletionRecord
	Progress     []domain.TopicProgressRecord
	Flashcards   []domain.FlashcardRecord
	Exams        []domain.ExamRecord
	ExamSessions []domain.ExamSessionRecord
}

type plannedQuestion struct {
	TopicID  string
	Question domain.QuestionRecord
}

// seedWriter is implemented by repository.SQLXSeedWriter.
type seedWriter interface {
	InsertTopic(ctx context.Context, t domain.TopicRecord) error
	InsertQuestion(ctx context.Context, topicID string, q domain.QuestionRecord) error
	InsertQuiz(ctx context.Context, q domain.QuizRecord) error
	LinkQuestion(ctx context.Context, l domain.QuizQuestionLink) error
	InsertAnswer(ctx context.Context, a domain.AnswerRecord) error
	InsertCompletion(ctx context.Context, c domain.QuizCompletionRecord) error
	InsertTopicProgress(ctx context.Context, p domain.TopicProgressRecord) error
	InsertFlashcard(ctx context.Context, f domain.FlashcardRecord) error
	InsertExam(ctx context.Context, e domain.ExamRecord) error
	InsertExamSession(ctx context.Context, s domain.ExamSessionRecord) error
}

// buildPlan resolves the day offsets of data against now and validates references.
func buildPlan(data seedmodels.SeedLearner, now time.Time) (*seedPlan, error) {
	if data.UserID == "" {
		return nil, fmt.Errorf("seed file has no user_id")
	}
	ago := func(days int) time.Time { return now.AddDate(0, 0, -days) }

	plan := &seedPlan{}
	questions := make(map[string]bool)
	topics := make(map[string]bool)
	quizzes := make(map[string]bool)

	var addTopic func(t seedmodels.SeedTopic, parent *string) error
	addTopic = func(t seedmodels.SeedTopic, parent *string) error {
		if topics[t.ID] {
			return fmt.Errorf("duplicate topic %q", t.ID)
		}
		topics[t.ID] = true
		plan.Topics = append(plan.Topics, domain.TopicRecord{TopicID: t.ID, Name: t.Name, ParentTopicID: parent})
		for _, q := range t.Questions {
			rec := domain.QuestionRecord{QuestionID: q.ID, Text: q.Text, CorrectAnswer: q.CorrectAnswer}
			if q.Explanation != "" {
				explanation := q.Explanation
				rec.Explanation = &explanation
			}
			if questions[q.ID] {
				return fmt.Errorf("duplicate question %q", q.ID)
			}
			plan.Questions = append(plan.Questions, plannedQuestion{TopicID: t.ID, Question: rec})
			questions[q.ID] = true
		}
		for _, sub := range t.Subtopics {
			if parent != nil {
				return fmt.Errorf("topic %q is nested deeper than one level", sub.ID)
			}
			id := t.ID
			if err := addTopic(sub, &id); err != nil {
				return err
			}
		}
		return nil
	}
	for _, t := range data.Topics {
		if err := addTopic(t, nil); err != nil {
			return nil, err
		}
	}

	optional := func(id string) *string {
		if id == "" {
			return nil
		}
		return &id
	}

	for _, q := range data.Quizzes {
		if q.TopicID != "" && !topics[q.TopicID] {
			return nil, fmt.Errorf("quiz %q refers to unknown topic %q", q.ID, q.TopicID)
		}
		quizID := q.ID
		topicID := optional(q.TopicID)
		plan.Quizzes = append(plan.Quizzes, domain.QuizRecord{
			QuizID:    q.ID,
			UserID:    data.UserID,
			Title:     q.Title,
			TopicID:   topicID,
			CreatedAt: ago(q.DaysAgo),
		})
		if quizzes[q.ID] {
			return nil, fmt.Errorf("duplicate quiz %q", q.ID)
		}
		quizzes[q.ID] = true
		inQuiz := make(map[string]bool, len(q.QuestionIDs))
		for _, qid := range q.QuestionIDs {
			if !questions[qid] {
				return nil, fmt.Errorf("quiz %q refers to unknown question %q", q.ID, qid)
			}
			inQuiz[qid] = true
			plan.Links = append(plan.Links, domain.QuizQuestionLink{QuizID: q.ID, QuestionID: qid})
		}

		// The most recent answer per question decides the completion score.
		latest := make(map[string]seedmodels.SeedAnswer, len(q.QuestionIDs))
		for _, a := range q.Answers {
			if !inQuiz[a.QuestionID] {
				return nil, fmt.Errorf("quiz %q has an answer for question %q outside the quiz", q.ID, a.QuestionID)
			}
			if prev, ok := latest[a.QuestionID]; !ok || a.DaysAgo <= prev.DaysAgo {
				latest[a.QuestionID] = a
			}
			rec := domain.AnswerRecord{
				ID:         util.NewULID(),
				UserID:     data.UserID,
				QuestionID: a.QuestionID,
				QuizID:     &quizID,
				TopicID:    topicID,
				IsCorrect:  a.Correct,
				CreatedAt:  ago(a.DaysAgo),
			}
			if a.TimeTakenSeconds > 0 {
				taken := a.TimeTakenSeconds
				rec.TimeTakenSeconds = &taken
			}
			plan.Answers = append(plan.Answers, rec)
		}
		correct := 0
		for _, a := range latest {
			if a.Correct {
				correct++
			}
		}

		if q.Completion != nil {
			total := len(q.QuestionIDs)
			plan.Completions = append(plan.Completions, domain.QuizCompletionRecord{
				QuizID:           q.ID,
				UserID:           data.UserID,
				CompletedAt:      ago(q.Completion.DaysAgo),
				ScorePercentage:  util.RoundTo(util.Percentage(correct, total), 2),
				TotalQuestions:   total,
				CorrectAnswers:   correct,
				TimeSpentSeconds: q.Completion.TimeSpentSeconds,
			})
		}
	}

	for _, p := range data.Progress {
		if !topics[p.TopicID] {
			return nil, fmt.Errorf("progress refers to unknown topic %q", p.TopicID)
		}
		rec := domain.TopicProgressRecord{
			UserID:             data.UserID,
			TopicID:            p.TopicID,
			ProficiencyLevel:   p.ProficiencyLevel,
			QuestionsAttempted: p.QuestionsAttempted,
			QuestionsCorrect:   p.QuestionsCorrect,
		}
		if p.LastActivityDays != nil {
			last := ago(*p.LastActivityDays)
			rec.LastActivity = &last
		}
		plan.Progress = append(plan.Progress, rec)
	}

	for _, f := range data.Flashcards {
		if f.TopicID != "" && !topics[f.TopicID] {
			return nil, fmt.Errorf("flashcard %q refers to unknown topic %q", f.ID, f.TopicID)
		}
		if f.SourceQuestionID != "" && !questions[f.SourceQuestionID] {
			return nil, fmt.Errorf("flashcard %q refers to unknown question %q", f.ID, f.SourceQuestionID)
		}
		status := f.MasteryStatus
		if status == "" {
			status = domain.MasteryNew
		}
		plan.Flashcards = append(plan.Flashcards, domain.FlashcardRecord{
			ID:               f.ID,
			UserID:           data.UserID,
			TopicID:          optional(f.TopicID),
			SourceQuestionID: optional(f.SourceQuestionID),
			MasteryStatus:    status,
			EaseFactor:       f.EaseFactor,
			CreatedAt:        ago(f.CreatedDaysAgo),
			UpdatedAt:        ago(f.UpdatedDaysAgo),
		})
	}

	for _, e := range data.Exams {
		plan.Exams = append(plan.Exams, domain.ExamRecord{ExamID: e.ID, UserID: data.UserID, Title: e.Title, CreatedAt: ago(e.DaysAgo)})
		for _, d := range e.SessionDays {
			plan.ExamSessions = append(plan.ExamSessions, domain.ExamSessionRecord{
				SessionID: util.NewULID(),
				ExamID:    e.ID,
				UserID:    data.UserID,
				CreatedAt: ago(d),
			})
		}
	}

	return plan, nil
}

// apply writes the plan through w, parents before children.
func (p *seedPlan) apply(ctx context.Context, w seedWriter) error {
	for _, t := range p.Topics {
		if err := w.InsertTopic(ctx, t); err != nil {
			return err
		}
	}
	for _, q := range p.Questions {
		if err := w.InsertQuestion(ctx, q.TopicID, q.Question); err != nil {
			return err
		}
	}
	for _, q := range p.Quizzes {
		if err := w.InsertQuiz(ctx, q); err != nil {
			return err
		}
	}
	for _, l := range p.Links {
		if err := w.LinkQuestion(ctx, l); err != nil {
			return err
		}
	}
	for _, a := range p.Answers {
		if err := w.InsertAnswer(ctx, a); err != nil {
			return err
		}
	}
	for _, c := range p.Completions {
		if err := w.InsertCompletion(ctx, c); err != nil {
			return err
		}
	}
	for _, pr := range p.Progress {
		if err := w.InsertTopicProgress(ctx, pr); err != nil {
			return err
		}
	}
	for _, f := range p.Flashcards {
		if err := w.InsertFlashcard(ctx, f); err != nil {
			return err
		}
	}
	for _, e := range p.Exams {
		if err := w.InsertExam(ctx, e); err != nil {
			return err
		}
	}
	for _, s := range p.ExamSessions {
		if err := w.InsertExamSession(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
