package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"learnboard/cmd/seed_demo_data/internal/seedmodels"
	"learnboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	calls  []string
	failOn string
}

func (w *recordingWriter) record(call string) error {
	w.calls = append(w.calls, call)
	if call == w.failOn {
		return errors.New("insert failed")
	}
	return nil
}

func (w *recordingWriter) InsertTopic(ctx context.Context, t domain.TopicRecord) error {
	return w.record("topic")
}
func (w *recordingWriter) InsertQuestion(ctx context.Context, topicID string, q domain.QuestionRecord) error {
	return w.record("question")
}
func (w *recordingWriter) InsertQuiz(ctx context.Context, q domain.QuizRecord) error {
	return w.record("quiz")
}
func (w *recordingWriter) LinkQuestion(ctx context.Context, l domain.QuizQuestionLink) error {
	return w.record("link")
}
func (w *recordingWriter) InsertAnswer(ctx context.Context, a domain.AnswerRecord) error {
	return w.record("answer")
}
func (w *recordingWriter) InsertCompletion(ctx context.Context, c domain.QuizCompletionRecord) error {
	return w.record("completion")
}
func (w *recordingWriter) InsertTopicProgress(ctx context.Context, p domain.TopicProgressRecord) error {
	return w.record("progress")
}
func (w *recordingWriter) InsertFlashcard(ctx context.Context, f domain.FlashcardRecord) error {
	return w.record("flashcard")
}
func (w *recordingWriter) InsertExam(ctx context.Context, e domain.ExamRecord) error {
	return w.record("exam")
}
func (w *recordingWriter) InsertExamSession(ctx context.Context, s domain.ExamSessionRecord) error {
	return w.record("session")
}

var seedNow = time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

func sampleLearner() seedmodels.SeedLearner {
	lastDay := 1
	return seedmodels.SeedLearner{
		UserID: "6f1c2a58-7d0e-4d35-9b0a-0f6a3f1d2c11",
		Topics: []seedmodels.SeedTopic{{
			ID:   "math",
			Name: "Mathematics",
			Subtopics: []seedmodels.SeedTopic{{
				ID:   "algebra",
				Name: "Algebra",
				Questions: []seedmodels.SeedQuestion{
					{ID: "q1", Text: "x+1=2", CorrectAnswer: "1", Explanation: "Subtract one."},
					{ID: "q2", Text: "2x=6", CorrectAnswer: "3"},
				},
			}},
		}},
		Quizzes: []seedmodels.SeedQuiz{{
			ID:          "quiz-1",
			Title:       "Linear equations",
			TopicID:     "algebra",
			DaysAgo:     2,
			QuestionIDs: []string{"q1", "q2"},
			Answers: []seedmodels.SeedAnswer{
				{QuestionID: "q1", Correct: true, DaysAgo: 1, TimeTakenSeconds: 30},
				{QuestionID: "q2", Correct: false, DaysAgo: 1},
			},
			Completion: &seedmodels.SeedCompletion{DaysAgo: 1, TimeSpentSeconds: 95},
		}},
		Progress: []seedmodels.SeedProgress{
			{TopicID: "algebra", ProficiencyLevel: 0.5, QuestionsAttempted: 2, QuestionsCorrect: 1, LastActivityDays: &lastDay},
		},
		Flashcards: []seedmodels.SeedFlashcard{{ID: "f1", SourceQuestionID: "q2", EaseFactor: 2.5, CreatedDaysAgo: 3, UpdatedDaysAgo: 0}},
		Exams:      []seedmodels.SeedExam{{ID: "exam-1", Title: "Midterm", DaysAgo: 5, SessionDays: []int{4, 0}}},
	}
}

func TestBuildPlan(t *testing.T) {
	plan, err := buildPlan(sampleLearner(), seedNow)
	require.NoError(t, err)

	require.Len(t, plan.Topics, 2)
	assert.Nil(t, plan.Topics[0].ParentTopicID)
	assert.Equal(t, "math", *plan.Topics[1].ParentTopicID)

	require.Len(t, plan.Questions, 2)
	assert.Equal(t, "algebra", plan.Questions[0].TopicID)
	assert.Equal(t, "Subtract one.", *plan.Questions[0].Question.Explanation)
	assert.Nil(t, plan.Questions[1].Question.Explanation)

	require.Len(t, plan.Quizzes, 1)
	assert.Equal(t, seedNow.AddDate(0, 0, -2), plan.Quizzes[0].CreatedAt)
	assert.Len(t, plan.Links, 2)

	require.Len(t, plan.Answers, 2)
	assert.Equal(t, "quiz-1", *plan.Answers[0].QuizID)
	assert.Equal(t, 30, *plan.Answers[0].TimeTakenSeconds)
	assert.Nil(t, plan.Answers[1].TimeTakenSeconds)

	require.Len(t, plan.Completions, 1)
	assert.Equal(t, 50.0, plan.Completions[0].ScorePercentage)
	assert.Equal(t, 2, plan.Completions[0].TotalQuestions)
	assert.Equal(t, 1, plan.Completions[0].CorrectAnswers)

	assert.Equal(t, domain.MasteryNew, plan.Flashcards[0].MasteryStatus)
	assert.Nil(t, plan.Flashcards[0].TopicID)
	assert.Len(t, plan.ExamSessions, 2)
}

func TestBuildPlan_RejectsBadReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *seedmodels.SeedLearner)
	}{
		{name: "no user", mutate: func(l *seedmodels.SeedLearner) { l.UserID = "" }},
		{name: "unknown quiz topic", mutate: func(l *seedmodels.SeedLearner) { l.Quizzes[0].TopicID = "history" }},
		{name: "unknown question", mutate: func(l *seedmodels.SeedLearner) { l.Quizzes[0].QuestionIDs = []string{"q9"} }},
		{name: "unknown progress topic", mutate: func(l *seedmodels.SeedLearner) { l.Progress[0].TopicID = "history" }},
		{name: "three levels", mutate: func(l *seedmodels.SeedLearner) {
			l.Topics[0].Subtopics[0].Subtopics = []seedmodels.SeedTopic{{ID: "deep", Name: "Deep"}}
		}},
		{name: "answer outside quiz", mutate: func(l *seedmodels.SeedLearner) {
			l.Quizzes[0].Answers[0].QuestionID = "q3"
		}},
		{name: "unknown flashcard question", mutate: func(l *seedmodels.SeedLearner) { l.Flashcards[0].SourceQuestionID = "q9" }},
		{name: "duplicate question", mutate: func(l *seedmodels.SeedLearner) {
			l.Topics[0].Questions = []seedmodels.SeedQuestion{{ID: "q1", Text: "again", CorrectAnswer: "1"}}
		}},
		{name: "duplicate quiz", mutate: func(l *seedmodels.SeedLearner) { l.Quizzes = append(l.Quizzes, l.Quizzes[0]) }},
		{name: "duplicate topic", mutate: func(l *seedmodels.SeedLearner) {
			l.Topics = append(l.Topics, seedmodels.SeedTopic{ID: "math", Name: "Again"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			learner := sampleLearner()
			tt.mutate(&learner)
			_, err := buildPlan(learner, seedNow)
			assert.Error(t, err)
		})
	}
}

func TestBuildPlan_ScoreUsesLatestAnswer(t *testing.T) {
	learner := sampleLearner()
	learner.Quizzes[0].Answers = append(learner.Quizzes[0].Answers,
		seedmodels.SeedAnswer{QuestionID: "q2", Correct: true, DaysAgo: 0},
		seedmodels.SeedAnswer{QuestionID: "q1", Correct: false, DaysAgo: 2},
	)

	plan, err := buildPlan(learner, seedNow)
	require.NoError(t, err)
	assert.Len(t, plan.Answers, 4)
	require.Len(t, plan.Completions, 1)
	assert.Equal(t, 2, plan.Completions[0].CorrectAnswers)
	assert.Equal(t, 100.0, plan.Completions[0].ScorePercentage)
}

func TestSeedPlan_ApplyOrder(t *testing.T) {
	plan, err := buildPlan(sampleLearner(), seedNow)
	require.NoError(t, err)

	w := &recordingWriter{}
	require.NoError(t, plan.apply(context.Background(), w))
	assert.Equal(t, []string{
		"topic", "topic", "question", "question", "quiz", "link", "link",
		"answer", "answer", "completion", "progress", "flashcard", "exam", "session", "session",
	}, w.calls)

	w = &recordingWriter{failOn: "completion"}
	err = plan.apply(context.Background(), w)
	assert.Error(t, err)
	assert.Equal(t, "completion", w.calls[len(w.calls)-1])
}
