package dto

import "time"

// QuizScore is the deduplicated result of one quiz.
type QuizScore struct {
	QuizID     string  `json:"quiz_id"`
	Answered   int     `json:"answered"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}

// ScoreSummary holds the answer-derived score figures of the dashboard.
// AverageScore is the mean of per-quiz percentages; QuestionsAnswered and
// CorrectAnswers are display totals only.
type ScoreSummary struct {
	AverageScore      int         `json:"average_score"`
	QuestionsAnswered int         `json:"questions_answered"`
	CorrectAnswers    int         `json:"correct_answers"`
	QuizzesTaken      int         `json:"quizzes_taken"`
	PerQuiz           []QuizScore `json:"per_quiz"`
}

// DashboardStats is the response of GET /dashboard/stats.
// @Description Dashboard summary figures
type DashboardStats struct {
	TotalQuizzes      int `json:"total_quizzes"`
	CompletedQuizzes  int `json:"completed_quizzes"`
	QuestionsAnswered int `json:"questions_answered"`
	CorrectAnswers    int `json:"correct_answers"`
	AverageScore      int `json:"average_score"`
	StudyStreak       int `json:"study_streak"`
	TopicsStudied     int `json:"topics_studied"`
}

// Activity types of the recent activity feed.
const (
	ActivityQuizCompleted = "quiz_completed"
	ActivityQuizCreated   = "quiz_created"
)

// Activity is one entry of the recent activity feed.
type Activity struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	QuizID            string    `json:"quiz_id"`
	Title             string    `json:"title"`
	Score             *int      `json:"score,omitempty"`
	CompletedAt       time.Time `json:"completed_at"`
	Topic             *string   `json:"topic"`
	TotalQuestions    int       `json:"total_questions"`
	AnsweredQuestions *int      `json:"answered_questions,omitempty"`
}

// TopicRollup is a parent topic aggregated with its direct subtopics.
type TopicRollup struct {
	TopicID               string     `json:"topic_id"`
	Name                  string     `json:"name"`
	QuestionsAttempted    int        `json:"questions_attempted"`
	QuestionsCorrect      int        `json:"questions_correct"`
	Accuracy              int        `json:"accuracy"`
	ProgressPercentage    int        `json:"progress_percentage"`
	SubtopicCount         int        `json:"subtopic_count"`
	SubtopicsWithProgress int        `json:"subtopics_with_progress"`
	LastActivity          *time.Time `json:"last_activity"`
}

// TopicProgressItem is one topic of the non-rolled-up progress view.
type TopicProgressItem struct {
	TopicID            string     `json:"topic_id"`
	Name               string     `json:"name"`
	ParentTopicID      *string    `json:"parent_topic_id"`
	ParentName         *string    `json:"parent_name"`
	IsParent           bool       `json:"is_parent"`
	HasProgress        bool       `json:"has_progress"`
	ProgressPercentage int        `json:"progress_percentage"`
	QuestionsAttempted int        `json:"questions_attempted"`
	QuestionsCorrect   int        `json:"questions_correct"`
	LastActivity       *time.Time `json:"last_activity"`
}

// FullDashboard is the response of GET /dashboard/all.
type FullDashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentActivity []Activity     `json:"recent_activity"`
	TopicProgress  []TopicRollup  `json:"topic_progress"`
}
