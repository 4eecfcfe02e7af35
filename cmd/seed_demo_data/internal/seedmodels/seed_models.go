package seedmodels

// Offsets are whole days before the moment the seeder runs, so the demo learner
// always has a current streak and recent activity.

// SeedQuestion defines a question of the question bank.
type SeedQuestion struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// SeedTopic defines a parent topic or, inside Subtopics, a subtopic.
type SeedTopic struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Subtopics []SeedTopic    `json:"subtopics,omitempty"`
	Questions []SeedQuestion `json:"questions,omitempty"`
}

// SeedAnswer defines one answer given inside a quiz.
type SeedAnswer struct {
	QuestionID       string `json:"question_id"`
	Correct          bool   `json:"correct"`
	DaysAgo          int    `json:"days_ago"`
	TimeTakenSeconds int    `json:"time_taken_seconds,omitempty"`
}

// SeedCompletion marks a quiz as finished. The score is derived from the answers.
type SeedCompletion struct {
	DaysAgo          int `json:"days_ago"`
	TimeSpentSeconds int `json:"time_spent_seconds"`
}

// SeedQuiz defines a quiz with its questions and the learner's answers.
type SeedQuiz struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	TopicID     string          `json:"topic_id,omitempty"`
	DaysAgo     int             `json:"days_ago"`
	QuestionIDs []string        `json:"question_ids"`
	Answers     []SeedAnswer    `json:"answers"`
	Completion  *SeedCompletion `json:"completion,omitempty"`
}

// SeedProgress defines a user_topic_progress row.
type SeedProgress struct {
	TopicID            string  `json:"topic_id"`
	ProficiencyLevel   float64 `json:"proficiency_level"`
	QuestionsAttempted int     `json:"questions_attempted"`
	QuestionsCorrect   int     `json:"questions_correct"`
	LastActivityDays   *int    `json:"last_activity_days_ago,omitempty"`
}

// SeedFlashcard defines a flashcard and when it was last reviewed.
type SeedFlashcard struct {
	ID               string  `json:"id"`
	TopicID          string  `json:"topic_id,omitempty"`
	SourceQuestionID string  `json:"source_question_id,omitempty"`
	MasteryStatus    string  `json:"mastery_status"`
	EaseFactor       float64 `json:"ease_factor"`
	CreatedDaysAgo   int     `json:"created_days_ago"`
	UpdatedDaysAgo   int     `json:"updated_days_ago"`
}

// SeedExam defines an exam and the days its sessions took place.
type SeedExam struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DaysAgo     int    `json:"days_ago"`
	SessionDays []int  `json:"session_days_ago,omitempty"`
}

// SeedLearner is the root of the JSON seed file.
type SeedLearner struct {
	UserID     string          `json:"user_id"`
	Topics     []SeedTopic     `json:"topics"`
	Quizzes    []SeedQuiz      `json:"quizzes"`
	Progress   []SeedProgress  `json:"progress"`
	Flashcards []SeedFlashcard `json:"flashcards"`
	Exams      []SeedExam      `json:"exams"`
}
