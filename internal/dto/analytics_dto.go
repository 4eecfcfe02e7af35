package dto

import "time"

// HeatmapDay is the activity count of one calendar date (YYYY-MM-DD).
type HeatmapDay struct {
	Date          string `json:"date"`
	ActivityCount int    `json:"activity_count"`
}

// ProgressPoint is one day of the progress-over-time series.
type ProgressPoint struct {
	Date              string `json:"date"`
	QuestionsAnswered int    `json:"questions_answered"`
	CorrectAnswers    int    `json:"correct_answers"`
	Accuracy          int    `json:"accuracy"`
}

type AccuracyOverall struct {
	Total     int `json:"total"`
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Accuracy  int `json:"accuracy"`
}

type TopicAccuracy struct {
	TopicID            string `json:"topic_id"`
	TopicName          string `json:"topic_name"`
	QuestionsAttempted int    `json:"questions_attempted"`
	QuestionsCorrect   int    `json:"questions_correct"`
	Accuracy           int    `json:"accuracy"`
}

// AccuracyBreakdown is the response of GET /analytics/accuracy-breakdown.
type AccuracyBreakdown struct {
	Overall AccuracyOverall `json:"overall"`
	ByTopic []TopicAccuracy `json:"by_topic"`
}

// QuizTrendPoint is one completed quiz of the performance trend.
type QuizTrendPoint struct {
	QuizID        string    `json:"quiz_id"`
	Title         string    `json:"title"`
	CompletedAt   time.Time `json:"completed_at"`
	Score         float64   `json:"score"`
	MovingAverage float64   `json:"moving_average"`
}

type MasteryCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// FlashcardAnalytics is the response of GET /analytics/flashcard-analytics.
type FlashcardAnalytics struct {
	TotalCards        int            `json:"total_cards"`
	ByMastery         []MasteryCount `json:"by_mastery"`
	MasteryRate       int            `json:"mastery_rate"`
	AverageEaseFactor float64        `json:"average_ease_factor"`
	CreatedLast7Days  int            `json:"created_last_7_days"`
}

// RankedTopic is a topic of the best/worst ranking. Proficiency is a percentage.
type RankedTopic struct {
	TopicID            string `json:"topic_id"`
	TopicName          string `json:"topic_name"`
	Proficiency        int    `json:"proficiency"`
	QuestionsAttempted int    `json:"questions_attempted"`
	QuestionsCorrect   int    `json:"questions_correct"`
}

// BestWorstTopics lists the strongest topics first and the weakest topics first.
type BestWorstTopics struct {
	BestTopics  []RankedTopic `json:"best_topics"`
	WorstTopics []RankedTopic `json:"worst_topics"`
}

// ComprehensiveAnalytics is the response of GET /analytics/comprehensive.
type ComprehensiveAnalytics struct {
	ProgressOverTime     []ProgressPoint    `json:"progress_over_time"`
	ActivityHeatmap      []HeatmapDay       `json:"activity_heatmap"`
	AccuracyBreakdown    AccuracyBreakdown  `json:"accuracy_breakdown"`
	QuizPerformanceTrend []QuizTrendPoint   `json:"quiz_performance_trend"`
	FlashcardAnalytics   FlashcardAnalytics `json:"flashcard_analytics"`
	BestWorstTopics      BestWorstTopics    `json:"best_worst_topics"`
}
