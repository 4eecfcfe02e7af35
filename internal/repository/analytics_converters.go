package repository

import (
	"learnboard/internal/domain"
	"learnboard/internal/repository/models"
	"learnboard/internal/util"
)

func toDomainAnswer(m *models.Answer) domain.AnswerRecord {
	return domain.AnswerRecord{
		ID:               m.ID,
		UserID:           m.UserID,
		QuestionID:       m.QuestionID,
		QuizID:           util.NullStringToPtr(m.QuizID),
		SessionID:        util.NullStringToPtr(m.SessionID),
		TopicID:          util.NullStringToPtr(m.TopicID),
		IsCorrect:        m.IsCorrect,
		CreatedAt:        m.CreatedAt,
		TimeTakenSeconds: util.NullInt64ToIntPtr(m.TimeTakenSeconds),
	}
}

func toDomainQuiz(m *models.Quiz) domain.QuizRecord {
	return domain.QuizRecord{
		QuizID:    m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		TopicID:   util.NullStringToPtr(m.TopicID),
		TopicName: util.NullStringToPtr(m.TopicName),
		CreatedAt: m.CreatedAt,
	}
}

func toDomainQuizCompletion(m *models.QuizCompletion) domain.QuizCompletionRecord {
	return domain.QuizCompletionRecord{
		QuizID:           m.QuizID,
		UserID:           m.UserID,
		CompletedAt:      m.CompletedAt,
		ScorePercentage:  m.ScorePercentage,
		TotalQuestions:   m.TotalQuestions,
		CorrectAnswers:   m.CorrectAnswers,
		TimeSpentSeconds: m.TimeSpentSeconds,
	}
}

// toDomainTopic treats an empty parent id like NULL.
func toDomainTopic(m *models.Topic) domain.TopicRecord {
	t := domain.TopicRecord{TopicID: m.ID, Name: m.Name}
	if m.ParentTopicID.Valid && m.ParentTopicID.String != "" {
		t.ParentTopicID = util.NullStringToPtr(m.ParentTopicID)
	}
	return t
}

func toDomainTopicProgress(m *models.TopicProgress) domain.TopicProgressRecord {
	return domain.TopicProgressRecord{
		UserID:             m.UserID,
		TopicID:            m.TopicID,
		TopicName:          m.TopicName,
		ProficiencyLevel:   m.ProficiencyLevel,
		QuestionsAttempted: m.QuestionsAttempted,
		QuestionsCorrect:   m.QuestionsCorrect,
		LastActivity:       util.NullTimeToPtr(m.LastActivity),
	}
}

func toDomainFlashcard(m *models.Flashcard) domain.FlashcardRecord {
	status := m.MasteryStatus.String
	if status == "" {
		status = domain.MasteryNew
	}
	return domain.FlashcardRecord{
		ID:               m.ID,
		UserID:           m.UserID,
		TopicID:          util.NullStringToPtr(m.TopicID),
		SourceQuestionID: util.NullStringToPtr(m.SourceQuestionID),
		MasteryStatus:    status,
		EaseFactor:       m.EaseFactor,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toDomainQuestion(m *models.Question) domain.QuestionRecord {
	return domain.QuestionRecord{
		QuestionID:    m.ID,
		Text:          m.QuestionText,
		CorrectAnswer: m.CorrectAnswer,
		Explanation:   util.NullStringToPtr(m.Explanation),
	}
}
