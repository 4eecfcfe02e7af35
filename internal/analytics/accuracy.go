package analytics

import (
	"sort"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/util"
)

// BuildAccuracyBreakdown pools every answer into an overall accuracy and lists the
// per-topic accuracy of each topic with attempts, busiest topics first.
func BuildAccuracyBreakdown(answers []domain.AnswerRecord, progress []domain.TopicProgressRecord) dto.AccuracyBreakdown {
	var overall dto.AccuracyOverall
	for _, a := range answers {
		overall.Total++
		if a.IsCorrect {
			overall.Correct++
		}
	}
	overall.Incorrect = overall.Total - overall.Correct
	overall.Accuracy = util.RoundToInt(util.Percentage(overall.Correct, overall.Total))

	byTopic := make([]dto.TopicAccuracy, 0, len(progress))
	for _, p := range progress {
		if p.QuestionsAttempted <= 0 {
			continue
		}
		byTopic = append(byTopic, dto.TopicAccuracy{
			TopicID:            p.TopicID,
			TopicName:          p.TopicName,
			QuestionsAttempted: p.QuestionsAttempted,
			QuestionsCorrect:   p.QuestionsCorrect,
			Accuracy:           util.RoundToInt(util.Percentage(p.QuestionsCorrect, p.QuestionsAttempted)),
		})
	}
	sort.SliceStable(byTopic, func(i, j int) bool {
		if byTopic[i].QuestionsAttempted != byTopic[j].QuestionsAttempted {
			return byTopic[i].QuestionsAttempted > byTopic[j].QuestionsAttempted
		}
		if byTopic[i].TopicName != byTopic[j].TopicName {
			return byTopic[i].TopicName < byTopic[j].TopicName
		}
		return byTopic[i].TopicID < byTopic[j].TopicID
	})

	return dto.AccuracyBreakdown{Overall: overall, ByTopic: byTopic}
}
