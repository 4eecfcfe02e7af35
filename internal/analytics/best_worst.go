package analytics

import (
	"sort"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/util"
)

const (
	// MinTopicSample is the number of attempted questions a topic needs before it is ranked.
	MinTopicSample = 5
	RankingSize    = 5
)

// RankTopics returns the strongest and weakest topics by proficiency. Topics with
// fewer than MinTopicSample attempts are left out. The worst list starts with the
// weakest topic. With fewer than 2*RankingSize eligible topics the lists overlap.
func RankTopics(progress []domain.TopicProgressRecord) dto.BestWorstTopics {
	eligible := make([]domain.TopicProgressRecord, 0, len(progress))
	for _, p := range progress {
		if p.QuestionsAttempted >= MinTopicSample {
			eligible = append(eligible, p)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.ProficiencyLevel*100 != b.ProficiencyLevel*100 {
			return a.ProficiencyLevel*100 > b.ProficiencyLevel*100
		}
		if a.QuestionsAttempted != b.QuestionsAttempted {
			return a.QuestionsAttempted > b.QuestionsAttempted
		}
		if a.TopicName != b.TopicName {
			return a.TopicName < b.TopicName
		}
		return a.TopicID < b.TopicID
	})

	n := RankingSize
	if len(eligible) < n {
		n = len(eligible)
	}

	result := dto.BestWorstTopics{
		BestTopics:  make([]dto.RankedTopic, 0, n),
		WorstTopics: make([]dto.RankedTopic, 0, n),
	}
	for _, p := range eligible[:n] {
		result.BestTopics = append(result.BestTopics, rankedTopic(p))
	}
	for i := len(eligible) - 1; i >= len(eligible)-n; i-- {
		result.WorstTopics = append(result.WorstTopics, rankedTopic(eligible[i]))
	}
	return result
}

func rankedTopic(p domain.TopicProgressRecord) dto.RankedTopic {
	return dto.RankedTopic{
		TopicID:            p.TopicID,
		TopicName:          p.TopicName,
		Proficiency:        util.RoundToInt(p.ProficiencyLevel * 100),
		QuestionsAttempted: p.QuestionsAttempted,
		QuestionsCorrect:   p.QuestionsCorrect,
	}
}
