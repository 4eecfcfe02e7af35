package analytics

import (
	"testing"
	"time"

	"learnboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topic(id, name string, parent string) domain.TopicRecord {
	t := domain.TopicRecord{TopicID: id, Name: name}
	if parent != "" {
		t.ParentTopicID = strPtr(parent)
	}
	return t
}

func progressRow(topicID, name string, proficiency float64, attempted, correct int, last *time.Time) domain.TopicProgressRecord {
	return domain.TopicProgressRecord{
		UserID:             "user-1",
		TopicID:            topicID,
		TopicName:          name,
		ProficiencyLevel:   proficiency,
		QuestionsAttempted: attempted,
		QuestionsCorrect:   correct,
		LastActivity:       last,
	}
}

func TestRollupTopics_SumsParentAndSubtopics(t *testing.T) {
	topics := []domain.TopicRecord{
		topic("p1", "Mathematics", ""),
		topic("s1", "Algebra", "p1"),
		topic("s2", "Geometry", "p1"),
	}
	progress := []domain.TopicProgressRecord{
		progressRow("p1", "Mathematics", 0.8, 10, 8, timePtr(daysAgo(2))),
		progressRow("s1", "Algebra", 0.4, 5, 2, timePtr(daysAgo(1))),
	}

	rollups := RollupTopics(topics, progress)

	require.Len(t, rollups, 1)
	r := rollups[0]
	assert.Equal(t, "p1", r.TopicID)
	assert.Equal(t, 15, r.QuestionsAttempted)
	assert.Equal(t, 10, r.QuestionsCorrect)
	assert.Equal(t, 67, r.Accuracy)
	assert.Equal(t, 60, r.ProgressPercentage)
	assert.Equal(t, 2, r.SubtopicCount)
	assert.Equal(t, 1, r.SubtopicsWithProgress)
	require.NotNil(t, r.LastActivity)
	assert.True(t, r.LastActivity.Equal(daysAgo(1)))
}

func TestRollupTopics_ZeroAttemptParentExcluded(t *testing.T) {
	topics := []domain.TopicRecord{
		topic("p1", "Mathematics", ""),
		topic("s1", "Algebra", "p1"),
		topic("p2", "History", ""),
	}
	progress := []domain.TopicProgressRecord{
		progressRow("s1", "Algebra", 0, 0, 0, nil),
	}

	assert.Empty(t, RollupTopics(topics, progress))
}

func TestRollupTopics_OrderedByLastActivity(t *testing.T) {
	topics := []domain.TopicRecord{
		topic("p1", "Art", ""),
		topic("p2", "Biology", ""),
		topic("p3", "Chemistry", ""),
	}
	progress := []domain.TopicProgressRecord{
		progressRow("p1", "Art", 0.5, 2, 1, nil),
		progressRow("p2", "Biology", 0.5, 2, 1, timePtr(daysAgo(5))),
		progressRow("p3", "Chemistry", 0.5, 2, 1, timePtr(daysAgo(1))),
	}

	rollups := RollupTopics(topics, progress)

	require.Len(t, rollups, 3)
	assert.Equal(t, []string{"p3", "p2", "p1"}, []string{rollups[0].TopicID, rollups[1].TopicID, rollups[2].TopicID})
}

func TestAllTopicProgress_FamiliesInParentNameOrder(t *testing.T) {
	topics := []domain.TopicRecord{
		topic("p2", "Science", ""),
		topic("s21", "Physics", "p2"),
		topic("s22", "Biology", "p2"),
		topic("p1", "History", ""),
		topic("s11", "Rome", "p1"),
		topic("p3", "Music", ""),
	}
	progress := []domain.TopicProgressRecord{
		progressRow("s21", "Physics", 0.75, 4, 3, timePtr(daysAgo(1))),
		progressRow("p1", "History", 0.5, 2, 1, nil),
	}

	items := AllTopicProgress(topics, progress)

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.TopicID
	}
	assert.Equal(t, []string{"p1", "s11", "p2", "s22", "s21"}, ids)

	physics := items[4]
	assert.True(t, physics.HasProgress)
	assert.Equal(t, 75, physics.ProgressPercentage)
	require.NotNil(t, physics.ParentName)
	assert.Equal(t, "Science", *physics.ParentName)
	assert.False(t, physics.IsParent)

	biology := items[3]
	assert.False(t, biology.HasProgress)
	assert.Equal(t, 0, biology.QuestionsAttempted)

	assert.True(t, items[0].IsParent)
	assert.Nil(t, items[0].ParentName)
}

func TestAllTopicProgress_OrphanSubtopicWithProgress(t *testing.T) {
	topics := []domain.TopicRecord{
		topic("s1", "Orphan", "missing"),
		topic("s2", "Silent orphan", "missing"),
	}
	progress := []domain.TopicProgressRecord{
		progressRow("s1", "Orphan", 0.2, 5, 1, nil),
	}

	items := AllTopicProgress(topics, progress)

	require.Len(t, items, 1)
	assert.Equal(t, "s1", items[0].TopicID)
	assert.Nil(t, items[0].ParentName)
}

func TestAllTopicProgress_TopicBelowSubtopicListedOnItsOwn(t *testing.T) {
	topics := []domain.TopicRecord{
		topic("p1", "Mathematics", ""),
		topic("s1", "Algebra", "p1"),
		topic("d1", "Quadratics", "s1"),
		topic("d2", "Untouched", "s1"),
	}
	progress := []domain.TopicProgressRecord{
		progressRow("s1", "Algebra", 0.5, 2, 1, nil),
		progressRow("d1", "Quadratics", 0.9, 10, 9, nil),
	}

	items := AllTopicProgress(topics, progress)

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.TopicID
	}
	assert.Equal(t, []string{"p1", "s1", "d1"}, ids)

	deep := items[2]
	assert.True(t, deep.HasProgress)
	assert.Equal(t, 90, deep.ProgressPercentage)
	require.NotNil(t, deep.ParentName)
	assert.Equal(t, "Algebra", *deep.ParentName)
}
