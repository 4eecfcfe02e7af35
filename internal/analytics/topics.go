package analytics

import (
	"sort"
	"time"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/util"
)

// topicTree indexes a flat topic list as parents and their direct children.
// Deeper nesting is not aggregated.
type topicTree struct {
	byID     map[string]domain.TopicRecord
	parents  []domain.TopicRecord
	children map[string][]domain.TopicRecord
}

func byNameThenID(topics []domain.TopicRecord) {
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Name != topics[j].Name {
			return topics[i].Name < topics[j].Name
		}
		return topics[i].TopicID < topics[j].TopicID
	})
}

func newTopicTree(topics []domain.TopicRecord) topicTree {
	tree := topicTree{
		byID:     make(map[string]domain.TopicRecord, len(topics)),
		children: make(map[string][]domain.TopicRecord),
	}
	for _, t := range topics {
		tree.byID[t.TopicID] = t
	}
	for _, t := range topics {
		if t.IsParent() {
			tree.parents = append(tree.parents, t)
			continue
		}
		tree.children[*t.ParentTopicID] = append(tree.children[*t.ParentTopicID], t)
	}
	byNameThenID(tree.parents)
	for id := range tree.children {
		byNameThenID(tree.children[id])
	}
	return tree
}

func progressIndex(progress []domain.TopicProgressRecord) map[string]domain.TopicProgressRecord {
	idx := make(map[string]domain.TopicProgressRecord, len(progress))
	for _, p := range progress {
		idx[p.TopicID] = p
	}
	return idx
}

func laterOf(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil || a.After(*b) {
		return a
	}
	return b
}

type rollupAcc struct {
	attempted, correct int
	proficiencySum     float64
	withProgress       int
	lastActivity       *time.Time
}

func (r *rollupAcc) add(p domain.TopicProgressRecord) {
	r.attempted += p.QuestionsAttempted
	r.correct += p.QuestionsCorrect
	r.proficiencySum += p.ProficiencyLevel
	r.withProgress++
	r.lastActivity = laterOf(r.lastActivity, p.LastActivity)
}

// RollupTopics aggregates every parent topic with its direct subtopics.
// A parent is emitted only when the family has at least one attempted question.
// progress_percentage is the mean proficiency of the family members that have a
// progress row. Results are ordered by last activity, most recent first, with
// topics that never saw activity last.
func RollupTopics(topics []domain.TopicRecord, progress []domain.TopicProgressRecord) []dto.TopicRollup {
	tree := newTopicTree(topics)
	idx := progressIndex(progress)

	out := make([]dto.TopicRollup, 0, len(tree.parents))
	for _, parent := range tree.parents {
		var acc rollupAcc
		if p, ok := idx[parent.TopicID]; ok {
			acc.add(p)
		}

		subs := tree.children[parent.TopicID]
		subsWithProgress := 0
		for _, sub := range subs {
			if p, ok := idx[sub.TopicID]; ok {
				acc.add(p)
				subsWithProgress++
			}
		}

		if acc.attempted <= 0 {
			continue
		}

		progressPct := 0
		if acc.withProgress > 0 {
			progressPct = util.RoundToInt(100 * acc.proficiencySum / float64(acc.withProgress))
		}
		out = append(out, dto.TopicRollup{
			TopicID:               parent.TopicID,
			Name:                  parent.Name,
			QuestionsAttempted:    acc.attempted,
			QuestionsCorrect:      acc.correct,
			Accuracy:              util.RoundToInt(util.Percentage(acc.correct, acc.attempted)),
			ProgressPercentage:    progressPct,
			SubtopicCount:         len(subs),
			SubtopicsWithProgress: subsWithProgress,
			LastActivity:          acc.lastActivity,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastActivity, out[j].LastActivity
		switch {
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		case a != nil && b != nil && !a.Equal(*b):
			return a.After(*b)
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].TopicID < out[j].TopicID
	})
	return out
}

// AllTopicProgress lists every topic, parent and child, with its own progress and
// its parent's name. A topic is listed when it has progress or any member of its
// family does. Families are ordered by parent name, parent first, children by name.
// Subtopics whose parent is unknown, and topics nested below a subtopic, are
// listed on their own when they have progress.
func AllTopicProgress(topics []domain.TopicRecord, progress []domain.TopicProgressRecord) []dto.TopicProgressItem {
	tree := newTopicTree(topics)
	idx := progressIndex(progress)

	var orphans []domain.TopicRecord
	for parentID, subs := range tree.children {
		if parent, ok := tree.byID[parentID]; !ok || !parent.IsParent() {
			orphans = append(orphans, subs...)
		}
	}
	byNameThenID(orphans)

	item := func(t domain.TopicRecord, parentName *string) dto.TopicProgressItem {
		it := dto.TopicProgressItem{
			TopicID:       t.TopicID,
			Name:          t.Name,
			ParentTopicID: t.ParentTopicID,
			ParentName:    parentName,
			IsParent:      t.IsParent(),
		}
		if p, ok := idx[t.TopicID]; ok {
			it.HasProgress = true
			it.ProgressPercentage = util.RoundToInt(p.ProficiencyLevel * 100)
			it.QuestionsAttempted = p.QuestionsAttempted
			it.QuestionsCorrect = p.QuestionsCorrect
			it.LastActivity = p.LastActivity
		}
		return it
	}

	type family struct {
		sortName string
		sortID   string
		items    []dto.TopicProgressItem
	}
	var families []family

	for _, parent := range tree.parents {
		members := append([]domain.TopicRecord{parent}, tree.children[parent.TopicID]...)
		active := false
		for _, m := range members {
			if _, ok := idx[m.TopicID]; ok {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		name := parent.Name
		f := family{sortName: parent.Name, sortID: parent.TopicID}
		f.items = append(f.items, item(parent, nil))
		for _, sub := range tree.children[parent.TopicID] {
			f.items = append(f.items, item(sub, &name))
		}
		families = append(families, f)
	}
	for _, o := range orphans {
		if _, ok := idx[o.TopicID]; !ok {
			continue
		}
		var parentName *string
		if parent, ok := tree.byID[*o.ParentTopicID]; ok {
			name := parent.Name
			parentName = &name
		}
		families = append(families, family{sortName: o.Name, sortID: o.TopicID, items: []dto.TopicProgressItem{item(o, parentName)}})
	}

	sort.SliceStable(families, func(i, j int) bool {
		if families[i].sortName != families[j].sortName {
			return families[i].sortName < families[j].sortName
		}
		return families[i].sortID < families[j].sortID
	})

	out := make([]dto.TopicProgressItem, 0, len(topics))
	for _, f := range families {
		out = append(out, f.items...)
	}
	return out
}
