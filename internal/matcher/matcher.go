package matcher

import (
	"context"

	"voice-task-management/internal/model"
	"voice-task-management/pkg/fuzzy"
	pkgLog "voice-task-management/pkg/log"
)

// Resolver maps free text to one of a snapshot of tasks.
type Resolver interface {
	Resolve(ctx context.Context, query string, candidates []model.TaskRef) (TaskMatch, bool)
}

// TaskMatcher resolves spoken task references by edit-distance similarity.
type TaskMatcher struct {
	l pkgLog.Logger
}

var _ Resolver = (*TaskMatcher)(nil)

func NewTaskMatcher(l pkgLog.Logger) *TaskMatcher {
	return &TaskMatcher{l: l}
}

// Resolve finds the candidate whose label best matches query, using
// ResolveThreshold. Candidates are compared in the given order and the first
// of equally scored tasks wins, so callers pass them in creation order.
func (m *TaskMatcher) Resolve(ctx context.Context, query string, candidates []model.TaskRef) (TaskMatch, bool) {
	return m.ResolveWithThreshold(ctx, query, candidates, ResolveThreshold)
}

// ResolveWithThreshold is Resolve with an explicit minimum score.
func (m *TaskMatcher) ResolveWithThreshold(ctx context.Context, query string, candidates []model.TaskRef, threshold float64) (TaskMatch, bool) {
	normalized := fuzzy.Normalize(query)

	entries := make([]fuzzy.Candidate[int], 0, len(candidates))
	for i, c := range candidates {
		entries = append(entries, fuzzy.Candidate[int]{Key: i, Text: fuzzy.Normalize(c.Label)})
	}

	best, ok := fuzzy.BestOf(entries, normalized, threshold)
	if !ok {
		m.l.Debugf(ctx, "matcher.Resolve: no task matches %q among %d candidates", normalized, len(candidates))
		return TaskMatch{Query: normalized}, false
	}

	match := TaskMatch{
		Task:       candidates[best.Key],
		Query:      normalized,
		MatchScore: best.Score,
	}
	m.l.Debugf(ctx, "matcher.Resolve: %q -> task %s %q (score %.2f)", normalized, match.Task.ID, match.Task.Label, match.MatchScore)
	return match, true
}
