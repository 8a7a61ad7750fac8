package usecase

import (
	"context"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/router"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/fuzzy"
)

// Interpret runs one transcript through normalize, classify and the
// intent-specific extraction.
func (uc *implUseCase) Interpret(ctx context.Context, input voice.InterpretInput) voice.Outcome {
	start := time.Now()

	now := input.Now
	if now.IsZero() {
		now = uc.clock()
	}

	normalized := fuzzy.Normalize(input.Transcript)
	cls := uc.router.Classify(ctx, normalized)

	out := voice.Outcome{
		Intent:     cls.Intent,
		Status:     voice.StatusOK,
		Transcript: input.Transcript,
		Normalized: normalized,
		Score:      cls.Score,
	}

	handler, ok := uc.handlers[cls.Intent]
	if !ok {
		handler = uc.unknown
	}
	out = handler(ctx, request{cls: cls, now: now, tasks: input.Tasks}, out)

	uc.metrics.ObserveOutcome(string(out.Intent), string(out.Status), time.Since(start))
	uc.l.Infof(ctx, "voice.usecase.Interpret: %q -> %s/%s (score %.2f)", normalized, out.Intent, out.Status, out.Score)

	return out
}

func (uc *implUseCase) addTask(ctx context.Context, req request, out voice.Outcome) voice.Outcome {
	text := req.cls.Remainder

	var due *datemath.ParsedDate
	if parsed, ok := uc.parser.Extract(text, req.now); ok {
		due = &parsed
		text = parsed.Strip(text)
	}

	label := trimStopWords(text)
	if label == "" {
		uc.l.Debugf(ctx, "voice.usecase.addTask: nothing left to add in %q", out.Normalized)
		out.Intent = router.IntentUnknown
		out.Status = voice.StatusEmptyAddPayload
		out.Unknown = &voice.UnknownPayload{OriginalText: out.Transcript}
		return out
	}

	out.Add = &voice.AddPayload{Label: label, Due: due}
	return out
}

func (uc *implUseCase) completeTask(ctx context.Context, req request, out voice.Outcome) voice.Outcome {
	return uc.resolveTarget(ctx, req, out, pending(req.tasks))
}

func (uc *implUseCase) deleteTask(ctx context.Context, req request, out voice.Outcome) voice.Outcome {
	return uc.resolveTarget(ctx, req, out, req.tasks)
}

func (uc *implUseCase) resolveTarget(ctx context.Context, req request, out voice.Outcome, candidates []model.TaskRef) voice.Outcome {
	target := &voice.TargetPayload{Query: req.cls.Remainder}

	if match, ok := uc.matcher.Resolve(ctx, req.cls.Remainder, candidates); ok {
		task := match.Task
		target.Task = &task
		target.Score = match.MatchScore
	} else {
		out.Status = voice.StatusNoTaskMatched
	}

	out.Target = target
	return out
}

func (uc *implUseCase) markAllComplete(_ context.Context, req request, out voice.Outcome) voice.Outcome {
	ids := make([]string, 0, len(req.tasks))
	for _, t := range pending(req.tasks) {
		ids = append(ids, t.ID)
	}
	out.Bulk = &voice.BulkPayload{TaskIDs: ids, Count: len(ids)}
	return out
}

func (uc *implUseCase) unknown(_ context.Context, req request, out voice.Outcome) voice.Outcome {
	out.Intent = router.IntentUnknown
	out.Status = voice.StatusNoIntentMatched
	out.Unknown = &voice.UnknownPayload{
		OriginalText: out.Transcript,
		Suggestion:   req.cls.Suggestion,
	}
	return out
}

func query(filter voice.Filter, countOnly bool) intentHandler {
	return func(_ context.Context, req request, out voice.Outcome) voice.Outcome {
		out.Query = &voice.QueryPayload{Filter: filter, AsOf: req.now, CountOnly: countOnly}
		return out
	}
}
