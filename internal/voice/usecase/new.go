package usecase

import (
	"context"
	"time"

	"voice-task-management/internal/matcher"
	"voice-task-management/internal/model"
	"voice-task-management/internal/router"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

// intentHandler fills in the payload of an outcome whose intent is already known.
type intentHandler func(ctx context.Context, req request, out voice.Outcome) voice.Outcome

type request struct {
	cls   router.Classification
	now   time.Time
	tasks []model.TaskRef
}

// implUseCase is the private implementation of voice.UseCase.
type implUseCase struct {
	router   router.Router
	matcher  matcher.Resolver
	parser   *datemath.Parser
	metrics  *metrics.Metrics
	l        log.Logger
	clock    func() time.Time
	handlers map[router.Intent]intentHandler
}

var _ voice.UseCase = (*implUseCase)(nil)

// New creates a new voice UseCase implementation. metrics may be nil.
func New(r router.Router, m matcher.Resolver, p *datemath.Parser, met *metrics.Metrics, l log.Logger) *implUseCase {
	uc := &implUseCase{
		router:  r,
		matcher: m,
		parser:  p,
		metrics: met,
		l:       l,
		clock:   time.Now,
	}

	uc.handlers = map[router.Intent]intentHandler{
		router.IntentAddTask:         uc.addTask,
		router.IntentCompleteTask:    uc.completeTask,
		router.IntentDeleteTask:      uc.deleteTask,
		router.IntentShowPending:     query(voice.FilterPending, false),
		router.IntentShowOverdue:     query(voice.FilterOverdue, false),
		router.IntentShowAll:         query(voice.FilterAll, false),
		router.IntentShowCompleted:   query(voice.FilterCompleted, false),
		router.IntentCountTasks:      query(voice.FilterAll, true),
		router.IntentMarkAllComplete: uc.markAllComplete,
		router.IntentUnknown:         uc.unknown,
	}

	return uc
}
