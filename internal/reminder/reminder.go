// Package reminder periodically announces pending tasks whose due time is
// about to arrive.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

const maxRemembered = 4096

// NotifyFunc receives one reminder sentence per due task.
type NotifyFunc func(ctx context.Context, t model.Task, message string)

type Config struct {
	Window   time.Duration // remind about tasks due within this long
	Interval time.Duration // how often to check
	Notify   NotifyFunc    // nil logs the reminder
}

type Notifier struct {
	tasks    task.UseCase
	metrics  *metrics.Metrics
	l        log.Logger
	window   time.Duration
	interval time.Duration
	notify   NotifyFunc
	clock    func() time.Time

	// notified holds task IDs already reminded, so overlapping windows
	// announce a task once.
	notified *expirable.LRU[string, struct{}]
}

// New creates a Notifier. metrics may be nil.
func New(tasks task.UseCase, met *metrics.Metrics, l log.Logger, cfg Config) *Notifier {
	n := &Notifier{
		tasks:    tasks,
		metrics:  met,
		l:        l,
		window:   cfg.Window,
		interval: cfg.Interval,
		notify:   cfg.Notify,
		clock:    time.Now,
		notified: expirable.NewLRU[string, struct{}](maxRemembered, nil, 2*cfg.Window+cfg.Interval),
	}
	if n.notify == nil {
		n.notify = func(ctx context.Context, t model.Task, message string) {
			l.Infof(ctx, "reminder: %s (task %s)", message, t.ID)
		}
	}
	return n
}

// Message is the sentence spoken for a due task.
func Message(t model.Task) string {
	return fmt.Sprintf("Reminder: %s is due soon", t.Text)
}

// Run checks on every interval until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := n.Check(ctx); err != nil {
				n.l.Warnf(ctx, "reminder.Run: %v", err)
			}
		}
	}
}

// Check announces tasks due within the window that were not announced yet
// and returns how many it announced.
func (n *Notifier) Check(ctx context.Context) (int, error) {
	due, err := n.tasks.DueSoon(ctx, n.clock(), n.window)
	if err != nil {
		return 0, fmt.Errorf("due soon: %w", err)
	}

	sent := 0
	for _, t := range due {
		if n.notified.Contains(t.ID) {
			continue
		}
		n.notified.Add(t.ID, struct{}{})
		n.notify(ctx, t, Message(t))
		sent++
	}

	n.metrics.ObserveReminders(sent)
	return sent, nil
}
