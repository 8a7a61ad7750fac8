package router

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"voice-task-management/pkg/fuzzy"
	"voice-task-management/pkg/log"
)

// Router is the interface for command classification
type Router interface {
	Classify(ctx context.Context, utterance string) Classification
}

// Classifier matches utterances against a fixed table of trigger phrases.
// It is safe for concurrent use.
type Classifier struct {
	table []intentTriggers
	cache *lru.Cache[string, Classification]
	l     log.Logger
}

// Ensure Classifier implements Router interface
var _ Router = (*Classifier)(nil)

// New creates a Classifier. cacheSize > 0 memoizes results per normalized
// utterance; 0 disables the cache.
func New(l log.Logger, cacheSize int) (*Classifier, error) {
	c := &Classifier{
		table: buildTable(),
		l:     l,
	}

	if cacheSize > 0 {
		cache, err := lru.New[string, Classification](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("router: create classification cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

func buildTable() []intentTriggers {
	table := make([]intentTriggers, 0, len(triggerTable))
	for _, row := range triggerTable {
		it := intentTriggers{intent: row.intent, payload: row.payload}
		for _, phrase := range row.triggers {
			text := fuzzy.Normalize(phrase)
			it.triggers = append(it.triggers, trigger{text: text, words: strings.Fields(text)})
		}
		table = append(table, it)
	}
	return table
}

// Intents returns the recognized intents in tie-break priority order.
func Intents() []Intent {
	intents := make([]Intent, 0, len(triggerTable))
	for _, row := range triggerTable {
		intents = append(intents, row.intent)
	}
	return intents
}

// Triggers returns a copy of the trigger phrases of intent, or nil for
// IntentUnknown.
func Triggers(intent Intent) []string {
	for _, row := range triggerTable {
		if row.intent == intent {
			return append([]string(nil), row.triggers...)
		}
	}
	return nil
}
