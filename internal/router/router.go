package router

import (
	"context"
	"strings"

	"voice-task-management/pkg/fuzzy"
)

type scored struct {
	trigger  string
	score    float64
	consumed int
}

// Classify determines the intent of an utterance.
//
// Intents without a payload are scored against the whole utterance. For
// add, complete and delete, each trigger of n words is scored against the
// first n, n-1 and n+1 words (in that order, first best kept) so the command
// can be followed by task text; trailing window words that resemble no
// trigger word are handed back to the remainder. The intent with the highest
// trigger score wins when it reaches ClassifyThreshold; ties go to the intent
// listed first. Otherwise the result is IntentUnknown, carrying the globally
// best trigger as a suggestion when it reaches SuggestThreshold.
func (c *Classifier) Classify(ctx context.Context, utterance string) Classification {
	normalized := fuzzy.Normalize(utterance)

	if c.cache != nil {
		if cached, ok := c.cache.Get(normalized); ok {
			return cached
		}
	}

	words := strings.Fields(normalized)

	var (
		bestIntent Intent
		best       scored
		found      bool
	)
	for _, it := range c.table {
		s := scoreIntent(it, normalized, words)
		if !found || s.score > best.score {
			bestIntent, best, found = it.intent, s, true
		}
	}

	result := Classification{
		Intent:    bestIntent,
		Score:     best.score,
		Trigger:   best.trigger,
		Remainder: strings.Join(words[best.consumed:], " "),
	}
	if best.score < ClassifyThreshold {
		// The globally best trigger is the winner's best trigger, since
		// intents are ranked by their best trigger.
		result.Intent = IntentUnknown
		result.Remainder = normalized
		if best.score >= SuggestThreshold {
			result.Suggestion = best.trigger
			result.SuggestionScore = best.score
		}
	}

	c.l.Debugf(ctx, "%s: %q -> %s (score %.2f, trigger %q)", LogPrefixClassify, normalized, result.Intent, result.Score, result.Trigger)

	if c.cache != nil {
		c.cache.Add(normalized, result)
	}
	return result
}

func scoreIntent(it intentTriggers, normalized string, words []string) scored {
	var (
		best  scored
		found bool
	)
	for _, t := range it.triggers {
		if !it.payload || len(words) == 0 {
			s := fuzzy.Similarity(normalized, t.text)
			if !found || s > best.score {
				best, found = scored{trigger: t.text, score: s, consumed: len(words)}, true
			}
			continue
		}

		n := len(t.words)
		for _, k := range [3]int{n, n - 1, n + 1} {
			if k < 1 || k > len(words) {
				continue
			}
			s := fuzzy.Similarity(strings.Join(words[:k], " "), t.text)
			if !found || s > best.score {
				best, found = scored{trigger: t.text, score: s, consumed: consumedWords(words[:k], t.words)}, true
			}
		}
	}
	return best
}

// consumedWords drops trailing window words that look like task text rather
// than a misheard trigger word, keeping at least the first word.
func consumedWords(window, trigger []string) int {
	k := len(window)
	for k > 1 && !resemblesAny(window[k-1], trigger) {
		k--
	}
	return k
}

func resemblesAny(word string, trigger []string) bool {
	for _, tw := range trigger {
		if fuzzy.Similarity(word, tw) >= wordThreshold {
			return true
		}
	}
	return false
}
