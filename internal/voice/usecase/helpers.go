package usecase

import (
	"strings"

	"voice-task-management/internal/model"
)

// edgeStopWords are dropped from both ends of an added task's label, so
// "add task to buy milk by friday" keeps only "buy milk".
var edgeStopWords = map[string]bool{
	"to":  true,
	"for": true,
	"on":  true,
	"at":  true,
	"by":  true,
}

func trimStopWords(text string) string {
	words := strings.Fields(text)
	for len(words) > 0 && edgeStopWords[words[0]] {
		words = words[1:]
	}
	for len(words) > 0 && edgeStopWords[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func pending(tasks []model.TaskRef) []model.TaskRef {
	out := make([]model.TaskRef, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
