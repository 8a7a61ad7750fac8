package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voice-task-management/internal/model"
)

// fixture is a task list snapshot written by hand, e.g.
//
//	tasks:
//	  - id: t1
//	    label: buy milk
//	    due_date: 2024-01-02T15:00:00Z
type fixture struct {
	Tasks []model.TaskRef `yaml:"tasks"`
}

func loadFixture(path string) ([]model.TaskRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}

	for i, t := range f.Tasks {
		if t.ID == "" {
			f.Tasks[i].ID = fmt.Sprintf("task-%d", i+1)
		}
	}
	if f.Tasks == nil {
		f.Tasks = []model.TaskRef{}
	}
	return f.Tasks, nil
}
