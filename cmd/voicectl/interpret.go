package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voice-task-management/internal/assistant"
	"voice-task-management/internal/model"
)

func newInterpretCmd(opts *globalOptions) *cobra.Command {
	var tasksFile string

	cmd := &cobra.Command{
		Use:   "interpret <utterance...>",
		Short: "Interpret one utterance and print the outcome",
		Long: `Interprets an utterance against a task list snapshot without changing it.
The snapshot is read from --tasks (YAML) or is empty.`,
		Example: `  voicectl interpret "add task buy milk tomorrow at 3pm" --now 2024-01-01T09:00:00Z
  voicectl interpret "complete task buy milk" --tasks tasks.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.referenceTime()
			if err != nil {
				return fmt.Errorf("--now: %w", err)
			}

			tasks := []model.TaskRef{}
			if tasksFile != "" {
				if tasks, err = loadFixture(tasksFile); err != nil {
					return err
				}
			}

			l := opts.logger()
			interpreter, err := opts.interpreter(l)
			if err != nil {
				return err
			}

			res, err := assistant.New(interpreter, nil, l).Handle(cmd.Context(), assistant.Request{
				Transcript: strings.Join(args, " "),
				Now:        now,
				Tasks:      tasks,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res.Outcome); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Announcement)
			return nil
		},
	}

	cmd.Flags().StringVar(&tasksFile, "tasks", "", "YAML file with the task list snapshot")
	return cmd
}
