package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voice-task-management/config"
	"voice-task-management/internal/assistant"
	"voice-task-management/internal/bootstrap"
	taskUC "voice-task-management/internal/task/usecase"
)

func newReplCmd(opts *globalOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read utterances from stdin and apply them to a task list",
		Long: `Reads one utterance per line and prints the spoken acknowledgement.
Tasks are kept in memory, or in a SQLite file with --db. Type "exit" to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now, err := opts.referenceTime()
			if err != nil {
				return fmt.Errorf("--now: %w", err)
			}

			l := opts.logger()
			storeCfg := config.StoreConfig{Driver: config.StoreMemory}
			if dbPath != "" {
				storeCfg = config.StoreConfig{Driver: config.StoreSQLite, DSN: dbPath}
			}
			store, err := bootstrap.OpenStore(ctx, storeCfg, l)
			if err != nil {
				return err
			}
			defer store.Close()

			interpreter, err := opts.interpreter(l)
			if err != nil {
				return err
			}
			as := assistant.New(interpreter, taskUC.New(store.Repo, nil, l), l)

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}

				res, err := as.Handle(ctx, assistant.Request{Transcript: line, Now: now})
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				fmt.Fprintln(out, res.Announcement)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file to keep tasks in (default: in memory)")
	return cmd
}
