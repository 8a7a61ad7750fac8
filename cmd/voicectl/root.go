package main

import (
	"time"

	"github.com/spf13/cobra"

	"voice-task-management/config"
	"voice-task-management/internal/bootstrap"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
)

type globalOptions struct {
	timezone string
	logLevel string
	now      string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "voicectl",
		Short:        "Interpret spoken task commands",
		Long:         `voicectl runs transcripts through the same interpreter as the API server.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.timezone, "tz", "UTC", "IANA timezone used to resolve dates")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.now, "now", "", "RFC3339 reference time (default: current time)")

	root.AddCommand(
		newInterpretCmd(opts),
		newReplCmd(opts),
		newIntentsCmd(),
	)
	return root
}

func (o *globalOptions) logger() log.Logger {
	return log.Init(log.ZapConfig{
		Level:    o.logLevel,
		Mode:     "development",
		Encoding: "console",
	})
}

func (o *globalOptions) interpreter(l log.Logger) (voice.UseCase, error) {
	return bootstrap.NewInterpreter(config.InterpreterConfig{Timezone: o.timezone}, nil, l)
}

// referenceTime parses --now; zero means the current time.
func (o *globalOptions) referenceTime() (time.Time, error) {
	if o.now == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, o.now)
}
