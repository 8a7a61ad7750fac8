package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voice-task-management/internal/router"
)

func newIntentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "List the commands and the phrases that trigger them",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, intent := range router.Intents() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", intent, strings.Join(router.Triggers(intent), " | "))
			}
		},
	}
}
