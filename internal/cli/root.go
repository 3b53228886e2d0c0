package cli

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"beagle-pound/internal/platform/logger"
)

func Execute() {
	log := logger.NewFromEnv()

	err := newRootCmd(log).Execute()

	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pound",
		Short:        "Interactive beagle creator and pound demo",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessionLog := log.With(map[string]any{"session_id": uuid.NewString()})
			return Run(cmd.InOrStdin(), cmd.OutOrStdout(), sessionLog)
		},
	}

	return cmd
}
