package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fundlens/fundlens/internal/core/services"
)

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Run ingestion on a schedule",
	Long: `Runs an ingestion pass immediately and then once per configured
interval (ingest.poll_interval_minutes, default 10) until interrupted.`,
	RunE: runPoll,
}

func init() {
	rootCmd.AddCommand(pollCmd)
}

func runPoll(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := buildRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.close(cmd.Context())

	poller := services.NewPoller(rt.ingestor, rt.cfg.PollInterval())

	cmd.Printf("Polling every %s. Ctrl-C to stop.\n", rt.cfg.PollInterval())
	if err := poller.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
