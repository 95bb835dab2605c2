package cli

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docsect/internal/config"
	"github.com/dgallion1/docsect/internal/pipeline"
	"github.com/dgallion1/docsect/internal/watch"
	"github.com/spf13/cobra"
)

// newWatchCommand converts documents as they appear in watched
// directories.
func newWatchCommand(log *slog.Logger) *cobra.Command {
	var (
		recursive bool
		debounce  time.Duration
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "watch <directory>...",
		Short: "Watch directories and convert new documents automatically",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outDir
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			runner := pipeline.NewRunner(cfg, log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := watch.New(args, log)
			if err != nil {
				return err
			}
			w.Recursive = recursive
			if debounce > 0 {
				w.Debounce = debounce
			}
			w.Handler = func(path string) error {
				results := runner.Run(ctx, []string{path})
				return results[0].Err
			}

			return w.Start(ctx)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Watch subdirectories too")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Settle time before processing a changed file")
	cmd.Flags().StringVarP(&outDir, "output-dir", "d", "knowledge_base", "Output directory for JSON files")
	return cmd
}
