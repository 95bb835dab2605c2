// Package cli contains the docsect command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/dgallion1/docsect/internal/config"
	"github.com/dgallion1/docsect/internal/pipeline"
	"github.com/dgallion1/docsect/internal/source"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the root command: convert one document, or a
// whole directory of them, into section JSON files.
func NewRootCommand(log *slog.Logger) *cobra.Command {
	var (
		all       bool
		outPath   string
		outDir    string
		minLength int
		maxLength int
		workers   int
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "docsect <file|directory>",
		Short: "Convert documents into retrieval-ready section JSON",
		Long: `docsect segments page-structured documents into semantically coherent
sections using typographic header detection, and writes them as JSON
arrays bounded by a byte budget, ready for bulk retrieval ingestion.

Examples:
  docsect guideline.pdf
  docsect ./docs --all --output-dir ./knowledge_base
  docsect report.pdf --output report.json --max-length 2000`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("min-length") {
				cfg.MinSectionLength = minLength
			}
			if cmd.Flags().Changed("max-length") {
				cfg.MaxSectionLength = maxLength
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outDir
			}
			if cmd.Flags().Changed("workers") {
				cfg.WorkerCount = workers
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			files, err := collectFiles(args[0], all)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(cfg, log)
			if len(files) == 1 && outPath != "" {
				runner.Output = outPath
			}

			results := runner.Run(cmd.Context(), files)
			return printSummary(results)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Process every supported document in a directory")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output JSON path (single file input only)")
	cmd.Flags().StringVarP(&outDir, "output-dir", "d", "knowledge_base", "Output directory for JSON files")
	cmd.Flags().IntVar(&minLength, "min-length", 50, "Minimum section length in chars")
	cmd.Flags().IntVar(&maxLength, "max-length", 3000, "Maximum section length before splitting")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent documents in a batch run")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")

	cmd.AddCommand(newServeCommand(log))
	cmd.AddCommand(newWatchCommand(log))

	return cmd
}

// Execute runs the root command and handles any returned errors.
func Execute(log *slog.Logger) {
	if err := NewRootCommand(log).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// collectFiles resolves an input path into the list of documents to
// process. Directories require --all and are scanned in sorted order.
func collectFiles(input string, all bool) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input, err)
	}

	if !info.IsDir() {
		if !source.IsSupportedExtension(input) {
			return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(input))
		}
		return []string{input}, nil
	}

	if !all {
		return nil, fmt.Errorf("%s is a directory; use --all to process every document in it", input)
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !source.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(input, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no supported documents found in %s", input)
	}
	return files, nil
}

// printSummary reports per-file outcomes and the run total; a nonzero
// failure count becomes the command error after every file has run.
func printSummary(results []pipeline.Result) error {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Printf("%s %s: %s\n", red("✗"), res.Path, res.Err)
		case res.Sections == 0:
			fmt.Printf("%s %s: no sections extracted\n", yellow("!"), res.Path)
		default:
			fmt.Printf("%s %s: %d sections\n", green("✓"), res.Path, res.Sections)
			for _, out := range res.Outputs {
				size := int64(0)
				if fi, err := os.Stat(out); err == nil {
					size = fi.Size()
				}
				fmt.Printf("    %s (%.1f KB)\n", out, float64(size)/1024)
			}
		}
	}

	fmt.Printf("\nProcessed %d document(s), %d failed\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}
