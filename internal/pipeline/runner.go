package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/docsect/internal/config"
	"github.com/dgallion1/docsect/internal/output"
)

// Result reports the outcome for one document in a batch run.
type Result struct {
	Path     string
	Sections int
	Outputs  []string
	Duration time.Duration
	Err      error
}

// Runner processes a batch of documents with a bounded worker pool.
// Documents share no state, so one failed document never disturbs the
// rest of the run.
type Runner struct {
	proc  *Processor
	cfg   config.Config
	log   *slog.Logger
	stats *Stats

	// Output overrides the derived output path when the run contains
	// exactly one document.
	Output string
}

func NewRunner(cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{
		proc:  NewProcessor(cfg, log),
		cfg:   cfg,
		log:   log,
		stats: NewStats(time.Hour),
	}
}

// Stats exposes the rolling per-document duration aggregate.
func (r *Runner) Stats() *Stats {
	return r.stats
}

// Run processes files concurrently and returns one Result per file, in
// input order.
func (r *Runner) Run(ctx context.Context, files []string) []Result {
	results := make([]Result, len(files))

	workers := r.cfg.WorkerCount
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					results[i] = r.runOne(files[i], len(files) == 1)
				}
			}
		}()
	}

dispatch:
	for i := range files {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// runOne runs the full pipeline for a single document and persists its
// sections.
func (r *Runner) runOne(path string, single bool) Result {
	log := r.log.With("file", path)
	start := time.Now()

	sections, err := r.proc.ProcessFile(path)
	if err != nil {
		log.Error("processing failed", "error", err)
		return Result{Path: path, Err: err, Duration: time.Since(start)}
	}

	if len(sections) == 0 {
		log.Warn("no sections extracted")
		return Result{Path: path, Duration: time.Since(start)}
	}

	outPath := r.outputPath(path, single)
	outputs, err := output.Write(outPath, sections, r.cfg.BatchByteBudget, r.cfg.AlarmBytes)
	if err != nil {
		log.Error("write failed", "error", err)
		return Result{
			Path:     path,
			Sections: len(sections),
			Err:      fmt.Errorf("write output: %w", err),
			Duration: time.Since(start),
		}
	}

	dur := time.Since(start)
	r.stats.Record(dur.Milliseconds())
	log.Info("document processed", "sections", len(sections), "outputs", len(outputs), "duration_ms", dur.Milliseconds())

	return Result{
		Path:     path,
		Sections: len(sections),
		Outputs:  outputs,
		Duration: dur,
	}
}

func (r *Runner) outputPath(path string, single bool) string {
	if single && r.Output != "" {
		return r.Output
	}
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(r.cfg.OutputDir, stem+".json")
}
