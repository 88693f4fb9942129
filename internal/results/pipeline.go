package results

import (
	"context"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ducanhdangcode/visualize-pylint/internal/discovery"
	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
)

// Analyzer is the finding source consumed by the pipeline. Satisfied by
// *pylint.Runner; tests substitute their own.
type Analyzer interface {
	RunOnTarget(ctx context.Context, path string) pylint.Result
	RunOnFile(ctx context.Context, path string) pylint.Result
}

// Pipeline drives one report generation: a whole-target analyzer run for
// the overall score and finding list, plus one isolated run per file for
// the summaries.
type Pipeline struct {
	analyzer    Analyzer
	cfg         ScoreConfig
	concurrency int
	logger      *zap.Logger
}

// NewPipeline creates a results pipeline. concurrency bounds the per-file
// analyzer processes running at once; values below 1 are treated as 1.
func NewPipeline(analyzer Analyzer, cfg ScoreConfig, concurrency int, logger *zap.Logger) *Pipeline {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pipeline{
		analyzer:    analyzer,
		cfg:         cfg,
		concurrency: concurrency,
		logger:      logger.Named("results_pipeline"),
	}
}

// Run produces the report for target, analyzing the listed files. Per-file
// runs are independent and execute concurrently; final ordering is fixed by
// Assemble and unaffected by completion order. A missing or broken analyzer
// degrades to an empty report rather than an error.
func (p *Pipeline) Run(ctx context.Context, target string, files []string) (*Report, error) {
	p.logger.Info("Starting analysis",
		zap.String("target", target), zap.Int("files", len(files)))

	whole := p.analyzer.RunOnTarget(ctx, target)
	p.logStatus("whole-target run degraded", target, whole.Status)

	targetIsDir := false
	if info, err := os.Stat(target); err == nil {
		targetIsDir = info.IsDir()
	}

	summaries := make([]FileSummary, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res := p.analyzer.RunOnFile(gctx, file)
			p.logStatus("per-file run degraded", file, res.Status)
			display := discovery.DisplayPath(target, targetIsDir, file)
			summaries[i] = Summarize(display, res.Findings, res.Score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := Assemble(whole.Findings, summaries, whole.Score, target, p.cfg)

	p.logger.Info("Analysis complete",
		zap.String("run_id", report.RunID),
		zap.Float64("overall_score", report.OverallScore),
		zap.Int("findings", len(report.Findings)),
		zap.Int("files", len(report.FileSummaries)),
	)
	return report, nil
}

func (p *Pipeline) logStatus(msg, scope string, status pylint.RunStatus) {
	if status == pylint.StatusOK {
		return
	}
	p.logger.Warn(msg, zap.String("scope", scope), zap.String("status", string(status)))
}
