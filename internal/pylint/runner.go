package pylint

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"

	"go.uber.org/zap"

	"github.com/ducanhdangcode/visualize-pylint/internal/config"
)

// defaultScore is what a scope resolves to when the textual summary carries
// no parseable score. Pylint prints no rating for an empty module, so a
// clean file lands here. The same default applies even when findings are
// present, which can report a perfect score for a broken scope; that is
// preserved deliberately, see Runner.run.
const defaultScore = 10.0

// Runner invokes the external pylint binary. Each scope costs two
// invocations: one for the JSON message list, one for the human-readable
// summary the score is scraped from. No retries; a failed invocation is
// final for that scope.
type Runner struct {
	bin    string
	logger *zap.Logger
	exec   func(ctx context.Context, bin string, args ...string) ([]byte, error)
}

// NewRunner builds a Runner from the analyzer configuration.
func NewRunner(cfg config.PylintConfig, logger *zap.Logger) *Runner {
	bin := cfg.Binary
	if bin == "" {
		bin = "pylint"
	}
	return &Runner{
		bin:    bin,
		logger: logger.Named("pylint"),
		exec:   runCommand,
	}
}

// RunOnTarget analyzes the whole target scope (directory or single file).
func (r *Runner) RunOnTarget(ctx context.Context, path string) Result {
	return r.run(ctx, path)
}

// RunOnFile analyzes a single file in isolation.
func (r *Runner) RunOnFile(ctx context.Context, path string) Result {
	return r.run(ctx, path)
}

func (r *Runner) run(ctx context.Context, path string) Result {
	jsonOut, err := r.invoke(ctx, path, "--output-format=json")
	if err != nil {
		if isNotFound(err) {
			r.logger.Warn("pylint binary not found; degrading to empty results",
				zap.String("binary", r.bin), zap.String("path", path))
			return Result{Findings: nil, Score: 0.0, Status: StatusToolUnavailable}
		}
		r.logger.Warn("pylint structured invocation failed",
			zap.String("path", path), zap.Error(err))
		return Result{Findings: nil, Score: 0.0, Status: StatusToolFailed}
	}

	result := Result{Status: StatusOK}

	findings, parseErr := ParseFindings(jsonOut, r.logger)
	if parseErr != nil {
		r.logger.Warn("pylint produced unparseable structured output",
			zap.String("path", path), zap.Error(parseErr))
		result.Status = StatusMalformedOutput
	}
	result.Findings = findings

	textOut, err := r.invoke(ctx, path)
	if err != nil {
		if isNotFound(err) {
			return Result{Findings: nil, Score: 0.0, Status: StatusToolUnavailable}
		}
		r.logger.Debug("pylint text invocation failed; score falls back to default",
			zap.String("path", path), zap.Error(err))
	}

	score, ok := ParseScore(string(textOut))
	if !ok {
		// No recognizable rating. The default is 10.0 whether or not
		// findings exist; with findings present this reports a perfect
		// score for a scope that is not, but the behavior is kept for
		// compatibility rather than silently replaced.
		if len(result.Findings) > 0 {
			r.logger.Warn("No parseable score despite findings; defaulting to 10.0",
				zap.String("path", path), zap.Int("findings", len(result.Findings)))
		}
		score = defaultScore
		if result.Status == StatusOK {
			result.Status = StatusUnscorable
		}
	}
	result.Score = score

	return result
}

func (r *Runner) invoke(ctx context.Context, path string, extraArgs ...string) ([]byte, error) {
	return r.exec(ctx, r.bin, append([]string{path}, extraArgs...)...)
}

// runCommand runs one pylint process and returns its stdout. Pylint exits
// non-zero whenever it reports messages, so exit errors with captured
// stdout are not failures.
func runCommand(ctx context.Context, bin string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), nil
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// isNotFound reports whether err means the binary itself could not be run,
// either because PATH lookup failed or an explicit binary path is absent.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
