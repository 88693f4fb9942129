// Package results turns raw pylint findings into the ordered, scored report
// model that rendering consumes. The renderer performs no further sorting or
// aggregation; everything is resolved here.
package results

import (
	"time"

	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
)

// ScoreConfig defines the parameters for prioritization. It is passed in at
// construction time and never mutated, so alternate weight tables can be
// tested in isolation.
type ScoreConfig struct {
	// Weights maps each finding kind to its priority weight. Kinds absent
	// from the table carry zero weight.
	Weights map[pylint.Kind]float64
}

// DefaultScoreConfig returns the standard weight table.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Weights: map[pylint.Kind]float64{
			pylint.KindFatal:      50,
			pylint.KindError:      25,
			pylint.KindWarning:    5,
			pylint.KindRefactor:   2,
			pylint.KindConvention: 1,
		},
	}
}

// weight returns the configured weight for k, zero when unconfigured or
// unknown.
func (c ScoreConfig) weight(k pylint.Kind) float64 {
	return c.Weights[k]
}

// FileSummary aggregates the findings and score for one file.
type FileSummary struct {
	// File is the display path: relative to the scan root when the root is
	// a directory, as given otherwise.
	File string `json:"file"`
	// Score is the health score in [0, 10] for this file alone, from an
	// isolated single-file run.
	Score float64 `json:"score"`
	// Counts holds one bucket per enumerated kind; kinds with no findings
	// are present with a zero count. Unknown kinds are not counted.
	Counts map[pylint.Kind]int `json:"counts"`
	// Total is the sum of Counts.
	Total int `json:"total"`
}

// Report is the whole-run aggregate handed to rendering.
//
// The overall score and findings come from one whole-target run while the
// file summaries come from independent per-file runs, so the two views may
// disagree slightly; they are separately sourced by design and neither is
// adjusted to mask the other.
type Report struct {
	RunID       string    `json:"run_id"`
	Target      string    `json:"target"`
	GeneratedAt time.Time `json:"generated_at"`

	// OverallScore is taken from the single whole-target run, never derived
	// from per-file scores: pylint's own formula accounts for line counts
	// and issue density in a way an average would not reproduce.
	OverallScore float64 `json:"overall_score"`

	// Findings is the full collection across all files, in priority order.
	Findings []pylint.Finding `json:"findings"`

	// FileSummaries is ordered worst-first: ascending score, then
	// descending total for equal scores.
	FileSummaries []FileSummary `json:"file_summaries"`
}
