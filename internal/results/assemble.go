package results

import (
	"time"

	"github.com/google/uuid"

	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
)

// Assemble packages the pipeline outputs into the final Report. It performs
// no I/O and does not mutate its inputs: findings are re-ordered into a new
// slice by Prioritize and summaries into a new slice by SortFileSummaries.
func Assemble(findings []pylint.Finding, summaries []FileSummary, overallScore float64, target string, cfg ScoreConfig) *Report {
	return &Report{
		RunID:         uuid.New().String(),
		Target:        target,
		GeneratedAt:   time.Now().UTC(),
		OverallScore:  overallScore,
		Findings:      Prioritize(findings, cfg),
		FileSummaries: SortFileSummaries(summaries),
	}
}
