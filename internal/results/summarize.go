package results

import (
	"sort"

	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
)

// Summarize tallies one file's findings into the five fixed kind buckets
// and pairs them with the file's isolated score. Findings with an
// unrecognized kind are not counted; they are not an error.
func Summarize(file string, findings []pylint.Finding, score float64) FileSummary {
	counts := make(map[pylint.Kind]int, len(pylint.Kinds()))
	for _, k := range pylint.Kinds() {
		counts[k] = 0
	}

	total := 0
	for _, f := range findings {
		if !f.Kind.Known() {
			continue
		}
		counts[f.Kind]++
		total++
	}

	return FileSummary{
		File:   file,
		Score:  score,
		Counts: counts,
		Total:  total,
	}
}

// SortFileSummaries returns summaries in triage order without mutating its
// input: ascending score so the worst files come first, then descending
// total so that of two equally scored files the noisier one leads.
func SortFileSummaries(summaries []FileSummary) []FileSummary {
	ordered := make([]FileSummary, len(summaries))
	copy(ordered, summaries)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score < ordered[j].Score
		}
		return ordered[i].Total > ordered[j].Total
	})

	return ordered
}
