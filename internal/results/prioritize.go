package results

import (
	"sort"

	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
)

// Prioritize returns findings in display order without mutating its input.
//
// The order is a deterministic total order over four keys: severity rank
// ascending (fatal first), configured weight descending, file path
// ascending, line number ascending. Weight is sorted as its own key rather
// than derived from severity: the two axes agree under the default table
// but are allowed to diverge when weights are reconfigured. The sort is
// stable, so exact ties keep their input order.
func Prioritize(findings []pylint.Finding, cfg ScoreConfig) []pylint.Finding {
	ordered := make([]pylint.Finding, len(findings))
	copy(ordered, findings)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		if ar, br := a.Kind.Rank(), b.Kind.Rank(); ar != br {
			return ar < br
		}
		if aw, bw := cfg.weight(a.Kind), cfg.weight(b.Kind); aw != bw {
			return aw > bw
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Line < b.Line
	})

	return ordered
}
