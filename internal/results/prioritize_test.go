package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
)

func finding(kind pylint.Kind, symbol, path string, line int) pylint.Finding {
	return pylint.Finding{Kind: kind, Symbol: symbol, Message: symbol, Path: path, Line: line}
}

// Fatal first; among the two errors, a.py:2 before a.py:10.
func TestPrioritize_SeverityThenLocation(t *testing.T) {
	t.Parallel()
	input := []pylint.Finding{
		finding(pylint.KindError, "E1", "a.py", 10),
		finding(pylint.KindFatal, "F1", "b.py", 3),
		finding(pylint.KindError, "E2", "a.py", 2),
	}

	ordered := Prioritize(input, DefaultScoreConfig())

	require.Len(t, ordered, 3)
	assert.Equal(t, "F1", ordered[0].Symbol)
	assert.Equal(t, "E2", ordered[1].Symbol)
	assert.Equal(t, "E1", ordered[2].Symbol)
}

func TestPrioritize_SeverityDominatesAllOtherKeys(t *testing.T) {
	t.Parallel()
	input := []pylint.Finding{
		finding(pylint.KindConvention, "C1", "a.py", 1),
		finding(pylint.KindRefactor, "R1", "z.py", 999),
		finding(pylint.KindWarning, "W1", "z.py", 999),
		finding(pylint.KindError, "E1", "z.py", 999),
		finding(pylint.KindFatal, "F1", "z.py", 999),
	}

	ordered := Prioritize(input, DefaultScoreConfig())

	got := make([]string, len(ordered))
	for i, f := range ordered {
		got[i] = f.Symbol
	}
	assert.Equal(t, []string{"F1", "E1", "W1", "R1", "C1"}, got)
}

// Same kind, same file: ascending line order.
func TestPrioritize_LineOrderWithinFile(t *testing.T) {
	t.Parallel()
	input := []pylint.Finding{
		finding(pylint.KindWarning, "W-late", "a.py", 40),
		finding(pylint.KindWarning, "W-early", "a.py", 4),
		finding(pylint.KindWarning, "W-mid", "a.py", 12),
	}

	ordered := Prioritize(input, DefaultScoreConfig())

	lines := []int{ordered[0].Line, ordered[1].Line, ordered[2].Line}
	assert.Equal(t, []int{4, 12, 40}, lines)
}

// Weight is an independent key: with a table where weights do not follow
// severity rank inside one kind, it must still be applied descending.
func TestPrioritize_WeightIsIndependentKey(t *testing.T) {
	t.Parallel()
	// Two unknown kinds share the same (last) severity rank; only their
	// configured weights distinguish them.
	cfg := ScoreConfig{Weights: map[pylint.Kind]float64{
		"custom-high": 40,
		"custom-low":  3,
	}}
	input := []pylint.Finding{
		finding("custom-low", "L1", "a.py", 1),
		finding("custom-high", "H1", "a.py", 1),
	}

	ordered := Prioritize(input, cfg)

	assert.Equal(t, "H1", ordered[0].Symbol)
	assert.Equal(t, "L1", ordered[1].Symbol)
}

// Unknown kinds sort after every enumerated severity and carry no weight.
func TestPrioritize_UnknownKindSortsLast(t *testing.T) {
	t.Parallel()
	input := []pylint.Finding{
		finding("mystery", "X1", "a.py", 1),
		finding(pylint.KindConvention, "C1", "z.py", 99),
	}

	ordered := Prioritize(input, DefaultScoreConfig())

	assert.Equal(t, "C1", ordered[0].Symbol)
	assert.Equal(t, "X1", ordered[1].Symbol)
}

// Idempotent under re-application, for sorted and reverse-sorted input.
func TestPrioritize_Deterministic(t *testing.T) {
	t.Parallel()
	input := []pylint.Finding{
		finding(pylint.KindConvention, "C1", "b.py", 8),
		finding(pylint.KindFatal, "F1", "a.py", 1),
		finding(pylint.KindWarning, "W1", "a.py", 3),
		finding(pylint.KindWarning, "W2", "a.py", 30),
		finding(pylint.KindError, "E1", "c.py", 2),
	}
	cfg := DefaultScoreConfig()

	once := Prioritize(input, cfg)
	twice := Prioritize(once, cfg)
	assert.Equal(t, once, twice)

	reversed := make([]pylint.Finding, len(once))
	for i, f := range once {
		reversed[len(once)-1-i] = f
	}
	assert.Equal(t, once, Prioritize(reversed, cfg))
}

// Exact ties keep their input order.
func TestPrioritize_StableForExactTies(t *testing.T) {
	t.Parallel()
	input := []pylint.Finding{
		finding(pylint.KindWarning, "first", "a.py", 5),
		finding(pylint.KindWarning, "second", "a.py", 5),
		finding(pylint.KindWarning, "third", "a.py", 5),
	}

	ordered := Prioritize(input, DefaultScoreConfig())

	assert.Equal(t, "first", ordered[0].Symbol)
	assert.Equal(t, "second", ordered[1].Symbol)
	assert.Equal(t, "third", ordered[2].Symbol)
}

func TestPrioritize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	input := []pylint.Finding{
		finding(pylint.KindConvention, "C1", "a.py", 1),
		finding(pylint.KindFatal, "F1", "b.py", 2),
	}

	_ = Prioritize(input, DefaultScoreConfig())

	assert.Equal(t, "C1", input[0].Symbol, "input order must be preserved")
	assert.Equal(t, "F1", input[1].Symbol)
}
