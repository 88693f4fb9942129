package pylint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseFindings_ValidOutput(t *testing.T) {
	t.Parallel()
	data := []byte(`[
		{"type": "error", "symbol": "undefined-variable", "message": "Undefined variable 'x'", "path": "app/main.py", "line": 12, "column": 4, "module": "main"},
		{"type": "convention", "symbol": "missing-docstring", "message": "Missing module docstring", "path": "app/util.py", "line": 1}
	]`)

	findings, err := ParseFindings(data, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, findings, 2)

	assert.Equal(t, Finding{
		Kind:    KindError,
		Symbol:  "undefined-variable",
		Message: "Undefined variable 'x'",
		Path:    "app/main.py",
		Line:    12,
	}, findings[0])
	assert.Equal(t, KindConvention, findings[1].Kind)
}

func TestParseFindings_EmptyInput(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "   \n\t"} {
		findings, err := ParseFindings([]byte(input), zap.NewNop())
		assert.NoError(t, err)
		assert.Empty(t, findings)
	}
}

func TestParseFindings_MalformedOutput(t *testing.T) {
	t.Parallel()
	findings, err := ParseFindings([]byte(`not json at all {{{`), zap.NewNop())
	assert.ErrorIs(t, err, ErrMalformedOutput)
	assert.Empty(t, findings)
}

// Records missing required fields are discarded; the rest survive.
func TestParseFindings_DiscardsInvalidRecords(t *testing.T) {
	t.Parallel()
	data := []byte(`[
		{"type": "warning", "symbol": "unused-import", "message": "Unused import os", "path": "a.py", "line": 3},
		{"type": "warning", "symbol": "bad-record", "message": "no path", "path": "", "line": 3},
		{"type": "warning", "symbol": "bad-record", "message": "line zero", "path": "a.py", "line": 0}
	]`)

	findings, err := ParseFindings(data, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "unused-import", findings[0].Symbol)
}

// An unrecognized kind is kept as unknown severity, not dropped.
func TestParseFindings_UnknownKindKept(t *testing.T) {
	t.Parallel()
	data := []byte(`[{"type": "information", "symbol": "i0001", "message": "info", "path": "a.py", "line": 1}]`)

	findings, err := ParseFindings(data, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.False(t, findings[0].Kind.Known())
	assert.Equal(t, unknownRank, findings[0].Kind.Rank())
}

func TestParseScore(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{"typical summary", "Your code has been rated at 7.50/10 (previous run: 8.00/10, -0.50)", 7.50, true},
		{"perfect score", "Your code has been rated at 10.00/10", 10.00, true},
		{"integer score", "rated at 0/10", 0, true},
		{"no pattern", "************* Module main\nmain.py:1:0: C0114", 0, false},
		{"empty text", "", 0, false},
		{"dots only", "rated at .../10", 0, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, found := ParseScore(tt.text)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.InDelta(t, tt.want, score, 1e-9)
			}
		})
	}
}

func TestKindRank_SeverityOrder(t *testing.T) {
	t.Parallel()
	kinds := Kinds()
	require.Len(t, kinds, 5)
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, kinds[i-1].Rank(), kinds[i].Rank(),
			"%s must outrank %s", kinds[i-1], kinds[i])
	}
	assert.Greater(t, Kind("mystery").Rank(), KindConvention.Rank())
}
