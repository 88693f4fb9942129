// Package pylint adapts the external pylint process into typed findings and
// scores. All per-scope failures (missing binary, unparseable output) are
// absorbed at this boundary and surfaced as a degraded Result status, never
// as an error that aborts the pipeline.
package pylint

// Kind is the severity category of a finding, ordered fatal (most severe)
// through convention. Values match pylint's "type" field.
type Kind string

const (
	KindFatal      Kind = "fatal"
	KindError      Kind = "error"
	KindWarning    Kind = "warning"
	KindRefactor   Kind = "refactor"
	KindConvention Kind = "convention"
)

// unknownRank places findings with an unrecognized kind after every
// enumerated severity.
const unknownRank = 999

var severityRank = map[Kind]int{
	KindFatal:      0,
	KindError:      1,
	KindWarning:    2,
	KindRefactor:   3,
	KindConvention: 4,
}

// Kinds returns the five enumerated kinds in severity order.
func Kinds() []Kind {
	return []Kind{KindFatal, KindError, KindWarning, KindRefactor, KindConvention}
}

// Known reports whether k is one of the five enumerated kinds.
func (k Kind) Known() bool {
	_, ok := severityRank[k]
	return ok
}

// Rank returns the severity rank of k, 0 being most severe. Unknown kinds
// rank last.
func (k Kind) Rank() int {
	if r, ok := severityRank[k]; ok {
		return r
	}
	return unknownRank
}

// Finding is one reported issue at a specific file and line. Immutable once
// parsed; it lives only for the duration of a report generation.
type Finding struct {
	Kind    Kind   `json:"type"`
	Symbol  string `json:"symbol"`
	Message string `json:"message"`
	Path    string `json:"path"`
	Line    int    `json:"line"`
}

// RunStatus classifies the outcome of one analyzer invocation scope.
type RunStatus string

const (
	// StatusOK means both invocations produced usable output.
	StatusOK RunStatus = "ok"
	// StatusToolUnavailable means the pylint binary does not exist.
	StatusToolUnavailable RunStatus = "tool_unavailable"
	// StatusToolFailed means the binary exists but could not run, e.g. a
	// permission error. Kept apart from StatusToolUnavailable so callers
	// can tell "tool missing" from "tool crashed".
	StatusToolFailed RunStatus = "tool_failed"
	// StatusMalformedOutput means the structured output did not parse;
	// findings degraded to empty.
	StatusMalformedOutput RunStatus = "malformed_output"
	// StatusUnscorable means the textual summary carried no recognizable
	// score pattern; the score fell back to its default.
	StatusUnscorable RunStatus = "unscorable_output"
)

// Result is the degraded-but-valid outcome of analyzing one scope (the whole
// target or a single file). Callers can distinguish "tool missing" from
// "tool ran but produced garbage" through Status.
type Result struct {
	Findings []Finding
	Score    float64
	Status   RunStatus
}
