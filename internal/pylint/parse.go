package pylint

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMalformedOutput indicates the structured output was present but did not
// parse as a pylint message list.
var ErrMalformedOutput = errors.New("pylint: malformed structured output")

// scorePattern matches pylint's summary line, e.g.
// "Your code has been rated at 7.50/10 (previous run: 8.00/10)".
var scorePattern = regexp.MustCompile(`rated at ([\d.]+)/10`)

// rawMessage mirrors the subset of pylint's JSON message schema that the
// pipeline consumes. Extra fields are ignored.
type rawMessage struct {
	Type    string `json:"type"`
	Symbol  string `json:"symbol"`
	Message string `json:"message"`
	Path    string `json:"path"`
	Line    int    `json:"line"`
}

// ParseFindings decodes pylint's JSON output into typed findings. Records
// missing required fields are discarded with a reason rather than propagated
// half-typed; an unrecognized kind is kept and treated as unknown severity.
// Empty input yields no findings and no error.
func ParseFindings(data []byte, logger *zap.Logger) ([]Finding, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}

	var raw []rawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, ErrMalformedOutput
	}

	findings := make([]Finding, 0, len(raw))
	for _, m := range raw {
		if reason := validate(m); reason != "" {
			logger.Debug("Discarding invalid pylint record",
				zap.String("reason", reason),
				zap.String("path", m.Path),
				zap.Int("line", m.Line),
			)
			continue
		}
		findings = append(findings, Finding{
			Kind:    Kind(m.Type),
			Symbol:  m.Symbol,
			Message: m.Message,
			Path:    m.Path,
			Line:    m.Line,
		})
	}
	return findings, nil
}

// validate returns a non-empty reason when a raw record cannot become a
// well-formed Finding.
func validate(m rawMessage) string {
	if m.Path == "" {
		return "empty path"
	}
	if m.Line < 1 {
		return "line number below 1"
	}
	return ""
}

// ParseScore extracts the numeric health score from pylint's textual summary.
// The second return is false when no recognizable pattern is present.
func ParseScore(text string) (float64, bool) {
	match := scorePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	score, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return score, true
}
