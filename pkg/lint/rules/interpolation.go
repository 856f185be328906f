package rules

import (
	"strings"

	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/syntax"
)

// InterpolationRule checks interpolated strings for two mistakes:
// strings interpolating nothing at all, and interpolation segments that
// follow a stray opening marker in the preceding literal text — the
// classic symptom of an escaped brace the author did not intend.
type InterpolationRule struct {
	lint.BaseRule
}

// NewInterpolationRule creates the interpolation-braces rule.
func NewInterpolationRule() *InterpolationRule {
	return &InterpolationRule{
		BaseRule: lint.NewBaseRule(
			"FL0035",
			"interpolation-braces",
			"Interpolated strings should interpolate something and use markers consistently",
			[]string{"style", "strings"},
			[]syntax.Kind{syntax.KindInterpolatedString},
			false,
		),
	}
}

// Evaluate runs once per interpolated-string node.
func (r *InterpolationRule) Evaluate(_ *lint.RuleContext, node *syntax.Node) ([]lint.Finding, error) {
	var findings []lint.Finding

	hasExpr := false
	for _, seg := range node.Children() {
		if seg.Kind == syntax.KindInterpExpr {
			hasExpr = true
			break
		}
	}

	if !hasExpr {
		findings = append(findings, lint.NewFinding(r.ID(), node,
			"Interpolated string contains no interpolation segments").
			WithSuggestion("Use a plain string literal").
			Build())
		return findings, nil
	}

	// Scan segments left to right; a literal segment ending in a stray
	// opening marker makes the following segment suspicious.
	segments := node.Children()
	for i := 1; i < len(segments); i++ {
		prev := segments[i-1]
		cur := segments[i]
		if cur.Kind != syntax.KindInterpExpr || prev.Kind != syntax.KindInterpText {
			continue
		}
		if endsWithStrayMarker(prev.Text) {
			findings = append(findings, lint.NewFinding(r.ID(), cur,
				"Interpolation segment follows a stray '{'; this is likely an unintended escaped brace").
				WithSuggestion("Double the brace for a literal '{' or remove it").
				Build())
		}
	}

	return findings, nil
}

// endsWithStrayMarker reports whether text ends with an odd run of
// opening markers. An even run is a sequence of intentional escapes.
func endsWithStrayMarker(text string) bool {
	trimmed := strings.TrimRight(text, "{")
	run := len(text) - len(trimmed)
	return run%2 == 1
}
