package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlabs/flint/pkg/syntax"
)

// interpString assembles an interpolated-string node from segments.
// Strings are text segments, *syntax.Node values are used verbatim.
func interpString(f *fixture, parts ...any) *syntax.Node {
	str := syntax.NewNode(syntax.KindInterpolatedString, syntax.NewSpan(10, 100))
	offset := 11
	for _, part := range parts {
		switch p := part.(type) {
		case string:
			seg := syntax.NewNode(syntax.KindInterpText, syntax.NewSpan(offset, offset+len(p)))
			seg.Text = p
			str.Append(seg)
			offset += len(p)
		case *syntax.Node:
			str.Append(p)
			offset += p.Span.Len()
		}
	}
	f.root.Append(str)
	return str
}

func expr(start, end int) *syntax.Node {
	return syntax.NewNode(syntax.KindInterpExpr, syntax.NewSpan(start, end))
}

func TestInterpolation_NoSegments(t *testing.T) {
	f := newFixture()
	interpString(f, "just text")

	result := analyze(t, NewInterpolationRule(), f, nil)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, "FL0035", result.Findings[0].RuleID)
	assert.Contains(t, result.Findings[0].Message, "no interpolation")
}

func TestInterpolation_EmptyStringAlsoFlagged(t *testing.T) {
	f := newFixture()
	interpString(f)

	result := analyze(t, NewInterpolationRule(), f, nil)
	assert.Len(t, result.Findings, 1)
}

func TestInterpolation_NormalStringOK(t *testing.T) {
	f := newFixture()
	interpString(f, "count: ", expr(30, 35), " items")

	result := analyze(t, NewInterpolationRule(), f, nil)
	assert.Empty(t, result.Findings)
}

func TestInterpolation_StrayMarkerBeforeSegment(t *testing.T) {
	f := newFixture()
	interpString(f, "value: {", expr(30, 35))

	result := analyze(t, NewInterpolationRule(), f, nil)

	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0].Message, "stray")
	// The finding points at the suspicious segment, not the string.
	assert.Equal(t, syntax.NewSpan(30, 35), result.Findings[0].Span)
}

func TestInterpolation_EscapedMarkerOK(t *testing.T) {
	// An even run of markers is an intentional literal brace.
	f := newFixture()
	interpString(f, "value: {{", expr(30, 35))

	result := analyze(t, NewInterpolationRule(), f, nil)
	assert.Empty(t, result.Findings)
}

func TestInterpolation_TripleMarkerFlagged(t *testing.T) {
	// Escaped brace followed by a stray one.
	f := newFixture()
	interpString(f, "value: {{{", expr(30, 35))

	result := analyze(t, NewInterpolationRule(), f, nil)
	assert.Len(t, result.Findings, 1)
}

func TestInterpolation_MultipleStrays(t *testing.T) {
	f := newFixture()
	interpString(f, "a{", expr(20, 25), " b{", expr(40, 45))

	result := analyze(t, NewInterpolationRule(), f, nil)
	assert.Len(t, result.Findings, 2)
}

func TestInterpolation_AdjacentSegmentsOK(t *testing.T) {
	// A segment directly after another segment has no preceding text.
	f := newFixture()
	interpString(f, expr(20, 25), expr(25, 30))

	result := analyze(t, NewInterpolationRule(), f, nil)
	assert.Empty(t, result.Findings)
}

func TestEndsWithStrayMarker(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"plain", false},
		{"{", true},
		{"{{", false},
		{"{{{", true},
		{"a{b", false},
		{"a{{b{", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, endsWithStrayMarker(tt.text), "text %q", tt.text)
	}
}
