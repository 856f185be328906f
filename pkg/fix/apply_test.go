package fix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlabs/flint/pkg/syntax"
)

// fixtureDoc builds a document with three identifier statements:
//
//	source-unit
//	├── identifier "a" [10,20)
//	├── identifier "b" [30,40)
//	└── identifier "c" [50,60)
func fixtureDoc() *syntax.Document {
	root := syntax.NewNode(syntax.KindSourceUnit, syntax.NewSpan(0, 100))
	root.Append(syntax.Ident("a", syntax.NewSpan(10, 20)))
	root.Append(syntax.Ident("b", syntax.NewSpan(30, 40)))
	root.Append(syntax.Ident("c", syntax.NewSpan(50, 60)))
	return syntax.NewDocument("demo.tree.json", nil, root)
}

// rename builds a proposal replacing the identifier at span with name.
func rename(span syntax.Span, name string) Proposal {
	return Proposal{
		Title:      "rename to " + name,
		Transform:  "test/rename",
		TargetKind: syntax.KindIdentifier,
		TargetSpan: span,
		Rewrite: func(_, target *syntax.Node) (*syntax.Node, error) {
			return syntax.Ident(name, target.Span), nil
		},
	}
}

func names(root *syntax.Node) []string {
	var out []string
	for _, n := range syntax.FindByKind(root, syntax.KindIdentifier) {
		out = append(out, n.Name)
	}
	return out
}

func TestApplyOne(t *testing.T) {
	doc := fixtureDoc()

	got, err := ApplyOne(doc, rename(syntax.NewSpan(30, 40), "renamed"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "renamed", "c"}, names(got.Root))
	// Input document untouched.
	assert.Equal(t, []string{"a", "b", "c"}, names(doc.Root))
}

func TestApplyOne_TargetMissing(t *testing.T) {
	doc := fixtureDoc()

	_, err := ApplyOne(doc, rename(syntax.NewSpan(70, 80), "x"))
	assert.ErrorIs(t, err, ErrInapplicable)
}

func TestApplyOne_RewriteError(t *testing.T) {
	doc := fixtureDoc()
	boom := errors.New("boom")
	p := rename(syntax.NewSpan(10, 20), "x")
	p.Rewrite = func(_, _ *syntax.Node) (*syntax.Node, error) { return nil, boom }

	_, err := ApplyOne(doc, p)
	assert.ErrorIs(t, err, boom)
}

func TestApplyOne_RewriteDeclines(t *testing.T) {
	doc := fixtureDoc()
	p := rename(syntax.NewSpan(10, 20), "x")
	p.Rewrite = func(_, _ *syntax.Node) (*syntax.Node, error) { return nil, nil }

	_, err := ApplyOne(doc, p)
	assert.ErrorIs(t, err, ErrInapplicable)
}

func TestApplyAll_Disjoint_MatchesSequential(t *testing.T) {
	doc := fixtureDoc()
	proposals := []Proposal{
		rename(syntax.NewSpan(50, 60), "z"),
		rename(syntax.NewSpan(10, 20), "x"),
		rename(syntax.NewSpan(30, 40), "y"),
	}

	batch, err := ApplyAll(doc, proposals)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, names(batch.Doc.Root))
	assert.Len(t, batch.Applied, 3)
	assert.Empty(t, batch.Skipped)

	// Sequential one-at-a-time application ends in the same tree.
	seq := fixtureDoc()
	for _, p := range proposals {
		next, err := ApplyOne(seq, p)
		require.NoError(t, err)
		seq = next
	}
	assert.Equal(t, names(seq.Root), names(batch.Doc.Root))
}

func TestApplyAll_AppliedInSourceOrder(t *testing.T) {
	doc := fixtureDoc()
	batch, err := ApplyAll(doc, []Proposal{
		rename(syntax.NewSpan(50, 60), "z"),
		rename(syntax.NewSpan(10, 20), "x"),
	})
	require.NoError(t, err)

	require.Len(t, batch.Applied, 2)
	assert.Equal(t, 10, batch.Applied[0].TargetSpan.Start)
	assert.Equal(t, 50, batch.Applied[1].TargetSpan.Start)
}

func TestApplyAll_OverlapSkipsLaterStart(t *testing.T) {
	// Two proposals over the same identifier: only the first (by
	// span order, then proposal order) is applied.
	doc := fixtureDoc()
	first := rename(syntax.NewSpan(30, 40), "first")
	second := rename(syntax.NewSpan(30, 40), "second")

	batch, err := ApplyAll(doc, []Proposal{first, second})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "first", "c"}, names(batch.Doc.Root))
	require.Len(t, batch.Skipped, 1)
	assert.Equal(t, "rename to second", batch.Skipped[0].Title)
}

func TestApplyAll_NestedTargetSkipped(t *testing.T) {
	// A proposal on the whole unit conflicts with one inside it.
	doc := fixtureDoc()

	outer := Proposal{
		Title:      "rewrite unit",
		Transform:  "test/unit",
		TargetKind: syntax.KindSourceUnit,
		TargetSpan: syntax.NewSpan(0, 100),
		Rewrite: func(_, target *syntax.Node) (*syntax.Node, error) {
			return syntax.NewNode(syntax.KindSourceUnit, target.Span), nil
		},
	}
	inner := rename(syntax.NewSpan(30, 40), "x")

	batch, err := ApplyAll(doc, []Proposal{inner, outer})
	require.NoError(t, err)

	// The outer proposal starts earlier, so the inner one is skipped.
	require.Len(t, batch.Applied, 1)
	assert.Equal(t, "rewrite unit", batch.Applied[0].Title)
	require.Len(t, batch.Skipped, 1)
	assert.Equal(t, "rename to x", batch.Skipped[0].Title)
}

func TestApplyAll_InapplicableSurvivorSkipped(t *testing.T) {
	doc := fixtureDoc()
	missing := rename(syntax.NewSpan(70, 80), "ghost")
	present := rename(syntax.NewSpan(10, 20), "x")

	batch, err := ApplyAll(doc, []Proposal{missing, present})
	require.NoError(t, err)

	assert.Len(t, batch.Applied, 1)
	require.Len(t, batch.Skipped, 1)
	assert.Equal(t, "rename to ghost", batch.Skipped[0].Title)
}

func TestApplyAll_InvalidProposalSkipped(t *testing.T) {
	doc := fixtureDoc()
	invalid := Proposal{Transform: "test/broken", TargetSpan: syntax.NewSpan(10, 20)}

	batch, err := ApplyAll(doc, []Proposal{invalid})
	require.NoError(t, err)
	assert.Empty(t, batch.Applied)
	assert.Len(t, batch.Skipped, 1)
}

func TestApplyAll_Empty(t *testing.T) {
	doc := fixtureDoc()

	batch, err := ApplyAll(doc, nil)
	require.NoError(t, err)
	assert.Same(t, doc, batch.Doc)
}

func TestApplyAll_RewriteErrorFailsBatch(t *testing.T) {
	doc := fixtureDoc()
	boom := errors.New("boom")
	bad := rename(syntax.NewSpan(10, 20), "x")
	bad.Rewrite = func(_, _ *syntax.Node) (*syntax.Node, error) { return nil, boom }

	_, err := ApplyAll(doc, []Proposal{bad})
	assert.ErrorIs(t, err, boom)
}
