package syntax

// Kind classifies the type of a syntax node.
type Kind uint16

// Node kinds for the subset of the source language the analyzer inspects.
// Structural kinds first, then expression kinds, then interpolation parts.
const (
	KindInvalid Kind = iota

	// Structural nodes.
	KindSourceUnit
	KindRoutineDecl
	KindParamList
	KindParam
	KindBlock

	// Expression nodes.
	KindObjectCreation
	KindCollectionLiteral
	KindSpreadElement
	KindInitializerList
	KindArgumentList
	KindInvocation
	KindMemberAccess
	KindIdentifier
	KindNumericLiteral
	KindStringLiteral
	KindBoolLiteral
	KindBinaryExpr

	// Interpolated strings and their parts.
	KindInterpolatedString
	KindInterpText
	KindInterpExpr

	// Fallback for constructs the analyzer has no interest in.
	KindRaw
)

// kindNames maps kinds to the stable names used in tree dumps.
var kindNames = map[Kind]string{
	KindInvalid:            "invalid",
	KindSourceUnit:         "source-unit",
	KindRoutineDecl:        "routine-decl",
	KindParamList:          "param-list",
	KindParam:              "param",
	KindBlock:              "block",
	KindObjectCreation:     "object-creation",
	KindCollectionLiteral:  "collection-literal",
	KindSpreadElement:      "spread-element",
	KindInitializerList:    "initializer-list",
	KindArgumentList:       "argument-list",
	KindInvocation:         "invocation",
	KindMemberAccess:       "member-access",
	KindIdentifier:         "identifier",
	KindNumericLiteral:     "numeric-literal",
	KindStringLiteral:      "string-literal",
	KindBoolLiteral:        "bool-literal",
	KindBinaryExpr:         "binary-expr",
	KindInterpolatedString: "interpolated-string",
	KindInterpText:         "interp-text",
	KindInterpExpr:         "interp-expr",
	KindRaw:                "raw",
}

// kindsByName is the reverse mapping, built once at init.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the stable dump name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// KindFromString returns the kind for a stable dump name.
// Unknown names map to KindInvalid with ok=false.
func KindFromString(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsExpression returns true for expression-level kinds.
func (k Kind) IsExpression() bool {
	switch k {
	case KindObjectCreation, KindCollectionLiteral, KindSpreadElement,
		KindInvocation, KindMemberAccess, KindIdentifier,
		KindNumericLiteral, KindStringLiteral, KindBoolLiteral,
		KindBinaryExpr, KindInterpolatedString:
		return true
	default:
		return false
	}
}

// IsLiteral returns true for literal token kinds.
func (k Kind) IsLiteral() bool {
	switch k {
	case KindNumericLiteral, KindStringLiteral, KindBoolLiteral:
		return true
	default:
		return false
	}
}
