package rules

// Canonical names of the well-known types and members the built-in
// rules query the resolver for. These mirror the front end's type
// universe; a program that never mentions them simply produces no
// findings from the corresponding rules.
const (
	// GrowableListType is the canonical mutable-sequence container.
	GrowableListType = "core.collections.List"

	// ConcurrentMapType is the canonical concurrent map container.
	ConcurrentMapType = "core.collections.concurrent.Map"

	// MapUtilType declares the get-or-create convenience method whose
	// use on concurrent maps is unsafe.
	MapUtilType = "core.collections.MapUtil"

	// GetOrCreateMethod is the unsafe accessor's name.
	GetOrCreateMethod = "GetOrCreate"

	// WorkTokenType is the cancellation/work-state token type that
	// carries the shared sentinel members.
	WorkTokenType = "core.work.Token"

	// WorkContextType is the richer work-state interface; parameters
	// implementing it make the sentinels redundant.
	WorkContextType = "core.work.Context"
)

// workTokenSentinels are the two static members of WorkTokenType that
// must not be used where a richer work-state parameter is in scope.
var workTokenSentinels = map[string]bool{
	"None":  true,
	"Empty": true,
}

// chainMethodNames is the fixed set of deferred-sequence-transform
// names. A single constructor argument that is a call to one of these
// is a lazy pipeline; materializing it into a literal would change
// evaluation semantics, so the finding is suppressed.
//
// Matching is textual by design: the names are not verified to
// originate from the sequence-transform library, so an unrelated
// method that happens to share a name also suppresses the finding.
var chainMethodNames = map[string]bool{
	"Where":             true,
	"Select":            true,
	"SelectMany":        true,
	"OrderBy":           true,
	"OrderByDescending": true,
	"ThenBy":            true,
	"ThenByDescending":  true,
	"GroupBy":           true,
	"Join":              true,
	"Skip":              true,
	"Take":              true,
	"Distinct":          true,
	"Union":             true,
	"Intersect":         true,
	"Except":            true,
	"Zip":               true,
	"DefaultIfEmpty":    true,
}
