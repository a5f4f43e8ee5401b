package differ

import "go.uber.org/zap"

// DefaultExcludeFields is the exclusion set applied when the caller does
// not supply one. The go_article_service entry skips a legacy wrapper
// field that upstream services inject around payloads.
var DefaultExcludeFields = []string{"go_article_service"}

// Options configures a comparison. Every knob is enumerated here and
// defaulted in one place by DefaultOptions; nothing is resolved ad hoc at
// call sites. The zero value disables every check, so construct via
// DefaultOptions and override.
type Options struct {
	// Path prefixes every reported path. An empty Path marks the initial
	// call, which is where the containers-only root validation happens.
	Path string

	// CheckValue compares leaf values. When disabled, only the special
	// value check runs (blank-string and non-positive-number warnings).
	CheckValue bool
	// CheckMissing reports origin fields absent from current.
	CheckMissing bool
	// CheckRedundant reports current fields absent from origin.
	CheckRedundant bool
	// CheckType reports type conflicts between compared leaves.
	CheckType bool

	// ExcludeFields holds dotted exclusion patterns; see shouldExclude for
	// the matching rules. Membership is what matters, order does not.
	ExcludeFields []string

	// IgnoreOrder reconciles sequences by content instead of position.
	IgnoreOrder bool

	// TypeGroups declares sets of type tags as mutually compatible and
	// opts in to value equivalence between them. Empty means no
	// cross-type tolerance at all.
	TypeGroups []TypeGroup

	// Logger receives traversal diagnostics (sequence lengths, visited
	// paths). It never influences the records produced. Nil means no
	// logging.
	Logger *zap.Logger
}

// DefaultOptions returns the standard configuration: value, missing and
// type checks on, redundancy off, order-insensitive sequences, the default
// exclusion set and no type groups.
func DefaultOptions() *Options {
	return &Options{
		CheckValue:     true,
		CheckMissing:   true,
		CheckRedundant: false,
		CheckType:      true,
		ExcludeFields:  append([]string(nil), DefaultExcludeFields...),
		IgnoreOrder:    true,
	}
}
