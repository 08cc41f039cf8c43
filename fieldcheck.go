package fieldcheck

// Validity is the aggregate verdict of one evaluation.
type Validity int

const (
	// ValidityNone means no verdict was produced: the value was empty and
	// empty values are acceptable for this call.
	ValidityNone Validity = iota
	ValidityValid
	ValidityInvalid
)

// String returns "none", "valid", or "invalid".
func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// Candidate is the argument passed to every rule's Test: the value under
// evaluation plus whether empty values are acceptable for this call.
// Rules that care about emptiness when AllowEmpty is false must check it
// themselves; the evaluator only short-circuits when AllowEmpty is true.
type Candidate[V any] struct {
	Value      V
	AllowEmpty bool
}

// Rule is a named predicate plus optional feedback text for either outcome.
// Test receives the caller-owned context C explicitly; the engine never
// retains C between calls. A rule with an empty Key or nil Test is dropped
// by Build (or rejected, see StrictRules). ValidText and InvalidText are
// optional: a rule with no text for its outcome contributes to the verdict
// but produces no feedback entry.
type Rule[C, V any] struct {
	Key         string
	Test        func(ctx C, c Candidate[V]) bool
	ValidText   func(ctx C) string
	InvalidText func(ctx C) string
}

// RuleSet describes a validator: an optional summary text provider plus an
// ordered list of rules. Order is significant; feedback entries are produced
// in declaration order. Build copies the rule slice, so a RuleSet is safe to
// reuse and is never mutated by the engine.
type RuleSet[C, V any] struct {
	Description func(ctx C) string
	Rules       []Rule[C, V]
}

// Entry is one rule's feedback: its key, whether the rule passed, and the
// text produced by the matching text provider. Key is stable across calls,
// so presentation layers can use it as the iteration identity.
type Entry struct {
	Key   string
	Valid bool
	Text  string
}

// Feedback is the detail shown while the field is focused: an optional
// rendered description plus the ordered per-rule entries.
type Feedback struct {
	Description string
	Entries     []Entry
}

// Result is what one evaluation returns. Feedback is nil when there is
// nothing to show: no verdict, field not focused, or no description and no
// entries.
type Result struct {
	Validity Validity
	Feedback *Feedback
}

// Text adapts a fixed string into a text provider that ignores the context.
// Use it for rules whose feedback does not depend on contextual state.
func Text[C any](s string) func(C) string {
	return func(C) string { return s }
}
