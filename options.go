package fieldcheck

// buildOptions hold optional Build settings (strict mode, emptiness check).
type buildOptions[V any] struct {
	strict bool
	empty  func(V) bool
}

// BuildOption configures Build (e.g. StrictRules, EmptyFunc).
type BuildOption[V any] func(*buildOptions[V])

// StrictRules makes Build fail fast on a malformed rule (empty key, nil
// test) or a duplicate key, returning a *RuleError instead of silently
// dropping the rule. Use during development or for rule sets assembled from
// external configuration.
func StrictRules[V any]() BuildOption[V] {
	return func(o *buildOptions[V]) {
		o.strict = true
	}
}

// EmptyFunc overrides the emptiness check used by the empty-value
// short-circuit. The default treats the type's zero value (and length-zero
// strings, slices, and maps) as empty.
func EmptyFunc[V any](fn func(V) bool) BuildOption[V] {
	return func(o *buildOptions[V]) {
		o.empty = fn
	}
}

// evalOptions hold per-call state (focus, empty-value acceptance).
type evalOptions struct {
	focused    bool
	allowEmpty bool
}

// EvalOption configures a single evaluator call (e.g. Focused, RequireValue).
type EvalOption func(*evalOptions)

// Focused marks the field as actively focused for this call. Only focused
// calls produce Feedback; unfocused calls still return the verdict.
func Focused() EvalOption {
	return func(e *evalOptions) {
		e.focused = true
	}
}

// RequireValue makes an empty value go through the rule pass instead of
// short-circuiting to ValidityNone. Rules that care about emptiness must
// then test it explicitly (Candidate.AllowEmpty is false).
func RequireValue() EvalOption {
	return func(e *evalOptions) {
		e.allowEmpty = false
	}
}
