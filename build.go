package fieldcheck

import "reflect"

// Evaluator runs one value snapshot through a bound rule set and returns the
// verdict plus optional feedback. It is stateless across calls: every call
// recomputes from scratch, in declaration order, at O(rules) cost. The
// default call is unfocused and accepts empty values; pass Focused and
// RequireValue to change that per call.
type Evaluator[C, V any] func(ctx C, value V, opts ...EvalOption) Result

// Build compiles a RuleSet into a reusable Evaluator closed over it.
// Rules with an empty Key or nil Test are filtered out here so the returned
// evaluator is total; with StrictRules, Build instead returns a *RuleError
// for the first malformed or duplicate-key rule. Build does no other work;
// all evaluation is deferred to each call.
//
// The engine places no recovery around rule callbacks: a panicking Test or
// text provider propagates to the caller.
func Build[C, V any](set RuleSet[C, V], opts ...BuildOption[V]) (Evaluator[C, V], error) {
	var o buildOptions[V]
	for _, opt := range opts {
		opt(&o)
	}
	rules, err := normalizeRules(set.Rules, o.strict)
	if err != nil {
		return nil, err
	}
	empty := o.empty
	if empty == nil {
		empty = isEmpty[V]
	}
	desc := set.Description

	return func(ctx C, value V, evalOpts ...EvalOption) Result {
		e := evalOptions{allowEmpty: true}
		for _, opt := range evalOpts {
			opt(&e)
		}
		// Empty value, empty allowed: the sole neutral state. No rule or
		// text callback runs.
		if e.allowEmpty && empty(value) {
			return Result{Validity: ValidityNone}
		}

		cand := Candidate[V]{Value: value, AllowEmpty: e.allowEmpty}
		valid := true
		var entries []Entry
		for _, r := range rules {
			ok := r.Test(ctx, cand)
			valid = valid && ok
			switch {
			case ok && r.ValidText != nil:
				entries = append(entries, Entry{Key: r.Key, Valid: true, Text: r.ValidText(ctx)})
			case !ok && r.InvalidText != nil:
				entries = append(entries, Entry{Key: r.Key, Valid: false, Text: r.InvalidText(ctx)})
			}
		}
		validity := ValidityValid
		if !valid {
			validity = ValidityInvalid
		}

		// Unfocused calls keep the verdict but suppress detail; the
		// description provider is not even called.
		if !e.focused {
			return Result{Validity: validity}
		}
		if desc == nil && len(entries) == 0 {
			return Result{Validity: validity}
		}
		fb := &Feedback{Entries: entries}
		if desc != nil {
			fb.Description = desc(ctx)
		}
		return Result{Validity: validity, Feedback: fb}
	}, nil
}

// normalizeRules copies the rule slice, dropping malformed rules. In strict
// mode the first malformed or duplicate-key rule aborts with a *RuleError.
// Duplicate keys are kept in non-strict mode: the source of truth is the
// declaration order, and each occurrence evaluates independently.
func normalizeRules[C, V any](rules []Rule[C, V], strict bool) ([]Rule[C, V], error) {
	out := make([]Rule[C, V], 0, len(rules))
	seen := make(map[string]struct{}, len(rules))
	for i, r := range rules {
		if r.Key == "" {
			if strict {
				return nil, &RuleError{Index: i, Err: ErrMissingKey}
			}
			continue
		}
		if r.Test == nil {
			if strict {
				return nil, &RuleError{Index: i, Key: r.Key, Err: ErrMissingTest}
			}
			continue
		}
		if _, dup := seen[r.Key]; dup && strict {
			return nil, &RuleError{Index: i, Key: r.Key, Err: ErrDuplicateKey}
		}
		seen[r.Key] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

// isEmpty is the default emptiness check: the type's zero value, with
// length-zero strings, slices, and maps counting as empty even when non-nil.
// Override per evaluator with EmptyFunc.
func isEmpty[V any](v V) bool {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}
