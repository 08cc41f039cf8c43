// Package fieldcheck provides a declarative validation engine for interactive
// input fields: ordered named rules are evaluated against a value snapshot
// and produce a structured verdict plus per-rule feedback for live display.
//
// # Overview
//
// A caller authors a RuleSet once (an optional description plus ordered
// rules), hands it to Build to obtain a reusable Evaluator, then invokes the
// evaluator on every value or focus change. The engine returns a Result:
// the aggregate verdict (the AND of all rule outcomes, or ValidityNone when
// an acceptable empty value short-circuits evaluation) and, only while the
// field is focused, the ordered per-rule Feedback for rendering.
//
// Pipeline: RuleSet → Build (normalize rules) → Evaluator → call per
// keystroke with context + value → Result → caller-owned rendering.
//
// # Key concepts
//
//   - Explicit context: every rule callback receives the caller-owned
//     context as its first argument, so rules can compare against sibling
//     state without the engine retaining anything between calls.
//   - Silent rules: a rule with no text for its outcome still contributes to
//     the verdict but produces no feedback entry, so rule sets can gate
//     validity without UI noise.
//   - Focus gating: unfocused calls return the verdict with nil Feedback;
//     detail is never shown for a field the user is not editing.
//
// The engine is synchronous and stateless: no caching, no debouncing, no
// goroutines. Scheduling of re-validation belongs to the caller.
//
// # Example
//
//	type state struct{ Username string }
//	set := fieldcheck.RuleSet[state, string]{
//	    Description: fieldcheck.Text[state]("Password requirements"),
//	    Rules: []fieldcheck.Rule[state, string]{
//	        fieldcheck.MinLen[state]("length", 8, "Long enough", "Too short"),
//	    },
//	}
//	eval, err := fieldcheck.Build(set)
//	if err != nil { ... }
//	res := eval(state{Username: "bob"}, "abc", fieldcheck.Focused(), fieldcheck.RequireValue())
//	// res.Validity == fieldcheck.ValidityInvalid
//	// res.Feedback.Entries[0] == Entry{Key: "length", Valid: false, Text: "Too short"}
package fieldcheck
