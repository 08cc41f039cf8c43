package fieldcheck

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *RuleError) by Build in strict mode.
// Use errors.Is to check.
var (
	ErrMissingKey   = errors.New("rule has no key")
	ErrMissingTest  = errors.New("rule has no test")
	ErrDuplicateKey = errors.New("duplicate rule key")
)

// RuleError reports a malformed rule rejected by Build under StrictRules.
// Index is the rule's position in the RuleSet; Key is empty when the rule
// had none. Err wraps the sentinel for errors.Is/errors.As.
type RuleError struct {
	Index int
	Key   string
	Err   error
}

func (e *RuleError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("rule %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("rule %d (%s): %v", e.Index, e.Key, e.Err)
}

// Unwrap supports errors.Is/errors.As on wrapped chains
// (e.g. errors.Is(err, ErrMissingTest)).
func (e *RuleError) Unwrap() error { return e.Err }

// IsRuleError returns true if err is or wraps a *RuleError.
func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}
