// Package testutil provides test helpers for fieldcheck (e.g. SpyRule).
package testutil

import (
	"github.com/skosovsky/fieldcheck"
)

// SpyRule is a configurable rule for tests that records every Test
// invocation, so tests can assert evaluation order and the candidate each
// rule saw. Not safe for concurrent use; the engine is single-threaded by
// contract.
type SpyRule[C, V any] struct {
	KeyVal         string
	Outcome        bool
	ValidTextVal   string
	InvalidTextVal string
	Calls          []fieldcheck.Candidate[V]
}

// Rule returns the fieldcheck.Rule backed by this spy. Texts left empty
// produce a silent outcome, matching the engine's optional-text contract.
func (s *SpyRule[C, V]) Rule() fieldcheck.Rule[C, V] {
	r := fieldcheck.Rule[C, V]{
		Key: s.key(),
		Test: func(_ C, c fieldcheck.Candidate[V]) bool {
			s.Calls = append(s.Calls, c)
			return s.Outcome
		},
	}
	if s.ValidTextVal != "" {
		r.ValidText = fieldcheck.Text[C](s.ValidTextVal)
	}
	if s.InvalidTextVal != "" {
		r.InvalidText = fieldcheck.Text[C](s.InvalidTextVal)
	}
	return r
}

func (s *SpyRule[C, V]) key() string {
	if s.KeyVal != "" {
		return s.KeyVal
	}
	return "spy"
}

// StaticRule returns a rule with a fixed outcome and both texts derived from
// the key ("<key> ok" / "<key> failed"), suitable for order and aggregation
// assertions.
func StaticRule[C, V any](key string, ok bool) fieldcheck.Rule[C, V] {
	return fieldcheck.Rule[C, V]{
		Key:         key,
		Test:        func(C, fieldcheck.Candidate[V]) bool { return ok },
		ValidText:   fieldcheck.Text[C](key + " ok"),
		InvalidText: fieldcheck.Text[C](key + " failed"),
	}
}
