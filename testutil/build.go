package testutil

import (
	"github.com/skosovsky/fieldcheck"
)

// MustBuild builds an evaluator in strict mode and panics on a malformed
// rule set, suitable for tests where rule authoring errors should abort
// immediately.
func MustBuild[C, V any](set fieldcheck.RuleSet[C, V]) fieldcheck.Evaluator[C, V] {
	ev, err := fieldcheck.Build(set, fieldcheck.StrictRules[V]())
	if err != nil {
		panic(err)
	}
	return ev
}
