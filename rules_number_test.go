package fieldcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMin_Max_Between(t *testing.T) {
	min := Min[noCtx]("min", 18, "", "too young")
	max := Max[noCtx]("max", 120, "", "too old")
	between := Between[noCtx]("range", 1, 10, "in range", "out of range")

	tests := []struct {
		name  string
		rule  Rule[noCtx, int]
		value int
		want  bool
	}{
		{"min below", min, 17, false},
		{"min at", min, 18, true},
		{"max at", max, 120, true},
		{"max above", max, 121, false},
		{"between low edge", between, 1, true},
		{"between high edge", between, 10, true},
		{"between below", between, 0, false},
		{"between above", between, 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := runRule(t, tt.rule, tt.value)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestNumericRules_Float(t *testing.T) {
	r := Between[noCtx]("weight", 0.5, 2.5, "", "out of range")
	ok, _ := runRule(t, r, 1.75)
	assert.True(t, ok)
	ok, _ = runRule(t, r, 2.51)
	assert.False(t, ok)
}

func TestNumericRules_InEvaluator(t *testing.T) {
	// Zero short-circuits by default for numbers too; RequireValue forces
	// the range rule to see it.
	eval, err := Build(RuleSet[noCtx, int]{
		Rules: []Rule[noCtx, int]{
			Between[noCtx]("range", 1, 100, "", "must be 1-100"),
		},
	})
	require.NoError(t, err)

	res := eval(noCtx{}, 0, Focused())
	assert.Equal(t, ValidityNone, res.Validity)

	res = eval(noCtx{}, 0, Focused(), RequireValue())
	assert.Equal(t, ValidityInvalid, res.Validity)
	require.NotNil(t, res.Feedback)
	assert.Equal(t, "must be 1-100", res.Feedback.Entries[0].Text)

	res = eval(noCtx{}, 42, Focused())
	assert.Equal(t, ValidityValid, res.Validity)
	assert.Nil(t, res.Feedback, "passing range rule has no valid text")
}
