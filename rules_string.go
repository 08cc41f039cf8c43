package fieldcheck

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Prebuilt string rules. Each returns a ready Rule with key and fixed
// feedback texts; pass "" for a text to leave that outcome silent. Lengths
// are counted in runes, not bytes.

// NotBlank fails when the value is empty after trimming whitespace.
func NotBlank[C any](key, valid, invalid string) Rule[C, string] {
	return Rule[C, string]{
		Key: key,
		Test: func(_ C, c Candidate[string]) bool {
			return strings.TrimSpace(c.Value) != ""
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}

// MinLen fails when the value is shorter than min runes.
func MinLen[C any](key string, min int, valid, invalid string) Rule[C, string] {
	return Rule[C, string]{
		Key: key,
		Test: func(_ C, c Candidate[string]) bool {
			return utf8.RuneCountInString(c.Value) >= min
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}

// MaxLen fails when the value is longer than max runes.
func MaxLen[C any](key string, max int, valid, invalid string) Rule[C, string] {
	return Rule[C, string]{
		Key: key,
		Test: func(_ C, c Candidate[string]) bool {
			return utf8.RuneCountInString(c.Value) <= max
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}

// ExactLen fails when the value is not exactly length runes.
func ExactLen[C any](key string, length int, valid, invalid string) Rule[C, string] {
	return Rule[C, string]{
		Key: key,
		Test: func(_ C, c Candidate[string]) bool {
			return utf8.RuneCountInString(c.Value) == length
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}

// Matches fails when the value does not match re. The caller compiles the
// pattern once; a nil re always fails.
func Matches[C any](key string, re *regexp.Regexp, valid, invalid string) Rule[C, string] {
	return Rule[C, string]{
		Key: key,
		Test: func(_ C, c Candidate[string]) bool {
			return re != nil && re.MatchString(c.Value)
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}

// OneOf fails when the value is not one of allowed.
func OneOf[C any](key string, allowed []string, valid, invalid string) Rule[C, string] {
	return Rule[C, string]{
		Key: key,
		Test: func(_ C, c Candidate[string]) bool {
			return slices.Contains(allowed, c.Value)
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}

// textOrNil maps "" to an absent provider so the outcome stays silent.
func textOrNil[C any](s string) func(C) string {
	if s == "" {
		return nil
	}
	return Text[C](s)
}
