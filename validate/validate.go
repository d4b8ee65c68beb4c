// Package validate provides validators for field models.
//
// Each function is, or returns, a field.Validator. Validators compose with
// All and Any:
//
//	name := field.New(validate.NonEmpty)
//	code := field.New(validate.All(validate.MinRunes(3), validate.Match(codePattern)))
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/octoberswimmer/formic/field"
)

// NonEmpty reports whether the value contains anything besides whitespace.
func NonEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinRunes returns a validator requiring at least n runes after leading and
// trailing whitespace is trimmed.
func MinRunes(n int) field.Validator {
	return func(value string) bool {
		return utf8.RuneCountInString(strings.TrimSpace(value)) >= n
	}
}

// MaxRunes returns a validator allowing at most n runes. The value is not
// trimmed; whitespace the user typed counts against the limit.
func MaxRunes(n int) field.Validator {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= n
	}
}

// Match returns a validator requiring the pattern to match the whole value,
// regardless of whether the pattern itself is anchored.
func Match(re *regexp.Regexp) field.Validator {
	// The leftmost match of an unanchored pattern need not span the whole
	// value (`go|golang` finds "go" in "golang"), so anchor the pattern
	// itself. The group keeps alternations and inline flags scoped.
	anchored := regexp.MustCompile(`\A(?:` + re.String() + `)\z`)
	return func(value string) bool {
		return anchored.MatchString(value)
	}
}

// All returns a validator that passes when every given validator passes.
// With no validators every value passes. Nil validators are skipped.
func All(vs ...field.Validator) field.Validator {
	return func(value string) bool {
		for _, v := range vs {
			if v != nil && !v(value) {
				return false
			}
		}
		return true
	}
}

// Any returns a validator that passes when at least one given validator
// passes. With no validators every value passes. A nil validator counts as
// passing.
func Any(vs ...field.Validator) field.Validator {
	return func(value string) bool {
		for _, v := range vs {
			if v == nil || v(value) {
				return true
			}
		}
		return len(vs) == 0
	}
}
