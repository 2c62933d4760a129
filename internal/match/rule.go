package match

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Rule is a case-insensitive keyword predicate over cell text.
//
// A text matches when it equals one of Equals, or when it contains every
// AllOf keyword and, if AnyOf is set, at least one AnyOf keyword.
// The zero Rule matches nothing.
type Rule struct {
	AllOf  Keywords `yaml:"all_of,omitempty"`
	AnyOf  Keywords `yaml:"any_of,omitempty"`
	Equals Keywords `yaml:"equals,omitempty"`
}

// AllOf returns a rule requiring every keyword.
func AllOf(keywords ...string) Rule {
	return Rule{AllOf: keywords}
}

// AnyOf returns a rule requiring at least one keyword.
func AnyOf(keywords ...string) Rule {
	return Rule{AnyOf: keywords}
}

// Equals returns a rule matching any of the given texts exactly.
func Equals(texts ...string) Rule {
	return Rule{Equals: texts}
}

// IsZero reports whether the rule has no keywords at all.
func (r Rule) IsZero() bool {
	return len(r.AllOf) == 0 && len(r.AnyOf) == 0 && len(r.Equals) == 0
}

// Match reports whether text satisfies the rule.
func (r Rule) Match(text string) bool {
	folded := Fold(text)
	if folded == "" {
		return false
	}

	for _, eq := range r.Equals {
		if folded == Fold(eq) {
			return true
		}
	}

	if len(r.AllOf) == 0 && len(r.AnyOf) == 0 {
		return false
	}

	for _, kw := range r.AllOf {
		if !strings.Contains(folded, Fold(kw)) {
			return false
		}
	}

	if len(r.AnyOf) == 0 {
		return true
	}

	return slices.ContainsFunc(r.AnyOf, func(kw string) bool {
		return strings.Contains(folded, Fold(kw))
	})
}

// Keywords returns all keywords of the rule in declaration order.
func (r Rule) Keywords() []string {
	out := make([]string, 0, len(r.Equals)+len(r.AllOf)+len(r.AnyOf))
	out = append(out, r.Equals...)
	out = append(out, r.AllOf...)

	return append(out, r.AnyOf...)
}

// String renders the rule for error messages.
func (r Rule) String() string {
	var parts []string
	if len(r.Equals) > 0 {
		parts = append(parts, fmt.Sprintf("equals %q", []string(r.Equals)))
	}

	if len(r.AllOf) > 0 {
		parts = append(parts, fmt.Sprintf("all of %q", []string(r.AllOf)))
	}

	if len(r.AnyOf) > 0 {
		parts = append(parts, fmt.Sprintf("any of %q", []string(r.AnyOf)))
	}

	if len(parts) == 0 {
		return "<empty rule>"
	}

	return strings.Join(parts, " and ")
}

// Fold trims and case-folds s for keyword comparison.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// compact folds s and drops whitespace and separators.
func compact(s string) string {
	var b strings.Builder

	for _, r := range Fold(s) {
		if unicode.IsSpace(r) || isSeparator(r) {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '/' || r == '.'
}
