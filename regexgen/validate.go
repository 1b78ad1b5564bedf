// Package regexgen - structural validation of candidate expressions.
//
// IsValid is total and pure: any string maps to true or false, nothing
// errors, nothing mutates, and repeated calls agree. The checks run
// cheapest-first and short-circuit on the first failure.
package regexgen

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// letterRunCap rejects candidates containing four or more consecutive
// letters regardless of the per-Params run floor.
var letterRunCap = regexp.MustCompile(`[a-zA-Z]{4,}`)

// IsValid reports whether candidate satisfies every structural rule:
//
//   - rune length within [MinLength, MaxLength]
//   - one or two repetition stars
//   - at most two union bars
//   - triple parenthesis nesting "(((" / ")))" absent
//   - no doubled star and no run of four or more letters
//   - at least one opening parenthesis
//   - at least one literal run of RunLength letters or more
//   - no alternation group whose branches repeat one identical character
//
// Complexity: O(len(candidate)) with small regexp constants.
func IsValid(p Params, candidate string) bool {
	if n := utf8.RuneCountInString(candidate); n < p.MinLength || n > p.MaxLength {
		return false
	}
	if stars := strings.Count(candidate, "*"); stars < 1 || stars > 2 {
		return false
	}
	if strings.Count(candidate, "|") > 2 {
		return false
	}
	if strings.Contains(candidate, "(((") || strings.Contains(candidate, ")))") {
		return false
	}
	if strings.Contains(candidate, "**") || letterRunCap.MatchString(candidate) {
		return false
	}
	if !strings.Contains(candidate, "(") {
		return false
	}
	if !p.runPattern.MatchString(candidate) {
		return false
	}
	return !hasTrivialUnion(candidate)
}

// hasTrivialUnion scans every innermost parenthesized group and reports
// whether any is an alternation whose branches all repeat one and the
// same character, e.g. (a|a) or (aa|a). Groups with nested parentheses
// are inspected at their own opening parenthesis instead.
func hasTrivialUnion(candidate string) bool {
	rs := []rune(candidate)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '(' {
			continue
		}
		j := i + 1
		for j < len(rs) && rs[j] != '(' && rs[j] != ')' {
			j++
		}
		if j == len(rs) || rs[j] != ')' {
			continue
		}
		if trivialAlternation(rs[i+1 : j]) {
			return true
		}
	}
	return false
}

// trivialAlternation reports whether group (already parenthesis-free)
// splits on '|' into two or more branches that are all non-empty runs of
// one identical character.
func trivialAlternation(group []rune) bool {
	parts := strings.Split(string(group), "|")
	if len(parts) < 2 {
		return false
	}
	var common rune
	for _, part := range parts {
		ch, ok := uniformRun(part)
		if !ok {
			return false
		}
		if common == 0 {
			common = ch
			continue
		}
		if ch != common {
			return false
		}
	}
	return true
}

// uniformRun reports the single character a non-empty string repeats.
// The second return is false for empty or mixed strings.
func uniformRun(s string) (rune, bool) {
	var ch rune
	first := true
	for _, r := range s {
		if first {
			ch, first = r, false
			continue
		}
		if r != ch {
			return 0, false
		}
	}
	if first {
		return 0, false
	}
	return ch, true
}

// runeLen is a shorthand for the rune length of s; candidates may carry
// multi-byte symbols only through caller misuse, but counting runes keeps
// the length window honest either way.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
