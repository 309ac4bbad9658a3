// Package matching scores how well a candidate fits a job: skill overlap,
// industry experience, experience level and assessment skill frequencies.
//
// Every function in this package is total. Malformed input degrades to a
// "no signal" value (0, nil percent or an empty slice) instead of an error.
package matching

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type MatchKind string

const (
	MatchNone    MatchKind = ""
	MatchExact   MatchKind = "exact"
	MatchPartial MatchKind = "partial"
)

const (
	minPartialLen   = 3
	minPartialRatio = 0.5
)

// Normalize lowercases s, trims it and collapses internal whitespace runs to a
// single space. Compatibility forms (full-width letters, ligatures) are folded
// first so that "Ｇｏ" and "go" compare equal. Lowercasing can produce a
// string that is no longer in NFKC, so the fold runs again afterwards.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(strings.ToLower(norm.NFKC.String(s)))
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeList normalizes every entry, drops empties and removes duplicates
// keeping the first occurrence.
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		n := Normalize(it)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Match classifies a pair of skills. The result does not depend on argument
// order.
func Match(userSkill, jobSkill string) MatchKind {
	return matchNormalized(Normalize(userSkill), Normalize(jobSkill))
}

func matchNormalized(a, b string) MatchKind {
	if a == "" || b == "" {
		return MatchNone
	}
	if a == b {
		return MatchExact
	}

	shorter, longer := a, b
	if utf8.RuneCountInString(shorter) > utf8.RuneCountInString(longer) {
		shorter, longer = longer, shorter
	}
	sl := utf8.RuneCountInString(shorter)
	ll := utf8.RuneCountInString(longer)
	if sl < minPartialLen {
		return MatchNone
	}
	if !strings.Contains(longer, shorter) {
		return MatchNone
	}
	if sl >= minPartialLen || float64(sl)/float64(ll) >= minPartialRatio {
		return MatchPartial
	}
	return MatchNone
}
