package terse

import (
	"regexp"
	"strconv"
	"strings"
)

// Match scores, per term kind.
const (
	scoreWildcard  = 0.9
	scoreSubstring = 0.85
	fuzzyThreshold = 0.7
)

// Score rates a record against a parsed query. Term scores combine by
// minimum within a group (AND, short-circuiting at zero) and group
// scores combine by maximum (OR). An empty query scores 1.0.
func Score(q Query, record *Value) float64 {
	if q.IsEmpty() {
		return 1.0
	}
	best := 0.0
	for _, g := range q.Groups {
		gs := 1.0
		for _, t := range g.Terms {
			ts := scoreTerm(t, record)
			if ts < gs {
				gs = ts
			}
			if gs == 0 {
				break
			}
		}
		if gs > best {
			best = gs
		}
	}
	return best
}

func scoreTerm(t Term, record *Value) float64 {
	var haystack string
	if t.Field == FieldAll {
		haystack = strings.ToLower(recordText(record))
	} else {
		haystack = strings.ToLower(fieldText(record.Get(t.Field)))
	}
	needle := strings.ToLower(t.Value)

	switch {
	case t.Exact:
		// Exact-phrase terms look for the value still wrapped in
		// quotes, as it appears in the record serialization.
		match := strings.Contains(haystack, "\""+needle+"\"")
		if t.Negate {
			match = !match
		}
		if match {
			return 1.0
		}
		return 0.0

	case t.Fuzzy:
		// A negated fuzzy term never scores positively: a miss stays
		// zero and a hit is suppressed rather than inverted.
		if t.Negate {
			return 0.0
		}
		sim := similarity(haystack, needle)
		if sim > fuzzyThreshold {
			return sim
		}
		return 0.0

	case strings.ContainsAny(needle, "*?"):
		match := wildcardMatch(needle, haystack)
		if t.Negate {
			match = !match
		}
		if match {
			return scoreWildcard
		}
		return 0.0

	default:
		match := strings.Contains(haystack, needle)
		if t.Negate {
			match = !match
		}
		if match {
			return scoreSubstring
		}
		return 0.0
	}
}

// recordText serializes a whole record for _all matching. String
// values keep their quotes so exact-phrase terms can anchor on them.
func recordText(v *Value) string {
	b, err := ToJSON(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// fieldText renders a single field value. Scalars render bare so
// substring and wildcard terms see the plain text; containers fall
// back to their serialization.
func fieldText(v *Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.typ {
	case TypeBool:
		return strconv.FormatBool(v.boolVal)
	case TypeInt:
		return strconv.FormatInt(v.intVal, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.floatVal, 'f', -1, 64)
	case TypeStr:
		return v.strVal
	default:
		return recordText(v)
	}
}

// wildcardMatch translates * and ? into an anchored pattern and tests
// the whole haystack against it.
func wildcardMatch(pattern, s string) bool {
	var sb strings.Builder
	sb.WriteString("(?s)^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// similarity is the fuzzy score basis: the greater of a character
// overlap ratio and an edit-distance ratio, the latter only
// considered when the edit distance is below 4.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	sim := 2.0 * float64(lcsLength(a, b)) / float64(len(a)+len(b))
	if dist := levenshtein(a, b); dist < 4 {
		maxLen := len(a)
		if len(b) > maxLen {
			maxLen = len(b)
		}
		if ratio := 1.0 - float64(dist)/float64(maxLen); ratio > sim {
			sim = ratio
		}
	}
	return sim
}

// lcsLength computes the longest-common-subsequence length between
// two strings with a two-row dynamic program.
func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// levenshtein computes the edit distance between two strings with a
// two-row dynamic program.
func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			min := prev[j] + 1
			if curr[j-1]+1 < min {
				min = curr[j-1] + 1
			}
			if prev[j-1]+cost < min {
				min = prev[j-1] + cost
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
