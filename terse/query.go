package terse

import "strings"

// FieldAll is the pseudo-field matched against a record's whole
// textual serialization.
const FieldAll = "_all"

// Term is one field/value predicate within a query.
type Term struct {
	Field  string // field name, or FieldAll
	Value  string // match value, quotes trimmed
	Fuzzy  bool   // ~ prefix: similarity match
	Exact  bool   // value was fully quoted: exact-phrase match
	Negate bool   // - prefix: invert the match
}

// Group is an AND-combined sequence of terms.
type Group struct {
	Terms []Term
}

// Query is an OR-combination of groups. The zero Query matches every
// record with score 1.0.
type Query struct {
	Groups []Group
}

// IsEmpty reports whether the query has no terms at all.
func (q Query) IsEmpty() bool {
	for _, g := range q.Groups {
		if len(g.Terms) > 0 {
			return false
		}
	}
	return true
}

// ParseQuery parses the query mini-language: groups separated by the
// word OR (any case, whitespace-bounded), terms separated by
// whitespace within a group.
func ParseQuery(s string) Query {
	var q Query
	var cur Group
	flush := func() {
		if len(cur.Terms) > 0 {
			q.Groups = append(q.Groups, cur)
			cur = Group{}
		}
	}
	for _, tok := range strings.Fields(s) {
		if strings.EqualFold(tok, "OR") {
			flush()
			continue
		}
		cur.Terms = append(cur.Terms, parseTerm(tok))
	}
	flush()
	return q
}

// parseTerm reads a term left to right: optional -, optional ~, then
// an optional field: prefix, then the value. A value that is fully
// quoted marks the term exact; the quote check runs before trimming
// so that exact-phrase terms are actually reachable.
func parseTerm(tok string) Term {
	t := Term{Field: FieldAll}
	if strings.HasPrefix(tok, "-") {
		t.Negate = true
		tok = tok[1:]
	}
	if strings.HasPrefix(tok, "~") {
		t.Fuzzy = true
		tok = tok[1:]
	}
	if field, value, ok := strings.Cut(tok, ":"); ok {
		t.Field = field
		tok = value
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, "\"") && strings.HasSuffix(tok, "\"") {
		t.Exact = true
	}
	t.Value = strings.Trim(tok, "\"")
	return t
}
