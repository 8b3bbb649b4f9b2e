// Package terse implements a compact, token-minimizing text codec for
// JSON-shaped data, plus a small query engine for ranking decoded
// records.
//
// The codec shrinks documents two ways: structural literals are a
// single character, and map keys are replaced with short base-36
// codes. Roughly thirty common keys (name, type, id, ...) carry fixed
// pre-seeded codes and cost nothing on the wire; other keys are
// allocated codes on the fly and declared once in a K{...}K header.
//
// # Syntax
//
//	Header:  K{u:custom_field,v:other_key}K
//	Map:     {a:"John",b:"user"}
//	List:    [1,2,3]
//	Null:    n
//	Bool:    t / f
//	String:  "quoted, \\ and \" escaped"
//	Number:  42 or 3.14159265 (at most 8 fractional digits)
//
// Encode and Decode are pure functions of their inputs: each call
// builds its own key dictionary, so concurrent calls on independent
// documents are safe. Both directions enforce a 100-level nesting
// bound, and Decode additionally caps input size at 10,000,000 bytes.
//
// # Query Language
//
// A query is OR-separated groups of whitespace-separated terms:
//
//	name:alice            substring match on a field
//	~name:alise           fuzzy match (edit distance / char overlap)
//	status:act*           wildcard match (* and ?)
//	-city:nyc             negated match
//	"exact phrase"        exact-phrase match
//	alice OR bob          either group may match
//
// Terms in a group combine by minimum (AND) and groups combine by
// maximum (OR). Rank scores and orders rows; Paginate windows them.
package terse
