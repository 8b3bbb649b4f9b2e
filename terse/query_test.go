package terse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQuery_Terms(t *testing.T) {
	tests := []struct {
		input string
		want  Term
	}{
		{"alice", Term{Field: FieldAll, Value: "alice"}},
		{"name:alice", Term{Field: "name", Value: "alice"}},
		{"-name:alice", Term{Field: "name", Value: "alice", Negate: true}},
		{"~name:alice", Term{Field: "name", Value: "alice", Fuzzy: true}},
		{"-~name:alice", Term{Field: "name", Value: "alice", Negate: true, Fuzzy: true}},
		{`name:"alice"`, Term{Field: "name", Value: "alice", Exact: true}},
		{`"alice"`, Term{Field: FieldAll, Value: "alice", Exact: true}},
		{`"`, Term{Field: FieldAll, Value: ""}},
		{"city:new*york", Term{Field: "city", Value: "new*york"}},
		{"a:b:c", Term{Field: "a", Value: "b:c"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := ParseQuery(tt.input)
			if len(q.Groups) != 1 || len(q.Groups[0].Terms) != 1 {
				t.Fatalf("ParseQuery(%q) = %+v, want one group with one term", tt.input, q)
			}
			if diff := cmp.Diff(tt.want, q.Groups[0].Terms[0]); diff != "" {
				t.Errorf("term mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseQuery_Groups(t *testing.T) {
	q := ParseQuery("name:alice city:nyc OR name:bob or type:admin")
	if len(q.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(q.Groups))
	}
	if n := len(q.Groups[0].Terms); n != 2 {
		t.Errorf("group 0 has %d terms, want 2", n)
	}
	if n := len(q.Groups[1].Terms); n != 1 {
		t.Errorf("group 1 has %d terms, want 1", n)
	}
	if got := q.Groups[2].Terms[0].Field; got != "type" {
		t.Errorf("group 2 field = %q, want type", got)
	}
}

func TestParseQuery_ORNeedsWhitespaceBounds(t *testing.T) {
	// "ORbit" and "majOR" are ordinary terms, not separators.
	q := ParseQuery("ORbit majOR")
	if len(q.Groups) != 1 || len(q.Groups[0].Terms) != 2 {
		t.Fatalf("ParseQuery = %+v, want one group with two terms", q)
	}
}

func TestParseQuery_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "OR", "or OR or"} {
		q := ParseQuery(input)
		if !q.IsEmpty() {
			t.Errorf("ParseQuery(%q).IsEmpty() = false, want true", input)
		}
	}
}
