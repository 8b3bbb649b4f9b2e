package terse

import (
	"math"
	"testing"
)

func record(pairs ...MapEntry) *Value {
	return Map(pairs...)
}

var alice = record(
	Field("name", Str("Alice")),
	Field("city", Str("NYC")),
	Field("age", Int(30)),
)

func scoreOne(t *testing.T, query string, rec *Value) float64 {
	t.Helper()
	return Score(ParseQuery(query), rec)
}

func TestScore_Substring(t *testing.T) {
	tests := []struct {
		query string
		want  float64
	}{
		{"name:alice", 0.85},
		{"name:lic", 0.85},
		{"name:bob", 0.0},
		{"-name:bob", 0.85},
		{"-name:alice", 0.0},
		{"city:nyc", 0.85},
		{"age:30", 0.85},
		{"missing_field:x", 0.0},
		{"alice", 0.85}, // _all
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := scoreOne(t, tt.query, alice); got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_Wildcard(t *testing.T) {
	tests := []struct {
		query string
		want  float64
	}{
		{"name:al*", 0.9},
		{"name:*ice", 0.9},
		{"name:a?ice", 0.9},
		{"name:al?", 0.0}, // anchored: ? is exactly one char
		{"-name:al*", 0.0},
		{"-name:bo*", 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := scoreOne(t, tt.query, alice); got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_Fuzzy(t *testing.T) {
	// "alise" vs "alice": edit distance 1, ratio 0.8.
	got := scoreOne(t, "~name:alise", alice)
	if math.Abs(got-0.8) > 1e-9 {
		t.Errorf("fuzzy score = %v, want 0.8", got)
	}

	// Identical strings score 1.0.
	if got := scoreOne(t, "~name:alice", alice); got != 1.0 {
		t.Errorf("fuzzy exact = %v, want 1.0", got)
	}

	// Below the 0.7 threshold scores zero.
	if got := scoreOne(t, "~name:zqx", alice); got != 0.0 {
		t.Errorf("fuzzy miss = %v, want 0", got)
	}

	// A negated fuzzy term never scores positively, hit or miss.
	if got := scoreOne(t, "-~name:alice", alice); got != 0.0 {
		t.Errorf("negated fuzzy hit = %v, want 0", got)
	}
	if got := scoreOne(t, "-~name:zqx", alice); got != 0.0 {
		t.Errorf("negated fuzzy miss = %v, want 0", got)
	}
}

func TestScore_ExactPhrase(t *testing.T) {
	// Exact terms match the quoted form in the record serialization.
	if got := scoreOne(t, `"alice"`, alice); got != 1.0 {
		t.Errorf(`score for "alice" = %v, want 1.0`, got)
	}
	if got := scoreOne(t, `"alic"`, alice); got != 0.0 {
		t.Errorf(`score for "alic" = %v, want 0 (not a full quoted value)`, got)
	}
	if got := scoreOne(t, `-"alice"`, alice); got != 0.0 {
		t.Errorf(`negated exact hit = %v, want 0`, got)
	}
	if got := scoreOne(t, `-"bob"`, alice); got != 1.0 {
		t.Errorf(`negated exact miss = %v, want 1.0`, got)
	}
}

func TestScore_AndOrCombination(t *testing.T) {
	// AND takes the minimum of the term scores.
	if got := scoreOne(t, "name:al* city:nyc", alice); got != 0.85 {
		t.Errorf("AND score = %v, want 0.85 (min of 0.9 and 0.85)", got)
	}
	// One failing term zeroes the group.
	if got := scoreOne(t, "name:alice city:la", alice); got != 0.0 {
		t.Errorf("AND with miss = %v, want 0", got)
	}
	// OR takes the maximum group score.
	if got := scoreOne(t, "city:la OR name:al*", alice); got != 0.9 {
		t.Errorf("OR score = %v, want 0.9", got)
	}
}

func TestScore_EmptyQueryMatchesEverything(t *testing.T) {
	if got := Score(Query{}, alice); got != 1.0 {
		t.Errorf("empty query score = %v, want 1.0", got)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"alice", "alice", 1.0},
		{"alice", "alise", 0.8},
		{"", "x", 0.0},
		{"x", "", 0.0},
	}
	for _, tt := range tests {
		if got := similarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	// Long strings with a small edit distance still rate highly via
	// the Levenshtein ratio even when character overlap is diluted.
	a := "configuration_value"
	b := "configuration_zalue"
	if got := similarity(a, b); got < 0.9 {
		t.Errorf("similarity(%q, %q) = %v, want >= 0.9", a, b, got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
