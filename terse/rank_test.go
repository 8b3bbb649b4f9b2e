package terse

import "testing"

func rows() []*Value {
	return []*Value{
		Map(Field("name", Str("Alice")), Field("city", Str("NYC"))),
		Map(Field("name", Str("Bob")), Field("city", Str("LA"))),
		Map(Field("name", Str("Carol")), Field("city", Str("NYC"))),
	}
}

func TestRank_FiltersAndScores(t *testing.T) {
	hits := Rank(rows(), ParseQuery("name:alice"))
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Score != 0.85 {
		t.Errorf("score = %v, want 0.85", hits[0].Score)
	}
	if hits[0].Position != 0 {
		t.Errorf("position = %d, want 0", hits[0].Position)
	}
	if got, _ := hits[0].Record.Get("name").AsStr(); got != "Alice" {
		t.Errorf("record name = %q, want Alice", got)
	}
}

func TestRank_SortsDescendingStable(t *testing.T) {
	// Carol's wildcard group scores 0.9 and outranks the 0.85
	// substring hits; Alice and Bob tie and keep original order.
	hits := Rank(rows(), ParseQuery("name:a OR name:bob OR name:car*"))
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}
	if hits[0].Position != 2 || hits[0].Score != 0.9 {
		t.Errorf("hit 0 = pos %d score %v, want pos 2 score 0.9", hits[0].Position, hits[0].Score)
	}
	if hits[1].Position != 0 || hits[2].Position != 1 {
		t.Errorf("tie order = %d,%d, want 0,1", hits[1].Position, hits[2].Position)
	}
}

func TestRank_EmptyQueryKeepsOrder(t *testing.T) {
	hits := Rank(rows(), ParseQuery("   "))
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}
	for i, h := range hits {
		if h.Position != i || h.Score != 1.0 {
			t.Errorf("hit %d = pos %d score %v, want pos %d score 1.0", i, h.Position, h.Score, i)
		}
	}
}

func TestPaginate_Window(t *testing.T) {
	hits := Rank(rows(), Query{})
	res := Paginate(hits, 2, 2)
	if res.Total != 3 {
		t.Errorf("Total = %d, want 3", res.Total)
	}
	if len(res.Hits) != 1 {
		t.Fatalf("page 2 has %d hits, want 1", len(res.Hits))
	}
	if res.Hits[0].Position != 2 {
		t.Errorf("page 2 hit position = %d, want 2", res.Hits[0].Position)
	}
}

func TestPaginate_Clamps(t *testing.T) {
	hits := Rank(rows(), Query{})

	res := Paginate(hits, 0, 5000)
	if res.Page != 1 {
		t.Errorf("page clamped to %d, want 1", res.Page)
	}
	if res.PerPage != MaxPerPage {
		t.Errorf("perPage clamped to %d, want %d", res.PerPage, MaxPerPage)
	}

	res = Paginate(hits, -3, 0)
	if res.Page != 1 || res.PerPage != 1 {
		t.Errorf("clamped = page %d perPage %d, want 1/1", res.Page, res.PerPage)
	}
	if len(res.Hits) != 1 {
		t.Errorf("perPage 1 window has %d hits, want 1", len(res.Hits))
	}
}

func TestPaginate_PastEnd(t *testing.T) {
	hits := Rank(rows(), Query{})
	res := Paginate(hits, 99, 10)
	if len(res.Hits) != 0 {
		t.Errorf("past-end window has %d hits, want 0", len(res.Hits))
	}
	if res.Total != 3 {
		t.Errorf("Total = %d, want 3", res.Total)
	}
}

func TestSearch_EndToEnd(t *testing.T) {
	res := Search(rows(), "city:nyc", 1, 10)
	if res.Total != 2 {
		t.Fatalf("Total = %d, want 2", res.Total)
	}
	for _, h := range res.Hits {
		if got, _ := h.Record.Get("city").AsStr(); got != "NYC" {
			t.Errorf("hit city = %q, want NYC", got)
		}
	}
}
