package terse

import "sort"

// MaxPerPage caps the pagination window size.
const MaxPerPage = 1000

// Hit is one ranked record with its score and its position in the
// original row list.
type Hit struct {
	Record   *Value
	Score    float64
	Position int
}

// Result is a paginated window over ranked hits. Total is the match
// count before windowing, for pagination metadata.
type Result struct {
	Hits    []Hit
	Total   int
	Page    int
	PerPage int
}

// Rank scores every row against the query. With a non-empty query,
// zero-scored rows are dropped and the rest sort descending by score,
// stable on original order for ties. An empty query keeps every row
// in original order with score 1.0.
func Rank(rows []*Value, q Query) []Hit {
	hits := make([]Hit, 0, len(rows))
	if q.IsEmpty() {
		for i, r := range rows {
			hits = append(hits, Hit{Record: r, Score: 1.0, Position: i})
		}
		return hits
	}
	for i, r := range rows {
		if s := Score(q, r); s > 0 {
			hits = append(hits, Hit{Record: r, Score: s, Position: i})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	return hits
}

// Paginate applies an offset/limit window over ranked hits. page
// clamps to at least 1; perPage clamps to [1, MaxPerPage].
func Paginate(hits []Hit, page, perPage int) Result {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	offset := (page - 1) * perPage
	window := []Hit{}
	if offset < len(hits) {
		end := offset + perPage
		if end > len(hits) {
			end = len(hits)
		}
		window = hits[offset:end]
	}
	return Result{Hits: window, Total: len(hits), Page: page, PerPage: perPage}
}

// Search is the one-call convenience: parse, rank, paginate.
func Search(rows []*Value, query string, page, perPage int) Result {
	return Paginate(Rank(rows, ParseQuery(query)), page, perPage)
}
