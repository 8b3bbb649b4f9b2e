package terse

import "strconv"

// seedKeys maps frequent structural keys to fixed one-character codes.
// Codes a-t and 0-9 are used so that the allocator, which starts at
// base-36 numeral 30 ("u"), never collides with a seeded code.
var seedKeys = [...]struct{ long, short string }{
	{"name", "a"},
	{"type", "b"},
	{"id", "c"},
	{"value", "d"},
	{"data", "e"},
	{"items", "f"},
	{"key", "g"},
	{"label", "h"},
	{"title", "i"},
	{"description", "j"},
	{"status", "k"},
	{"created_at", "l"},
	{"updated_at", "m"},
	{"url", "n"},
	{"email", "o"},
	{"count", "p"},
	{"total", "q"},
	{"page", "r"},
	{"size", "s"},
	{"tags", "t"},
	{"metadata", "0"},
	{"content", "1"},
	{"message", "2"},
	{"text", "3"},
	{"code", "4"},
	{"error", "5"},
	{"result", "6"},
	{"user", "7"},
	{"children", "8"},
	{"index", "9"},
}

// keyDict is the bidirectional key-shortening dictionary. A fresh
// instance is built for every encode or decode call; instances are
// never shared, so concurrent calls cannot observe each other's
// allocations.
type keyDict struct {
	longToShort map[string]string
	shortToLong map[string]string
	next        int64

	// allocated lists non-seeded long keys in allocation order, for
	// deterministic header emission.
	allocated []string
}

// newKeyDict returns a dictionary seeded with the fixed common-key
// table, with the allocator positioned past the seed.
func newKeyDict() *keyDict {
	d := &keyDict{
		longToShort: make(map[string]string, len(seedKeys)),
		shortToLong: make(map[string]string, len(seedKeys)),
		next:        int64(len(seedKeys)),
	}
	for _, e := range seedKeys {
		d.longToShort[e.long] = e.short
		d.shortToLong[e.short] = e.long
	}
	return d
}

// shorten returns the short code for a key, allocating the next free
// base-36 numeral if the key has no mapping yet. Allocation order is
// the first-seen order of keys during a single encode traversal.
func (d *keyDict) shorten(long string) string {
	if s, ok := d.longToShort[long]; ok {
		return s
	}
	var short string
	for {
		short = strconv.FormatInt(d.next, 36)
		d.next++
		if _, taken := d.shortToLong[short]; !taken {
			break
		}
	}
	d.longToShort[long] = short
	d.shortToLong[short] = long
	d.allocated = append(d.allocated, long)
	return short
}

// expand returns the long key for a short code. Unknown codes are
// returned as-is: a body whose header is missing or corrupted decodes
// with short codes retained as literal keys rather than failing.
func (d *keyDict) expand(short string) string {
	if l, ok := d.shortToLong[short]; ok {
		return l
	}
	return short
}

// register installs a header mapping in both directions, overriding
// the seed for that short code if present.
func (d *keyDict) register(short, long string) {
	d.longToShort[long] = short
	d.shortToLong[short] = long
}

