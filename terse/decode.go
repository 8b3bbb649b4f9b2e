package terse

import (
	"strconv"
	"strings"
)

// MaxDecodeSize is the largest input Decode accepts, in bytes.
const MaxDecodeSize = 10_000_000

// Decode parses compressed text back into a Value. The input is an
// optional K{…}K header followed by a list or map body.
func Decode(text string) (*Value, error) {
	if len(text) > MaxDecodeSize {
		return nil, codecErr(KindSizeExceeded, 0, "input is %d bytes, cap is %d", len(text), MaxDecodeSize)
	}

	dict := newKeyDict()
	body := text
	bodyOff := 0
	if strings.HasPrefix(text, "K{") {
		end := strings.Index(text, "}K")
		if end < 0 {
			return nil, codecErr(KindInvalidFormat, 0, "unterminated header")
		}
		if err := parseHeader(text[2:end], dict); err != nil {
			return nil, err
		}
		body = text[end+2:]
		bodyOff = end + 2
	}
	if len(body) == 0 || (body[0] != '[' && body[0] != '{') {
		return nil, codecErr(KindInvalidFormat, bodyOff, "body must start with [ or {")
	}

	d := &decoder{dict: dict}
	return d.parseValue(body, bodyOff, 0)
}

// parseHeader registers comma-separated short:long pairs, overriding
// the seed table for any short code it names.
func parseHeader(content string, dict *keyDict) error {
	if content == "" {
		return nil
	}
	for _, pair := range splitTop(content, ',') {
		short, long, ok := cutTop(pair, ':')
		if !ok {
			return codecErr(KindMalformedHeader, 0, "header pair %q has no separator", pair)
		}
		dict.register(short, unescape(long))
	}
	return nil
}

type decoder struct {
	dict *keyDict
}

func (d *decoder) parseValue(s string, off, depth int) (*Value, error) {
	if depth > MaxDepth {
		return nil, codecErr(KindDepthExceeded, off, "nesting deeper than %d levels", MaxDepth)
	}
	if s == "" {
		return nil, codecErr(KindInvalidFormat, off, "empty value")
	}

	switch s {
	case "n":
		return Null(), nil
	case "t":
		return Bool(true), nil
	case "f":
		return Bool(false), nil
	}

	switch s[0] {
	case '"':
		end := closingQuote(s[1:])
		if end < 0 || 1+end != len(s)-1 {
			return nil, codecErr(KindInvalidFormat, off, "unterminated or trailing-garbage string")
		}
		return Str(unescape(s[1 : len(s)-1])), nil

	case '[':
		if s[len(s)-1] != ']' {
			return nil, codecErr(KindInvalidFormat, off, "unterminated list")
		}
		inner := s[1 : len(s)-1]
		out := List()
		if inner == "" {
			return out, nil
		}
		elemOff := off + 1
		for _, part := range splitTop(inner, ',') {
			elem, err := d.parseValue(part, elemOff, depth+1)
			if err != nil {
				return nil, err
			}
			out.Append(elem)
			elemOff += len(part) + 1
		}
		return out, nil

	case '{':
		if s[len(s)-1] != '}' {
			return nil, codecErr(KindInvalidFormat, off, "unterminated map")
		}
		inner := s[1 : len(s)-1]
		out := Map()
		if inner == "" {
			return out, nil
		}
		entryOff := off + 1
		for _, part := range splitTop(inner, ',') {
			short, rest, ok := cutTop(part, ':')
			if !ok {
				return nil, codecErr(KindInvalidFormat, entryOff, "map entry %q has no separator", part)
			}
			val, err := d.parseValue(rest, entryOff+len(short)+1, depth+1)
			if err != nil {
				return nil, err
			}
			// Duplicate keys: the later value wins at the position of
			// the key's first occurrence.
			out.Set(d.dict.expand(short), val)
			entryOff += len(part) + 1
		}
		return out, nil
	}

	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, codecErr(KindInvalidFormat, off, "bad number %q", s)
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, codecErr(KindInvalidFormat, off, "bad number %q", s)
	}
	return Int(i), nil
}

// unescape drops the backslash before any escaped character. It is
// the inverse of both the string and the header-key escape rules,
// which only ever escape a character by prefixing a backslash.
func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
