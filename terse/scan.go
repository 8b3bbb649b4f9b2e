package terse

// String-aware bracket scanner shared by header, list, and map
// parsing. A backslash escapes exactly the next character,
// unconditionally, even outside strings; a separator only counts at
// bracket depth 0 and outside a quoted string.

// splitTop splits s on sep at top level. Empty input yields no parts.
func splitTop(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	var parts []string
	depth := 0
	inStr := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '"' {
			inStr = !inStr
			continue
		}
		if inStr {
			continue
		}
		switch c {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// cutTop splits s at the first top-level occurrence of sep, returning
// the parts before and after it. found is false when no such
// separator exists.
func cutTop(s string, sep byte) (before, after string, found bool) {
	depth := 0
	inStr := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '"' {
			inStr = !inStr
			continue
		}
		if inStr {
			continue
		}
		switch c {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case sep:
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// closingQuote returns the index of the first unescaped '"' in s, or
// -1 if none exists.
func closingQuote(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
