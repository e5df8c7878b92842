package extractor

import "strings"

// depthTracker follows nested (), [], {}, <> while skipping over
// string/template/comment content, the same state the Scanner tracks at
// the top level, but scoped to a single already-captured span of text so
// header parsers can find matching delimiters and split top-level commas.
type depthTracker struct {
	paren, bracket, brace, angle int
}

func (d *depthTracker) update(c byte) {
	switch c {
	case '(':
		d.paren++
	case ')':
		if d.paren > 0 {
			d.paren--
		}
	case '[':
		d.bracket++
	case ']':
		if d.bracket > 0 {
			d.bracket--
		}
	case '{':
		d.brace++
	case '}':
		if d.brace > 0 {
			d.brace--
		}
	case '<':
		d.angle++
	case '>':
		if d.angle > 0 {
			d.angle--
		}
	}
}

func (d depthTracker) zero() bool {
	return d.paren == 0 && d.bracket == 0 && d.brace == 0 && d.angle == 0
}

// skipString returns the index right after the string literal starting at
// i (which must point at the opening quote q).
func skipString(text string, i int, q byte) int {
	n := len(text)
	i++
	for i < n {
		if text[i] == '\\' && i+1 < n {
			i += 2
			continue
		}
		if text[i] == q {
			return i + 1
		}
		i++
	}
	return n
}

// skipTemplate returns the index right after the template literal starting
// at i (which must point at the opening backtick), recursing into `${...}`
// substitutions via matchBalanced.
func skipTemplate(text string, i int) int {
	n := len(text)
	i++
	for i < n {
		c := text[i]
		if c == '\\' && i+1 < n {
			i += 2
			continue
		}
		if c == '`' {
			return i + 1
		}
		if c == '$' && i+1 < n && text[i+1] == '{' {
			closeIdx, ok := matchBalanced(text, i+1, '{', '}')
			if !ok {
				return n
			}
			i = closeIdx + 1
			continue
		}
		i++
	}
	return n
}

func skipLineComment(text string, i int) int {
	n := len(text)
	for i < n && text[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(text string, i int) int {
	n := len(text)
	i += 2
	for i+1 < n && !(text[i] == '*' && text[i+1] == '/') {
		i++
	}
	if i+1 < n {
		return i + 2
	}
	return n
}

// matchBalanced scans forward from start (which must point at the open
// delimiter) and returns the index of its matching close delimiter,
// skipping over string/template/comment content so brackets inside
// literals never confuse the count.
func matchBalanced(text string, start int, open, close byte) (int, bool) {
	n := len(text)
	depth := 0
	i := start
	for i < n {
		c := text[i]
		switch c {
		case '\'':
			i = skipString(text, i, '\'')
			continue
		case '"':
			i = skipString(text, i, '"')
			continue
		case '`':
			i = skipTemplate(text, i)
			continue
		case '/':
			if i+1 < n && text[i+1] == '/' {
				i = skipLineComment(text, i)
				continue
			}
			if i+1 < n && text[i+1] == '*' {
				i = skipBlockComment(text, i)
				continue
			}
		}
		if c == open {
			depth++
		} else if c == close {
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return n, false
}

// splitTopLevelCommas splits text on commas that sit outside any nested
// (), [], {}, <>, string, template, or comment.
func splitTopLevelCommas(text string) []string {
	var parts []string
	var depth depthTracker
	n := len(text)
	start := 0
	i := 0
	for i < n {
		c := text[i]
		switch c {
		case '\'':
			i = skipString(text, i, '\'')
			continue
		case '"':
			i = skipString(text, i, '"')
			continue
		case '`':
			i = skipTemplate(text, i)
			continue
		case '/':
			if i+1 < n && text[i+1] == '/' {
				i = skipLineComment(text, i)
				continue
			}
			if i+1 < n && text[i+1] == '*' {
				i = skipBlockComment(text, i)
				continue
			}
		}
		if c == ',' && depth.zero() {
			parts = append(parts, text[start:i])
			i++
			start = i
			continue
		}
		depth.update(c)
		i++
	}
	if start < n || len(parts) > 0 {
		parts = append(parts, text[start:])
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// findTopLevel returns the byte index of the first occurrence of target
// at bracket/string/template/comment depth zero, or -1.
func findTopLevel(text string, target byte) int {
	var depth depthTracker
	n := len(text)
	i := 0
	for i < n {
		c := text[i]
		switch c {
		case '\'':
			i = skipString(text, i, '\'')
			continue
		case '"':
			i = skipString(text, i, '"')
			continue
		case '`':
			i = skipTemplate(text, i)
			continue
		case '/':
			if i+1 < n && text[i+1] == '/' {
				i = skipLineComment(text, i)
				continue
			}
			if i+1 < n && text[i+1] == '*' {
				i = skipBlockComment(text, i)
				continue
			}
		}
		if c == target && depth.zero() {
			return i
		}
		depth.update(c)
		i++
	}
	return -1
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// consumeWord reads a run of word bytes starting at i and returns it with
// the index right after.
func consumeWord(text string, i int) (string, int) {
	n := len(text)
	start := i
	for i < n && isWordByte(text[i]) {
		i++
	}
	return text[start:i], i
}

// skipSpaceAndComments advances i past whitespace and complete // or /*
// comments.
func skipSpaceAndComments(text string, i int) int {
	n := len(text)
	for i < n {
		switch {
		case text[i] == ' ' || text[i] == '\t' || text[i] == '\r' || text[i] == '\n':
			i++
		case text[i] == '/' && i+1 < n && text[i+1] == '/':
			i = skipLineComment(text, i)
		case text[i] == '/' && i+1 < n && text[i+1] == '*':
			i = skipBlockComment(text, i)
		default:
			return i
		}
	}
	return i
}

// trimPrefixWord reports whether text (already left-trimmed) starts with
// keyword as a whole word, returning the remainder trimmed of the
// following whitespace/comments if so.
func trimPrefixWord(text, keyword string) (string, bool) {
	if !strings.HasPrefix(text, keyword) {
		return text, false
	}
	rest := text[len(keyword):]
	if rest != "" && isWordByte(rest[0]) {
		return text, false
	}
	return text[skipSpaceAndComments(text, len(keyword)):], true
}
