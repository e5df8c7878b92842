// Package scanner implements the pipeline's first stage: a single forward
// pass over TypeScript source that tracks bracket/string/template/comment
// state and yields top-level statement spans together with their leading
// comment blocks. The Scanner never classifies what a span means; that is
// the Extractor's job.
package scanner

import (
	"github.com/dtsforge/dtsforge/internal/logger"
)

// Span is one top-level statement as discovered by the Scanner: its
// source range, raw text, and any comment blocks immediately preceding it
// with no blank line in between.
type Span struct {
	Range           logger.Range
	Text            string
	LeadingComments []string
}

type mode uint8

const (
	modeCode mode = iota
	modeLineComment
	modeBlockComment
	modeSingleQuote
	modeDoubleQuote
	modeBacktick
	modeRegex
)

// topLevelKeywords are the words that may legally start a declaration this
// pipeline cares about. They double as the lookahead set the Scanner uses
// to decide whether a bare newline ends a statement (ASI, simplified to
// this domain's closed set of top-level forms).
var topLevelKeywords = []string{
	"import", "export", "declare",
	"const", "let", "var",
	"function", "async",
	"class", "interface", "type", "enum",
	"namespace", "module",
}

// regexPrecedingTokens is the set of lastToken values after which a "/"
// begins a regular expression literal rather than division: a
// regex-literal mode entered only at positions where a regex can legally
// begin.
var regexPrecedingTokens = map[string]bool{
	"": true, "(": true, "[": true, "{": true, ",": true, ";": true, ":": true,
	"=": true, "+": true, "-": true, "*": true, "/": true, "%": true,
	"<": true, ">": true, "!": true, "?": true, "&": true, "|": true, "^": true, "~": true,
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "yield": true, "await": true,
	"else": true, "throw": true, "do": true, "case": true,
}

// Scanner walks one source file and yields its top-level spans.
type Scanner struct {
	text string
	log  *logger.Log
}

// New creates a Scanner over source, recording recoverable diagnostics
// (unterminated strings/templates/comments) into log.
func New(source *logger.Source, log *logger.Log) *Scanner {
	return &Scanner{text: source.Contents, log: log}
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Scan runs the single forward pass and returns every top-level span in
// source order. It never panics; unterminated tokens are reported via the
// Scanner's Log and scanning stops at that point, returning whatever
// spans were completed first.
func (s *Scanner) Scan() []Span {
	text := s.text
	n := len(text)

	var spans []Span
	var pendingComments []string
	var sawBlankLineSinceContent bool

	md := modeCode
	var quoteChar byte
	var templateBraceDepths []int // brace depth snapshot when entering each "${"

	parens, brackets, braces := 0, 0, 0
	spanStart := -1
	var wordBuf []byte
	lastToken := ""
	consecutiveNewlines := 0

	flushWord := func() {
		if len(wordBuf) > 0 {
			lastToken = string(wordBuf)
			wordBuf = wordBuf[:0]
		}
	}

	atTopLevel := func() bool { return parens == 0 && brackets == 0 && braces == 0 }

	// peekStartsTopLevelStatement looks ahead from index j (skipping
	// whitespace and complete comments, without mutating scanner state)
	// to decide whether a bare newline should end the current span.
	peekStartsTopLevelStatement := func(j int) bool {
		for j < n {
			c := text[j]
			switch {
			case c == ' ' || c == '\t' || c == '\r' || c == '\n':
				j++
			case c == '/' && j+1 < n && text[j+1] == '/':
				for j < n && text[j] != '\n' {
					j++
				}
			case c == '/' && j+1 < n && text[j+1] == '*':
				j += 2
				for j+1 < n && !(text[j] == '*' && text[j+1] == '/') {
					j++
				}
				j += 2
			default:
				goto found
			}
		}
	found:
		if j >= n {
			return true
		}
		rest := text[j:]
		for _, kw := range topLevelKeywords {
			if len(rest) >= len(kw) && rest[:len(kw)] == kw {
				if len(rest) == len(kw) || !isWordByte(rest[len(kw)]) {
					return true
				}
			}
		}
		return false
	}

	endSpan := func(end int) {
		if spanStart < 0 {
			return
		}
		spans = append(spans, Span{
			Range:           logger.Range{Loc: logger.Loc{Start: int32(spanStart)}, Len: int32(end - spanStart)},
			Text:            text[spanStart:end],
			LeadingComments: pendingComments,
		})
		pendingComments = nil
		spanStart = -1
	}

	i := 0
	for i < n {
		c := text[i]

		switch md {
		case modeLineComment:
			if c == '\n' {
				md = modeCode
			}
			i++
			continue

		case modeBlockComment:
			if c == '*' && i+1 < n && text[i+1] == '/' {
				md = modeCode
				i += 2
				continue
			}
			i++
			continue

		case modeSingleQuote, modeDoubleQuote:
			if c == '\\' && i+1 < n {
				i += 2
				continue
			}
			if c == quoteChar {
				md = modeCode
			}
			i++
			continue

		case modeBacktick:
			if c == '\\' && i+1 < n {
				i += 2
				continue
			}
			if c == '`' {
				md = modeCode
				i++
				continue
			}
			if c == '$' && i+1 < n && text[i+1] == '{' {
				templateBraceDepths = append(templateBraceDepths, braces)
				braces++
				md = modeCode
				i += 2
				continue
			}
			i++
			continue

		case modeRegex:
			if c == '\\' && i+1 < n {
				i += 2
				continue
			}
			if c == '[' {
				// character classes may contain an unescaped "/"
				for i < n && text[i] != ']' {
					if text[i] == '\\' {
						i++
					}
					i++
				}
				continue
			}
			if c == '/' {
				md = modeCode
				i++
				for i < n && isWordByte(text[i]) { // flags
					i++
				}
				lastToken = "/regex/"
				continue
			}
			if c == '\n' {
				// an unterminated regex never legally reaches EOL; bail to code mode
				md = modeCode
				continue
			}
			i++
			continue
		}

		// md == modeCode
		if spanStart < 0 {
			switch {
			case c == ' ' || c == '\t' || c == '\r':
				i++
				continue
			case c == '\n':
				consecutiveNewlines++
				if consecutiveNewlines >= 2 {
					sawBlankLineSinceContent = true
					pendingComments = nil
				}
				i++
				continue
			case c == '/' && i+1 < n && text[i+1] == '/':
				if sawBlankLineSinceContent {
					pendingComments = nil
					sawBlankLineSinceContent = false
				}
				start := i
				i += 2
				for i < n && text[i] != '\n' {
					i++
				}
				pendingComments = append(pendingComments, text[start:i])
				consecutiveNewlines = 0
				continue
			case c == '/' && i+1 < n && text[i+1] == '*':
				if sawBlankLineSinceContent {
					pendingComments = nil
					sawBlankLineSinceContent = false
				}
				start := i
				i += 2
				for i+1 < n && !(text[i] == '*' && text[i+1] == '/') {
					i++
				}
				if i+1 >= n {
					s.log.Add(logger.CodeParse, &logger.Loc{Start: int32(start)}, "unterminated block comment")
					return spans
				}
				i += 2
				pendingComments = append(pendingComments, text[start:i])
				consecutiveNewlines = 0
				continue
			default:
				// start of a new statement
				spanStart = i
				consecutiveNewlines = 0
				sawBlankLineSinceContent = false
			}
		}

		if !isWordByte(c) {
			flushWord()
		}

		switch {
		case c == '\n':
			consecutiveNewlines++
			if atTopLevel() && peekStartsTopLevelStatement(i+1) {
				endSpan(i)
			}
			i++
			continue

		case c == '/' && i+1 < n && text[i+1] == '/':
			i += 2
			for i < n && text[i] != '\n' {
				i++
			}
			continue

		case c == '/' && i+1 < n && text[i+1] == '*':
			start := i
			i += 2
			for i+1 < n && !(text[i] == '*' && text[i+1] == '/') {
				i++
			}
			if i+1 >= n {
				s.log.Add(logger.CodeParse, &logger.Loc{Start: int32(start)}, "unterminated block comment")
				return spans
			}
			i += 2
			lastToken = ""
			continue

		case c == '\'':
			md, quoteChar = modeSingleQuote, '\''
			i++
			lastToken = "'str'"
			continue

		case c == '"':
			md, quoteChar = modeDoubleQuote, '"'
			i++
			lastToken = "\"str\""
			continue

		case c == '`':
			md = modeBacktick
			i++
			lastToken = "`tmpl`"
			continue

		case c == '/' && regexPrecedingTokens[lastToken]:
			md = modeRegex
			i++
			continue

		case c == '(':
			parens++
			i++
			lastToken = "("
			continue
		case c == ')':
			parens--
			i++
			lastToken = ")"
			continue
		case c == '[':
			brackets++
			i++
			lastToken = "["
			continue
		case c == ']':
			brackets--
			i++
			lastToken = "]"
			continue
		case c == '{':
			braces++
			i++
			lastToken = "{"
			continue
		case c == '}':
			if len(templateBraceDepths) > 0 && templateBraceDepths[len(templateBraceDepths)-1] == braces-1 {
				templateBraceDepths = templateBraceDepths[:len(templateBraceDepths)-1]
				braces--
				md = modeBacktick
				i++
				continue
			}
			wasTopLevelBlock := parens == 0 && brackets == 0 && braces == 1
			braces--
			i++
			lastToken = "}"
			// A closing brace ends the statement only when a new top-level
			// statement (or EOF) follows; otherwise it belongs to a longer
			// statement such as `import { a } from 'x'` or `const o = {};`.
			if wasTopLevelBlock && spanStart >= 0 && peekStartsTopLevelStatement(i) {
				endSpan(i)
			}
			continue

		case c == ';':
			i++
			lastToken = ";"
			if atTopLevel() {
				endSpan(i)
			}
			continue

		case isWordByte(c):
			wordBuf = append(wordBuf, c)
			i++
			continue

		default:
			flushWord()
			if c != ' ' && c != '\t' {
				lastToken = string(c)
			}
			i++
			continue
		}
	}

	if md == modeSingleQuote || md == modeDoubleQuote {
		s.log.Add(logger.CodeParse, &logger.Loc{Start: int32(spanStart)}, "unterminated string literal")
		return spans
	} else if md == modeBacktick {
		s.log.Add(logger.CodeParse, &logger.Loc{Start: int32(spanStart)}, "unterminated template literal")
		return spans
	}

	endSpan(n)
	return spans
}
