package extractor

import "strings"

// parseParameterList splits a parameter-list body (the text between the
// outer parens, not including them) on top-level commas and parses each
// one into a ParameterDeclaration: parameter-properties, rest, optional,
// default-value inference.
func parseParameterList(body string) []paramDecl {
	parts := splitTopLevelCommas(body)
	out := make([]paramDecl, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, parseOneParameter(p))
	}
	return out
}

// paramDecl mirrors ast.ParameterDeclaration but is kept local so the
// extractor package's internal parsing helpers don't need to round-trip
// through the ast package until the final Declaration is assembled.
type paramDecl struct {
	Name         string
	Type         string
	Optional     bool
	Rest         bool
	DefaultValue string
	Visibility   string // "", "public", "private", "protected"
	Readonly     bool
}

func parseOneParameter(text string) paramDecl {
	var p paramDecl
	text = strings.TrimSpace(text)

	for {
		switch {
		case hasWordPrefix(text, "public"):
			p.Visibility = "public"
			text = trimWordPrefix(text, "public")
		case hasWordPrefix(text, "private"):
			p.Visibility = "private"
			text = trimWordPrefix(text, "private")
		case hasWordPrefix(text, "protected"):
			p.Visibility = "protected"
			text = trimWordPrefix(text, "protected")
		case hasWordPrefix(text, "readonly"):
			p.Readonly = true
			text = trimWordPrefix(text, "readonly")
		default:
			goto prefixesDone
		}
	}
prefixesDone:

	if strings.HasPrefix(text, "...") {
		p.Rest = true
		text = strings.TrimSpace(text[3:])
	}

	// split off default value at the top-level "="
	defaultValue := ""
	if eq := findTopLevel(text, '='); eq >= 0 {
		defaultValue = strings.TrimSpace(text[eq+1:])
		text = strings.TrimSpace(text[:eq])
	}

	// split off type annotation at the top-level ":"
	typeAnnotation := ""
	if colon := findTopLevel(text, ':'); colon >= 0 {
		typeAnnotation = strings.TrimSpace(text[colon+1:])
		text = strings.TrimSpace(text[:colon])
	}

	optional := strings.HasSuffix(text, "?")
	if optional {
		text = strings.TrimSpace(strings.TrimSuffix(text, "?"))
	}

	p.Name = text
	p.DefaultValue = defaultValue
	p.Optional = optional || defaultValue != ""

	if typeAnnotation != "" {
		p.Type = typeAnnotation
	} else if defaultValue != "" {
		p.Type = inferExpressionType(defaultValue, false)
	}

	return p
}

func hasWordPrefix(text, kw string) bool {
	_, ok := trimPrefixWordPeek(text, kw)
	return ok
}

func trimWordPrefix(text, kw string) string {
	rest, _ := trimPrefixWordPeek(text, kw)
	return rest
}

// trimPrefixWordPeek is like trimPrefixWord but doesn't consume trailing
// comments, keeping parameter text simple to re-slice.
func trimPrefixWordPeek(text, kw string) (string, bool) {
	if !strings.HasPrefix(text, kw) {
		return text, false
	}
	rest := text[len(kw):]
	if rest != "" && isWordByte(rest[0]) {
		return text, false
	}
	return strings.TrimSpace(rest), true
}
