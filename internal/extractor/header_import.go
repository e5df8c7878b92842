package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// parseImport parses every import clause shape the domain cares about:
// side-effect, default, namespace, named (with aliases and per-specifier
// "type"), and whole-clause "import type".
func (e *Extractor) parseImport(text string, span scanner.Span) *ast.Declaration {
	rest, ok := trimPrefixWord(text, "import")
	if !ok {
		return nil
	}
	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ";"))

	isTypeOnly := false
	if r2, ok2 := trimPrefixWord(rest, "type"); ok2 && !strings.HasPrefix(r2, "{") && !looksLikeIdentifierFollowedByFrom(rest) {
		// "import type { ... } from ..." or "import type * as ..."
		isTypeOnly = true
		rest = r2
	} else if ok2 && strings.HasPrefix(r2, "{") {
		isTypeOnly = true
		rest = r2
	}

	if strings.HasPrefix(rest, "'") || strings.HasPrefix(rest, "\"") {
		src := unquote(rest)
		return &ast.Declaration{Kind: ast.KindImport, Source: src, IsSideEffect: true}
	}

	fromIdx := lastTopLevelKeyword(rest, " from ")
	if fromIdx < 0 {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "import clause missing 'from'")
		return fallbackDeclaration(ast.KindImport, "", span)
	}
	clause := strings.TrimSpace(rest[:fromIdx])
	src := unquote(strings.TrimSpace(rest[fromIdx+len(" from "):]))

	var specs []ast.ImportSpecifier

	if strings.HasPrefix(clause, "*") {
		// "* as Name", marked with a leading "*" so the Processor can tell
		// a namespace import apart from a default import (both are a lone
		// specifier with no named-list siblings otherwise).
		asRest, ok := trimPrefixWord(strings.TrimSpace(clause[1:]), "as")
		if ok {
			name, _ := consumeWord(asRest, 0)
			specs = append(specs, ast.ImportSpecifier{Name: "*" + name})
		}
	} else {
		// optional default binding, optional "{ ... }" named list. A default
		// binding's Name is marked with a leading "=" so the Processor can
		// always tell it apart from a single named specifier: ImportSpecifier
		// has no separate "is default" field.
		if brace := strings.IndexByte(clause, '{'); brace >= 0 {
			defaultPart := strings.TrimSpace(strings.TrimSuffix(clause[:brace], ","))
			if defaultPart != "" {
				specs = append(specs, ast.ImportSpecifier{Name: "=" + defaultPart})
			}
			closeIdx, ok := matchBalanced(clause, brace, '{', '}')
			if ok {
				specs = append(specs, parseNamedSpecifiers(clause[brace+1:closeIdx])...)
			}
		} else if clause != "" {
			specs = append(specs, ast.ImportSpecifier{Name: "=" + strings.TrimSpace(clause)})
		}
	}

	return &ast.Declaration{
		Kind:       ast.KindImport,
		Source:     src,
		Specifiers: specs,
		IsTypeOnly: isTypeOnly,
	}
}

func looksLikeIdentifierFollowedByFrom(rest string) bool {
	word, idx := consumeWord(rest, 0)
	if word == "" {
		return false
	}
	after := strings.TrimSpace(rest[idx:])
	return strings.HasPrefix(after, "from") || strings.HasPrefix(after, ",")
}

func parseNamedSpecifiers(body string) []ast.ImportSpecifier {
	parts := splitTopLevelCommas(body)
	out := make([]ast.ImportSpecifier, 0, len(parts))
	for _, p := range parts {
		spec := ast.ImportSpecifier{}
		if r, ok := trimPrefixWord(p, "type"); ok {
			spec.IsType = true
			p = r
		}
		if asIdx := findTopLevelWord(p, "as"); asIdx >= 0 {
			spec.Name = strings.TrimSpace(p[:asIdx])
			spec.Alias = strings.TrimSpace(p[asIdx+2:])
		} else {
			spec.Name = strings.TrimSpace(p)
		}
		if spec.Name != "" {
			out = append(out, spec)
		}
	}
	return out
}

// findTopLevelWord finds the first " as " style whole-word occurrence with
// a plain substring search; bracket depth is not tracked, since no
// nesting is expected in a specifier.
func findTopLevelWord(text, word string) int {
	target := " " + word + " "
	idx := strings.Index(text, target)
	if idx < 0 {
		return -1
	}
	return idx + 1
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
