package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// parseInterface parses "interface Name<Generics> extends A, B { ... }".
// Unlike a class, every interface member is implicitly public; parseMember
// enforces that.
func (e *Extractor) parseInterface(text string, span scanner.Span) *ast.Declaration {
	rest, ok := trimPrefixWord(text, "interface")
	if !ok {
		return nil
	}

	name, idx := consumeWord(rest, 0)
	rest = strings.TrimSpace(rest[idx:])

	generics := ""
	if strings.HasPrefix(rest, "<") {
		closeIdx, ok := matchBalanced(rest, 0, '<', '>')
		if !ok {
			e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced generic parameter list on interface "+name)
			return fallbackDeclaration(ast.KindInterface, name, span)
		}
		generics = rest[:closeIdx+1]
		rest = strings.TrimSpace(rest[closeIdx+1:])
	}

	var extends []string
	if hasWordPrefix(rest, "extends") {
		rest = trimWordPrefix(rest, "extends")
		brace := findTopLevel(rest, '{')
		if brace < 0 {
			brace = len(rest)
		}
		extends = splitTopLevelCommas(rest[:brace])
		rest = strings.TrimSpace(rest[brace:])
	}

	brace := strings.IndexByte(rest, '{')
	if brace < 0 {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "interface "+name+" missing body")
		return fallbackDeclaration(ast.KindInterface, name, span)
	}
	closeIdx, ok := matchBalanced(rest, brace, '{', '}')
	if !ok {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced interface body on "+name)
		return fallbackDeclaration(ast.KindInterface, name, span)
	}
	body := rest[brace+1 : closeIdx]

	members := make([]*ast.Declaration, 0)
	for _, raw := range splitMembers(body) {
		m := parseMember(raw, true)
		if m != nil {
			members = append(members, m)
		}
	}
	members = groupOverloads(members)

	return &ast.Declaration{
		Kind:     ast.KindInterface,
		Name:     name,
		Generics: generics,
		Extends:  extends,
		Members:  members,
	}
}
