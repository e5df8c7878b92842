package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// parseTypeAlias parses "type Name<Generics> = Body;".
func (e *Extractor) parseTypeAlias(text string, span scanner.Span) *ast.Declaration {
	rest, ok := trimPrefixWord(text, "type")
	if !ok {
		return nil
	}

	name, idx := consumeWord(rest, 0)
	rest = strings.TrimSpace(rest[idx:])

	generics := ""
	if strings.HasPrefix(rest, "<") {
		closeIdx, ok := matchBalanced(rest, 0, '<', '>')
		if !ok {
			e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced generic parameter list on type "+name)
			return fallbackDeclaration(ast.KindType, name, span)
		}
		generics = rest[:closeIdx+1]
		rest = strings.TrimSpace(rest[closeIdx+1:])
	}

	if !strings.HasPrefix(rest, "=") {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "expected '=' in type alias "+name)
		return fallbackDeclaration(ast.KindType, name, span)
	}
	body := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[1:]), ";"))

	return &ast.Declaration{
		Kind:           ast.KindType,
		Name:           name,
		Generics:       generics,
		TypeAnnotation: body,
	}
}
