package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// parseEnum parses "const enum Name { A, B = 2, C }" and its non-const
// form. Enum bodies are preserved verbatim as members rather than
// re-inferred: the Processor reprints an enum's body text unchanged.
func (e *Extractor) parseEnum(text string, span scanner.Span, isConst bool) *ast.Declaration {
	if r, ok := trimPrefixWord(text, "const"); ok {
		isConst = true
		text = r
	}
	rest, ok := trimPrefixWord(text, "enum")
	if !ok {
		return nil
	}

	name, idx := consumeWord(rest, 0)
	rest = strings.TrimSpace(rest[idx:])

	brace := strings.IndexByte(rest, '{')
	if brace < 0 {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "enum "+name+" missing body")
		return fallbackDeclaration(ast.KindEnum, name, span)
	}
	closeIdx, ok := matchBalanced(rest, brace, '{', '}')
	if !ok {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced enum body on "+name)
		return fallbackDeclaration(ast.KindEnum, name, span)
	}
	body := rest[brace+1 : closeIdx]

	members := make([]*ast.Declaration, 0)
	for _, m := range splitTopLevelCommas(body) {
		members = append(members, &ast.Declaration{Kind: ast.KindEnum, Text: m})
	}

	var mods ast.Modifier
	if isConst {
		mods |= ast.ModReadonly
	}

	return &ast.Declaration{
		Kind:      ast.KindEnum,
		Name:      name,
		Members:   members,
		Modifiers: mods,
	}
}
