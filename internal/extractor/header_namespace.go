package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// parseNamespace parses "namespace Name { ... }", "module Name { ... }",
// and "module \"name\" { ... }" (ambient module augmentation). The body is
// re-run through the Scanner and this same Extractor, recursively, since a
// namespace body is itself a sequence of top-level-shaped declarations.
func (e *Extractor) parseNamespace(text string, keyword string, span scanner.Span) *ast.Declaration {
	rest, ok := trimPrefixWord(text, keyword)
	if !ok {
		return nil
	}

	var name string
	if strings.HasPrefix(rest, "'") || strings.HasPrefix(rest, "\"") {
		q := rest[0]
		end := 1
		for end < len(rest) && rest[end] != q {
			end++
		}
		name = rest[1:end]
		rest = strings.TrimSpace(rest[end+1:])
	} else {
		var idx int
		name, idx = consumeWord(rest, 0)
		rest = strings.TrimSpace(rest[idx:])
	}

	brace := strings.IndexByte(rest, '{')
	if brace < 0 {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, keyword+" "+name+" missing body")
		return fallbackDeclaration(ast.KindNamespace, name, span)
	}
	closeIdx, ok := matchBalanced(rest, brace, '{', '}')
	if !ok {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced body on "+keyword+" "+name)
		return fallbackDeclaration(ast.KindNamespace, name, span)
	}
	body := rest[brace+1 : closeIdx]

	nestedSource := &logger.Source{File: "<namespace " + name + ">", Contents: body}
	nestedSpans := scanner.New(nestedSource, e.log).Scan()
	members := e.Extract(nestedSpans)

	return &ast.Declaration{
		Kind:    ast.KindNamespace,
		Name:    name,
		Members: members,
	}
}

// parseGlobalAugmentation parses "declare global { ... }" into a
// namespace-kind Declaration named "global", always already ambient so
// the Processor never adds its own "declare" prefix on top of it.
func (e *Extractor) parseGlobalAugmentation(text string, span scanner.Span) *ast.Declaration {
	rest, ok := trimPrefixWord(text, "global")
	if !ok {
		return nil
	}
	brace := strings.IndexByte(rest, '{')
	if brace < 0 {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "declare global missing body")
		return fallbackDeclaration(ast.KindNamespace, "global", span)
	}
	closeIdx, ok := matchBalanced(rest, brace, '{', '}')
	if !ok {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced body on declare global")
		return fallbackDeclaration(ast.KindNamespace, "global", span)
	}
	body := rest[brace+1 : closeIdx]

	nestedSource := &logger.Source{File: "<global>", Contents: body}
	nestedSpans := scanner.New(nestedSource, e.log).Scan()
	members := e.Extract(nestedSpans)

	return &ast.Declaration{Kind: ast.KindNamespace, Name: "global", Members: members}
}
