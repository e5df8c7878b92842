package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// parseVariable parses a const/let/var statement. Multiple bindings in one
// statement ("const a = 1, b = 2") expand into one Declaration per binding
// with the others joined as Members, keeping the record flat enough for
// the Processor to re-emit the whole statement as one line.
//
// Only the first binding is returned directly; callers that need every
// binding as its own top-level Declaration should use parseVariableAll.
func (e *Extractor) parseVariable(text string, keyword string, span scanner.Span) *ast.Declaration {
	decls := e.parseVariableAll(text, keyword, span)
	if len(decls) == 0 {
		return nil
	}
	if len(decls) == 1 {
		return decls[0]
	}
	head := decls[0]
	head.Members = decls[1:]
	return head
}

func (e *Extractor) parseVariableAll(text string, keyword string, span scanner.Span) []*ast.Declaration {
	rest, ok := trimPrefixWord(text, keyword)
	if !ok {
		return nil
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), ";")

	isConst := keyword == "const"
	bindings := splitTopLevelCommas(rest)
	out := make([]*ast.Declaration, 0, len(bindings))
	for _, b := range bindings {
		d := e.parseOneBinding(b, isConst, keyword, span)
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

func (e *Extractor) parseOneBinding(text string, isConst bool, keyword string, span scanner.Span) *ast.Declaration {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	name := text
	typeAnnotation := ""
	value := ""

	if eq := findTopLevel(text, '='); eq >= 0 {
		value = strings.TrimSpace(text[eq+1:])
		name = strings.TrimSpace(text[:eq])
	}
	if colon := findTopLevel(name, ':'); colon >= 0 {
		typeAnnotation = strings.TrimSpace(name[colon+1:])
		name = strings.TrimSpace(name[:colon])
	}

	if typeAnnotation == "" {
		if value != "" {
			typeAnnotation = inferExpressionType(value, isConst)
			if typeAnnotation == "unknown" {
				e.log.Add(logger.CodeUnresolved, &logger.Loc{Start: span.Range.Loc.Start}, "could not infer a type for "+name+"; defaulted to unknown")
			}
		} else {
			typeAnnotation = "unknown"
			e.log.Add(logger.CodeUnresolved, &logger.Loc{Start: span.Range.Loc.Start}, "no initializer or annotation for "+name+"; defaulted to unknown")
		}
	}

	return &ast.Declaration{
		Kind:           ast.KindVariable,
		Name:           name,
		TypeAnnotation: typeAnnotation,
		Keyword:        keyword,
	}
}
