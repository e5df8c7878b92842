package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// parseFunction parses a function declaration header: name, generics,
// parameter list, return type, and generator star. text has already had
// its declare/export prefixes stripped but still starts at "function".
func (e *Extractor) parseFunction(text string, span scanner.Span, isAsync bool) *ast.Declaration {
	rest, ok := trimPrefixWord(text, "function")
	if !ok {
		return nil
	}

	isGenerator := false
	if strings.HasPrefix(rest, "*") {
		isGenerator = true
		rest = strings.TrimSpace(rest[1:])
	}

	name, idx := consumeWord(rest, 0)
	rest = rest[idx:]

	generics := ""
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "<") {
		closeIdx, ok := matchBalanced(rest, 0, '<', '>')
		if !ok {
			e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced generic parameter list on function "+name)
			return fallbackDeclaration(ast.KindFunction, name, span)
		}
		generics = rest[:closeIdx+1]
		rest = strings.TrimSpace(rest[closeIdx+1:])
	}

	if !strings.HasPrefix(rest, "(") {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "expected parameter list on function "+name)
		return fallbackDeclaration(ast.KindFunction, name, span)
	}
	closeIdx, ok := matchBalanced(rest, 0, '(', ')')
	if !ok {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced parameter list on function "+name)
		return fallbackDeclaration(ast.KindFunction, name, span)
	}
	params := parseParameterList(rest[1:closeIdx])
	rest = strings.TrimSpace(rest[closeIdx+1:])

	returnType := ""
	tail := rest
	if strings.HasPrefix(rest, ":") {
		rest = strings.TrimSpace(rest[1:])
		end := len(rest)
		if brace := findTopLevel(rest, '{'); brace >= 0 {
			end = brace
		} else if semi := findTopLevel(rest, ';'); semi >= 0 {
			end = semi
		}
		returnType = strings.TrimSpace(rest[:end])
		tail = rest[end:]
	}
	hasBody := strings.HasPrefix(strings.TrimSpace(tail), "{")

	if returnType == "" {
		returnType = synthesizeReturnType(isAsync, isGenerator)
		e.log.Add(logger.CodeUnresolved, &logger.Loc{Start: span.Range.Loc.Start}, "no explicit return type on function "+name+"; inferred "+returnType)
	}

	return &ast.Declaration{
		Kind:        ast.KindFunction,
		Name:        name,
		Generics:    generics,
		Parameters:  toASTParams(params),
		ReturnType:  returnType,
		IsAsync:     isAsync,
		IsGenerator: isGenerator,
		HasBody:     hasBody,
	}
}

// synthesizeReturnType applies the closed async/generator return-type
// defaults: a function body the Extractor never evaluates, so the best it
// can do without an explicit annotation is the conventional shape for each
// combination.
func synthesizeReturnType(isAsync, isGenerator bool) string {
	switch {
	case isAsync && isGenerator:
		return "AsyncGenerator<unknown, void, unknown>"
	case isGenerator:
		return "Generator<unknown, void, unknown>"
	case isAsync:
		return "Promise<void>"
	default:
		return "void"
	}
}

func toASTParams(params []paramDecl) []ast.ParameterDeclaration {
	out := make([]ast.ParameterDeclaration, len(params))
	for i, p := range params {
		out[i] = ast.ParameterDeclaration{
			Name:         p.Name,
			Type:         p.Type,
			Optional:     p.Optional,
			Rest:         p.Rest,
			DefaultValue: p.DefaultValue,
			Visibility:   toASTVisibility(p.Visibility),
			Readonly:     p.Readonly,
		}
	}
	return out
}

func toASTVisibility(v string) ast.Visibility {
	switch v {
	case "public":
		return ast.VisibilityPublic
	case "private":
		return ast.VisibilityPrivate
	case "protected":
		return ast.VisibilityProtected
	default:
		return ast.VisibilityNone
	}
}

func fallbackDeclaration(kind ast.Kind, name string, span scanner.Span) *ast.Declaration {
	return &ast.Declaration{
		Kind: kind,
		Name: name,
		Text: strings.TrimSpace(span.Text),
	}
}
