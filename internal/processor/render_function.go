package processor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
)

// renderFunction renders a function's signature, always body-elided: the
// Extractor never captures a function body into the Declaration, so there
// is nothing here to elide beyond appending the trailing semicolon. An
// overload group renders every collapsed signature, each terminated with
// ";", in source order.
func renderFunction(d *ast.Declaration) string {
	if d.HasOverloads() {
		lines := make([]string, len(d.Overloads))
		for i, sig := range d.Overloads {
			lines[i] = sig + ";"
		}
		return strings.Join(lines, "\n")
	}
	return functionSignature(d) + ";"
}

// functionSignature renders the ambient form of a function declaration.
// An ambient declaration can never be "async" or "function*" (TS rejects
// both on a `declare function`); async/generator-ness is carried only in
// the synthesized return type (Promise<T> / AsyncGenerator<...> /
// Generator<...>), already baked into d.ReturnType by the extractor.
func functionSignature(d *ast.Declaration) string {
	var b strings.Builder
	b.WriteString("function ")
	b.WriteString(d.Name)
	b.WriteString(d.Generics)
	b.WriteString("(")
	b.WriteString(renderParameters(d.Parameters))
	b.WriteString(")")
	if d.ReturnType != "" {
		b.WriteString(": ")
		b.WriteString(d.ReturnType)
	}
	return b.String()
}

func renderParameters(params []ast.ParameterDeclaration) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, renderOneParameter(p))
	}
	return strings.Join(parts, ", ")
}

// renderOneParameter expands the default-value-to-optional-parameter
// transformation: a parameter with a default value loses its initializer
// and gains "?" in the declarations-only surface.
func renderOneParameter(p ast.ParameterDeclaration) string {
	var b strings.Builder
	if p.Visibility != ast.VisibilityNone {
		switch p.Visibility {
		case ast.VisibilityPublic:
			b.WriteString("public ")
		case ast.VisibilityPrivate:
			b.WriteString("private ")
		case ast.VisibilityProtected:
			b.WriteString("protected ")
		}
		if p.Readonly {
			b.WriteString("readonly ")
		}
	}
	if p.Rest {
		b.WriteString("...")
	}
	b.WriteString(p.Name)
	if p.Optional && !p.Rest {
		b.WriteString("?")
	}
	if p.Type != "" {
		b.WriteString(": ")
		b.WriteString(p.Type)
	}
	return b.String()
}
