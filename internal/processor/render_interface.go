package processor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
)

func (p *Processor) renderInterface(d *ast.Declaration, indent int) string {
	var b strings.Builder
	b.WriteString("interface ")
	b.WriteString(d.Name)
	b.WriteString(d.Generics)
	if len(d.Extends) > 0 {
		b.WriteString(" extends ")
		b.WriteString(strings.Join(d.Extends, ", "))
	}
	b.WriteString(" {\n")
	for _, m := range d.Members {
		b.WriteString(strings.Repeat("  ", indent+1))
		b.WriteString(renderMember(m))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString("}")
	return b.String()
}

// renderMember renders one class/interface member. Of the visibility
// keywords only "protected" is reprinted: "public" is omitted, and
// "private" members are filtered before this is ever reached for a class
// body. Interfaces never carry them since the Extractor only sets
// ModPublic as an implicit default there.
func renderMember(m *ast.Declaration) string {
	var b strings.Builder
	if m.Modifiers.Has(ast.ModStatic) {
		b.WriteString("static ")
	}
	if m.Modifiers.Has(ast.ModAbstract) {
		b.WriteString("abstract ")
	}
	if m.Modifiers.Has(ast.ModProtected) {
		b.WriteString("protected ")
	}
	if m.Modifiers.Has(ast.ModReadonly) {
		b.WriteString("readonly ")
	}

	switch m.Kind {
	case ast.KindFunction:
		if m.Modifiers.Has(ast.ModAsync) {
			b.WriteString("async ")
		}
		if m.IsGenerator {
			b.WriteString("*")
		}
		b.WriteString(m.Name)
		b.WriteString(m.Generics)
		b.WriteString("(")
		if m.Name == "constructor" {
			b.WriteString(renderParameters(stripParameterVisibility(m.Parameters)))
		} else {
			b.WriteString(renderParameters(m.Parameters))
		}
		b.WriteString(")")
		if m.ReturnType != "" && m.Name != "constructor" {
			b.WriteString(": ")
			b.WriteString(m.ReturnType)
		}
		b.WriteString(";")
	default:
		b.WriteString(m.Name)
		if m.TypeAnnotation != "" {
			b.WriteString(": ")
			b.WriteString(m.TypeAnnotation)
		}
		b.WriteString(";")
	}
	return b.String()
}
