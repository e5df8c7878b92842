package processor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
)

// renderClass renders a class body, applying private-member filtering (a
// private member never reaches the emitted text) and constructor
// parameter-property expansion: a visibility-tagged constructor parameter
// synthesizes a corresponding class property line ahead of the
// constructor signature.
func (p *Processor) renderClass(d *ast.Declaration, indent int) string {
	var b strings.Builder
	if d.Modifiers.Has(ast.ModAbstract) {
		b.WriteString("abstract ")
	}
	b.WriteString("class ")
	b.WriteString(d.Name)
	b.WriteString(d.Generics)
	if len(d.Extends) > 0 {
		b.WriteString(" extends ")
		b.WriteString(d.Extends[0])
	}
	if len(d.Implements) > 0 {
		b.WriteString(" implements ")
		b.WriteString(strings.Join(d.Implements, ", "))
	}
	b.WriteString(" {\n")

	pad := strings.Repeat("  ", indent+1)
	for _, m := range d.Members {
		if m.IsPrivateMember() {
			continue
		}
		if m.Name == "constructor" {
			for _, prop := range parameterProperties(m.Parameters) {
				b.WriteString(pad)
				b.WriteString(prop)
				b.WriteString("\n")
			}
		}
		b.WriteString(pad)
		b.WriteString(renderMember(m))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString("}")
	return b.String()
}

// stripParameterVisibility returns params with their visibility/readonly
// parameter-property markers removed: the constructor signature reproduces
// every parameter, public or private, but never the keyword that made it a
// property.
func stripParameterVisibility(params []ast.ParameterDeclaration) []ast.ParameterDeclaration {
	out := make([]ast.ParameterDeclaration, len(params))
	for i, p := range params {
		p.Visibility = ast.VisibilityNone
		p.Readonly = false
		out[i] = p
	}
	return out
}

// parameterProperties synthesizes "visibility [readonly] name: Type;"
// class-property lines for every constructor parameter that carries a
// public or protected visibility keyword, in declaration order; private
// parameters yield no line.
func parameterProperties(params []ast.ParameterDeclaration) []string {
	var out []string
	for _, p := range params {
		if p.Visibility == ast.VisibilityNone {
			continue
		}
		if p.Visibility == ast.VisibilityPrivate {
			continue // private properties never reach emitted text
		}
		var line strings.Builder
		switch p.Visibility {
		case ast.VisibilityPublic:
			line.WriteString("public ")
		case ast.VisibilityProtected:
			line.WriteString("protected ")
		}
		if p.Readonly {
			line.WriteString("readonly ")
		}
		line.WriteString(p.Name)
		typ := p.Type
		if typ == "" {
			typ = "unknown"
		}
		line.WriteString(": ")
		line.WriteString(typ)
		line.WriteString(";")
		out = append(out, line.String())
	}
	return out
}
