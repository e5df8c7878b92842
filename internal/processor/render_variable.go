package processor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
)

// renderVariableGroup renders a single const/let/var statement, including
// any extra bindings the Extractor attached to Members for a
// multi-binding statement ("const a = 1, b = 2").
func renderVariableGroup(d *ast.Declaration) string {
	bindings := append([]*ast.Declaration{d}, membersAsVariables(d.Members)...)
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = renderOneVariable(b)
	}
	keyword := d.Keyword
	if keyword == "" {
		keyword = "const"
	}
	return keyword + " " + strings.Join(parts, ", ") + ";"
}

func membersAsVariables(members []*ast.Declaration) []*ast.Declaration {
	out := make([]*ast.Declaration, 0, len(members))
	for _, m := range members {
		if m.Kind == ast.KindVariable {
			out = append(out, m)
		}
	}
	return out
}

func renderOneVariable(d *ast.Declaration) string {
	t := d.TypeAnnotation
	if t == "" {
		t = "unknown"
	}
	return d.Name + ": " + t
}

func renderTypeAlias(d *ast.Declaration) string {
	return "type " + d.Name + d.Generics + " = " + d.TypeAnnotation + ";"
}

func renderExportAssignment(d *ast.Declaration) string {
	if d.Text != "" {
		return strings.TrimSuffix(strings.TrimSpace(d.Text), ";") + ";"
	}
	return "export = " + d.Name + ";"
}

func renderEnum(d *ast.Declaration) string {
	var b strings.Builder
	if d.Modifiers.Has(ast.ModReadonly) {
		b.WriteString("const ")
	}
	b.WriteString("enum ")
	b.WriteString(d.Name)
	b.WriteString(" {\n")
	for i, m := range d.Members {
		b.WriteString("  ")
		b.WriteString(strings.TrimSpace(m.Text))
		if i < len(d.Members)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
