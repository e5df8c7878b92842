package processor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
)

// renderNamespace renders a namespace/module body recursively. A namespace
// named "global" bakes its own "declare" keyword in directly. Every member
// is already inside an ambient context once the outer namespace itself is
// declared, so members never get their own "declare" (a nested "declare" is
// a compile error, TS1038); only "export" carries through.
func (p *Processor) renderNamespace(d *ast.Declaration, indent int) string {
	var b strings.Builder
	if d.Name == "global" {
		b.WriteString("declare global {\n")
	} else {
		b.WriteString("namespace ")
		b.WriteString(d.Name)
		b.WriteString(" {\n")
	}

	pad := strings.Repeat("  ", indent+1)
	for _, m := range d.Members {
		body := p.renderBody(m, indent+1)
		if body == "" {
			continue
		}
		var prefix string
		if m.IsExported {
			prefix = "export "
		}
		if m.Kind == ast.KindFunction && m.HasOverloads() {
			lines := strings.Split(body, "\n")
			for i, line := range lines {
				lines[i] = prefix + line
			}
			body = strings.Join(lines, "\n"+pad)
		} else {
			body = prefix + body
		}
		if p.options.RetainComments {
			for _, c := range m.LeadingComments {
				b.WriteString(pad)
				b.WriteString(c)
				b.WriteString("\n")
			}
		}
		b.WriteString(pad)
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString("}")
	return b.String()
}
