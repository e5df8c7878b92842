// Package processor implements the pipeline's final stage: body elision,
// declare-insertion, private-member filtering, parameter-property
// expansion, import ordering, and deterministic emission of a
// ProcessingContext into `.d.ts` text.
package processor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/helpers"
	"github.com/dtsforge/dtsforge/internal/logger"
)

// Options controls the Processor's output shape.
type Options struct {
	RetainComments bool
	ImportOrder    []string
}

// DefaultImportOrder is the priority-bucket pattern list applied when
// Options.ImportOrder is empty.
var DefaultImportOrder = []string{"bun"}

// Processor turns a ProcessingContext into final `.d.ts` text. One
// Processor is scoped to exactly one file.
type Processor struct {
	log     *logger.Log
	options Options
}

// New creates a Processor holding log; no Processor method writes to it.
func New(log *logger.Log, options Options) *Processor {
	if len(options.ImportOrder) == 0 {
		options.ImportOrder = DefaultImportOrder
	}
	return &Processor{log: log, options: options}
}

// Process renders ctx's declarations into the final output string. It
// never aborts: a declaration the Processor cannot safely transform falls
// back to its raw captured text.
func (p *Processor) Process(ctx *ast.ProcessingContext) string {
	var j helpers.Joiner

	imports, rest := partitionImports(ctx.Declarations)
	importBlock := p.renderImports(imports)
	if importBlock != "" {
		j.AddString(importBlock)
		j.AddString("\n")
	}

	for i, d := range rest {
		text := p.renderDeclaration(d, 0)
		if text == "" {
			continue
		}
		if i > 0 || importBlock != "" {
			if d.LeadingComments != nil && p.options.RetainComments {
				j.AddString("\n")
			}
		}
		j.AddString(text)
		j.AddString("\n")
	}

	out := string(j.Done())
	if out == "" {
		return "\n"
	}
	return out
}

func partitionImports(decls []*ast.Declaration) (imports, rest []*ast.Declaration) {
	for _, d := range decls {
		if d.Kind == ast.KindImport {
			imports = append(imports, d)
		} else {
			rest = append(rest, d)
		}
	}
	return
}

// renderDeclaration dispatches on Kind, emits leading comments (if
// retained), and applies declare-insertion.
func (p *Processor) renderDeclaration(d *ast.Declaration, indent int) string {
	if d == nil {
		return ""
	}
	pad := strings.Repeat("  ", indent)
	var b strings.Builder

	if p.options.RetainComments {
		for _, c := range d.LeadingComments {
			b.WriteString(pad)
			b.WriteString(c)
			b.WriteString("\n")
		}
	}

	body := p.renderBody(d, indent)
	if body == "" {
		return strings.TrimRight(b.String(), "\n")
	}

	var prefix string
	if needsDeclarePrefix(d) {
		prefix = "declare "
	}
	if d.IsExported && d.Kind != ast.KindExport {
		prefix = "export " + prefix
	}

	if d.Kind == ast.KindFunction && d.HasOverloads() {
		// every collapsed signature is its own top-level statement and
		// needs the same prefix repeated, not just the first line.
		lines := strings.Split(body, "\n")
		for i, line := range lines {
			lines[i] = prefix + line
		}
		body = strings.Join(lines, "\n"+pad)
	} else {
		body = prefix + body
	}

	b.WriteString(pad)
	b.WriteString(body)
	return b.String()
}

// needsDeclarePrefix reports whether d's rendered form still needs a
// "declare" keyword: every top-level emitted form is ambient, except the
// forms that are already inherently ambient (imports, the "export ="
// assignment form, and "declare global" augmentations, which bake their
// own "declare" in directly) and so never receive a second one.
func needsDeclarePrefix(d *ast.Declaration) bool {
	switch d.Kind {
	case ast.KindImport, ast.KindExport:
		return false
	case ast.KindNamespace:
		return d.Name != "global"
	default:
		return true
	}
}

func (p *Processor) renderBody(d *ast.Declaration, indent int) string {
	switch d.Kind {
	case ast.KindFunction:
		return renderFunction(d)
	case ast.KindVariable:
		return renderVariableGroup(d)
	case ast.KindInterface:
		return p.renderInterface(d, indent)
	case ast.KindType:
		return renderTypeAlias(d)
	case ast.KindClass:
		return p.renderClass(d, indent)
	case ast.KindEnum:
		return renderEnum(d)
	case ast.KindNamespace:
		return p.renderNamespace(d, indent)
	case ast.KindExport:
		return renderExportAssignment(d)
	default:
		return strings.TrimSpace(d.Text)
	}
}
