package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// Extractor turns the spans the Scanner found into Declarations. One
// Extractor is scoped to exactly one file, matching the Scanner's
// reentrancy contract.
type Extractor struct {
	log *logger.Log
}

// New creates an Extractor that records recoverable failures into log.
func New(log *logger.Log) *Extractor {
	return &Extractor{log: log}
}

// Extract classifies and parses every span, then groups same-named
// function overloads at this scope. Failures never abort the file: a span
// that cannot be parsed still yields a best-effort Declaration carrying
// its raw Text plus an EXTRACTION_ERROR note.
func (e *Extractor) Extract(spans []scanner.Span) []*ast.Declaration {
	var decls []*ast.Declaration
	for _, span := range spans {
		d := e.classifyAndParse(span)
		if d != nil {
			decls = append(decls, d)
		}
	}
	return groupOverloads(decls)
}

// classifyAndParse strips the declare/export/export-default prefixes (in
// any order, repeatedly until none is left) and dispatches on the
// remaining head keyword.
func (e *Extractor) classifyAndParse(span scanner.Span) *ast.Declaration {
	text := strings.TrimSpace(span.Text)
	if text == "" {
		return nil
	}

	var mods ast.Modifier
	isExported := false
	isDefault := false

	for {
		if rest, ok := trimPrefixWord(text, "declare"); ok {
			mods |= ast.ModDeclare
			text = rest
			continue
		}
		if rest, ok := trimPrefixWord(text, "export"); ok {
			isExported = true
			text = rest
			if rest2, ok2 := trimPrefixWord(text, "default"); ok2 {
				isDefault = true
				text = rest2
			}
			continue
		}
		break
	}

	head, _ := consumeWord(text, 0)

	var d *ast.Declaration
	switch head {
	case "import":
		d = e.parseImport(text, span)
	case "function":
		d = e.parseFunction(text, span, false)
	case "async":
		if rest, ok := trimPrefixWord(text, "async"); ok {
			if _, ok2 := trimPrefixWord(rest, "function"); ok2 {
				d = e.parseFunction(rest, span, true)
			}
		}
	case "const":
		if rest, ok := trimPrefixWord(text, "const"); ok {
			if next, _ := consumeWord(rest, 0); next == "enum" {
				d = e.parseEnum(text, span, true)
				break
			}
		}
		d = e.parseVariable(text, head, span)
	case "let", "var":
		d = e.parseVariable(text, head, span)
	case "class", "abstract":
		isAbstract := false
		body := text
		if rest, ok := trimPrefixWord(text, "abstract"); ok {
			isAbstract = true
			body = rest
		}
		if _, ok := trimPrefixWord(body, "class"); ok {
			d = e.parseClass(body, span, isAbstract)
		}
	case "interface":
		d = e.parseInterface(text, span)
	case "type":
		d = e.parseTypeAlias(text, span)
	case "enum":
		d = e.parseEnum(text, span, false)
	case "namespace", "module":
		d = e.parseNamespace(text, head, span)
	case "global":
		if mods.Has(ast.ModDeclare) {
			d = e.parseGlobalAugmentation(text, span)
		}
	case "export": // "export = expr;" after the export-prefix loop consumed "export" already handled below
	}

	// export = expr; only reachable when the original head keyword was
	// "=" after an already-consumed "export".
	if d == nil && isExported && strings.HasPrefix(text, "=") {
		d = e.parseExportAssignment(text, span)
		isExported = true
	}

	if d == nil {
		// unrecognized top-level form: best-effort passthrough, never a
		// hard failure.
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unrecognized top-level declaration form")
		d = &ast.Declaration{Kind: ast.KindExport, Text: strings.TrimSpace(span.Text), Range: span.Range}
	}

	d.IsExported = isExported
	d.IsDefault = isDefault
	d.Modifiers |= mods
	if len(span.LeadingComments) > 0 {
		d.LeadingComments = span.LeadingComments
	}
	if d.Text == "" {
		d.Text = strings.TrimSpace(span.Text)
	}
	d.Range = span.Range
	return d
}

func (e *Extractor) parseExportAssignment(text string, span scanner.Span) *ast.Declaration {
	rest := strings.TrimSpace(strings.TrimPrefix(text, "="))
	rest = strings.TrimSuffix(strings.TrimSpace(rest), ";")
	name := rest
	if !isBareIdentifier(rest) {
		name = ""
	}
	return &ast.Declaration{
		Kind: ast.KindExport,
		Name: name,
		Text: strings.TrimSpace(span.Text),
	}
}

func isBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i == 0 && c >= '0' && c <= '9' {
			return false
		}
		if !isWordByte(c) {
			return false
		}
	}
	return true
}
