package processor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
)

// renderImports groups import declarations into priority buckets per
// Options.ImportOrder: each pattern names one bucket, matched against the
// import's Source by prefix; anything matching no pattern falls into a
// final implicit bucket. A single blank line separates buckets; order
// within a bucket is stable (source order), never re-sorted.
func (p *Processor) renderImports(imports []*ast.Declaration) string {
	if len(imports) == 0 {
		return ""
	}

	buckets := make([][]*ast.Declaration, len(p.options.ImportOrder)+1)
	for _, d := range imports {
		idx := bucketFor(d.Source, p.options.ImportOrder)
		buckets[idx] = append(buckets[idx], d)
	}

	var lines []string
	for _, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		for _, d := range bucket {
			lines = append(lines, renderImport(d))
		}
		lines = append(lines, "")
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func bucketFor(source string, patterns []string) int {
	for i, pat := range patterns {
		if strings.HasPrefix(source, pat) {
			return i
		}
	}
	return len(patterns)
}

func renderImport(d *ast.Declaration) string {
	var b strings.Builder
	b.WriteString("import ")
	if d.IsTypeOnly {
		b.WriteString("type ")
	}
	if d.IsSideEffect {
		b.WriteString("\"")
		b.WriteString(d.Source)
		b.WriteString("\";")
		return b.String()
	}

	if len(d.Specifiers) == 1 && strings.HasPrefix(d.Specifiers[0].Name, "*") {
		b.WriteString("* as ")
		b.WriteString(strings.TrimPrefix(d.Specifiers[0].Name, "*"))
		b.WriteString(" from \"")
		b.WriteString(d.Source)
		b.WriteString("\";")
		return b.String()
	}

	var defaultName string
	named := make([]ast.ImportSpecifier, 0, len(d.Specifiers))
	for _, s := range d.Specifiers {
		if strings.HasPrefix(s.Name, "=") {
			defaultName = strings.TrimPrefix(s.Name, "=")
			continue
		}
		named = append(named, s)
	}

	if defaultName != "" && len(named) == 0 {
		b.WriteString(defaultName)
	} else {
		if defaultName != "" {
			b.WriteString(defaultName)
			b.WriteString(", ")
		}
		b.WriteString("{ ")
		parts := make([]string, len(named))
		for i, s := range named {
			part := s.Name
			if s.IsType {
				part = "type " + part
			}
			if s.Alias != "" {
				part += " as " + s.Alias
			}
			parts[i] = part
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(" }")
	}

	b.WriteString(" from \"")
	b.WriteString(d.Source)
	b.WriteString("\";")
	return b.String()
}
