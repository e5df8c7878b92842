package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// parseClass parses "class Name<Generics> extends Base implements I, J {
// ... }". Constructor parameter-properties are left on the constructor's
// Parameters; the Processor, not the Extractor, synthesizes the
// corresponding class properties.
func (e *Extractor) parseClass(text string, span scanner.Span, isAbstract bool) *ast.Declaration {
	rest, ok := trimPrefixWord(text, "class")
	if !ok {
		return nil
	}

	name, idx := consumeWord(rest, 0)
	rest = strings.TrimSpace(rest[idx:])

	generics := ""
	if strings.HasPrefix(rest, "<") {
		closeIdx, ok := matchBalanced(rest, 0, '<', '>')
		if !ok {
			e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced generic parameter list on class "+name)
			return fallbackDeclaration(ast.KindClass, name, span)
		}
		generics = rest[:closeIdx+1]
		rest = strings.TrimSpace(rest[closeIdx+1:])
	}

	var extends []string
	var implements []string

	for {
		switch {
		case hasWordPrefix(rest, "extends"):
			rest = trimWordPrefix(rest, "extends")
			end := findHeritageEnd(rest)
			extends = []string{strings.TrimSpace(rest[:end])}
			rest = strings.TrimSpace(rest[end:])
		case hasWordPrefix(rest, "implements"):
			rest = trimWordPrefix(rest, "implements")
			end := findHeritageEnd(rest)
			implements = splitTopLevelCommas(rest[:end])
			rest = strings.TrimSpace(rest[end:])
		default:
			goto heritageDone
		}
	}
heritageDone:

	brace := strings.IndexByte(rest, '{')
	if brace < 0 {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "class "+name+" missing body")
		return fallbackDeclaration(ast.KindClass, name, span)
	}
	closeIdx, ok := matchBalanced(rest, brace, '{', '}')
	if !ok {
		e.log.Add(logger.CodeExtraction, &logger.Loc{Start: span.Range.Loc.Start}, "unbalanced class body on "+name)
		return fallbackDeclaration(ast.KindClass, name, span)
	}
	body := rest[brace+1 : closeIdx]

	var mods ast.Modifier
	if isAbstract {
		mods |= ast.ModAbstract
	}

	members := make([]*ast.Declaration, 0)
	for _, raw := range splitMembers(body) {
		m := parseMember(raw, false)
		if m != nil {
			members = append(members, m)
		}
	}
	members = groupOverloads(members)

	return &ast.Declaration{
		Kind:       ast.KindClass,
		Name:       name,
		Generics:   generics,
		Extends:    extends,
		Implements: implements,
		Members:    members,
		Modifiers:  mods,
	}
}

// findHeritageEnd finds where an extends/implements clause ends: the next
// top-level "{" or, before it, the "implements" keyword.
func findHeritageEnd(rest string) int {
	brace := findTopLevel(rest, '{')
	if brace < 0 {
		brace = len(rest)
	}
	candidates := []int{brace}
	if idx := wordIndex(rest[:brace], "implements"); idx >= 0 {
		candidates = append(candidates, idx)
	}
	min := brace
	for _, c := range candidates {
		if c < min {
			min = c
		}
	}
	return min
}

func wordIndex(text, word string) int {
	idx := strings.Index(text, word)
	for idx >= 0 {
		before := idx == 0 || !isWordByte(text[idx-1])
		afterPos := idx + len(word)
		after := afterPos >= len(text) || !isWordByte(text[afterPos])
		if before && after {
			return idx
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return -1
		}
		idx = idx + 1 + next
	}
	return -1
}
