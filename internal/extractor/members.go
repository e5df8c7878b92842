package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
)

// splitMembers splits a class/interface body (the text between the outer
// braces, not including them) into individual member texts. A member ends
// at a top-level semicolon, or for methods with a body at the closing
// brace of that body; trailing commas (object-type-style interface
// members) are treated the same as semicolons.
func splitMembers(body string) []string {
	var members []string
	var parens, brackets, braces int
	start := 0
	n := len(body)
	i := 0
	for i < n {
		c := body[i]
		switch c {
		case '\'':
			i = skipString(body, i, '\'')
			continue
		case '"':
			i = skipString(body, i, '"')
			continue
		case '`':
			i = skipTemplate(body, i)
			continue
		case '/':
			if i+1 < n && body[i+1] == '/' {
				i = skipLineComment(body, i)
				continue
			}
			if i+1 < n && body[i+1] == '*' {
				i = skipBlockComment(body, i)
				continue
			}
		}
		topLevel := parens == 0 && brackets == 0 && braces == 0
		switch c {
		case '(':
			parens++
		case ')':
			if parens > 0 {
				parens--
			}
		case '[':
			brackets++
		case ']':
			if brackets > 0 {
				brackets--
			}
		case '{':
			braces++
		case '}':
			if braces > 0 {
				braces--
			}
			if braces == 0 && parens == 0 && brackets == 0 {
				members = append(members, body[start:i+1])
				start = i + 1
				i++
				continue
			}
		case ';', ',':
			if topLevel {
				members = append(members, body[start:i])
				start = i + 1
			}
		}
		i++
	}
	if strings.TrimSpace(body[start:]) != "" {
		members = append(members, body[start:])
	}

	out := make([]string, 0, len(members))
	for _, m := range members {
		m = strings.TrimSpace(m)
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// memberModifiers strips the leading modifier-keyword run shared by class
// and interface members, returning the remainder and the accumulated flags.
func memberModifiers(text string) (string, ast.Modifier, bool, bool) {
	var mods ast.Modifier
	isAsync := false
	isGenerator := false
	for {
		switch {
		case hasWordPrefix(text, "public"):
			mods |= ast.ModPublic
			text = trimWordPrefix(text, "public")
		case hasWordPrefix(text, "private"):
			mods |= ast.ModPrivate
			text = trimWordPrefix(text, "private")
		case hasWordPrefix(text, "protected"):
			mods |= ast.ModProtected
			text = trimWordPrefix(text, "protected")
		case hasWordPrefix(text, "static"):
			mods |= ast.ModStatic
			text = trimWordPrefix(text, "static")
		case hasWordPrefix(text, "readonly"):
			mods |= ast.ModReadonly
			text = trimWordPrefix(text, "readonly")
		case hasWordPrefix(text, "abstract"):
			mods |= ast.ModAbstract
			text = trimWordPrefix(text, "abstract")
		case hasWordPrefix(text, "override"):
			mods |= ast.ModOverride
			text = trimWordPrefix(text, "override")
		case hasWordPrefix(text, "async"):
			isAsync = true
			mods |= ast.ModAsync
			text = trimWordPrefix(text, "async")
		default:
			return text, mods, isAsync, isGenerator
		}
	}
}

// parseMember consumes the leading modifiers of one class or interface
// member and parses the rest into a Declaration representing that member. Private members
// still get a full Declaration so the Processor's filtering has something
// concrete to drop.
func parseMember(raw string, isInterface bool) *ast.Declaration {
	text, mods, isAsync, _ := memberModifiers(raw)
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if isInterface && mods&(ast.ModPublic|ast.ModPrivate|ast.ModProtected) == 0 {
		mods |= ast.ModPublic
	}

	isGenerator := false
	if strings.HasPrefix(text, "*") {
		isGenerator = true
		text = strings.TrimSpace(text[1:])
	}

	accessorKind := ""
	if hasWordPrefix(text, "get") {
		accessorKind = "get"
		text = trimWordPrefix(text, "get")
	} else if hasWordPrefix(text, "set") {
		accessorKind = "set"
		text = trimWordPrefix(text, "set")
	}

	// index signature: [key: string]: T
	if strings.HasPrefix(text, "[") {
		closeIdx, ok := matchBalanced(text, 0, '[', ']')
		if ok {
			sig := text[:closeIdx+1]
			rest := strings.TrimSpace(text[closeIdx+1:])
			typ := ""
			if strings.HasPrefix(rest, ":") {
				typ = strings.TrimSpace(strings.TrimSuffix(rest[1:], ";"))
			}
			return &ast.Declaration{Kind: ast.KindVariable, Name: sig, TypeAnnotation: typ, Modifiers: mods}
		}
	}

	name, idx := consumeWord(text, 0)
	if name == "" {
		return &ast.Declaration{Kind: ast.KindVariable, Text: text, Modifiers: mods}
	}
	rest := text[idx:]

	generics := ""
	trimmedRest := strings.TrimSpace(rest)
	if strings.HasPrefix(trimmedRest, "<") {
		closeIdx, ok := matchBalanced(trimmedRest, 0, '<', '>')
		if ok {
			generics = trimmedRest[:closeIdx+1]
			rest = trimmedRest[closeIdx+1:]
		}
	}
	rest = strings.TrimSpace(rest)

	optional := false
	if strings.HasPrefix(rest, "?") {
		optional = true
		rest = strings.TrimSpace(rest[1:])
	}

	if strings.HasPrefix(rest, "(") || name == "constructor" {
		closeIdx, ok := matchBalanced(rest, 0, '(', ')')
		if !ok {
			return &ast.Declaration{Kind: ast.KindFunction, Name: name, Modifiers: mods, Text: text}
		}
		params := parseParameterList(rest[1:closeIdx])
		tail := strings.TrimSpace(rest[closeIdx+1:])
		bodyTail := tail
		returnType := ""
		if strings.HasPrefix(tail, ":") {
			tail = strings.TrimSpace(tail[1:])
			end := len(tail)
			if brace := findTopLevel(tail, '{'); brace >= 0 {
				end = brace
			}
			returnType = strings.TrimSpace(tail[:end])
			bodyTail = tail[end:]
		}
		hasBody := strings.HasPrefix(strings.TrimSpace(bodyTail), "{")
		if returnType == "" && accessorKind != "set" && name != "constructor" {
			returnType = synthesizeReturnType(isAsync, isGenerator)
		}
		if accessorKind != "" {
			name = accessorKind + " " + name
		}
		return &ast.Declaration{
			Kind:        ast.KindFunction,
			Name:        name,
			Generics:    generics,
			Parameters:  toASTParams(params),
			ReturnType:  returnType,
			Modifiers:   mods,
			IsAsync:     isAsync,
			IsGenerator: isGenerator,
			HasBody:     hasBody,
		}
	}

	// property
	typeAnnotation := ""
	value := ""
	if eq := findTopLevel(rest, '='); eq >= 0 {
		value = strings.TrimSpace(rest[eq+1:])
		rest = strings.TrimSpace(rest[:eq])
	}
	if strings.HasPrefix(rest, ":") {
		typeAnnotation = strings.TrimSpace(strings.TrimSuffix(rest[1:], ";"))
	}
	if typeAnnotation == "" && value != "" {
		isConst := mods.Has(ast.ModReadonly) && mods.Has(ast.ModStatic)
		typeAnnotation = inferExpressionType(value, isConst)
	}
	if typeAnnotation == "" {
		typeAnnotation = "unknown"
	}
	if optional {
		name += "?"
	}

	return &ast.Declaration{
		Kind:           ast.KindVariable,
		Name:           name,
		TypeAnnotation: typeAnnotation,
		Modifiers:      mods,
	}
}
