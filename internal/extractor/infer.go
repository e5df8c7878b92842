package extractor

import "strings"

// inferExpressionType implements a closed inference table: a fixed,
// non-extensible set of syntactic shapes maps to a TypeScript type,
// falling back to "unknown" (flagged UNRESOLVED_TYPE by the caller) for
// anything else. isConst selects literal narrowing (`const`) vs widening
// (`let`/`var`).
func inferExpressionType(expr string, isConst bool) string {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return ""
	}

	if rest, ok := trimAsConstSuffix(expr); ok {
		if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
			inner := strings.TrimSpace(rest[1 : len(rest)-1])
			return "readonly [" + strings.Join(elemTypes(splitTopLevelCommas(inner), true), ", ") + "]"
		}
		return inferExpressionType(rest, true)
	}
	if t, ok := trimAsCastSuffix(expr); ok {
		return t
	}
	if t, ok := trimSatisfiesSuffix(expr); ok {
		_ = t
		return inferExpressionType(stripSatisfies(expr), isConst)
	}

	switch {
	case expr == "null":
		return "null"
	case expr == "undefined":
		return "undefined"
	case expr == "true" || expr == "false":
		if isConst {
			return expr
		}
		return "boolean"
	case isNumericLiteral(expr):
		if isConst {
			return expr
		}
		return "number"
	case isStringLiteral(expr):
		if isConst {
			return expr
		}
		return "string"
	case strings.HasPrefix(expr, "`"):
		return "string"
	case strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]"):
		return inferArrayType(expr, isConst)
	case strings.HasPrefix(expr, "{") && strings.HasSuffix(expr, "}"):
		return "object"
	case strings.HasPrefix(expr, "new ") || expr == "new":
		return inferConstructorType(expr)
	case isArrowFunction(expr) || strings.HasPrefix(expr, "function") || strings.HasPrefix(expr, "async "):
		sig, ok := functionExpressionSignature(expr)
		if ok {
			return sig
		}
		return "Function"
	default:
		return "unknown"
	}
}

func isNumericLiteral(expr string) bool {
	if expr == "" {
		return false
	}
	i := 0
	if expr[i] == '-' || expr[i] == '+' {
		i++
	}
	if i >= len(expr) {
		return false
	}
	sawDigit := false
	for ; i < len(expr); i++ {
		c := expr[i]
		if c >= '0' && c <= '9' {
			sawDigit = true
			continue
		}
		if c == '.' || c == '_' || c == 'x' || c == 'X' || c == 'o' || c == 'O' ||
			c == 'b' || c == 'B' || c == 'n' || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			continue
		}
		return false
	}
	return sawDigit
}

func isStringLiteral(expr string) bool {
	if len(expr) < 2 {
		return false
	}
	q := expr[0]
	if q != '\'' && q != '"' {
		return false
	}
	return expr[len(expr)-1] == q
}

func isArrowFunction(expr string) bool {
	arrow := findTopLevel(expr, '>')
	return arrow > 0 && expr[arrow-1] == '='
}

// functionExpressionSignature re-derives "(params) => ReturnType" style
// signature text for a function/arrow expression assigned to a const, used
// when a variable's declared type is itself a callable shape.
func functionExpressionSignature(expr string) (string, bool) {
	open := strings.IndexByte(expr, '(')
	if open < 0 {
		return "", false
	}
	closeIdx, ok := matchBalanced(expr, open, '(', ')')
	if !ok {
		return "", false
	}
	params := parseParameterList(expr[open+1 : closeIdx])
	ret := "void"
	rest := strings.TrimSpace(expr[closeIdx+1:])
	if colon := 0; strings.HasPrefix(rest, ":") {
		_ = colon
		arrow := strings.Index(rest, "=>")
		if arrow > 0 {
			ret = strings.TrimSpace(rest[1:arrow])
		}
	}
	return "(" + joinParamSignatures(params) + ") => " + ret, true
}

func joinParamSignatures(params []paramDecl) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		t := p.Type
		if t == "" {
			t = "unknown"
		}
		name := p.Name
		if p.Rest {
			name = "..." + name
		}
		opt := ""
		if p.Optional {
			opt = "?"
		}
		parts = append(parts, name+opt+": "+t)
	}
	return strings.Join(parts, ", ")
}

func inferArrayType(expr string, isConst bool) string {
	inner := strings.TrimSpace(expr[1 : len(expr)-1])
	if inner == "" {
		return "unknown[]"
	}
	elems := splitTopLevelCommas(inner)
	if len(elems) == 0 {
		return "unknown[]"
	}
	first := inferExpressionType(elems[0], isConst)
	for _, e := range elems[1:] {
		if inferExpressionType(e, isConst) != first {
			return "unknown[]"
		}
	}
	if isConst {
		return "readonly [" + strings.Join(elemTypes(elems, isConst), ", ") + "]"
	}
	return first + "[]"
}

func elemTypes(elems []string, isConst bool) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = inferExpressionType(e, isConst)
	}
	return out
}

func inferConstructorType(expr string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(expr, "new"))
	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:open])
}

func trimAsConstSuffix(expr string) (string, bool) {
	if strings.HasSuffix(expr, "as const") {
		return strings.TrimSpace(strings.TrimSuffix(expr, "as const")), true
	}
	return expr, false
}

func trimAsCastSuffix(expr string) (string, bool) {
	idx := lastTopLevelKeyword(expr, " as ")
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(expr[idx+4:]), true
}

func trimSatisfiesSuffix(expr string) (string, bool) {
	idx := lastTopLevelKeyword(expr, " satisfies ")
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(expr[idx+len(" satisfies "):]), true
}

func stripSatisfies(expr string) string {
	idx := lastTopLevelKeyword(expr, " satisfies ")
	if idx < 0 {
		return expr
	}
	return strings.TrimSpace(expr[:idx])
}

// lastTopLevelKeyword finds the last occurrence of kw sitting at bracket
// depth zero, so "as"/"satisfies" inside a nested generic argument isn't
// mistaken for the trailing operator.
func lastTopLevelKeyword(expr, kw string) int {
	var depth depthTracker
	last := -1
	n := len(expr)
	i := 0
	for i < n {
		c := expr[i]
		switch c {
		case '\'':
			i = skipString(expr, i, '\'')
			continue
		case '"':
			i = skipString(expr, i, '"')
			continue
		case '`':
			i = skipTemplate(expr, i)
			continue
		}
		if depth.zero() && strings.HasPrefix(expr[i:], kw) {
			last = i
			i += len(kw)
			continue
		}
		depth.update(c)
		i++
	}
	return last
}
