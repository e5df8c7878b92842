package extractor

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/ast"
)

// signatureText reconstructs a function's header text (name, generics,
// parameters, return type) with its body always elided, so an overload
// group's aggregated signatures never carry any one member's body. Like
// functionSignature, it never emits "async" or "*": an ambient signature
// carries async/generator-ness only through its return type.
func signatureText(d *ast.Declaration) string {
	var b strings.Builder
	b.WriteString("function ")
	b.WriteString(d.Name)
	b.WriteString(d.Generics)
	b.WriteString("(")
	b.WriteString(joinParamSignatures(toParamDecls(d.Parameters)))
	b.WriteString(")")
	if d.ReturnType != "" {
		b.WriteString(": ")
		b.WriteString(d.ReturnType)
	}
	return b.String()
}

func toParamDecls(params []ast.ParameterDeclaration) []paramDecl {
	out := make([]paramDecl, len(params))
	for i, p := range params {
		out[i] = paramDecl{
			Name:         p.Name,
			Type:         p.Type,
			Optional:     p.Optional,
			Rest:         p.Rest,
			DefaultValue: p.DefaultValue,
		}
	}
	return out
}

// groupOverloads collapses consecutive same-named function Declarations at
// one scope into a single Declaration carrying the aggregated signature
// texts. When the last Declaration in the group has a body, it is the
// implementation: its own signature is not one of the declared overloads
// and is excluded from Overloads. A group whose last member has no body
// (every member is a bare signature) keeps every one of them. Only Kind
// == KindFunction participates; a single function is left untouched
// (Overloads stays nil, per ast.Declaration.HasOverloads).
func groupOverloads(decls []*ast.Declaration) []*ast.Declaration {
	out := make([]*ast.Declaration, 0, len(decls))
	i := 0
	for i < len(decls) {
		d := decls[i]
		if d.Kind != ast.KindFunction || d.Name == "" {
			out = append(out, d)
			i++
			continue
		}
		j := i + 1
		group := []*ast.Declaration{d}
		for j < len(decls) && decls[j].Kind == ast.KindFunction && decls[j].Name == d.Name {
			group = append(group, decls[j])
			j++
		}
		if len(group) == 1 {
			out = append(out, d)
			i = j
			continue
		}
		last := group[len(group)-1]
		declared := group
		if last.HasBody {
			declared = group[:len(group)-1]
		}
		merged := *last
		merged.Overloads = make([]string, len(declared))
		for k, g := range declared {
			merged.Overloads[k] = signatureText(g)
		}
		merged.LeadingComments = group[0].LeadingComments
		out = append(out, &merged)
		i = j
	}
	return out
}
