package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/processor"
)

func process(t *testing.T, decls []*ast.Declaration, options processor.Options) string {
	t.Helper()
	source := &logger.Source{File: "t.ts", Contents: ""}
	log := logger.NewLog(source)
	p := processor.New(log, options)
	return p.Process(ast.NewProcessingContext(decls))
}

func TestProcessFunctionGetsDeclareAndExportPrefix(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{Kind: ast.KindFunction, Name: "add", IsExported: true, ReturnType: "number",
			Parameters: []ast.ParameterDeclaration{{Name: "a", Type: "number"}}},
	}, processor.Options{})
	assert.Equal(t, "export declare function add(a: number): number;\n", out)
}

func TestProcessOverloadsRenderEverySignature(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{Kind: ast.KindFunction, Name: "parse", IsExported: true,
			Overloads: []string{
				"function parse(input: string): string",
				"function parse(input: number): number",
			}},
	}, processor.Options{})
	assert.Equal(t, "export declare function parse(input: string): string;\nexport declare function parse(input: number): number;\n", out)
}

func TestProcessVariableDefaultsUnannotatedToUnknown(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{Kind: ast.KindVariable, Name: "x", IsExported: true},
	}, processor.Options{})
	assert.Equal(t, "export declare const x: unknown;\n", out)
}

func TestProcessMultiBindingVariableRendersAllMembers(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{
			Kind: ast.KindVariable, Name: "a", TypeAnnotation: "1", IsExported: true,
			Members: []*ast.Declaration{
				{Kind: ast.KindVariable, Name: "b", TypeAnnotation: "2"},
			},
		},
	}, processor.Options{})
	assert.Equal(t, "export declare const a: 1, b: 2;\n", out)
}

func TestProcessPrivateClassMemberIsFiltered(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{
			Kind: ast.KindClass, Name: "Foo", IsExported: true,
			Members: []*ast.Declaration{
				{Kind: ast.KindFunction, Name: "secret", Modifiers: ast.ModPrivate},
				{Kind: ast.KindFunction, Name: "greet", ReturnType: "void"},
			},
		},
	}, processor.Options{})
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "greet(): void;")
}

func TestProcessConstructorParameterPropertyExpands(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{
			Kind: ast.KindClass, Name: "Foo", IsExported: true,
			Members: []*ast.Declaration{
				{
					Kind: ast.KindFunction, Name: "constructor",
					Parameters: []ast.ParameterDeclaration{
						{Name: "name", Type: "string", Visibility: ast.VisibilityPublic},
						{Name: "secret", Type: "string", Visibility: ast.VisibilityPrivate},
					},
				},
			},
		},
	}, processor.Options{})
	assert.Contains(t, out, "public name: string;")
	assert.NotContains(t, out, "private secret: string;")
	assert.Contains(t, out, "constructor(name: string, secret: string);")
}

func TestProcessImportDefaultBinding(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{Kind: ast.KindImport, Source: "bun", Specifiers: []ast.ImportSpecifier{{Name: "=Bun"}}},
	}, processor.Options{})
	assert.Equal(t, "import Bun from \"bun\";\n", out)
}

func TestProcessImportNamespaceBinding(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{Kind: ast.KindImport, Source: "path", Specifiers: []ast.ImportSpecifier{{Name: "*path"}}},
	}, processor.Options{})
	assert.Equal(t, "import * as path from \"path\";\n", out)
}

func TestProcessImportOrderBucketsBunFirst(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{Kind: ast.KindImport, Source: "./local", Specifiers: []ast.ImportSpecifier{{Name: "a"}}},
		{Kind: ast.KindImport, Source: "bun", Specifiers: []ast.ImportSpecifier{{Name: "=Bun"}}},
	}, processor.Options{})
	bunIdx := indexOf(out, "bun")
	localIdx := indexOf(out, "./local")
	require.NotEqual(t, -1, bunIdx)
	require.NotEqual(t, -1, localIdx)
	assert.Less(t, bunIdx, localIdx)
}

func TestProcessEnumRendersConstPrefixAndVerbatimMembers(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{
			Kind: ast.KindEnum, Name: "Color", IsExported: true, Modifiers: ast.ModReadonly,
			Members: []*ast.Declaration{
				{Kind: ast.KindEnum, Text: "Red"},
				{Kind: ast.KindEnum, Text: "Blue = 5"},
			},
		},
	}, processor.Options{})
	assert.Contains(t, out, "export declare const enum Color {")
	assert.Contains(t, out, "Blue = 5")
}

func TestProcessGlobalNamespaceSkipsDoubleDeclare(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{
			Kind: ast.KindNamespace, Name: "global",
			Members: []*ast.Declaration{
				{Kind: ast.KindInterface, Name: "Window", Members: []*ast.Declaration{
					{Kind: ast.KindVariable, Name: "myGlobal", TypeAnnotation: "string"},
				}},
			},
		},
	}, processor.Options{})
	assert.Contains(t, out, "declare global {")
	assert.NotContains(t, out, "declare declare")
}

func TestProcessExportAssignmentNeverGetsDeclareOrExportPrefix(t *testing.T) {
	out := process(t, []*ast.Declaration{
		{Kind: ast.KindExport, Name: "MyModule"},
	}, processor.Options{})
	assert.Equal(t, "export = MyModule;\n", out)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
