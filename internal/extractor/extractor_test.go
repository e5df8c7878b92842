package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/extractor"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

func extract(t *testing.T, src string) ([]*ast.Declaration, *logger.Log) {
	t.Helper()
	source := &logger.Source{File: "t.ts", Contents: src}
	log := logger.NewLog(source)
	spans := scanner.New(source, log).Scan()
	decls := extractor.New(log).Extract(spans)
	return decls, log
}

func TestExtractFunctionWithExplicitReturnType(t *testing.T) {
	decls, log := extract(t, "export function add(a: number, b: number): number { return a + b }")
	require.Empty(t, log.Diagnostics())
	require.Len(t, decls, 1)
	d := decls[0]
	assert.Equal(t, ast.KindFunction, d.Kind)
	assert.True(t, d.IsExported)
	assert.Equal(t, "add", d.Name)
	assert.Equal(t, "number", d.ReturnType)
	require.Len(t, d.Parameters, 2)
	assert.Equal(t, "a", d.Parameters[0].Name)
	assert.Equal(t, "number", d.Parameters[0].Type)
}

func TestExtractAsyncFunctionSynthesizesPromiseReturnType(t *testing.T) {
	decls, _ := extract(t, "export async function fetchIt() { return 1 }")
	require.Len(t, decls, 1)
	assert.Equal(t, "Promise<void>", decls[0].ReturnType)
	assert.True(t, decls[0].IsAsync)
}

func TestExtractConstNarrowsLiteralType(t *testing.T) {
	decls, _ := extract(t, "export const x = 1;")
	require.Len(t, decls, 1)
	assert.Equal(t, "1", decls[0].TypeAnnotation)
}

func TestExtractLetWidensLiteralType(t *testing.T) {
	decls, _ := extract(t, "export let x = 1;")
	require.Len(t, decls, 1)
	assert.Equal(t, "number", decls[0].TypeAnnotation)
}

func TestExtractAsConstNarrowsArray(t *testing.T) {
	decls, _ := extract(t, "export const x = [1, 2] as const;")
	require.Len(t, decls, 1)
	assert.Contains(t, decls[0].TypeAnnotation, "readonly")
}

func TestExtractInterfaceWithExtendsAndMembers(t *testing.T) {
	decls, log := extract(t, "export interface Foo extends Bar { a: string; b?: number }")
	require.Empty(t, log.Diagnostics())
	require.Len(t, decls, 1)
	d := decls[0]
	assert.Equal(t, ast.KindInterface, d.Kind)
	assert.Equal(t, []string{"Bar"}, d.Extends)
	require.Len(t, d.Members, 2)
	assert.Equal(t, "a", d.Members[0].Name)
	assert.Equal(t, "string", d.Members[0].TypeAnnotation)
	assert.Equal(t, "b?", d.Members[1].Name)
}

func TestExtractClassWithPrivateMemberAndParameterProperty(t *testing.T) {
	decls, _ := extract(t, "export class Foo { constructor(private name: string) {} greet(): string { return this.name } }")
	require.Len(t, decls, 1)
	d := decls[0]
	assert.Equal(t, ast.KindClass, d.Kind)
	require.Len(t, d.Members, 2)
	ctor := d.Members[0]
	assert.Equal(t, "constructor", ctor.Name)
	require.Len(t, ctor.Parameters, 1)
	assert.Equal(t, ast.VisibilityPrivate, ctor.Parameters[0].Visibility)
}

func TestExtractImportNamedWithAliasAndType(t *testing.T) {
	decls, _ := extract(t, "import { serve, type Server as S } from 'bun';")
	require.Len(t, decls, 1)
	d := decls[0]
	assert.Equal(t, ast.KindImport, d.Kind)
	assert.Equal(t, "bun", d.Source)
	require.Len(t, d.Specifiers, 2)
	assert.Equal(t, "serve", d.Specifiers[0].Name)
	assert.Equal(t, "Server", d.Specifiers[1].Name)
	assert.Equal(t, "S", d.Specifiers[1].Alias)
	assert.True(t, d.Specifiers[1].IsType)
}

func TestExtractOverloadsGroupIntoOneDeclaration(t *testing.T) {
	src := `export function parse(input: string): string;
export function parse(input: number): number;
export function parse(input: string | number): string | number { return input }`
	decls, _ := extract(t, src)
	require.Len(t, decls, 1)
	d := decls[0]
	assert.True(t, d.HasOverloads())
	assert.Len(t, d.Overloads, 2)
}

func TestExtractEnumPreservesMembersVerbatim(t *testing.T) {
	decls, _ := extract(t, "export const enum Color { Red, Green, Blue = 5 }")
	require.Len(t, decls, 1)
	d := decls[0]
	assert.Equal(t, ast.KindEnum, d.Kind)
	assert.True(t, d.Modifiers.Has(ast.ModReadonly))
	require.Len(t, d.Members, 3)
	assert.Equal(t, "Blue = 5", d.Members[2].Text)
}

func TestExtractUnresolvableTypeFallsBackToUnknown(t *testing.T) {
	decls, log := extract(t, "export const x = someCall();")
	require.Len(t, decls, 1)
	assert.Equal(t, "unknown", decls[0].TypeAnnotation)
	require.NotEmpty(t, log.Diagnostics())
	assert.Equal(t, logger.CodeUnresolved, log.Diagnostics()[0].Code)
}

func TestExtractExportAssignment(t *testing.T) {
	decls, _ := extract(t, "export = MyModule;")
	require.Len(t, decls, 1)
	assert.Equal(t, ast.KindExport, decls[0].Kind)
	assert.Equal(t, "MyModule", decls[0].Name)
}

func TestExtractDeclareGlobalAugmentation(t *testing.T) {
	decls, _ := extract(t, "declare global { interface Window { myGlobal: string } }")
	require.Len(t, decls, 1)
	d := decls[0]
	assert.Equal(t, ast.KindNamespace, d.Kind)
	assert.Equal(t, "global", d.Name)
	require.Len(t, d.Members, 1)
	assert.Equal(t, "Window", d.Members[0].Name)
}
