package dtsgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsforge/dtsforge/pkg/dtsgen"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	out, diags := dtsgen.GenerateFromSource(src, "t.ts", dtsgen.DefaultOptions())
	for _, d := range diags {
		if d.Code != "UNRESOLVED_TYPE" {
			t.Fatalf("unexpected diagnostic: %s", d)
		}
	}
	return out
}

func TestScenarioSimpleFunction(t *testing.T) {
	out := generate(t, "export function add(a: number, b: number) { return a+b }")
	assert.Equal(t, "export declare function add(a: number, b: number): void;\n", out)
}

func TestScenarioConstNarrowsStringLiteral(t *testing.T) {
	out := generate(t, "export const name = 'hello'")
	assert.Equal(t, "export declare const name: 'hello';\n", out)
}

func TestScenarioLetWidensStringLiteral(t *testing.T) {
	out := generate(t, "export let name = 'hello'")
	assert.Equal(t, "export declare let name: string;\n", out)
}

func TestScenarioAsyncGeneratorReturnShape(t *testing.T) {
	out := generate(t, "export async function* s(urls: string[]) { for (const u of urls) yield await fetch(u) }")
	assert.Equal(t, "export declare function s(urls: string[]): AsyncGenerator<unknown, void, unknown>;\n", out)
}

func TestScenarioParameterPropertiesExpandAndFilterPrivate(t *testing.T) {
	out := generate(t, "export class U { constructor(public readonly id: string, private secret: string) {} }")
	assert.Contains(t, out, "public readonly id: string;")
	assert.NotContains(t, out, "secret: string;")
	assert.Contains(t, out, "constructor(id: string, secret: string);")
}

func TestScenarioOverloadsRenderEveryNonImplementationSignature(t *testing.T) {
	out := generate(t, "export function p(x: string): string; export function p(x: number): number; export function p(x: any): any { return x }")
	assert.Equal(t, 2, strings.Count(out, "export declare function p"))
	assert.NotContains(t, out, "p(x: any): any")
}

func TestScenarioImportOrderBunFirstWithBlankLine(t *testing.T) {
	out := generate(t, "import { a } from 'bun'; import { b } from './x'")
	bunIdx := strings.Index(out, "\"bun\"")
	localIdx := strings.Index(out, "\"./x\"")
	require.NotEqual(t, -1, bunIdx)
	require.NotEqual(t, -1, localIdx)
	assert.Less(t, bunIdx, localIdx)
	assert.Contains(t, out, "\n\n")
}

func TestEmptyInputProducesSingleTrailingNewline(t *testing.T) {
	out := generate(t, "")
	assert.Equal(t, "\n", out)
}

func TestCommentOnlyInputProducesSingleTrailingNewline(t *testing.T) {
	out := generate(t, "// just a comment\n/* and a block comment */\n")
	assert.Equal(t, "\n", out)
}

func TestGenerationIsDeterministic(t *testing.T) {
	src := "export class Widget { constructor(public readonly id: string, private secret: string) {} render(): void {} }"
	first := generate(t, src)
	second := generate(t, src)
	assert.Equal(t, first, second)
}

func TestFunctionDeclaredTenTimesWithIdenticalSignatureKeepsAll(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("export function f(x: number): number;")
	}
	out := generate(t, b.String())
	assert.Equal(t, 10, strings.Count(out, "export declare function f"))
}

func TestUnterminatedStringYieldsDiagnosticAndKeepsPrecedingDeclarations(t *testing.T) {
	out, diags := dtsgen.GenerateFromSource("export const ok = 1;\nexport const bad = 'unterminated", "t.ts", dtsgen.DefaultOptions())
	assert.Contains(t, out, "ok: 1")
	found := false
	for _, d := range diags {
		if d.Code == "PARSE_ERROR" {
			found = true
		}
	}
	assert.True(t, found, "expected a PARSE_ERROR diagnostic")
}

func TestAsConstPropagatesReadonlyNarrowing(t *testing.T) {
	out := generate(t, "export const xs = [1, 2] as const;")
	assert.Contains(t, out, "readonly")
}

func TestNamespaceMembersRecurseThroughSamePipeline(t *testing.T) {
	out := generate(t, "export namespace Shapes { export function area(x: number): number { return x } }")
	assert.Contains(t, out, "namespace Shapes {")
	assert.Contains(t, out, "  export function area(x: number): number;")
	assert.NotContains(t, out, "declare function area")
}

func TestAsyncGeneratorNeverEmitsAsyncOrStarKeyword(t *testing.T) {
	out := generate(t, "export async function* s(urls: string[]) { for (const u of urls) yield await fetch(u) }")
	assert.NotContains(t, out, "async")
	assert.NotContains(t, out, "function*")
}

func TestDeclareGlobalAugmentationKeepsDeclareKeyword(t *testing.T) {
	out := generate(t, "declare global { interface Window { myGlobal: string; } }")
	assert.Contains(t, out, "declare global {")
	assert.NotContains(t, out, "declare declare")
}
