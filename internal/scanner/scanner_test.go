package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

func scan(t *testing.T, src string) ([]scanner.Span, *logger.Log) {
	t.Helper()
	source := &logger.Source{File: "t.ts", Contents: src}
	log := logger.NewLog(source)
	spans := scanner.New(source, log).Scan()
	return spans, log
}

func TestScanSimpleStatements(t *testing.T) {
	spans, log := scan(t, "const a = 1;\nconst b = 2;\n")
	require.Empty(t, log.Diagnostics())
	require.Len(t, spans, 2)
	assert.Equal(t, "const a = 1;", spans[0].Text)
	assert.Equal(t, "const b = 2;", spans[1].Text)
}

func TestScanBracesCloseTopLevelBlock(t *testing.T) {
	spans, log := scan(t, "export function add(a: number, b: number) { return a + b }\nexport class Foo {}\n")
	require.Empty(t, log.Diagnostics())
	require.Len(t, spans, 2)
	assert.Contains(t, spans[0].Text, "function add")
	assert.Contains(t, spans[1].Text, "class Foo")
}

func TestScanASIWithoutSemicolon(t *testing.T) {
	spans, _ := scan(t, "const a = 1\nconst b = 2\n")
	require.Len(t, spans, 2)
	assert.Equal(t, "const a = 1", spans[0].Text)
	assert.Equal(t, "const b = 2", spans[1].Text)
}

func TestScanLeadingCommentAttachment(t *testing.T) {
	src := "// doc comment\nexport const a = 1;\n"
	spans, _ := scan(t, src)
	require.Len(t, spans, 1)
	require.Len(t, spans[0].LeadingComments, 1)
	assert.Equal(t, "// doc comment", spans[0].LeadingComments[0])
}

func TestScanBlankLineBreaksAttachment(t *testing.T) {
	src := "// doc comment\n\nexport const a = 1;\n"
	spans, _ := scan(t, src)
	require.Len(t, spans, 1)
	assert.Empty(t, spans[0].LeadingComments)
}

func TestScanStringsAndTemplatesDoNotAffectBracketDepth(t *testing.T) {
	src := "export const s = '{[(' ;\nexport const t = `a${ 1 + 1 }b`;\n"
	spans, log := scan(t, src)
	require.Empty(t, log.Diagnostics())
	require.Len(t, spans, 2)
	assert.Contains(t, spans[1].Text, "${ 1 + 1 }")
}

func TestScanUnterminatedStringReportsParseError(t *testing.T) {
	_, log := scan(t, "export const a = 'oops\n")
	require.NotEmpty(t, log.Diagnostics())
	assert.Equal(t, logger.CodeParse, log.Diagnostics()[0].Code)
}

func TestScanRegexLiteralDoesNotConfuseBracketCounting(t *testing.T) {
	src := "export const re = /[a-z]+/g;\nexport const after = 1;\n"
	spans, log := scan(t, src)
	require.Empty(t, log.Diagnostics())
	require.Len(t, spans, 2)
}

func TestScanCommentOnlyFileYieldsNoSpans(t *testing.T) {
	spans, _ := scan(t, "// just a comment\n/* and another */\n")
	assert.Empty(t, spans)
}
