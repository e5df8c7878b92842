package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtsforge/dtsforge/internal/logger"
)

func TestLocationForLoc(t *testing.T) {
	src := &logger.Source{File: "a.ts", Contents: "line one\nline two\nline three"}

	loc := src.LocationForLoc(logger.Loc{Start: 0})
	assert.Equal(t, &logger.Location{Line: 1, Column: 0, Offset: 0}, loc)

	// "line two" starts right after the first newline, at offset 9
	loc = src.LocationForLoc(logger.Loc{Start: 9})
	assert.Equal(t, &logger.Location{Line: 2, Column: 0, Offset: 9}, loc)

	loc = src.LocationForLoc(logger.Loc{Start: 14})
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 5, loc.Column)
}

func TestLogHasErrorsIgnoresUnresolvedType(t *testing.T) {
	log := logger.NewLog(&logger.Source{File: "a.ts"})
	log.Add(logger.CodeUnresolved, nil, "inferred unknown")
	assert.False(t, log.HasErrors())

	log.Add(logger.CodeExtraction, nil, "unbalanced generics")
	assert.True(t, log.HasErrors())
	assert.Len(t, log.Diagnostics(), 2)
}

func TestDiagnosticString(t *testing.T) {
	d := logger.Diagnostic{Code: logger.CodeParse, Message: "unterminated string", File: "a.ts",
		Location: &logger.Location{Line: 3, Column: 4, Offset: 40}}
	assert.Equal(t, "a.ts:3:4: PARSE_ERROR: unterminated string", d.String())
}
