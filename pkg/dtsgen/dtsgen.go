// Package dtsgen is dtsforge's public entry point: it wires the Scanner,
// Extractor, and Processor together behind the two functions a caller
// actually needs, GenerateFromSource and Extract.
package dtsgen

import (
	"github.com/dtsforge/dtsforge/internal/ast"
	"github.com/dtsforge/dtsforge/internal/extractor"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/processor"
	"github.com/dtsforge/dtsforge/internal/scanner"
)

// OutputStructure selects an output layout. It is carried in Options (and
// the CLI's cache key) but is not passed to the Processor, so it does not
// change the emitted text.
type OutputStructure uint8

const (
	// OutputMirror keeps the source's declaration order, apart from
	// imports, which the Processor hoists and sorts.
	OutputMirror OutputStructure = iota
	// OutputFlat is reserved for a future re-grouping mode; today it
	// behaves identically to OutputMirror. Unknown/unimplemented options
	// are ignored, never a hard error.
	OutputFlat
)

// Options controls generation. An empty ImportOrder falls back to the
// default order; RetainComments is used as given, so its zero value drops
// comments. Generation never rejects a call for an option it doesn't
// recognize.
type Options struct {
	RetainComments  bool
	ImportOrder     []string
	OutputStructure OutputStructure
}

// DefaultOptions returns dtsforge's documented defaults: comments
// retained, a single "bun" import-priority bucket, mirrored output.
func DefaultOptions() Options {
	return Options{
		RetainComments: true,
		ImportOrder:    []string{"bun"},
	}
}

// GenerateFromSource runs the full pipeline over sourceText and returns
// the generated `.d.ts` text together with every diagnostic recorded along
// the way. It never panics and never returns an error value: failures
// surface only as diagnostics.
func GenerateFromSource(sourceText, filePath string, options Options) (string, []logger.Diagnostic) {
	decls, log := runExtraction(sourceText, filePath, options.RetainComments)
	ctx := ast.NewProcessingContext(decls)

	procOpts := processor.Options{
		RetainComments: options.RetainComments,
		ImportOrder:    options.ImportOrder,
	}
	out := processor.New(log, procOpts).Process(ctx)
	return out, log.Diagnostics()
}

// Extract runs only the Scanner and Extractor stages, returning the
// Declarations a caller wants to inspect without paying for emission.
func Extract(sourceText, filePath string, retainComments bool) ([]*ast.Declaration, []logger.Diagnostic) {
	decls, log := runExtraction(sourceText, filePath, retainComments)
	return decls, log.Diagnostics()
}

func runExtraction(sourceText, filePath string, retainComments bool) ([]*ast.Declaration, *logger.Log) {
	source := &logger.Source{Contents: sourceText, File: filePath}
	log := logger.NewLog(source)

	spans := scanner.New(source, log).Scan()
	if !retainComments {
		for i := range spans {
			spans[i].LeadingComments = nil
		}
	}

	decls := extractor.New(log).Extract(spans)
	return decls, log
}
