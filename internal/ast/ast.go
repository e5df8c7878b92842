// Package ast holds the single data model the Extractor produces and the
// Processor consumes: Declaration, ParameterDeclaration, ImportSpecifier,
// and ProcessingContext.
package ast

import (
	"strings"

	"github.com/dtsforge/dtsforge/internal/logger"
)

// Kind tags what a Declaration represents. It is the discriminator a
// dynamic-dispatch design would otherwise need a type hierarchy for.
type Kind uint8

const (
	KindFunction Kind = iota
	KindVariable
	KindInterface
	KindType
	KindClass
	KindEnum
	KindImport
	KindExport
	KindModule
	KindNamespace
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	case KindInterface:
		return "interface"
	case KindType:
		return "type"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindImport:
		return "import"
	case KindExport:
		return "export"
	case KindModule:
		return "module"
	case KindNamespace:
		return "namespace"
	default:
		return "unknown"
	}
}

// Modifier is one bit of the keyword set a declaration or member may carry.
type Modifier uint16

const (
	ModDeclare Modifier = 1 << iota
	ModAsync
	ModAbstract
	ModStatic
	ModPublic
	ModPrivate
	ModProtected
	ModReadonly
	ModOverride
)

func (m Modifier) Has(flag Modifier) bool { return m&flag != 0 }

// Visibility is the constructor parameter-property visibility keyword.
// VisibilityNone means the parameter is a plain parameter, not a
// parameter-property.
type Visibility uint8

const (
	VisibilityNone Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityProtected
)

// ParameterDeclaration describes one function/method/constructor parameter.
type ParameterDeclaration struct {
	Name         string
	Type         string // empty if unannotated and uninferred
	Optional     bool
	Rest         bool
	DefaultValue string     // raw source text, empty if absent
	Visibility   Visibility // VisibilityNone unless this is a constructor parameter-property
	Readonly     bool       // only meaningful alongside Visibility != VisibilityNone
}

// ImportSpecifier is one named binding inside an import or named-export
// clause.
type ImportSpecifier struct {
	Name   string
	Alias  string // empty if no "as" clause
	IsType bool
}

// Declaration is the universal record the Extractor emits and the
// Processor consumes. Not every field applies to every Kind.
type Declaration struct {
	Kind Kind
	Name string
	Text string // raw captured source

	IsExported bool
	IsDefault  bool

	LeadingComments []string

	Modifiers Modifier

	Generics string // raw "<...>" text including constraints/defaults

	TypeAnnotation string // variable/type/parameter: inferred or explicit

	Keyword string // variable only: "const", "let", or "var" as written

	Extends    []string // classes: at most one entry; interfaces: the joined list
	Implements []string // classes only

	Members []*Declaration // class/interface/enum/namespace/module bodies

	Parameters []ParameterDeclaration
	ReturnType string

	Source       string // import/re-export module specifier
	Specifiers   []ImportSpecifier
	IsTypeOnly   bool
	IsSideEffect bool

	IsAsync     bool
	IsGenerator bool
	HasBody     bool // function only: false for an overload signature, true for the implementation

	Overloads []string // aggregated declared signature texts; a body-bearing implementation is not included

	Range logger.Range // best-effort source span, for diagnostics only
}

// IsPrivateMember reports whether d is a class member that private-member
// filtering must drop entirely from the emitted class body. Constructor
// parameter-properties are parameters, not members, and are filtered
// separately by the Processor.
func (d *Declaration) IsPrivateMember() bool {
	return d.Modifiers.Has(ModPrivate)
}

// HasOverloads reports whether d represents a collapsed overload group.
// Overloads is nil for a lone function; for a group it holds at least one
// declared signature (a single signature followed by its implementation
// yields exactly one).
func (d *Declaration) HasOverloads() bool {
	return len(d.Overloads) > 0
}

// ProcessingContext is the Processor's mutable workspace for one file.
// Its lifetime is exactly one GenerateFromSource/Extract call; it is
// never shared across invocations or goroutines.
type ProcessingContext struct {
	Declarations []*Declaration

	// ImportedIdentifiers maps a module specifier to the set of bound
	// identifiers used from it.
	ImportedIdentifiers map[string]map[string]bool

	ExportedNames map[string]bool

	ReferencedTypeNames map[string]bool
}

// NewProcessingContext builds an empty workspace around decls.
func NewProcessingContext(decls []*Declaration) *ProcessingContext {
	ctx := &ProcessingContext{
		Declarations:        decls,
		ImportedIdentifiers: make(map[string]map[string]bool),
		ExportedNames:       make(map[string]bool),
		ReferencedTypeNames: make(map[string]bool),
	}
	for _, d := range decls {
		if d.Kind == KindImport {
			set, ok := ctx.ImportedIdentifiers[d.Source]
			if !ok {
				set = make(map[string]bool)
				ctx.ImportedIdentifiers[d.Source] = set
			}
			for _, spec := range d.Specifiers {
				name := spec.Alias
				if name == "" {
					name = spec.Name
					// the Extractor marks a default binding with a leading "="
					// and a namespace binding with a leading "*" so the
					// Processor can tell them apart from a plain named
					// specifier; neither marker is part of the bound identifier.
					name = strings.TrimLeft(name, "=*")
				}
				set[name] = true
			}
		}
		if d.IsExported && d.Name != "" {
			ctx.ExportedNames[d.Name] = true
		}
	}
	return ctx
}
