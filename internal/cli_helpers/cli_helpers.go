// This package contains internal CLI-related code that must be shared with
// other internal code outside of the CLI package.

package cli_helpers

import (
	"fmt"
	"strings"

	"github.com/dtsforge/dtsforge/pkg/dtsgen"
)

type ErrorWithNote struct {
	Text string
	Note string
}

func MakeErrorWithNote(text string, note string) *ErrorWithNote {
	return &ErrorWithNote{
		Text: text,
		Note: note,
	}
}

// ParseOutputStructure parses the --output-structure flag value.
func ParseOutputStructure(text string) (dtsgen.OutputStructure, *ErrorWithNote) {
	switch text {
	case "", "mirror":
		return dtsgen.OutputMirror, nil
	case "flat":
		return dtsgen.OutputFlat, nil
	default:
		return dtsgen.OutputMirror, MakeErrorWithNote(
			fmt.Sprintf("Invalid output-structure value: %q", text),
			"Valid values are \"mirror\" or \"flat\".",
		)
	}
}

// ParseImportOrder parses the --import-order flag value, a comma-separated
// list of priority-bucket patterns.
func ParseImportOrder(text string) ([]string, *ErrorWithNote) {
	if text == "" {
		return dtsgen.DefaultOptions().ImportOrder, nil
	}
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, MakeErrorWithNote(
				fmt.Sprintf("Invalid import-order value: %q", text),
				"Expected a comma-separated list of non-empty patterns, such as \"bun,react\".",
			)
		}
		out = append(out, p)
	}
	return out, nil
}
