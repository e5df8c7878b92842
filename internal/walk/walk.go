// Package walk is dtsforge's filesystem-discovery collaborator: it
// expands glob roots into concrete .ts source paths and honours
// .dtsforgeignore patterns.
package walk

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"
)

// Options controls discovery.
type Options struct {
	// IgnoreFile is the path to a .gitignore-style pattern file; empty
	// means no ignore filtering at all (no directory is skipped by default).
	IgnoreFile string
}

// Discover expands every root (a literal path or a doublestar glob like
// "src/**/*.ts") into a deduplicated, sorted-by-discovery-order list of
// files, excluding anything the ignore file matches and anything already
// yielded by an earlier root. Only a directory root is filtered to .ts
// files; glob matches and literal file roots are returned whatever their
// extension.
func Discover(ctx context.Context, roots []string, opts Options) ([]string, error) {
	var ignore *gitignore.GitIgnore
	if opts.IgnoreFile != "" {
		ig, err := gitignore.CompileIgnoreFile(opts.IgnoreFile)
		if err != nil {
			return nil, err
		}
		ignore = ig
	}

	seen := make(map[string]bool)
	var out []string

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matches, err := expandRoot(root)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			if ignore != nil && ignore.MatchesPath(m) {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out, nil
}

// expandRoot treats root as a doublestar pattern when it contains glob
// metacharacters, and as a literal file or directory otherwise (in which
// case every ".ts" file under it is walked).
func expandRoot(root string) ([]string, error) {
	if doublestar.ValidatePattern(root) && containsGlobMeta(root) {
		return doublestar.FilepathGlob(root)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var out []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".ts" {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

func containsGlobMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
