// Package pool is the bounded worker pool generation runs through: a
// fixed number of goroutines pulling paths off a channel, each calling
// pkg/dtsgen.GenerateFromSource with its own ProcessingContext, never
// shared across goroutines.
package pool

import (
	"context"
	"os"
	"runtime"
	"sync"

	"github.com/dtsforge/dtsforge/internal/cache"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/pkg/dtsgen"
)

// FileResult is one path's generation outcome.
type FileResult struct {
	Path        string
	Output      string
	Diagnostics []logger.Diagnostic
	Err         error
}

// Run fans paths out across runtime.NumCPU goroutines (floor 1), calling
// pkg/dtsgen.GenerateFromSource for each, consulting and populating cache
// if non-nil, and returns every FileResult once all paths are done or ctx
// is cancelled.
func Run(ctx context.Context, paths []string, options dtsgen.Options, c *cache.Cache) []FileResult {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers == 0 {
		return nil
	}

	jobs := make(chan string)
	results := make(chan FileResult)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results <- generateOne(path, options, c)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, p := range paths {
			select {
			case <-ctx.Done():
				return
			case jobs <- p:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]FileResult, 0, len(paths))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func generateOne(path string, options dtsgen.Options, c *cache.Cache) FileResult {
	contents, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}

	if c != nil {
		hash := cache.ContentHash(string(contents), options)
		if cached, ok := c.Get(hash); ok {
			return FileResult{Path: path, Output: cached.Output, Diagnostics: cached.Diagnostics}
		}
		out, diags := dtsgen.GenerateFromSource(string(contents), path, options)
		c.Put(hash, cache.Result{Output: out, Diagnostics: diags})
		return FileResult{Path: path, Output: out, Diagnostics: diags}
	}

	out, diags := dtsgen.GenerateFromSource(string(contents), path, options)
	return FileResult{Path: path, Output: out, Diagnostics: diags}
}
