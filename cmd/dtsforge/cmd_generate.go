package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dtsforge/dtsforge/internal/cache"
	"github.com/dtsforge/dtsforge/internal/cli_helpers"
	"github.com/dtsforge/dtsforge/internal/config"
	"github.com/dtsforge/dtsforge/internal/exitcode"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/internal/obslog"
	"github.com/dtsforge/dtsforge/internal/pool"
	"github.com/dtsforge/dtsforge/internal/walk"
	"github.com/dtsforge/dtsforge/internal/watch"
	"github.com/dtsforge/dtsforge/pkg/dtsgen"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	log, err := obslog.New(flagVerbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	options, err := config.Load(flagConfigPath)
	if err != nil {
		return exitcode.Set(err, exitcode.UsageError)
	}
	if flagNoComments {
		options.RetainComments = false
	}
	if flagImportOrder != "" {
		order, errNote := cli_helpers.ParseImportOrder(flagImportOrder)
		if errNote != nil {
			return exitcode.Set(wrapErrorWithNote(errNote), exitcode.UsageError)
		}
		options.ImportOrder = order
	}
	if flagOutputStruct != "" {
		structure, errNote := cli_helpers.ParseOutputStructure(flagOutputStruct)
		if errNote != nil {
			return exitcode.Set(wrapErrorWithNote(errNote), exitcode.UsageError)
		}
		options.OutputStructure = structure
	}

	c, err := cache.New(flagCacheSize)
	if err != nil {
		return exitcode.Set(err, exitcode.UsageError)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func(paths []string) error {
		return generateAndWrite(paths, options, c, log)
	}

	paths, err := walk.Discover(ctx, args, walk.Options{IgnoreFile: flagIgnoreFile})
	if err != nil {
		return exitcode.Set(err, exitcode.UsageError)
	}
	if err := run(paths); err != nil {
		return err
	}

	if !flagWatch {
		return nil
	}

	log.Infof("watching %d root(s) for changes", len(args))
	return watch.Run(ctx, args, func(changed []string) {
		if err := run(changed); err != nil {
			log.Errorf("regeneration failed: %v", err)
		}
	})
}

func generateAndWrite(paths []string, options dtsgen.Options, c *cache.Cache, log *obslog.Logger) error {
	if len(paths) == 0 {
		return nil
	}

	ctx := context.Background()
	var bar *progressbar.ProgressBar
	if obslog.TerminalWidth() > 0 {
		bar = progressbar.Default(int64(len(paths)), "generating")
	} else {
		bar = progressbar.DefaultSilent(int64(len(paths)), "generating")
	}

	results := pool.Run(ctx, paths, options, c)
	hadFailure := false

	for _, r := range results {
		bar.Add(1)
		if r.Err != nil {
			log.Errorf("%s: %v", r.Path, r.Err)
			hadFailure = true
			continue
		}
		if hasFatalDiagnostic(r.Diagnostics) {
			hadFailure = true
		}
		for _, d := range r.Diagnostics {
			log.Warnf("%s", d.String())
		}
		outPath := outputPathFor(r.Path)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(outPath, []byte(r.Output), 0o644); err != nil {
			return err
		}
	}

	if hadFailure {
		return exitcode.Set(errGenerationFailed, exitcode.Diagnostics)
	}
	return nil
}

var errGenerationFailed = &generationError{"one or more files failed to generate cleanly"}

type generationError struct{ msg string }

func (e *generationError) Error() string { return e.msg }

func hasFatalDiagnostic(diags []logger.Diagnostic) bool {
	for _, d := range diags {
		switch d.Code {
		case logger.CodeParse, logger.CodeExtraction, logger.CodeProcessing:
			return true
		case logger.CodeUnresolved:
			if flagStrict {
				return true
			}
		}
	}
	return false
}

func outputPathFor(sourcePath string) string {
	base := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".d.ts"
	if flagOutDir == "" {
		return base
	}
	return filepath.Join(flagOutDir, filepath.Base(base))
}

func wrapErrorWithNote(e *cli_helpers.ErrorWithNote) error {
	return &generationError{e.Text + " " + e.Note}
}
