package main

import "github.com/spf13/cobra"

var (
	flagConfigPath     string
	flagOutDir         string
	flagWatch          bool
	flagStrict         bool
	flagVerbose        bool
	flagImportOrder    string
	flagOutputStruct   string
	flagNoComments     bool
	flagIgnoreFile     string
	flagCacheSize      int

	rootCmd = &cobra.Command{
		Use:   "dtsforge",
		Short: "Generate TypeScript .d.ts declaration files without the TypeScript compiler",
	}

	generateCmd = &cobra.Command{
		Use:   "generate [path or glob ...]",
		Short: "Generate declaration files for one or more source roots",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGenerate,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a .dtsforge.yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable human-readable, colorized logging")

	generateCmd.Flags().StringVar(&flagOutDir, "outdir", "", "directory to write generated .d.ts files into (defaults to alongside each source)")
	generateCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "re-generate affected files on change")
	generateCmd.Flags().BoolVar(&flagStrict, "strict", false, "treat UNRESOLVED_TYPE diagnostics as failures")
	generateCmd.Flags().StringVar(&flagImportOrder, "import-order", "", "comma-separated import priority buckets")
	generateCmd.Flags().StringVar(&flagOutputStruct, "output-structure", "", "\"mirror\" or \"flat\"")
	generateCmd.Flags().BoolVar(&flagNoComments, "no-comments", false, "strip leading comments from the output")
	generateCmd.Flags().StringVar(&flagIgnoreFile, "ignore-file", "", "path to a .dtsforgeignore pattern file")
	generateCmd.Flags().IntVar(&flagCacheSize, "cache-size", 1024, "number of generated files to keep in the incremental cache")

	rootCmd.AddCommand(generateCmd)
}
