// Package config loads dtsforge's Options by layering defaults, an
// optional .dtsforge.yaml, and DTSFORGE_* environment variables with
// github.com/spf13/viper.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/dtsforge/dtsforge/pkg/dtsgen"
)

// Load merges defaults, the config file at path (if non-empty and
// present), and DTSFORGE_* environment variables into a dtsgen.Options.
// A missing config file is not an error, it just means defaults and
// environment variables alone decide the outcome.
func Load(path string) (dtsgen.Options, error) {
	v := viper.New()
	v.SetEnvPrefix("DTSFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := dtsgen.DefaultOptions()
	v.SetDefault("retain_comments", defaults.RetainComments)
	v.SetDefault("import_order", defaults.ImportOrder)
	v.SetDefault("output_structure", "mirror")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// An explicit path that does not exist surfaces as a PathError,
			// not as viper's ConfigFileNotFoundError.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
				return dtsgen.Options{}, err
			}
		}
	} else {
		v.SetConfigName(".dtsforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return dtsgen.Options{}, err
			}
		}
	}

	structure := dtsgen.OutputMirror
	if v.GetString("output_structure") == "flat" {
		structure = dtsgen.OutputFlat
	}

	return dtsgen.Options{
		RetainComments:  v.GetBool("retain_comments"),
		ImportOrder:     v.GetStringSlice("import_order"),
		OutputStructure: structure,
	}, nil
}
