// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"

	"github.com/dacolabs/pyclassgen/internal/config"
	"github.com/dacolabs/pyclassgen/internal/prompts"
	"github.com/dacolabs/pyclassgen/internal/session"
	"github.com/dacolabs/pyclassgen/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	schemaPath     string
	outputDir      string
	moduleName     string
	rootClass      string
	hintsPath      string
	library        string
	nonInteractive bool
}

func newInitCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a pyclassgen.yaml configuration file",
		Long: `Create a pyclassgen.yaml file holding the values "pyclassgen generate" would
otherwise need as flags. The file is written to --config, $PYCLASSGEN_CONFIG
or ./pyclassgen.yaml and is never overwritten.`,
		Example: `  # Interactive mode
  pyclassgen init

  # Non-interactive
  pyclassgen init -s sarif-schema.json -o sarif_om -r SarifLog --non-interactive`,
		Args: cobra.NoArgs,
		// The file does not exist yet, so there is no session to load.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, getenv, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema-path", "s", "", "Path to the JSON schema file")
	cmd.Flags().StringVarP(&opts.outputDir, "output-directory", "o", "", "Directory in which the generated classes will be created")
	cmd.Flags().StringVarP(&opts.moduleName, "module-name", "m", "", "Name of the module containing the classes")
	cmd.Flags().StringVarP(&opts.rootClass, "root-class-name", "r", "", "Name of the class generated from the root schema")
	cmd.Flags().StringVarP(&opts.hintsPath, "hints-file-path", "g", "", "Path to a file containing code generation hints")
	cmd.Flags().StringVarP(&opts.library, "library", "l", "", "Library to generate for")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts and write only the values given as flags")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, getenv func(string) string, opts *initOptions) error {
	configFlag, _ := cmd.Flags().GetString("config")
	path, _ := session.ResolveConfigPath(configFlag, getenv)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", path)
	}

	if !opts.nonInteractive {
		values := prompts.GenerateValues{
			SchemaPath: opts.schemaPath,
			OutputDir:  opts.outputDir,
			RootClass:  opts.rootClass,
			Library:    opts.library,
		}
		if err := prompts.RunGenerateForm(&values, translators.Available()); err != nil {
			return err
		}
		opts.schemaPath = values.SchemaPath
		opts.outputDir = values.OutputDir
		opts.rootClass = values.RootClass
		opts.library = values.Library
	}

	if opts.rootClass != "" {
		if err := prompts.ValidateClassName(opts.rootClass); err != nil {
			return fmt.Errorf("invalid root class name %q: %w", opts.rootClass, err)
		}
	}
	if opts.moduleName != "" {
		if err := prompts.ValidateModuleName(opts.moduleName); err != nil {
			return fmt.Errorf("invalid module name %q: %w", opts.moduleName, err)
		}
	}

	cfg := config.Default()
	cfg.Schema = opts.schemaPath
	cfg.Output = opts.outputDir
	cfg.Module = opts.moduleName
	cfg.RootClass = opts.rootClass
	cfg.Hints = opts.hintsPath
	cfg.Library = opts.library

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: path},
	}, "Initialization completed")
	return nil
}
