// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dacolabs/pyclassgen/internal/config"
	"github.com/dacolabs/pyclassgen/internal/generate"
	"github.com/dacolabs/pyclassgen/internal/prompts"
	"github.com/dacolabs/pyclassgen/internal/schema"
	"github.com/dacolabs/pyclassgen/internal/session"
	"github.com/dacolabs/pyclassgen/internal/translate"
	"github.com/dacolabs/pyclassgen/internal/watch"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	schemaPath     string
	outputDir      string
	moduleName     string
	rootClass      string
	hintsPath      string
	library        string
	force          bool
	workers        int
	watch          bool
	nonInteractive bool
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Python package from a JSON schema",
		Long: fmt.Sprintf(`Generate one Python class per schema object and an __init__.py importing them.

Values missing from flags are taken from the config file, then prompted for.

Available libraries: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  pyclassgen generate

  # Generate attrs classes
  pyclassgen generate -s sarif-schema.json -o sarif_om -r SarifLog --non-interactive

  # Use dataclasses, property name hints and overwrite the previous output
  pyclassgen generate -s sarif-schema.json -o sarif_om -r SarifLog -g hints.json -l dataclasses -f

  # Regenerate whenever the schema or hints change
  pyclassgen generate -s sarif-schema.json -o sarif_om -r SarifLog -f --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema-path", "s", "", "Path to the JSON schema file")
	cmd.Flags().StringVarP(&opts.outputDir, "output-directory", "o", "", "Directory in which the generated classes will be created")
	cmd.Flags().StringVarP(&opts.moduleName, "module-name", "m", "", "Name of the module containing the classes (default: output directory name)")
	cmd.Flags().StringVarP(&opts.rootClass, "root-class-name", "r", "", "Name of the class generated from the root schema")
	cmd.Flags().StringVarP(&opts.hintsPath, "hints-file-path", "g", "", "Path to a file containing code generation hints")
	cmd.Flags().StringVarP(&opts.library, "library", "l", "", fmt.Sprintf("Library to generate for (%s; default %s)", strings.Join(translators.Available(), ", "), config.DefaultLibrary))
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite the output directory if it exists")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Number of classes compiled in parallel (default: number of CPUs)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Regenerate when the schema or hints file changes")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires all values from flags or config)")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	applyConfig(cmd, opts, sess.Config)
	if opts.nonInteractive && opts.library == "" {
		opts.library = config.DefaultLibrary
	}

	values := prompts.GenerateValues{
		SchemaPath: opts.schemaPath,
		OutputDir:  opts.outputDir,
		RootClass:  opts.rootClass,
		Library:    opts.library,
	}
	if values.Missing() {
		if opts.nonInteractive {
			return missingValuesError(values)
		}
		if err := prompts.RunGenerateForm(&values, translators.Available()); err != nil {
			return err
		}
	}
	opts.schemaPath = values.SchemaPath
	opts.outputDir = values.OutputDir
	opts.rootClass = values.RootClass
	opts.library = values.Library

	if err := prompts.ValidateClassName(opts.rootClass); err != nil {
		return fmt.Errorf("invalid root class name %q: %w", opts.rootClass, err)
	}
	if opts.workers < 0 {
		return errors.New("--workers must not be negative")
	}

	translator, err := translators.Get(opts.library)
	if err != nil {
		return fmt.Errorf("unsupported library %q. Available libraries: %s",
			opts.library, strings.Join(translators.Available(), ", "))
	}

	if opts.moduleName == "" {
		opts.moduleName, err = defaultModuleName(opts.outputDir)
		if err != nil {
			return err
		}
	}
	if err := prompts.ValidateModuleName(opts.moduleName); err != nil {
		return fmt.Errorf("invalid module name %q: %w (set it with --module-name)", opts.moduleName, err)
	}

	logger := sess.Logger
	logger.Info("generating python classes",
		"schema", opts.schemaPath,
		"module", opts.moduleName,
		"output", opts.outputDir,
		"root", opts.rootClass,
		"library", opts.library,
		"hints", opts.hintsPath)

	force := opts.force
	run := func(ctx context.Context) error {
		result, err := generateOnce(ctx, translator, opts, force, sess)
		if err != nil {
			return err
		}
		prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
			{Label: "Output", Value: opts.outputDir},
			{Label: "Module", Value: opts.moduleName},
			{Label: "Classes", Value: strconv.Itoa(len(result.ClassNames))},
		}, fmt.Sprintf("Generated %d file(s)", len(result.Files)))
		return nil
	}

	ctx := cmd.Context()
	if !opts.watch {
		return run(ctx)
	}

	if err := run(ctx); err != nil {
		logger.Error("generation failed", "error", err)
	}
	// Subsequent runs replace the output of the previous one.
	force = true

	paths := []string{opts.schemaPath}
	if opts.hintsPath != "" {
		paths = append(paths, opts.hintsPath)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes...\n", strings.Join(paths, ", "))
	return watch.Run(ctx, paths, logger, func() error { return run(ctx) })
}

// generateOnce loads the inputs and generates the package. Inputs are fully
// loaded and compiled before the output directory is touched.
func generateOnce(ctx context.Context, translator translate.Translator, opts *generateOptions, force bool, sess *session.Context) (*generate.Result, error) {
	root, err := loadSchema(opts.schemaPath)
	if err != nil {
		return nil, err
	}

	var hints schema.Hints
	if opts.hintsPath != "" {
		hints, err = loadHints(opts.hintsPath)
		if err != nil {
			return nil, err
		}
	}

	gen := generate.New(translator, generate.NewOutputDirSink(opts.outputDir, force), generate.Options{
		Module:    opts.moduleName,
		RootClass: opts.rootClass,
		Workers:   opts.workers,
		Logger:    sess.Logger,
	})
	return gen.Generate(ctx, root, hints)
}

func loadSchema(path string) (*schema.Object, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("schema file %s does not exist", path)
	}
	return schema.NewLoader(os.DirFS(filepath.Dir(path))).LoadSchema(filepath.Base(path))
}

func loadHints(path string) (schema.Hints, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("code generation hints file %s does not exist", path)
	}
	return schema.NewLoader(os.DirFS(filepath.Dir(path))).LoadHints(filepath.Base(path))
}

// defaultModuleName names the package after the output directory, resolving
// relative forms such as "." to the directory they denote.
func defaultModuleName(outputDir string) (string, error) {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory: %w", err)
	}
	return filepath.Base(abs), nil
}

// applyConfig fills options that were not set on the command line from cfg.
func applyConfig(cmd *cobra.Command, opts *generateOptions, cfg *config.Config) {
	flags := cmd.Flags()
	setString := func(name string, dst *string, value string) {
		if !flags.Changed(name) && value != "" {
			*dst = value
		}
	}

	setString("schema-path", &opts.schemaPath, cfg.Schema)
	setString("output-directory", &opts.outputDir, cfg.Output)
	setString("module-name", &opts.moduleName, cfg.Module)
	setString("root-class-name", &opts.rootClass, cfg.RootClass)
	setString("hints-file-path", &opts.hintsPath, cfg.Hints)
	setString("library", &opts.library, cfg.Library)

	if !flags.Changed("force") && cfg.Force {
		opts.force = true
	}
	if !flags.Changed("workers") && cfg.Workers > 0 {
		opts.workers = cfg.Workers
	}
}

func missingValuesError(v prompts.GenerateValues) error {
	var missing []string
	if v.SchemaPath == "" {
		missing = append(missing, "--schema-path")
	}
	if v.OutputDir == "" {
		missing = append(missing, "--output-directory")
	}
	if v.RootClass == "" {
		missing = append(missing, "--root-class-name")
	}
	return fmt.Errorf("non-interactive mode requires %s", strings.Join(missing, ", "))
}
