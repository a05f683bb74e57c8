// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generate turns a root schema and its definitions into a Python package.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/dacolabs/pyclassgen/internal/schema"
	"github.com/dacolabs/pyclassgen/internal/translate"
	"golang.org/x/sync/errgroup"
)

// Options configures a Generator.
type Options struct {
	// Module is the Python package the classes are generated into.
	Module string

	// RootClass names the class generated from the root schema.
	RootClass string

	// Workers limits concurrent class compilation. Zero means GOMAXPROCS.
	Workers int

	Logger *slog.Logger
}

// Generator compiles every schema object with one translator and hands the
// results to a sink.
type Generator struct {
	translator translate.Translator
	sink       Sink
	opts       Options
}

// Result describes a successful generation run.
type Result struct {
	// ClassNames lists the root class first, then definitions sorted by key.
	ClassNames []string

	// Files lists written file names in the same order, followed by the index.
	Files []string
}

type job struct {
	key   string // definition key, empty for the root
	class string
	obj   *schema.Object
}

// New creates a Generator.
func New(t translate.Translator, sink Sink, opts Options) *Generator {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{translator: t, sink: sink, opts: opts}
}

// Generate compiles the root class and every definition class. Compilation
// runs in parallel; files are only written once every class has compiled, so
// a failure leaves the sink untouched.
func (g *Generator) Generate(ctx context.Context, root *schema.Object, hints schema.Hints) (*Result, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: schema is empty", schema.ErrMalformed)
	}
	if g.opts.RootClass == "" {
		return nil, fmt.Errorf("root class name is required")
	}

	jobs, err := g.plan(root)
	if err != nil {
		return nil, err
	}
	g.checkRefs(root)

	classes := make([]*translate.GeneratedClass, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)

	for i, j := range jobs {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			class, err := g.translator.Translate(translate.Request{
				Schema:    j.obj,
				ClassName: j.class,
				Module:    g.opts.Module,
				Hints:     hints,
			})
			if err != nil {
				if j.key != "" {
					return fmt.Errorf("definition %q: %w", j.key, err)
				}
				return err
			}
			g.opts.Logger.Debug("compiled class", "class", class.Name, "properties", len(class.Properties))
			classes[i] = class
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, class := range classes {
		if err := g.sink.WriteFile(class.FileName(), class.Source); err != nil {
			return nil, err
		}
		g.opts.Logger.Info("generated class", "class", class.Name, "file", class.FileName())
		result.ClassNames = append(result.ClassNames, class.Name)
		result.Files = append(result.Files, class.FileName())
	}

	index, err := renderIndex(g.opts.Module, result.ClassNames)
	if err != nil {
		return nil, err
	}
	if err := g.sink.WriteFile(IndexFileName, index); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, IndexFileName)

	return result, nil
}

// plan lists the classes to compile: the root first, then definitions in key order.
func (g *Generator) plan(root *schema.Object) ([]job, error) {
	jobs := []job{{class: g.opts.RootClass, obj: root}}
	owners := map[string]string{g.opts.RootClass: "root schema"}

	for _, key := range root.DefinitionNames() {
		class := translate.CapitalizeFirst(key)
		if owner, dup := owners[class]; dup {
			return nil, fmt.Errorf("%w: definition %q and %s both generate class %s",
				schema.ErrMalformed, key, owner, class)
		}
		owners[class] = fmt.Sprintf("definition %q", key)
		jobs = append(jobs, job{key: key, class: class, obj: root.Definitions[key]})
	}
	return jobs, nil
}

// checkRefs warns about references that no generated class satisfies.
func (g *Generator) checkRefs(root *schema.Object) {
	for ref := range root.Refs() {
		if !schema.IsLocalRef(ref) {
			g.opts.Logger.Warn("external $ref is not resolved", "ref", ref)
			continue
		}
		if _, ok := root.Definitions[schema.RefName(ref)]; !ok {
			g.opts.Logger.Warn("$ref target is not a definition", "ref", ref)
		}
	}
}
