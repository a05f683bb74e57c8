// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// GenerateValues holds the generate command inputs a form may fill in.
type GenerateValues struct {
	SchemaPath string
	OutputDir  string
	RootClass  string
	Library    string
}

// Missing reports whether any required value is empty.
func (v *GenerateValues) Missing() bool {
	return v.SchemaPath == "" || v.OutputDir == "" || v.RootClass == "" || v.Library == ""
}

// RunGenerateForm prompts for the values that are still empty.
// Values that are already set are not asked again.
func RunGenerateForm(v *GenerateValues, libraries []string) error {
	if !v.Missing() {
		return nil
	}

	askSchema := v.SchemaPath == ""
	askOutput := v.OutputDir == ""
	askRoot := v.RootClass == ""
	askLibrary := v.Library == ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("JSON schema file").
				Placeholder("schema.json").
				Validate(requiredValidator("schema path")).
				Value(&v.SchemaPath),
		).WithHideFunc(func() bool { return !askSchema }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("./models").
				Validate(requiredValidator("output directory")).
				Value(&v.OutputDir),
		).WithHideFunc(func() bool { return !askOutput }),
		huh.NewGroup(
			huh.NewInput().
				Title("Root class name").
				Placeholder("SarifLog").
				Validate(ValidateClassName).
				Value(&v.RootClass),
		).WithHideFunc(func() bool { return !askRoot }),
		huh.NewGroup(
			LibrarySelect(&v.Library, libraries),
		).WithHideFunc(func() bool { return !askLibrary }),
	).WithTheme(Theme()).Run()
}

// LibrarySelect returns a select field for choosing the emission library.
func LibrarySelect(value *string, libraries []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(libraries))
	for i, l := range libraries {
		options[i] = huh.NewOption(l, l)
	}
	return huh.NewSelect[string]().
		Title("Library").
		Options(options...).
		Value(value)
}
