package importer

import (
	"fmt"

	"github.com/mrlokans/pointskeeper/internal/feedback"
)

// Importer is the contract every importer backend implements.
type Importer interface {
	// Name returns the importer's display name.
	Name() string

	// IsAvailable checks environment preconditions, e.g. that the legacy
	// storage is present. It returns nil if the importer can run, or an
	// error carrying the reason it can't. It must not have side effects.
	IsAvailable() error

	// SupportsComponent reports whether the importer declares the component.
	SupportsComponent(slug string) bool

	// OptionsForComponent returns the declared options for a component, or
	// an empty map for an undeclared one.
	OptionsForComponent(slug string) map[string]OptionSpec

	// DoImport runs the import for the given settings tree, reporting
	// progress through fb. A nil fb gets a default console feedback.
	DoImport(tree SettingsTree, fb *feedback.Feedback)
}

// Runner provides the generic import run-loop shared by all backends.
// Concrete importers embed a Runner configured with their ComponentMap.
//
// A run is synchronous and cannot be cancelled mid-flight: the operation is
// long-running but must complete, and every anticipated failure is converted
// to a feedback message that skips only the offending option or component.
type Runner struct {
	name       string
	components ComponentMap
	host       Host
	validators *Validators
	feedback   *feedback.Feedback
}

// NewRunner creates a run-loop for an importer with the given declaration.
func NewRunner(name string, components ComponentMap, host Host, validators *Validators) *Runner {
	return &Runner{
		name:       name,
		components: components,
		host:       host,
		validators: validators,
	}
}

// Name returns the importer's display name.
func (r *Runner) Name() string {
	return r.name
}

// Feedback returns the channel bound to the current run. It is only set
// while DoImport is running.
func (r *Runner) Feedback() *feedback.Feedback {
	return r.feedback
}

// SupportsComponent implements Importer.
func (r *Runner) SupportsComponent(slug string) bool {
	_, ok := r.components[slug]
	return ok
}

// OptionsForComponent implements Importer.
func (r *Runner) OptionsForComponent(slug string) map[string]OptionSpec {
	options, ok := r.components[slug]
	if !ok {
		return map[string]OptionSpec{}
	}
	return options
}

// DoImport implements Importer. Components iterate in sorted slug order so
// the feedback stream is deterministic.
func (r *Runner) DoImport(tree SettingsTree, fb *feedback.Feedback) {
	if fb == nil {
		fb = feedback.NewConsole()
	}

	r.feedback = fb
	defer func() { r.feedback = nil }()

	fb.Info(fmt.Sprintf("Importing from %s...", r.name))

	for _, component := range sortedKeys(tree) {
		r.doImportForComponent(component, tree[component])
	}

	fb.Info("Import complete.")
}

func (r *Runner) doImportForComponent(component string, options Options) {
	info, installed := r.host.Component(component)
	if !installed {
		r.feedback.Warning(fmt.Sprintf("Skipping %s component—not installed.", component))
		return
	}

	if !r.SupportsComponent(component) {
		r.feedback.Warning(fmt.Sprintf("Skipping the %s component—not supported.", info.Name))
		return
	}

	settings, selected := settingsFromOptions(options)

	if len(selected) == 0 || !r.validators.Validate(component, settings, r.feedback) {
		return
	}

	r.feedback.Info(fmt.Sprintf("Importing data to the %s component...", info.Name))

	for _, option := range selected {
		r.doImportForOption(option, component, settings)
	}
}

// doImportForOption runs the import for a single selected option. The
// options are displayed to the operator as checkboxes, so each is optional
// and failures here skip only this option.
func (r *Runner) doImportForOption(option, component string, settings Settings) {
	spec, ok := r.components[component][option]
	if !ok {
		r.feedback.Warning(fmt.Sprintf("Skipping unrecognized import option %q...", option))
		return
	}

	if spec.CanImport != nil {
		if err := spec.CanImport(settings); err != nil {
			r.feedback.Warning(fmt.Sprintf("Skipping importing %s. Reason: %s", spec.Label, err))
			return
		}
	}

	spec.Import(settings)
}
