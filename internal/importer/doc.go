// Package importer provides the import orchestration engine: a registry of
// pluggable importer backends and the generic run-loop they share.
//
// # Architecture
//
// The import flow looks like this:
//
//	SettingsTree → Runner.DoImport → component checks → option checks → OptionSpec.Import
//	                      │
//	                      └── feedback.Feedback (progress stream)
//
// A backend declares what it can import as a ComponentMap: component slug →
// option slug → OptionSpec. The Runner walks the caller's SettingsTree
// against that declaration, validating as it goes and reporting every
// outcome through the feedback channel. Nothing in the run-loop aborts the
// run: every anticipated failure skips only the offending option or
// component and the run always finishes with "Import complete."
//
// # Adding a New Importer
//
// To add support for a new legacy system:
//
//  1. Build a ComponentMap describing the components and options it can
//     import, each option carrying an Import func and, if the option has
//     runtime preconditions, a CanImport func.
//
//  2. Embed a *Runner and supply IsAvailable:
//
//     type Importer struct {
//         *importer.Runner
//     }
//
//     func New(name string, deps Deps) *Importer {
//         imp := &Importer{}
//         imp.Runner = importer.NewRunner(name, imp.components(deps), deps.Host, deps.Validators)
//         return imp
//     }
//
//     func (imp *Importer) IsAvailable() error { ... }
//
//  3. Register it during the registry's registration hook:
//
//     registry.OnRegister(func(r *importer.Registry) {
//         r.Register("mysystem", importer.Descriptor{
//             Name:    "My System",
//             Factory: func(name string) importer.Importer { return New(name, deps) },
//         })
//     })
//
// See internal/cubepoints for the CubePoints implementation.
package importer
