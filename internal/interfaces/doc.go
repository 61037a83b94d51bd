// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Target Store Interfaces
//
//   - BalanceStore: balance reads and adjustments (internal/cubepoints/interfaces.go)
//   - BalanceLogControl: suspend adjustment logging during balance-only migration
//   - LogStore: points log inserts and after-the-fact metadata
//   - RuleRegistry: award rule creation
//   - RankStore: base rank updates and rank appends
//   - UserDirectory: user lookup by login
//   - ExclusionStore: the global excluded-user list
//
// ## Legacy Storage Interfaces
//
//   - LegacySource: read-only view of the CubePoints export (internal/cubepoints/interfaces.go)
//
// ## Import Pipeline Interfaces
//
//   - importer.Importer: the contract every backend implements (internal/importer/runner.go)
//   - importer.Host: which target components are installed (internal/importer/host.go)
//   - feedback.Sender: where progress messages go (internal/feedback/feedback.go)
//
// # Adding a New Importer Backend
//
// To migrate data from another legacy points plugin:
//
//  1. Create a package under internal/ with a type embedding *importer.Runner
//
//     type Importer struct {
//         *importer.Runner
//         deps Deps
//     }
//
//     func New(name string, deps Deps, host importer.Host, validators *importer.Validators) *Importer {
//         imp := &Importer{deps: deps}
//         imp.Runner = importer.NewRunner(name, componentMap, host, validators)
//         return imp
//     }
//
//  2. Declare the component map at construction time; each OptionSpec's
//     Import closure does the work for one selectable option
//
//  3. Implement IsAvailable to probe for the legacy data
//
//  4. Register it with the registry
//
//     registry.OnRegister(func(r *importer.Registry) {
//         r.Register("myplugin", importer.Descriptor{Name: "MyPlugin", Factory: ...})
//     })
//
//  5. Add a compile-time check here:
//
//     var _ importer.Importer = (*myplugin.Importer)(nil)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., badges):
//
//  1. Create sub-package: internal/database/badges/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods
//
//  4. Add compile-time check:
//
//     var _ BadgeStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
