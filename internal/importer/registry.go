package importer

// Descriptor describes a registered importer backend.
type Descriptor struct {
	// Name is the importer's display name, passed to the factory.
	Name string

	// Factory constructs a fresh importer instance for one run.
	Factory func(name string) Importer
}

// RegisterHook populates a registry with importers. Hooks run once, the
// first time the registry is read.
type RegisterHook func(r *Registry)

// Registry is the directory of available importer backends. Construct one at
// application start and pass it to whatever assembles the import entry
// point. It is populated lazily: the registration hooks fire on first read.
//
// The registry is not safe for concurrent use; the import subsystem is
// single-threaded by design.
type Registry struct {
	importers   map[string]Descriptor
	hooks       []RegisterHook
	initialized bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{importers: make(map[string]Descriptor)}
}

// OnRegister adds a hook that will run when the registry is first read.
// If the registry is already initialized the hook runs immediately.
func (r *Registry) OnRegister(hook RegisterHook) {
	if r.initialized {
		hook(r)
		return
	}
	r.hooks = append(r.hooks, hook)
}

// ensureInitialized fires the registration hooks exactly once. The flag is
// set before the hooks run so that a hook calling back into the registry
// sees the current (possibly still empty) map instead of recursing.
func (r *Registry) ensureInitialized() {
	if r.initialized {
		return
	}
	r.initialized = true

	for _, hook := range r.hooks {
		hook(r)
	}
}

// Register adds an importer under the given slug, overwriting any existing
// registration for that slug.
func (r *Registry) Register(slug string, d Descriptor) {
	r.importers[slug] = d
}

// Deregister removes the importer with the given slug. Removing an unknown
// slug is a no-op.
func (r *Registry) Deregister(slug string) {
	delete(r.importers, slug)
}

// Get returns all registered importers, initializing the registry first if
// needed.
func (r *Registry) Get() map[string]Descriptor {
	r.ensureInitialized()
	return r.importers
}

// IsRegistered reports whether an importer is registered under the slug.
func (r *Registry) IsRegistered(slug string) bool {
	r.ensureInitialized()
	_, ok := r.importers[slug]
	return ok
}

// GetImporter constructs a fresh instance of the importer registered under
// the slug. The second return value is false if the slug is unknown.
func (r *Registry) GetImporter(slug string) (Importer, bool) {
	if !r.IsRegistered(slug) {
		return nil, false
	}

	d := r.importers[slug]
	return d.Factory(d.Name), true
}
