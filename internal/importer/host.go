package importer

// Component identifies a subsystem of the host application that can receive
// imported data, e.g. points balances or ranks.
type Component struct {
	Slug string
	Name string
}

// Host answers which components are installed in the target application.
// Injecting it keeps the run-loop's environment checks explicit and mockable.
type Host interface {
	// Component returns the component with the given slug, and whether it
	// is installed.
	Component(slug string) (Component, bool)
}

// StaticHost is a Host backed by a fixed component list.
type StaticHost struct {
	components map[string]Component
}

// NewStaticHost creates a host with the given installed components.
func NewStaticHost(components ...Component) *StaticHost {
	h := &StaticHost{components: make(map[string]Component, len(components))}
	for _, c := range components {
		h.components[c.Slug] = c
	}
	return h
}

// Component implements Host.
func (h *StaticHost) Component(slug string) (Component, bool) {
	c, ok := h.components[slug]
	return c, ok
}

var _ Host = (*StaticHost)(nil)
