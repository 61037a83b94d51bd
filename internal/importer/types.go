package importer

import "sort"

// SettingsDataKey is the reserved option key whose value holds the
// component-level settings rather than marking a selected option.
const SettingsDataKey = "_data"

// Settings holds component-level configuration, e.g. the target points type
// or rank group. Carried under the SettingsDataKey of an Options map.
type Settings map[string]string

// Options maps option slugs to their "selected" markers. The marker values
// are ignored; only key presence matters. The reserved SettingsDataKey entry
// holds a Settings value and is never treated as an option.
type Options map[string]any

// SettingsTree is the caller's full input: component slug → selected options.
type SettingsTree map[string]Options

// OptionSpec describes one selectable unit of work within a component.
// Declared by each importer at construction time; immutable thereafter.
type OptionSpec struct {
	// Label is the human-readable name shown in feedback messages.
	Label string

	// Description optionally explains the option to the operator.
	Description string

	// Import performs the work for this option.
	Import func(settings Settings)

	// CanImport, if set, checks runtime preconditions before Import runs.
	// A non-nil error carries the reason the option must be skipped.
	CanImport func(settings Settings) error
}

// ComponentMap declares the components and options an importer supports:
// component slug → option slug → spec.
type ComponentMap map[string]map[string]OptionSpec

// settingsFromOptions extracts the Settings carried under SettingsDataKey,
// defaulting to an empty map, and returns the remaining option slugs in
// sorted order.
func settingsFromOptions(options Options) (Settings, []string) {
	settings := Settings{}

	if data, ok := options[SettingsDataKey]; ok {
		if s, ok := data.(Settings); ok {
			settings = s
		}
	}

	slugs := make([]string, 0, len(options))
	for slug := range options {
		if slug == SettingsDataKey {
			continue
		}
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	return settings, slugs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
