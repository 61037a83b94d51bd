package importer

import "github.com/mrlokans/pointskeeper/internal/feedback"

// ValidatorFunc checks the component-level settings before an import runs.
// It receives the verdict so far and returns the new one; a validator that
// rejects the settings should also emit a warning explaining why. Every
// registered validator runs even after one has rejected, so each can report
// its own problem.
type ValidatorFunc func(valid bool, settings Settings, fb *feedback.Feedback) bool

// Validators holds per-component settings validators in registration order.
type Validators struct {
	byComponent map[string][]ValidatorFunc
}

// NewValidators creates an empty validator collection.
func NewValidators() *Validators {
	return &Validators{byComponent: make(map[string][]ValidatorFunc)}
}

// Register appends a validator for the given component slug.
func (v *Validators) Register(component string, fn ValidatorFunc) {
	v.byComponent[component] = append(v.byComponent[component], fn)
}

// Validate chains the component's validators over an initial verdict of
// true. With no validators registered the settings are considered valid.
func (v *Validators) Validate(component string, settings Settings, fb *feedback.Feedback) bool {
	valid := true
	if v == nil {
		return valid
	}
	for _, fn := range v.byComponent[component] {
		valid = fn(valid, settings, fb)
	}
	return valid
}
