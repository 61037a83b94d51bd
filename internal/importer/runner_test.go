package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pointskeeper/internal/feedback"
)

// mockImporter records the option imports and precondition checks the
// run-loop invokes.
type mockImporter struct {
	*Runner

	imports    []Settings
	canImports []Settings
	canErr     error
}

func (m *mockImporter) IsAvailable() error { return nil }

func (m *mockImporter) doImport(settings Settings) {
	m.imports = append(m.imports, settings)
}

func (m *mockImporter) canImport(settings Settings) error {
	m.canImports = append(m.canImports, settings)
	return m.canErr
}

func newMockImporter(host Host, validators *Validators) *mockImporter {
	m := &mockImporter{}
	m.Runner = NewRunner("Mock", ComponentMap{
		"points": {
			"user_points": {
				Label:     "User points",
				Import:    m.doImport,
				CanImport: m.canImport,
			},
		},
	}, host, validators)
	return m
}

func pointsHost() Host {
	return NewStaticHost(Component{Slug: "points", Name: "Points"})
}

func TestRunner_SupportsComponent(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)

	assert.True(t, m.SupportsComponent("points"))
	assert.False(t, m.SupportsComponent("unsupported"))
}

func TestRunner_OptionsForComponent(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)

	options := m.OptionsForComponent("points")
	require.Contains(t, options, "user_points")
	assert.Equal(t, "User points", options["user_points"].Label)

	assert.Empty(t, m.OptionsForComponent("unsupported"))
}

func TestRunner_SkipsUninstalledComponent(t *testing.T) {
	m := newMockImporter(NewStaticHost(), nil)
	recorder := &feedback.Recorder{}

	m.DoImport(SettingsTree{
		"points": {"user_points": "1"},
	}, feedback.New(recorder))

	assert.Equal(t, 1, recorder.Count(feedback.LevelWarning))
	assert.Empty(t, m.imports)
}

func TestRunner_SkipsUnsupportedComponent(t *testing.T) {
	m := &mockImporter{}
	m.Runner = NewRunner("Mock", ComponentMap{}, pointsHost(), nil)
	recorder := &feedback.Recorder{}

	m.DoImport(SettingsTree{
		"points": {"user_points": "1"},
	}, feedback.New(recorder))

	assert.Equal(t, []string{
		"Skipping the Points component—not supported.",
	}, recorder.ByLevel(feedback.LevelWarning))
	assert.Empty(t, m.imports)
}

func TestRunner_SettingsExtractedFromData(t *testing.T) {
	validators := NewValidators()
	var validated []Settings
	validators.Register("points", func(valid bool, settings Settings, fb *feedback.Feedback) bool {
		validated = append(validated, settings)
		return valid
	})

	m := newMockImporter(pointsHost(), validators)

	m.DoImport(SettingsTree{
		"points": {
			"user_points": "1",
			SettingsDataKey: Settings{
				"points_type": "credits",
			},
		},
	}, feedback.New(&feedback.Recorder{}))

	// Validators, precondition checks, and imports all receive exactly the
	// _data contents, and _data itself is never treated as an option.
	require.Len(t, validated, 1)
	assert.Equal(t, Settings{"points_type": "credits"}, validated[0])
	require.Len(t, m.canImports, 1)
	assert.Equal(t, Settings{"points_type": "credits"}, m.canImports[0])
	require.Len(t, m.imports, 1)
	assert.Equal(t, Settings{"points_type": "credits"}, m.imports[0])
}

func TestRunner_EmptyOptionsSkipsComponentSilently(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)
	recorder := &feedback.Recorder{}

	m.DoImport(SettingsTree{
		"points": {SettingsDataKey: Settings{"points_type": "points"}},
	}, feedback.New(recorder))

	assert.Empty(t, m.imports)
	// Only the two run-level info messages; no component-level one.
	assert.Equal(t, 2, recorder.Count(feedback.LevelInfo))
}

func TestRunner_FailedValidationSkipsComponent(t *testing.T) {
	validators := NewValidators()
	validators.Register("points", func(valid bool, settings Settings, fb *feedback.Feedback) bool {
		fb.Warning("points type is missing")
		return false
	})

	m := newMockImporter(pointsHost(), validators)
	recorder := &feedback.Recorder{}

	m.DoImport(SettingsTree{
		"points": {"user_points": "1"},
	}, feedback.New(recorder))

	assert.Empty(t, m.imports)
	assert.Equal(t, []string{"points type is missing"}, recorder.ByLevel(feedback.LevelWarning))
}

func TestRunner_AllValidatorsRunInRegistrationOrder(t *testing.T) {
	validators := NewValidators()
	var order []string
	validators.Register("points", func(valid bool, settings Settings, fb *feedback.Feedback) bool {
		order = append(order, "first")
		return false
	})
	validators.Register("points", func(valid bool, settings Settings, fb *feedback.Feedback) bool {
		order = append(order, "second")
		// The verdict arrives already flipped but this validator still ran.
		assert.False(t, valid)
		return valid
	})

	m := newMockImporter(pointsHost(), validators)
	m.DoImport(SettingsTree{"points": {"user_points": "1"}}, feedback.New(&feedback.Recorder{}))

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Empty(t, m.imports)
}

func TestRunner_UnknownOptionWarnsWithoutBlockingOthers(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)
	recorder := &feedback.Recorder{}

	m.DoImport(SettingsTree{
		"points": {
			"bogus":       "1",
			"user_points": "1",
		},
	}, feedback.New(recorder))

	assert.Equal(t, []string{
		`Skipping unrecognized import option "bogus"...`,
	}, recorder.ByLevel(feedback.LevelWarning))
	assert.Len(t, m.imports, 1)
}

func TestRunner_CanImportFailureSkipsOption(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)
	m.canErr = errors.New("the legacy system must be active")
	recorder := &feedback.Recorder{}

	m.DoImport(SettingsTree{
		"points": {"user_points": "1"},
	}, feedback.New(recorder))

	assert.Len(t, m.canImports, 1)
	assert.Equal(t, []string{
		"Skipping importing User points. Reason: the legacy system must be active",
	}, recorder.ByLevel(feedback.LevelWarning))
	assert.Empty(t, m.imports)
}

func TestRunner_RunNeverAbortsEarly(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)
	recorder := &feedback.Recorder{}

	m.DoImport(SettingsTree{
		"missing": {"anything": "1"},
		"points":  {"user_points": "1"},
	}, feedback.New(recorder))

	infos := recorder.ByLevel(feedback.LevelInfo)
	require.NotEmpty(t, infos)
	assert.Equal(t, "Importing from Mock...", infos[0])
	assert.Equal(t, "Import complete.", infos[len(infos)-1])
	assert.Len(t, m.imports, 1)
}

func TestRunner_MessageOrderIsDeterministic(t *testing.T) {
	runs := make([][]feedback.Message, 3)
	for i := range runs {
		m := newMockImporter(pointsHost(), nil)
		recorder := &feedback.Recorder{}
		m.DoImport(SettingsTree{
			"points": {
				"a_bogus": "1",
				"z_bogus": "1",
			},
			"absent": {"x": "1"},
		}, feedback.New(recorder))
		runs[i] = recorder.Messages
	}

	assert.Equal(t, runs[0], runs[1])
	assert.Equal(t, runs[1], runs[2])
}

func TestRunner_NilFeedbackGetsDefault(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)

	assert.NotPanics(t, func() {
		m.DoImport(SettingsTree{}, nil)
	})
}

func TestRunner_FeedbackUnboundAfterRun(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)

	m.DoImport(SettingsTree{}, feedback.New(&feedback.Recorder{}))

	assert.Nil(t, m.Feedback())
}

func TestRunner_OptionValuesAreIgnored(t *testing.T) {
	m := newMockImporter(pointsHost(), nil)

	for _, marker := range []any{"1", true, 42, struct{}{}} {
		m.imports = nil
		m.DoImport(SettingsTree{
			"points": {"user_points": marker},
		}, feedback.New(&feedback.Recorder{}))
		assert.Len(t, m.imports, 1)
	}
}
