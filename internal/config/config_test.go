package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "empty.json", `{}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetRadialCount(); got != 75 {
		t.Errorf("GetRadialCount = %d, want 75", got)
	}
	if got := cfg.GetRadialRule(); got != "gauss-chebyshev-2" {
		t.Errorf("GetRadialRule = %q, want gauss-chebyshev-2", got)
	}
	if got := cfg.GetTransform(); got != "becke" {
		t.Errorf("GetTransform = %q, want becke", got)
	}
	if got := cfg.GetAngularRule(); got != "lebedev" {
		t.Errorf("GetAngularRule = %q, want lebedev", got)
	}
	if cfg.GetStore() || cfg.GetSizeAdjust() {
		t.Error("store and size_adjust must default to false")
	}
}

func TestLoadPartialConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, "partial.json",
		`{"radial_count": 120, "angular_degree": 23, "size_adjust": true}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetRadialCount(); got != 120 {
		t.Errorf("GetRadialCount = %d, want 120", got)
	}
	if got := cfg.GetAngularDegree(); got != 23 {
		t.Errorf("GetAngularDegree = %d, want 23", got)
	}
	if !cfg.GetSizeAdjust() {
		t.Error("size_adjust = false, want true")
	}
	// Unset fields keep defaults.
	if got := cfg.GetPartitionIterations(); got != 3 {
		t.Errorf("GetPartitionIterations = %d, want 3", got)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad radial count", `{"radial_count": 0}`},
		{"bad radial rule", `{"radial_rule": "simpson"}`},
		{"bad transform", `{"transform": "cubic"}`},
		{"negative scale", `{"transform_scale": -1}`},
		{"bad angular rule", `{"angular_rule": "spiral"}`},
		{"negative degree", `{"angular_degree": -5}`},
		{"bad size", `{"angular_size": 0}`},
		{"bad preset", `{"preset": "extreme"}`},
		{"bad iterations", `{"partition_iterations": 0}`},
		{"malformed", `{"radial_count": `},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, "bad.json", tc.content)); err == nil {
				t.Errorf("Load accepted %s", tc.content)
			}
		})
	}
}

func TestLoadRejectsNonJSONExtension(t *testing.T) {
	if _, err := Load(writeConfig(t, "grid.yaml", `{}`)); err == nil {
		t.Error("Load accepted a .yaml path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
