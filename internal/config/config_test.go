package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HendryAvila/careerfit/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every CAREERFIT_* variable for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CAREERFIT_NORMALIZATION",
		"CAREERFIT_CONTENT_FILE",
		"CAREERFIT_CONTENT_DB",
		"CAREERFIT_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// --- DefaultConfig ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "linear", cfg.Normalization)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.ContentFile)
	assert.Empty(t, cfg.ContentDB)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Equal(t, File, filepath.Base(path))
	assert.Equal(t, Dir, filepath.Base(filepath.Dir(path)))
}

// --- Load ---

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(path, []byte(`{"normalization":"fraction","content_db":"/tmp/c.db"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fraction", cfg.Normalization)
	assert.Equal(t, "/tmp/c.db", cfg.ContentDB)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(path, []byte(`{"normalization":"fraction","log_level":"warn"}`), 0o644))

	t.Setenv("CAREERFIT_NORMALIZATION", "linear")
	t.Setenv("CAREERFIT_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "linear", cfg.Normalization)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, scoring.NormalizationLinear, cfg.NormalizationValue())
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{not json`), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)
}

func TestLoad_DefersValidation(t *testing.T) {
	clearEnv(t)

	invalid := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(invalid, []byte(`{"normalization":"log"}`), 0o644))
	t.Setenv("CAREERFIT_LOG_LEVEL", "loud")

	cfg, err := Load(invalid)
	require.NoError(t, err)
	assert.Equal(t, "log", cfg.Normalization)
	assert.ErrorContains(t, cfg.Validate(), "normalization")

	// An override fixes the bad value before validation.
	cfg.Normalization = "linear"
	assert.ErrorContains(t, cfg.Validate(), "log level")
	cfg.LogLevel = "warn"
	assert.NoError(t, cfg.Validate())
}

// --- Validate ---

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *DefaultConfig(), false},
		{"fraction", Config{Normalization: "fraction", LogLevel: "error"}, false},
		{"empty normalization means default", Config{LogLevel: "info"}, false},
		{"bad normalization", Config{Normalization: "sqrt", LogLevel: "info"}, true},
		{"bad log level", Config{Normalization: "linear", LogLevel: "trace"}, true},
		{"both content sources", Config{Normalization: "linear", LogLevel: "info", ContentFile: "a.yaml", ContentDB: "b.db"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// --- Save ---

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", File)
	cfg := &Config{Normalization: "fraction", LogLevel: "warn", ContentFile: "pack.yaml"}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), File)
	err := Save(path, &Config{Normalization: "linear", LogLevel: "nope"})
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
