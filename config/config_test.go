package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/passgen/errors"
)

type mockFS struct {
	files   map[string]bool
	envVars map[string]map[string]string
	t       *testing.T
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }

func (m *mockFS) LoadEnv(path string) error {
	for k, v := range m.envVars[path] {
		if _, set := os.LookupEnv(k); !set {
			m.t.Setenv(k, v)
		}
	}
	return nil
}

func emptyFS(t *testing.T) *mockFS {
	return &mockFS{files: map[string]bool{}, t: t}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Specials != "!@#$%&*/?" {
		t.Errorf("expected default specials, got %q", cfg.Specials)
	}
	if cfg.MinimumLength != 10 {
		t.Errorf("expected minimum length 10, got %d", cfg.MinimumLength)
	}
	if cfg.MaxTries != 10000 {
		t.Errorf("expected max tries 10000, got %d", cfg.MaxTries)
	}
	if !cfg.UniqueChars || !cfg.Shuffle || !cfg.Policies.CharacterClass {
		t.Error("expected unique, shuffle and character class on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Specials == "" || cfg.MinimumLength != 10 || cfg.MaxTries != 10000 {
		t.Errorf("expected scalar defaults, got %+v", cfg)
	}
	if cfg.Telemetry.ServiceName != "passgen" {
		t.Errorf("expected telemetry service name, got %q", cfg.Telemetry.ServiceName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults, got %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty specials", func(c *Config) { c.Specials = "" }, "specials"},
		{"whitespace specials", func(c *Config) { c.Specials = "! ?" }, "specials"},
		{"minimum length zero", func(c *Config) { c.MinimumLength = 0 }, "minimum_length"},
		{"max tries negative", func(c *Config) { c.MaxTries = -1 }, "max_tries"},
		{"policy specials whitespace", func(c *Config) { c.Policies.Specials = " " }, "policies.specials"},
		{"negative run", func(c *Config) { c.Policies.NoSequentialRun = -2 }, "policies.no_sequential_run"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestPolicySpecials(t *testing.T) {
	cfg := Default()
	if cfg.PolicySpecials() != cfg.Specials {
		t.Error("expected policy specials to follow generator specials when unset")
	}
	cfg.Policies.Specials = "~"
	if cfg.PolicySpecials() != "~" {
		t.Errorf("expected override, got %q", cfg.PolicySpecials())
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(WithFileSystem(emptyFS(t)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Specials != "!@#$%&*/?" || cfg.MinimumLength != 10 {
		t.Errorf("expected defaults, got specials=%q minlen=%d", cfg.Specials, cfg.MinimumLength)
	}
	if !cfg.UniqueChars || !cfg.Shuffle {
		t.Error("expected boolean defaults to be true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PGEN_SPECIALS", "!$%")
	t.Setenv("PGEN_MINLEN", "14")
	t.Setenv("PGEN_SHUFFLE", "false")
	t.Setenv("PGEN_POLICY_NO_SEQUENTIAL", "3")
	t.Setenv("PGEN_LOG_LEVEL", "debug")

	cfg, err := Load(WithFileSystem(emptyFS(t)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Specials != "!$%" {
		t.Errorf("expected specials from env, got %q", cfg.Specials)
	}
	if cfg.MinimumLength != 14 {
		t.Errorf("expected minimum length 14, got %d", cfg.MinimumLength)
	}
	if cfg.Shuffle {
		t.Error("expected shuffle disabled from env")
	}
	if cfg.Policies.NoSequentialRun != 3 {
		t.Errorf("expected no-sequential run 3, got %d", cfg.Policies.NoSequentialRun)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoad_LongFormEnvName(t *testing.T) {
	t.Setenv("PGEN_MINIMUM_LENGTH", "12")
	cfg, err := Load(WithFileSystem(emptyFS(t)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MinimumLength != 12 {
		t.Errorf("expected minimum length 12, got %d", cfg.MinimumLength)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric minimum", "PGEN_MINLEN", "ten"},
		{"zero minimum", "PGEN_MINLEN", "0"},
		{"whitespace specials", "PGEN_SPECIALS", "! ?"},
		{"empty specials", "PGEN_SPECIALS", ""},
		{"zero max tries", "PGEN_MAX_TRIES", "0"},
		{"long form zero minimum", "PGEN_MINIMUM_LENGTH", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load(WithFileSystem(emptyFS(t)))
			if !stderrors.Is(err, errors.ErrInvalidConfiguration) {
				t.Errorf("expected INVALID_CONFIGURATION, got %v", err)
			}
		})
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "passgen.yml", `
specials: "#?"
minimum_length: 12
max_tries: 500
unique_chars: false
policies:
  character_class: true
  min_length: 14
  no_sequential_run: 4
logging:
  level: warn
  format: json
`)

	cfg, err := Load(WithConfigFile(path), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Specials != "#?" {
		t.Errorf("expected specials '#?', got %q", cfg.Specials)
	}
	if cfg.MinimumLength != 12 || cfg.MaxTries != 500 {
		t.Errorf("unexpected lengths: %+v", cfg)
	}
	if cfg.UniqueChars {
		t.Error("expected unique_chars false from file")
	}
	if !cfg.Shuffle {
		t.Error("expected shuffle default to survive partial file")
	}
	if cfg.Policies.MinLength != 14 || cfg.Policies.NoSequentialRun != 4 {
		t.Errorf("unexpected policies: %+v", cfg.Policies)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json logging, got %q", cfg.Logging.Format)
	}
}

func TestLoad_EnvBeatsYAML(t *testing.T) {
	path := writeFile(t, "passgen.yml", "minimum_length: 12\n")
	t.Setenv("PGEN_MINLEN", "20")

	cfg, err := Load(WithConfigFile(path), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MinimumLength != 20 {
		t.Errorf("expected env to win, got %d", cfg.MinimumLength)
	}
}

func TestLoad_YAMLExplicitInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"empty specials", "specials: \"\"\n", "specials"},
		{"zero minimum length", "minimum_length: 0\n", "minimum_length"},
		{"zero max tries", "max_tries: 0\n", "max_tries"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "passgen.yml", tc.content)
			_, err := Load(WithConfigFile(path), WithEnvFile("/nonexistent/.env"))
			if !stderrors.Is(err, errors.ErrInvalidConfiguration) {
				t.Fatalf("expected INVALID_CONFIGURATION, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("expected error naming %q, got %q", tc.field, err.Error())
			}
		})
	}
}

func TestLoad_UnsetKeysUseDefaults(t *testing.T) {
	path := writeFile(t, "passgen.yml", "unique_chars: false\n")
	cfg, err := Load(WithConfigFile(path), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Specials != "!@#$%&*/?" || cfg.MinimumLength != 10 || cfg.MaxTries != 10000 {
		t.Errorf("expected defaults for unset keys, got %+v", cfg)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "passgen.yml", "specials: [unclosed\n")
	_, err := Load(WithConfigFile(path), WithEnvFile("/nonexistent/.env"))
	if !stderrors.Is(err, errors.ErrInvalidConfiguration) {
		t.Errorf("expected INVALID_CONFIGURATION, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(WithConfigFile("/nonexistent/path.yml"), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
}

func TestLoad_EnvFileViaFileSystem(t *testing.T) {
	fs := &mockFS{
		files: map[string]bool{".env": true},
		envVars: map[string]map[string]string{
			".env": {"PGEN_SPECIALS": "&*", "PGEN_MINLEN": "16"},
		},
		t: t,
	}
	cfg, err := Load(WithFileSystem(fs))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Specials != "&*" || cfg.MinimumLength != 16 {
		t.Errorf("expected values from .env, got specials=%q minlen=%d", cfg.Specials, cfg.MinimumLength)
	}
}

func TestLoad_RealEnvFile(t *testing.T) {
	const key = "PGEN_MAX_TRIES"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s already set in environment", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	path := writeFile(t, ".env", key+"=77\n")
	cfg, err := Load(WithConfigFile("/nonexistent/path.yml"), WithEnvFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxTries != 77 {
		t.Errorf("expected max tries 77 from .env, got %d", cfg.MaxTries)
	}
}

func TestResolveFiles(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/passgen.yml": true,
		".env":                 true,
	}}
	files := resolveFiles(LoaderConfig{FileSystem: fs})
	if files.ConfigFile != "./config/passgen.yml" {
		t.Errorf("expected config file at ./config/passgen.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != ".env" {
		t.Errorf("expected .env, got %q", files.EnvFile)
	}

	explicit := resolveFiles(LoaderConfig{FileSystem: fs, ConfigFile: "/x.yml", EnvFile: "/y.env"})
	if explicit.ConfigFile != "/x.yml" || explicit.EnvFile != "/y.env" {
		t.Errorf("expected explicit paths to win, got %+v", explicit)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithFileSystem(&RealFileSystem{})(&lc)
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.FileSystem == nil {
		t.Errorf("options not applied: %+v", lc)
	}
}
