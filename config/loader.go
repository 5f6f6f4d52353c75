package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/passgen/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PGEN"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// envAliases maps config keys to the extra variable names they answer to.
// The PGEN_<KEY> form is always bound as well.
var envAliases = map[string][]string{
	"minimum_length":             {"PGEN_MINLEN"},
	"policies.min_length":        {"PGEN_POLICY_MIN_LENGTH"},
	"policies.no_sequential_run": {"PGEN_POLICY_NO_SEQUENTIAL"},
	"logging.level":              {"PGEN_LOG_LEVEL"},
	"logging.format":             {"PGEN_LOG_FORMAT"},
	"logging.output":             {"PGEN_LOG_OUTPUT"},
	"telemetry.endpoint":         {"PGEN_TELEMETRY_ENDPOINT"},
}

// Load resolves the config and .env files, applies the environment and
// returns a validated Config.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	files := resolveFiles(lc)

	// 1. Load .env into the process environment (existing vars win)
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return nil, errors.InvalidConfiguration("env_file", "failed to load .env file "+files.EnvFile).WithCause(err)
		}
	}

	v := viper.New()
	v.AllowEmptyEnv(true)
	setDefaults(v)

	// 2. Load YAML config (base configuration)
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.InvalidConfiguration("config_file", "failed to read config file "+files.ConfigFile).WithCause(err)
		}
	}

	// 3. Bind environment variables
	if err := bindEnv(v); err != nil {
		return nil, errors.InvalidConfiguration("", "failed to bind environment").WithCause(err)
	}

	// 4. Unmarshal into config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.InvalidConfiguration("", "failed to decode configuration").WithCause(err)
	}
	// Unset keys already carry viper defaults; anything else was set explicitly.
	cfg.applyAmbientDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("specials", d.Specials)
	v.SetDefault("minimum_length", d.MinimumLength)
	v.SetDefault("max_tries", d.MaxTries)
	v.SetDefault("unique_chars", d.UniqueChars)
	v.SetDefault("shuffle", d.Shuffle)
	v.SetDefault("policies.character_class", d.Policies.CharacterClass)
	v.SetDefault("policies.specials", "")
	v.SetDefault("policies.min_length", 0)
	v.SetDefault("policies.no_sequential_run", 0)
	v.SetDefault("policies.no_sequential_descending", false)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.timestamp", true)
	v.SetDefault("logging.caller", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
}

// bindEnv binds every known key to PGEN_<KEY> plus its aliases.
// Aliases are listed first so they take precedence when both are set.
func bindEnv(v *viper.Viper) error {
	for _, key := range v.AllKeys() {
		input := append([]string{key}, envAliases[key]...)
		input = append(input, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
		if err := v.BindEnv(input...); err != nil {
			return err
		}
	}
	return nil
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// resolveFiles returns explicit paths if provided, otherwise searches for them.
func resolveFiles(lc LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: lc.ConfigFile,
		EnvFile:    lc.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = firstExisting(lc.FileSystem, configSearchPaths())
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = firstExisting(lc.FileSystem, []string{".env.passgen", ".env"})
	}
	return resolved
}

func configSearchPaths() []string {
	paths := []string{
		"./passgen.yml",
		"./passgen.yaml",
		"./config/passgen.yml",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "passgen", "config.yml"))
	}
	return paths
}

func firstExisting(fs FileSystem, paths []string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
