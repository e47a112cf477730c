package config

// Configuration loading and validation for binwriter

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tturner/binwriter/internal/errors"
	"github.com/tturner/binwriter/internal/gen"
)

const (
	// DefaultConfigPath is read when --config is not given. A missing file is not an error.
	DefaultConfigPath = "binwriter.yaml"
	// DefaultEnvPath is the dotenv file consulted for BINWRITER_* overrides.
	DefaultEnvPath = ".env"

	DefaultMaxSize           int64 = 1 << 30
	DefaultChunkSize               = 64 << 10
	DefaultProgressThreshold int64 = 1 << 20
	DefaultPreviewBytes            = 32
)

// Environment variables that override file settings.
const (
	EnvMaxSize   = "BINWRITER_MAX_SIZE"
	EnvChunkSize = "BINWRITER_CHUNK_SIZE"
	EnvLogLevel  = "BINWRITER_LOG_LEVEL"
	EnvLogFormat = "BINWRITER_LOG_FORMAT"
)

// Profile is a named, reusable content specification
type Profile struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	Spec        gen.Spec `yaml:"spec"`
}

// Config represents the binwriter configuration file
type Config struct {
	// MaxSize caps generated output in bytes; 0 disables the cap.
	MaxSize           int64     `yaml:"max_size"`
	IntegerWidth      int       `yaml:"integer_width"`
	Endianness        string    `yaml:"endianness"`
	ChunkSize         int       `yaml:"chunk_size"`
	ProgressThreshold int64     `yaml:"progress_threshold"`
	PreviewBytes      int       `yaml:"preview_bytes"`
	LogLevel          string    `yaml:"log_level,omitempty"`
	// LogFormat selects the --log-file format: text (default) or json.
	LogFormat         string    `yaml:"log_format,omitempty"`
	Profiles          []Profile `yaml:"profiles,omitempty"`
}

// CreateDefaultConfig creates a default configuration
func CreateDefaultConfig() *Config {
	return &Config{
		MaxSize:           DefaultMaxSize,
		IntegerWidth:      gen.DefaultIntegerWidth,
		Endianness:        gen.LittleEndian.String(),
		ChunkSize:         DefaultChunkSize,
		ProgressThreshold: DefaultProgressThreshold,
		PreviewBytes:      DefaultPreviewBytes,
	}
}

func exampleProfiles() []Profile {
	size := int64(1024)
	fill := "FF"
	pattern := "DE AD BE EF"
	integers := "1, 2, 3"
	width := 2
	order := "big"
	return []Profile{
		{Name: "erased-flash-1k", Description: "1 KiB of erased flash (0xFF)", Spec: gen.Spec{Size: &size, Fill: &fill}},
		{Name: "deadbeef-1k", Description: "1 KiB of DEADBEEF", Spec: gen.Spec{Size: &size, Pattern: &pattern}},
		{Name: "counter-be16", Description: "Three big-endian 16-bit integers", Spec: gen.Spec{Integers: &integers, Width: &width, Endianness: &order}},
	}
}

// WriteDefaultConfig writes a default configuration, with example profiles, to a file
func WriteDefaultConfig(path string) error {
	cfg := CreateDefaultConfig()
	cfg.Profiles = exampleProfiles()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file. When required is false a
// missing file yields the defaults.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := CreateDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.WrapConfigError(fmt.Errorf("config file not found: %s", path), path)
		}
		return nil, errors.WrapConfigError(fmt.Errorf("read config file: %w", err), path)
	}

	// Keys absent from the file keep their defaults.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("validate config: %w", err), path)
	}

	return cfg, nil
}

// ValidateConfig validates a configuration
func ValidateConfig(cfg *Config) error {
	if cfg.MaxSize < 0 {
		return fmt.Errorf("max_size must be >= 0 (0 disables the cap)")
	}
	if cfg.IntegerWidth < 1 || cfg.IntegerWidth > 8 {
		return fmt.Errorf("integer_width must be between 1 and 8")
	}
	if _, err := gen.ParseEndianness(cfg.Endianness); err != nil {
		return fmt.Errorf("endianness: %w", err)
	}
	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be > 0")
	}
	if cfg.ProgressThreshold < 0 {
		return fmt.Errorf("progress_threshold must be >= 0")
	}
	if cfg.PreviewBytes < 0 {
		return fmt.Errorf("preview_bytes must be >= 0")
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", cfg.LogFormat)
	}

	seen := make(map[string]bool)
	for i, profile := range cfg.Profiles {
		if err := validateProfile(profile, i, cfg.Limits()); err != nil {
			return err
		}
		if seen[profile.Name] {
			return fmt.Errorf("profiles[%d]: duplicate name %q", i, profile.Name)
		}
		seen[profile.Name] = true
	}

	return nil
}

func validateProfile(profile Profile, index int, limits gen.Limits) error {
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("profiles[%d]: name is required", index)
	}
	// Profiles may leave the size to the command line, so only the mode is checked strictly.
	if len(profile.Spec.Modes()) != 1 {
		return fmt.Errorf("profiles[%d] (%s): exactly one of fill, random, pattern, hex, integers is required", index, profile.Name)
	}
	if profile.Spec.Size == nil {
		return nil
	}
	if _, err := gen.Validate(profile.Spec, limits); err != nil {
		return fmt.Errorf("profiles[%d] (%s): %w", index, profile.Name, err)
	}
	return nil
}

// Limits returns the generation limits implied by the configuration.
func (c *Config) Limits() gen.Limits {
	return gen.Limits{MaxSize: c.MaxSize}
}

// ApplyDefaults fills integer width and endianness from the configuration
// when an integers spec leaves them unset.
func (c *Config) ApplyDefaults(spec gen.Spec) gen.Spec {
	if spec.Integers == nil {
		return spec
	}
	if spec.Width == nil {
		width := c.IntegerWidth
		spec.Width = &width
	}
	if spec.Endianness == nil {
		order := c.Endianness
		spec.Endianness = &order
	}
	return spec
}

// FindProfile returns the profile with the given name.
func (c *Config) FindProfile(name string) (*Profile, error) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	names := make([]string, 0, len(c.Profiles))
	for _, profile := range c.Profiles {
		names = append(names, profile.Name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("profile %q not found (no profiles configured)", name)
	}
	return nil, fmt.Errorf("profile %q not found (available: %s)", name, strings.Join(names, ", "))
}

// ApplyEnv overlays BINWRITER_* settings from envPath (if it exists) and
// the process environment. Process variables win over the dotenv file.
func ApplyEnv(cfg *Config, envPath string) error {
	values := map[string]string{}
	if envPath != "" {
		fileValues, err := godotenv.Read(envPath)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", envPath, err)
		}
		for key, value := range fileValues {
			values[key] = value
		}
	}
	for _, key := range []string{EnvMaxSize, EnvChunkSize, EnvLogLevel, EnvLogFormat} {
		if value, ok := os.LookupEnv(key); ok {
			values[key] = value
		}
	}
	if err := applyOverrides(cfg, values); err != nil {
		return err
	}
	return ValidateConfig(cfg)
}

func applyOverrides(cfg *Config, values map[string]string) error {
	if raw, ok := values[EnvMaxSize]; ok && raw != "" {
		size, err := ParseByteSize(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxSize, err)
		}
		if size < 0 {
			return fmt.Errorf("%s: must be >= 0 (0 disables the cap), got %q", EnvMaxSize, raw)
		}
		cfg.MaxSize = size
	}
	if raw, ok := values[EnvChunkSize]; ok && raw != "" {
		size, err := ParseByteSize(raw)
		if err != nil || size <= 0 {
			return fmt.Errorf("%s: invalid chunk size %q", EnvChunkSize, raw)
		}
		cfg.ChunkSize = int(size)
	}
	if raw, ok := values[EnvLogLevel]; ok && raw != "" {
		cfg.LogLevel = raw
	}
	if raw, ok := values[EnvLogFormat]; ok && raw != "" {
		cfg.LogFormat = strings.ToLower(raw)
	}
	return nil
}

var byteSuffixes = []struct {
	suffix string
	factor int64
}{
	{"KiB", 1 << 10},
	{"MiB", 1 << 20},
	{"GiB", 1 << 30},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"G", 1 << 30},
	{"B", 1},
}

// ParseByteSize parses a byte count with an optional K/M/G (or KiB/MiB/GiB)
// binary suffix, e.g. "4096", "64K", "1MiB".
func ParseByteSize(text string) (int64, error) {
	cleaned := strings.TrimSpace(text)
	factor := int64(1)
	for _, s := range byteSuffixes {
		if strings.HasSuffix(strings.ToUpper(cleaned), strings.ToUpper(s.suffix)) {
			cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(s.suffix)])
			factor = s.factor
			break
		}
	}
	value, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", text)
	}
	if limit := int64(1<<63-1) / factor; value > limit || value < -limit {
		return 0, fmt.Errorf("size %q overflows", text)
	}
	return value * factor, nil
}
