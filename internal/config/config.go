package config

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/lumen-ui/lumen/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "lumen.json"

	// DefaultAddr is the default inspector listen address.
	DefaultAddr = "localhost:8920"

	// DefaultScenarios is the default scenario directory.
	DefaultScenarios = "cases"
)

// Config represents the complete lumen.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Scenarios is the directory scenario files are resolved against.
	Scenarios string `json:"scenarios,omitempty"`

	// Dev enables contract-violation logging.
	Dev bool `json:"dev,omitempty"`

	// Inspector contains inspector server configuration.
	Inspector InspectorConfig `json:"inspector,omitempty"`

	// Metrics contains Prometheus metric naming configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// InspectorConfig contains inspector server settings.
type InspectorConfig struct {
	// Addr is the listen address for the inspector.
	Addr string `json:"addr,omitempty"`
}

// MetricsConfig contains Prometheus metric naming settings.
type MetricsConfig struct {
	// Namespace is the metric namespace (default "lumen").
	Namespace string `json:"namespace,omitempty"`

	// Subsystem is the metric subsystem (default "reconcile").
	Subsystem string `json:"subsystem,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Scenarios: DefaultScenarios,
		Inspector: InspectorConfig{
			Addr: DefaultAddr,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for lumen.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").WithFile(path)
		}
		return nil, errors.New("E142").WithFile(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E142").WithFile(path).Wrap(err).
			WithSuggestion("Check that lumen.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E142").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E142").WithFile(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// ScenarioPath resolves a scenario file name against the configured
// scenario directory. Absolute paths and paths to existing files are
// returned unchanged.
func (c *Config) ScenarioPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(c.Dir(), c.Scenarios, name)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Scenarios == "" {
		c.Scenarios = DefaultScenarios
	}
	if c.Inspector.Addr == "" {
		c.Inspector.Addr = DefaultAddr
	}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing lumen.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No lumen.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory, walking up to the project root. When no lumen.json exists
// anywhere above the working directory, defaults are returned.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}
