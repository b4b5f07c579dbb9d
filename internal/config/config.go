package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arbor-ui/arbor/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "arbor.json"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete arbor.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Port is the default server port (convenience field, also in Dev).
	Port int `json:"port,omitempty"`

	// Static contains static file serving configuration.
	Static StaticConfig `json:"static,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Render contains server-side rendering configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Publish contains static publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix for static files (default: "/").
	Prefix string `json:"prefix,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`

	// LiveReload enables the live-reload WebSocket endpoint.
	LiveReload bool `json:"liveReload,omitempty"`

	// Metrics enables the /metrics Prometheus endpoint.
	Metrics bool `json:"metrics,omitempty"`
}

// RenderConfig contains server-side rendering settings.
type RenderConfig struct {
	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit for pretty output (default: two spaces).
	Indent string `json:"indent,omitempty"`
}

// PublishConfig contains static publishing settings.
type PublishConfig struct {
	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// Prefix is the key prefix under which files are uploaded.
	Prefix string `json:"prefix,omitempty"`

	// Output is the local directory to publish (default: "dist").
	Output string `json:"output,omitempty"`

	// Prune removes remote keys that no longer exist locally.
	Prune bool `json:"prune,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Port:    DefaultPort,
		Static: StaticConfig{
			Dir:    "public",
			Prefix: "/",
		},
		Dev: DevConfig{
			Port:       DefaultPort,
			Host:       DefaultHost,
			LiveReload: true,
			Metrics:    true,
			Watch:      []string{"app", "public"},
		},
		Render: RenderConfig{
			Indent: "  ",
		},
		Publish: PublishConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for arbor.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E602").
				WithDetail("No arbor.json found in " + filepath.Dir(path)).
				WithSuggestion("Create arbor.json in the project root")
		}
		return nil, errors.New("E601").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E601").
			WithDetail("Failed to parse arbor.json: " + err.Error()).
			WithSuggestion("Check that arbor.json is valid JSON")
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
		return errors.New("E601").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E601").Wrap(err)
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

// DevAddress returns the host:port address for the dev server.
func (c *Config) DevAddress() string {
	return fmt.Sprintf("%s:%d", c.Dev.Host, c.Dev.Port)
}

// DevURL returns the browser URL for the dev server.
func (c *Config) DevURL() string {
	return fmt.Sprintf("http://%s:%d", c.Dev.Host, c.Dev.Port)
}

// StaticDir returns the absolute path of the static files directory.
func (c *Config) StaticDir() string {
	return c.resolve(c.Static.Dir)
}

// OutputDir returns the absolute path of the publish output directory.
func (c *Config) OutputDir() string {
	return c.resolve(c.Publish.Output)
}

// WatchPaths returns the absolute paths the dev server should watch.
// Paths that do not exist are skipped.
func (c *Config) WatchPaths() []string {
	var paths []string
	for _, p := range c.Dev.Watch {
		abs := c.resolve(p)
		if _, err := os.Stat(abs); err == nil {
			paths = append(paths, abs)
		}
	}
	return paths
}

// resolve returns p relative to the config directory if p is relative.
func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = c.Port
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{"app", "public"}
	}
	if c.Static.Dir == "" {
		c.Static.Dir = "public"
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/"
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	if c.Publish.Output == "" {
		c.Publish.Output = DefaultOutput
	}
}
