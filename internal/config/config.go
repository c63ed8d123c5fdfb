// Package config loads the optional entrypoint configuration file.
//
// The file may be YAML (".yaml"/".yml", parsed with gopkg.in/yaml.v3) or
// JSON with comments (anything else). JSONC is stripped of comments and
// trailing commas with github.com/tidwall/jsonc before being decoded by the
// standard encoding/json library, the same way devcontainer-style files are
// usually handled.
//
// Every field is optional; missing fields keep the values from Default().
// Command-line flags are applied on top by the cli package.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/docker-entrypoint/internal/engine"
	"github.com/shinji-kodama/docker-entrypoint/internal/model"
)

// EnvConfigPath names the environment variable consulted when no
// --config flag is given.
const EnvConfigPath = "ENTRYPOINT_CONFIG"

// Log output formats accepted in LogFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the entrypoint configuration.
type Config struct {
	// LogLevel is a logrus level name ("info", "debug", ...).
	LogLevel string `json:"logLevel" yaml:"logLevel"`

	// LogFormat selects the log formatter: "text" or "json".
	LogFormat string `json:"logFormat" yaml:"logFormat"`

	// Engine is the engine binary name or path.
	Engine string `json:"engine" yaml:"engine"`

	// EngineFlags are passed to the engine before any command-line
	// arguments, e.g. ["--harmony", "--log-gc"].
	EngineFlags []string `json:"engineFlags,omitempty" yaml:"engineFlags,omitempty"`

	// BuildInfoFile is a dotenv file with image build metadata. Missing
	// files are ignored.
	BuildInfoFile string `json:"buildInfoFile,omitempty" yaml:"buildInfoFile,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  logrus.InfoLevel.String(),
		LogFormat: FormatText,
		Engine:    engine.DefaultBinary,
	}
}

// Load reads the file at path over the defaults. An empty path returns
// Default(). A missing or malformed file is a model.CLIError with
// ExitConfigError. Values are not validated here: callers apply their
// overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(model.ExitConfigError, "failed to read config file", err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path),
			err,
		)
	}
	return cfg, nil
}

// decode picks the parser from the file extension.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(jsonc.ToJSON(data), cfg)
	}
}

// Validate checks the values that are not free-form.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("logFormat: invalid value %q (valid: %s, %s)", c.LogFormat, FormatText, FormatJSON)
	}
	if strings.TrimSpace(c.Engine) == "" {
		return fmt.Errorf("engine: must not be empty")
	}
	return nil
}

// Level returns the parsed log level, falling back to info for values
// Validate would reject.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Formatter returns the logrus formatter for LogFormat.
func (c *Config) Formatter() logrus.Formatter {
	if c.LogFormat == FormatJSON {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

// Properties satisfies model.Propertied for debug dumps.
func (c *Config) Properties() []model.Property {
	return []model.Property{
		{Name: "logLevel", Value: c.LogLevel},
		{Name: "logFormat", Value: c.LogFormat},
		{Name: "engine", Value: c.Engine},
		{Name: "engineFlags", Value: strings.Join(c.EngineFlags, " ")},
		{Name: "buildInfoFile", Value: c.BuildInfoFile},
	}
}
