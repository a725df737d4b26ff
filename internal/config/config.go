package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "optpaircli/internal/errors"
	"optpaircli/pkg/contracts/domain"
)

// Config represents the complete application configuration
type Config struct {
	Aggregation AggregationConfig   `yaml:"aggregation" envconfig:"AGGREGATION"`
	Columns     domain.ColumnSchema `yaml:"columns" envconfig:"COLUMNS"`
	Logging     LoggingConfig       `yaml:"logging" envconfig:"LOGGING"`
}

// AggregationConfig contains the pipeline inputs and outputs
type AggregationConfig struct {
	// BaseDirs is a comma-separated list of directories holding dated folders.
	BaseDirs    string `yaml:"base_dirs" envconfig:"BASE_DIRS" validate:"required"`
	OutputPath  string `yaml:"output_path" envconfig:"OUTPUT_PATH" validate:"required"`
	ReportPath  string `yaml:"report_path" envconfig:"REPORT_PATH"`
	MetricsPath string `yaml:"metrics_path" envconfig:"METRICS_PATH"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// LoadOptions selects the configuration sources and command line overrides
type LoadOptions struct {
	// ConfigFile is the YAML file to read. When Explicit is false a missing
	// file is not an error.
	ConfigFile string
	Explicit   bool
	// EnvFile is an optional dotenv file loaded before reading the environment.
	EnvFile string

	BaseDirs   string
	OutputPath string
}

// Dirs returns the configured base directories, trimmed and without blanks.
func (a AggregationConfig) Dirs() []string {
	var dirs []string
	for _, d := range strings.Split(a.BaseDirs, BaseDirSeparator) {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Load builds the configuration from defaults, the YAML file, the dotenv
// file, OPTPAIR_* environment variables and finally the overrides in opts.
// Every failure is a CONFIG error.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	if err := loadFromFile(configFile, cfg); err != nil {
		if !os.IsNotExist(err) || opts.Explicit {
			return nil, apperrors.NewConfigError("failed to load config file", err).
				WithContext("path", configFile)
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, apperrors.NewConfigError("failed to load env file", err).
			WithContext("path", envFile)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if opts.BaseDirs != "" {
		cfg.Aggregation.BaseDirs = opts.BaseDirs
	}
	if opts.OutputPath != "" {
		cfg.Aggregation.OutputPath = opts.OutputPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile decodes a YAML file on top of cfg so absent keys keep
// their current values
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks required keys and enumerated values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return apperrors.NewConfigError("invalid configuration", err).
				WithContext("fields", strings.Join(fields, ", "))
		}
		return apperrors.NewConfigError("invalid configuration", err)
	}
	if len(c.Aggregation.Dirs()) == 0 {
		return apperrors.NewConfigError("base_dirs must name at least one directory", nil)
	}
	return nil
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Columns: domain.DefaultColumnSchema(),
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
	}
}
