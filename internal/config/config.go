package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/pq2bq/internal/bqschema"
)

// Output formats for the generate command.
const (
	FormatDDL  = "ddl"
	FormatJSON = "json"
)

// Config holds all runtime configuration for a pq2bq run.
type Config struct {
	ConfigPath   string
	FilePath     string
	TableName    string
	LogFormat    string // "text" or "json"
	OutputFormat string // "ddl" or "json"
	Strict       bool   // fail when any column is skipped
}

// yamlConfig is the on-disk YAML structure. Pointer fields distinguish
// "unset" from zero values so flags given on the command line win.
type yamlConfig struct {
	TableName *string `yaml:"table_name"`
	Format    *string `yaml:"format"`
	LogFormat *string `yaml:"log_format"`
	Strict    *bool   `yaml:"strict"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Keys in override are flag names the user set explicitly; those fields are
// left untouched.
func (c *Config) LoadFromFile(path string, override map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if yc.TableName != nil && !override["table"] {
		c.TableName = *yc.TableName
	}
	if yc.Format != nil && !override["format"] {
		c.OutputFormat = *yc.Format
	}
	if yc.LogFormat != nil && !override["log-format"] {
		c.LogFormat = *yc.LogFormat
	}
	if yc.Strict != nil && !override["strict"] {
		c.Strict = *yc.Strict
	}
	return nil
}

// Validate applies defaults and checks required fields.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}

	c.TableName = strings.TrimSpace(c.TableName)
	if c.TableName == "" {
		c.TableName = bqschema.DefaultTableName
	}
	if strings.ContainsRune(c.TableName, '`') {
		return fmt.Errorf("table name %q must not contain backticks", c.TableName)
	}

	if c.OutputFormat == "" {
		c.OutputFormat = FormatDDL
	}
	switch c.OutputFormat {
	case FormatDDL, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.OutputFormat, FormatDDL, FormatJSON)
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	return nil
}
