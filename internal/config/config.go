// Package config loads namedeck settings and builds the template table.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aerissecure/namedeck/layout"
)

// Config holds all namedeck settings.
type Config struct {
	TemplateDir string           `mapstructure:"template_dir"`
	Templates   []TemplateConfig `mapstructure:"templates"`
	Log         LogConfig        `mapstructure:"log"`
}

// TemplateConfig is one entry of the template table. Relative files are
// resolved against TemplateDir.
type TemplateConfig struct {
	ID   string `mapstructure:"id"`
	File string `mapstructure:"file"`
	Type string `mapstructure:"type"` // single-per-slide | grouped-per-slide
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads cfgFile, or .namedeck.yaml from the home or working directory
// when cfgFile is empty, then applies NAMEDECK_* environment overrides. A
// .env file in the working directory is loaded first. A missing default
// config file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	v.SetDefault("template_dir", "templates")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".namedeck")
	}

	v.SetEnvPrefix("NAMEDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Table builds the immutable template table. With no templates configured
// the stock eg1/eg2 pair in TemplateDir is used.
func (c *Config) Table() (layout.Table, error) {
	if len(c.Templates) == 0 {
		return layout.NewTable(layout.DefaultTemplates(c.TemplateDir)...)
	}

	templates := make([]layout.Template, 0, len(c.Templates))
	for _, tc := range c.Templates {
		typ, err := layout.ParseTemplateType(tc.Type)
		if err != nil {
			return layout.Table{}, fmt.Errorf("template %q: %w", tc.ID, err)
		}
		path := tc.File
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(c.TemplateDir, path)
		}
		templates = append(templates, layout.Template{ID: tc.ID, Path: path, Type: typ})
	}
	return layout.NewTable(templates...)
}
