//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads the settings of the editor from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/mode"
	chisel "github.com/timburks/chisel/types"
)

// ErrUnknownColor is returned for a theme entry naming no known color.
var ErrUnknownColor = errors.New("unknown color")

// ErrUnknownScope is returned for a theme entry naming no known scope.
var ErrUnknownScope = errors.New("unknown scope")

// ModeConfig holds the settings of one mode.
type ModeConfig struct {
	Bindings []mode.Binding `mapstructure:"bindings" yaml:"bindings"`
}

// Config holds all configuration options.
type Config struct {
	TabWidth int    `mapstructure:"tab_width" yaml:"tab_width"`
	UseTabs  bool   `mapstructure:"use_tabs" yaml:"use_tabs"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`

	// Theme maps scope names to "fg[+style...][:bg]".
	Theme    map[string]string     `mapstructure:"theme" yaml:"theme,omitempty"`
	Bindings []mode.Binding        `mapstructure:"bindings" yaml:"bindings,omitempty"`
	Modes    map[string]ModeConfig `mapstructure:"modes" yaml:"modes,omitempty"`

	// File is the path the configuration was read from, if any.
	File string `mapstructure:"-" yaml:"-"`
}

// Defaults returns the configuration used when no file is found.
func Defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		TabWidth: 8,
		LogFile:  filepath.Join(home, ".chisellog"),
	}
}

// DefaultPath returns the file read when no path is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "chisel", "config.yaml")
}

// Load reads the configuration at path. An empty path reads the default
// file, which need not exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("tab_width", defaults.TabWidth)
	v.SetDefault("use_tabs", defaults.UseTabs)
	v.SetDefault("log_file", defaults.LogFile)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if c.TabWidth < 1 {
		c.TabWidth = defaults.TabWidth
	}
	c.File = v.ConfigFileUsed()
	return &c, nil
}

// Palette returns the default palette with the theme applied.
func (c *Config) Palette() (highlight.Palette, error) {
	overrides := make(highlight.Palette, len(c.Theme))
	var errs []error
	for name, value := range c.Theme {
		s, ok := chisel.ScopeNamed(name)
		if !ok || s == chisel.ScopeNone {
			errs = append(errs, fmt.Errorf("theme %s: %w", name, ErrUnknownScope))
			continue
		}
		a, err := ParseAttr(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme %s: %w", name, err))
			continue
		}
		overrides[s] = a
	}
	return highlight.DefaultPalette().With(overrides), errors.Join(errs...)
}

// Apply adds the configured mode bindings to a registry.
func (c *Config) Apply(r *mode.Registry) {
	for name, m := range c.Modes {
		r.AddBindings(name, m.Bindings)
	}
}

var colorNames = map[string]chisel.Color{
	"default": chisel.ColorDefault,
	"black":   chisel.ColorBlack,
	"red":     chisel.ColorRed,
	"green":   chisel.ColorGreen,
	"yellow":  chisel.ColorYellow,
	"blue":    chisel.ColorBlue,
	"magenta": chisel.ColorMagenta,
	"cyan":    chisel.ColorCyan,
	"white":   chisel.ColorWhite,
}

var styleNames = map[string]chisel.Color{
	"bold":      chisel.AttrBold,
	"underline": chisel.AttrUnderline,
	"reverse":   chisel.AttrReverse,
}

// ParseAttr reads an attribute written as "fg[+style...][:bg]".
// Colors are names or palette numbers from 0 to 255.
func ParseAttr(s string) (chisel.Attr, error) {
	fg, bg, hasBg := strings.Cut(strings.TrimSpace(s), ":")
	parts := strings.Split(fg, "+")
	var a chisel.Attr
	var err error
	if a.Fg, err = parseColor(parts[0]); err != nil {
		return a, err
	}
	for _, p := range parts[1:] {
		style, ok := styleNames[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return a, fmt.Errorf("%w: %q", ErrUnknownColor, p)
		}
		a.Fg |= style
	}
	if hasBg {
		if a.Bg, err = parseColor(bg); err != nil {
			return a, err
		}
	}
	return a, nil
}

func parseColor(s string) (chisel.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return chisel.Color(n + 1), nil
}

// WriteDefault writes a configuration file holding the defaults.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	c := Defaults()
	c.Theme = map[string]string{"comment": "245", "keyword": "yellow+bold"}
	c.Bindings = []mode.Binding{{Chord: "C-c g", Expr: "(goto-line)"}}
	c.Modes = map[string]ModeConfig{
		"go": {Bindings: []mode.Binding{{Chord: "<f5>", Expr: "(gofmt)"}}},
	}
	data, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	log.Printf("wrote default config %s", path)
	return nil
}
