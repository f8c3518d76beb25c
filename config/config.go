// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"embed"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"seqlist/internal/errdef"
	"seqlist/internal/utils"

	syslocale "github.com/jeandeaual/go-locale"
	"github.com/pkg/errors"
	"github.com/vimiix/pkg/file"
	"github.com/xo/terminfo"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v2"
)

//go:embed defaultconfig.ini
var defaultConfigFile embed.FS

var defaultConfig = newDefault()

const (
	defaultPrompt = "seqlist[$l]> "
	defaultFormat = "aligned"
	defaultLocale = "en-US"
)

// Get returns the configuration loaded by Init or Load.
func Get() *Config {
	return defaultConfig
}

type Config struct {
	Prompt      string `ini:"prompt,omitempty" yaml:"prompt"`
	LessChatty  bool   `ini:"less_chatty,omitempty" yaml:"less_chatty"`
	MaxHistory  int    `ini:"max_history,omitempty" yaml:"max_history"`
	LogLevel    string `ini:"log_level,omitempty" yaml:"log_level"`
	Silence     bool   `ini:"silence,omitempty" yaml:"silence"`
	OnErrorStop bool   `ini:"on_error_stop,omitempty" yaml:"on_error_stop"`
	Format      string `ini:"format,omitempty" yaml:"format"`

	// auto detected fields
	NoColor bool   `ini:"-" yaml:"-"`
	Locale  string `ini:"-" yaml:"-"`
}

func GetConfigMap() map[string]string {
	c := defaultConfig
	return map[string]string{
		"prompt":        c.Prompt,
		"less_chatty":   strconv.FormatBool(c.LessChatty),
		"max_history":   strconv.Itoa(c.MaxHistory),
		"log_level":     c.LogLevel,
		"silence":       strconv.FormatBool(c.Silence),
		"on_error_stop": strconv.FormatBool(c.OnErrorStop),
		"format":        c.Format,
	}
}

// PrintConfig returns the tblfmt options used to render the list.
func (c *Config) PrintConfig() map[string]string {
	format := c.Format
	if format == "" {
		format = defaultFormat
	}
	locale := c.Locale
	if locale == "" {
		locale = defaultLocale
	}
	return map[string]string{
		"border":                   "1",
		"format":                   format,
		"footer":                   "on",
		"linestyle":                "ascii",
		"locale":                   locale,
		"null":                     "",
		"numericlocale":            "off",
		"title":                    "",
		"tuples_only":              "off",
		"unicode_border_linestyle": "single",
		"unicode_column_linestyle": "single",
		"unicode_header_linestyle": "single",
	}
}

// LivePrompt expands the prompt macros each time the prompt is drawn.
// length reports the current list length for $l.
func (c *Config) LivePrompt(length func() int) func() (string, bool) {
	return func() (string, bool) {
		p := c.Prompt
		if p == "" {
			p = defaultPrompt
		}

		rs := []rune(p)
		var buf []byte
		end := len(rs)
		for i := 0; i < len(rs); i++ {
			if rs[i] != '$' {
				buf = append(buf, string(rs[i])...)
				continue
			}

			switch utils.Grab(rs, i+1, end) {
			case '$':
				buf = append(buf, '$')
			case 'l':
				buf = append(buf, strconv.Itoa(length())...)
			case 'u':
				if u, err := user.Current(); err == nil {
					buf = append(buf, u.Username...)
				}
			default:
			}
			i++
		}
		return string(buf), true
	}
}

// Init loads the config file at the default location, writing the
// embedded default there first if it does not exist.
func Init() error {
	cfgFile := filepath.Join(DefaultLocation(), "config")
	if err := writeDefaultConfig(cfgFile, false); err != nil {
		return err
	}
	return Load(cfgFile)
}

// Load reads the config file at path. Files ending in .yaml or .yml are
// parsed as yaml, everything else as ini.
func Load(path string) error {
	path = file.ExpandHomePath(path)
	cfg := newDefault()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "load config: %s", path)
		}
		if err = yaml.Unmarshal(content, cfg); err != nil {
			return errors.Wrapf(err, "load config: %s", path)
		}
	case "", ".ini", ".conf", ".cfg":
		if err := ini.MapTo(cfg, path); err != nil {
			return errors.Wrapf(err, "load config: %s", path)
		}
	default:
		return errors.Wrapf(errdef.ErrUnsupportedConfigFormat, "load config: %s", path)
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 1000
	}
	defaultConfig = cfg
	return nil
}

func newDefault() *Config {
	noColor := false
	if s, ok := utils.Getenv("NO_COLOR"); ok {
		noColor = s != "0" && s != "false" && s != "off"
	}
	if colorLevel, err := terminfo.ColorLevelFromEnv(); err != nil || colorLevel < terminfo.ColorLevelBasic {
		noColor = true
	}

	locale := defaultLocale
	if s, err := syslocale.GetLocale(); err == nil && s != "" {
		locale = s
	}

	return &Config{
		Prompt:     defaultPrompt,
		MaxHistory: 1000,
		LogLevel:   "info",
		Format:     defaultFormat,
		NoColor:    noColor,
		Locale:     locale,
	}
}

// DefaultLocation returns the directory holding the config and history
// files: $XDG_CONFIG_HOME/seqlist, %USERPROFILE%\AppData\Local\seqlist on
// Windows, ~/.config/seqlist elsewhere.
func DefaultLocation() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(file.ExpandHomePath(xdg), "seqlist")
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local", "seqlist")
	}
	return file.ExpandHomePath("~/.config/seqlist")
}

func writeDefaultConfig(dest string, overwrite bool) error {
	dest = file.ExpandHomePath(dest)
	if !overwrite && file.Exists(dest) {
		return nil
	}

	if err := file.EnsureDirExists(dest); err != nil {
		return err
	}

	src, err := defaultConfigFile.Open("defaultconfig.ini")
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
