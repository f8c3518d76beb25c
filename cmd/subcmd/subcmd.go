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

package subcmd

import (
	"seqlist/config"
	"seqlist/internal/logger"
	"seqlist/internal/orderedmap"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var subcmds = orderedmap.NewOrderedMap[string, *cli.Command]()

func init() {
	subcmds.Set("shell", newShellCmd())
	subcmds.Set("run", newRunCmd())
	subcmds.Set("version", newVersionCmd())
}

func GetSubCmds() *orderedmap.OrderedMap[string, *cli.Command] {
	return subcmds
}

// GlobalOptions are the application level flags that override values
// from the config file.
type GlobalOptions struct {
	ConfigFile  string
	LogLevel    string
	Format      string
	Silence     bool
	OnErrorStop bool
}

func GlobalFlags(opts *GlobalOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			EnvVars:     []string{"SEQLIST_CONFIG"},
			Destination: &opts.ConfigFile,
			Usage:       "Config file, ini or yaml (default: $XDG_CONFIG_HOME/seqlist/config)",
		},
		&cli.StringFlag{
			Name:        "log-level",
			EnvVars:     []string{"SEQLIST_LOG_LEVEL"},
			Destination: &opts.LogLevel,
			Usage:       "Log level: debug, info, warn, error, fatal",
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Destination: &opts.Format,
			Usage:       "Table format of the print operation",
		},
		&cli.BoolFlag{
			Name:        "silence",
			Aliases:     []string{"s"},
			Destination: &opts.Silence,
			Usage:       "Mute log output",
		},
		&cli.BoolFlag{
			Name:        "on-error-stop",
			Destination: &opts.OnErrorStop,
			Usage:       "Stop a script at the first failing operation",
		},
	}
}

// Setup loads the configuration, applies flag overrides and configures
// the logger.
func Setup(opts *GlobalOptions) error {
	var err error
	if opts.ConfigFile != "" {
		err = config.Load(opts.ConfigFile)
	} else {
		err = config.Init()
	}
	if err != nil {
		return err
	}

	cfg := config.Get()
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Silence {
		cfg.Silence = true
	}
	if opts.OnErrorStop {
		cfg.OnErrorStop = true
	}

	if cfg.NoColor {
		color.NoColor = true
	}
	if cfg.Silence {
		logger.MuteLogger()
	} else {
		logger.SetLogLevelByString(cfg.LogLevel)
	}
	logger.Debug("config loaded: %v", config.GetConfigMap())
	return nil
}

// newDefaultCmd returns a command with the built-in help hidden and a
// -?/--help flag that the command action handles itself.
func newDefaultCmd() *cli.Command {
	cmd := &cli.Command{
		HideHelp:               true,
		UseShortOptionHandling: true,
	}
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:               "help",
		Aliases:            []string{"?"},
		Usage:              "Show help information",
		DisableDefaultText: true,
	})
	return cmd
}
