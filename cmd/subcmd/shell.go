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
	"io"
	"os"

	"seqlist/config"
	"seqlist/internal/errdef"
	"seqlist/pkg/shell"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func newShellCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "shell"
	cmd.Usage = "Start the interactive shell, optionally seeding the list"
	cmd.ArgsUsage = "[VALUE...]"
	cmd.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowCommandHelp(c, cmd.Name)
		}
		return RunShell(c.Args().Slice())
	}
	return cmd
}

// RunShell starts the interactive shell with a list holding seed.
func RunShell(seed []string) error {
	return shell.New(config.Get(), os.Stdout, seed...).Run()
}

func newRunCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "run"
	cmd.Usage = "Run the operations in FILE, '-' reads standard input"
	cmd.ArgsUsage = "FILE [VALUE...]"
	cmd.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowCommandHelp(c, cmd.Name)
		}
		if c.NArg() < 1 {
			return errors.Wrap(errdef.ErrWrongArgCount, "usage: run FILE [VALUE...]")
		}
		return RunFile(c.App.Writer, c.Args().First(), c.Args().Tail())
	}
	return cmd
}

// RunFile runs the script at path against a list holding seed, writing
// operation output to out.
func RunFile(out io.Writer, path string, seed []string) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open script")
		}
		defer f.Close()
		r = f
	}
	return shell.New(config.Get(), out, seed...).RunScript(r)
}
