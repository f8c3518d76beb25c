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

package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"seqlist/config"
	"seqlist/internal/errdef"
	"seqlist/internal/logger"
	"seqlist/internal/orderedmap"
	"seqlist/internal/utils"
	"seqlist/pkg/seqlist"
	"seqlist/pkg/version"

	"github.com/pkg/errors"
	"github.com/vimiix/go-prompt"
)

var dummyExecutor = func(string) {}

// maxScriptLine bounds a single script line.
const maxScriptLine = 16 * 1024 * 1024

// Session holds one list of strings and applies operations to it.
type Session struct {
	cfg  *config.Config
	list *seqlist.List[string]
	ops  *orderedmap.OrderedMap[string, *Operation]
	out  io.Writer
	quit bool
}

// New returns a session whose list starts with seed. A nil cfg uses the
// loaded configuration and a nil out writes to stdout.
func New(cfg *config.Config, out io.Writer, seed ...string) *Session {
	if cfg == nil {
		cfg = config.Get()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Session{
		cfg:  cfg,
		list: seqlist.New(seed...),
		ops:  newOperations(),
		out:  out,
	}
}

func (s *Session) List() *seqlist.List[string] {
	return s.list
}

// Quit reports whether a quit or exit operation ran.
func (s *Session) Quit() bool {
	return s.quit
}

func (s *Session) println(v string) {
	fmt.Fprintln(s.out, v)
}

func (s *Session) printValue(v string, ok bool) {
	if !ok {
		s.println(noneValue)
		return
	}
	s.println(v)
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "--")
}

// Exec parses and runs one operation line. Blank lines and comments are
// ignored.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if utils.EmptyStr(line) || isComment(line) {
		return nil
	}

	args, err := SplitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	op, ok := s.ops.Get(name)
	if !ok {
		return errors.Wrapf(errdef.ErrUnknownOperation, "%q", args[0])
	}
	args = args[1:]
	if err = op.checkArgs(args); err != nil {
		return err
	}

	logger.Debug("exec %s %q", name, args)
	if err = op.Handler(s, args); err != nil {
		return errors.WithMessage(err, name)
	}
	return nil
}

// RunScript runs r line by line until it is exhausted or a quit operation
// runs. A failing line stops the script when on_error_stop is set and is
// logged otherwise.
func (s *Session) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxScriptLine)
	n := 0
	for !s.quit && scanner.Scan() {
		n++
		if err := s.Exec(scanner.Text()); err != nil {
			if s.cfg.OnErrorStop {
				return errors.WithMessagef(err, "line %d", n)
			}
			logger.Warn("line %d: %v", n, err)
		}
	}
	return scanner.Err()
}

func historyFile() string {
	return filepath.Join(config.DefaultLocation(), "history")
}

// Run starts the interactive shell and returns when the user quits.
func (s *Session) Run() error {
	history, err := NewHistory(historyFile(), s.cfg.MaxHistory)
	if err != nil {
		return err
	}
	defer func() {
		if err := history.Persist(); err != nil {
			logger.Warn("save history: %v", err)
		}
	}()

	if !s.cfg.LessChatty {
		fmt.Fprintf(s.out, "%s\n", version.Short())
		fmt.Fprintln(s.out, `Type "help" for more information.`)
		utils.PrintColumns(s.out, OperationNames())
		fmt.Fprintln(s.out)
	}

	cc := &Completer{ops: s.ops}
	p := prompt.New(dummyExecutor,
		cc.Complete(),
		prompt.OptionTitle(version.Name),
		prompt.OptionHistory(history.Records()),
		prompt.OptionInputTextColor(prompt.Yellow),
		prompt.OptionLivePrefix(s.cfg.LivePrompt(s.list.Len)),
	)

	for !s.quit {
		in, err := p.Input()
		if err != nil {
			if errors.Is(err, prompt.ErrQuit) {
				return nil
			}
			return err
		}
		history.Add(in)
		if err = s.Exec(in); err != nil {
			logger.Error("%v", err)
		}
	}
	return nil
}
