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
	"fmt"
	"strconv"
	"strings"

	"seqlist/internal/errdef"
	"seqlist/internal/orderedmap"
	"seqlist/internal/utils"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

const noneValue = "(none)"

type OpHandler func(s *Session, args []string) error

// Operation is one command understood by the shell.
type Operation struct {
	Name    string
	Args    string
	Usage   string
	MinArgs int
	// MaxArgs < 0 means no upper bound.
	MaxArgs int
	Handler OpHandler
}

func (o *Operation) Syntax() string {
	if o.Args == "" {
		return o.Name
	}
	return o.Name + " " + o.Args
}

func (o *Operation) checkArgs(args []string) error {
	if len(args) < o.MinArgs || (o.MaxArgs >= 0 && len(args) > o.MaxArgs) {
		return errors.Wrapf(errdef.ErrWrongArgCount, "usage: %s", o.Syntax())
	}
	return nil
}

func newOperations() *orderedmap.OrderedMap[string, *Operation] {
	ops := orderedmap.NewOrderedMap[string, *Operation]()
	for _, op := range []*Operation{
		{Name: "push", Args: "VALUE", Usage: "Append a value to the end of the list", MinArgs: 1, MaxArgs: 1, Handler: opPush},
		{Name: "pop", Usage: "Remove and show the last value", MaxArgs: 0, Handler: opPop},
		{Name: "unshift", Args: "VALUE", Usage: "Prepend a value to the start of the list", MinArgs: 1, MaxArgs: 1, Handler: opUnshift},
		{Name: "shift", Usage: "Remove and show the first value", MaxArgs: 0, Handler: opShift},
		{Name: "insert", Args: "INDEX VALUE", Usage: "Insert a value at an index", MinArgs: 2, MaxArgs: 2, Handler: opInsert},
		{Name: "insert-all", Args: "INDEX VALUE...", Usage: "Insert values at consecutive indexes", MinArgs: 1, MaxArgs: -1, Handler: opInsertAll},
		{Name: "remove", Args: "INDEX", Usage: "Remove and show the value at an index", MinArgs: 1, MaxArgs: 1, Handler: opRemove},
		{Name: "get", Args: "INDEX", Usage: "Show the value at an index", MinArgs: 1, MaxArgs: 1, Handler: opGet},
		{Name: "first", Usage: "Show the first value", MaxArgs: 0, Handler: opFirst},
		{Name: "last", Usage: "Show the last value", MaxArgs: 0, Handler: opLast},
		{Name: "length", Usage: "Show the number of values", MaxArgs: 0, Handler: opLength},
		{Name: "print", Usage: "Show all values as a table", MaxArgs: 0, Handler: opPrint},
		{Name: "clear", Usage: "Remove all values", MaxArgs: 0, Handler: opClear},
		{Name: "help", Args: "[OPERATION]", Usage: "Show operations or the usage of one", MaxArgs: 1, Handler: opHelp},
		{Name: "quit", Usage: "Leave the shell", MaxArgs: 0, Handler: opQuit},
		{Name: "exit", Usage: "Leave the shell", MaxArgs: 0, Handler: opQuit},
	} {
		ops.Set(op.Name, op)
	}
	return ops
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(errdef.ErrInvalidIndex, "%q", s)
	}
	return i, nil
}

func opPush(s *Session, args []string) error {
	if err := s.list.Push(args[0]); err != nil {
		return err
	}
	s.println("OK")
	return nil
}

func opPop(s *Session, _ []string) error {
	s.printValue(s.list.Pop())
	return nil
}

func opUnshift(s *Session, args []string) error {
	if err := s.list.Unshift(args[0]); err != nil {
		return err
	}
	s.println("OK")
	return nil
}

func opShift(s *Session, _ []string) error {
	s.printValue(s.list.Shift())
	return nil
}

func opInsert(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	if err = s.list.Insert(i, args[1]); err != nil {
		return err
	}
	s.println("OK")
	return nil
}

func opInsertAll(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	n := s.list.InsertAll(i, args[1:]...)
	s.println(fmt.Sprintf("INSERT %d", n))
	return nil
}

func opRemove(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	s.printValue(s.list.Remove(i))
	return nil
}

func opGet(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	s.printValue(s.list.Get(i))
	return nil
}

func opFirst(s *Session, _ []string) error {
	s.printValue(s.list.First())
	return nil
}

func opLast(s *Session, _ []string) error {
	s.printValue(s.list.Last())
	return nil
}

func opLength(s *Session, _ []string) error {
	s.println(strconv.Itoa(s.list.Len()))
	return nil
}

func opPrint(s *Session, _ []string) error {
	return s.render()
}

func opClear(s *Session, _ []string) error {
	s.list.Clear()
	s.println("OK")
	return nil
}

func opHelp(s *Session, args []string) error {
	if len(args) == 1 {
		op, ok := s.ops.Get(strings.ToLower(args[0]))
		if !ok {
			return errors.Wrapf(errdef.ErrUnknownOperation, "%q", args[0])
		}
		fmt.Fprintf(s.out, "%s\n  %s\n", color.GreenString(op.Syntax()), op.Usage)
		return nil
	}

	for _, op := range s.ops.Values() {
		fmt.Fprintf(s.out, "%-30s: %s\n", color.GreenString(op.Syntax()), op.Usage)
	}
	return nil
}

func opQuit(s *Session, _ []string) error {
	s.quit = true
	return nil
}

// OperationNames returns the operation names in registration order, laid
// out in columns that fit the terminal.
func OperationNames() [][]string {
	return utils.Chunks(newOperations().Keys())
}
