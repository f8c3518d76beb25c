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

package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"seqlist/internal/logger"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var getWindowSize = term.GetSize

// Chunks splits vals into rows that fit the width of the terminal on
// stdin, or 80 columns when it cannot be determined.
func Chunks(vals []string) [][]string {
	w, _, err := getWindowSize(int(os.Stdin.Fd()))
	if err != nil {
		logger.Debug("failed to get terminal size, set to 80 default: %s", err)
		w = 80
	}
	return ChunksWidth(vals, w)
}

// ChunksWidth splits vals into rows of equal column count so that each
// row fits in width display cells, two cells of padding per column.
func ChunksWidth(vals []string, width int) [][]string {
	var max int
	for _, v := range vals {
		if n := runewidth.StringWidth(v); n > max {
			max = n
		}
	}

	cols := width / (max + 2)
	if cols == 0 {
		cols = 1
	}

	var rs [][]string
	for i := 0; i < len(vals); i += cols {
		end := i + cols
		if end >= len(vals) {
			end = len(vals)
		}
		rs = append(rs, vals[i:end])
	}
	return rs
}

// PrintColumns writes rows as left aligned columns padded to the widest value.
func PrintColumns(w io.Writer, rows [][]string) {
	var max int
	for _, row := range rows {
		for _, v := range row {
			if n := runewidth.StringWidth(v); n > max {
				max = n
			}
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = runewidth.FillRight(v, max)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// PrintError prints an error message to the standard error stream in red color.
func PrintError(err any) {
	fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
}

// Getenv returns the value of the first of keys that is set in the
// environment.
func Getenv(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
	}
	return "", false
}

// Grab grabs i from r, or returns 0 if i >= end.
func Grab(r []rune, i, end int) rune {
	if i < end {
		return r[i]
	}
	return 0
}

// EmptyStr reports whether s has no printable, non-space character.
func EmptyStr(s string) bool {
	i := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPrint(r) && !unicode.IsSpace(r)
	})
	return i == -1
}
