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
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"seqlist/internal/errdef"
	"seqlist/internal/utils"

	"github.com/pkg/errors"
)

// isSpaceOrControl is a special test for either a space or a control (ie, \b)
// characters.
func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// findSpace finds first space rune in r, returning end if not found.
func findSpace(r []rune, i, end int) int {
	for ; i < end; i++ {
		if isSpaceOrControl(r[i]) {
			return i
		}
	}
	return i
}

// findNonSpace finds first non space rune in r, returning end if not found.
func findNonSpace(r []rune, i, end int) (int, bool) {
	for ; i < end; i++ {
		if !isSpaceOrControl(r[i]) {
			return i, true
		}
	}
	return i, false
}

// readString seeks to the closing quote of a string starting after the
// opening quote at i, returning the position and whether it was found.
func readString(r []rune, i, end int, quote rune) (int, bool) {
	var c, next rune
	for ; i < end; i++ {
		c, next = r[i], utils.Grab(r, i+1, end)
		switch {
		case quote != '`' && c == '\\':
			i++
		case quote == '\'' && c == '\'' && next == '\'':
			i++
		case c == quote:
			return i, true
		}
	}
	return end, false
}

// SplitArgs splits an operation line into words. A word starting with a
// single, double or back quote runs to the matching quote and is unquoted.
func SplitArgs(line string) ([]string, error) {
	var args []string
	r := []rune(line)
	end := len(r)
	i, ok := findNonSpace(r, 0, end)
	for ok {
		switch c := r[i]; c {
		case '\'', '"', '`':
			pos, found := readString(r, i+1, end, c)
			if !found {
				return nil, errdef.ErrUnterminatedQuotedString
			}
			s, err := Dequote(string(r[i:pos+1]), byte(c))
			if err != nil {
				return nil, err
			}
			args = append(args, s)
			i = pos + 1
		default:
			pos := findSpace(r, i, end)
			args = append(args, string(r[i:pos]))
			i = pos
		}
		i, ok = findNonSpace(r, i, end)
	}
	return args, nil
}

var cleanDoubleRE = regexp.MustCompile(`(^|[^\\])''`)

// Dequote unquotes s, which must start and end with quote. Backquoted
// text is taken as is, double quotes follow Go string literal rules and
// single quotes allow '' as an escaped quote.
func Dequote(s string, quote byte) (string, error) {
	if len(s) < 2 || s[0] != quote || s[len(s)-1] != quote {
		return "", errdef.ErrUnterminatedQuotedString
	}
	switch quote {
	case '`':
		return s[1 : len(s)-1], nil
	case '"':
		v, err := strconv.Unquote(s)
		if err != nil {
			return "", errors.Wrapf(errdef.ErrInvalidQuotedString, "%s", s)
		}
		return v, nil
	}

	body := cleanDoubleRE.ReplaceAllString(s[1:len(s)-1], "$1\\'")
	var sb strings.Builder
	for len(body) > 0 {
		c, _, rest, err := strconv.UnquoteChar(body, '\'')
		if err != nil {
			return "", errors.Wrapf(errdef.ErrInvalidQuotedString, "%s", s)
		}
		sb.WriteRune(c)
		body = rest
	}
	return sb.String(), nil
}
