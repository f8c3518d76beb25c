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
	"strings"

	"seqlist/internal/orderedmap"

	"github.com/vimiix/go-prompt"
)

// Completer suggests operation names for the first word of a line and
// after "help".
type Completer struct {
	ops *orderedmap.OrderedMap[string, *Operation]
}

func (c *Completer) Complete() prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		return c.suggest(d.TextBeforeCursor())
	}
}

func (c *Completer) operationSuggestions(prefix string) []prompt.Suggest {
	rs := make([]prompt.Suggest, 0, c.ops.Len())
	c.ops.Range(func(name string, op *Operation) {
		rs = append(rs, prompt.Suggest{Text: name, Description: op.Usage})
	})
	return prompt.FilterHasPrefix(rs, prefix, true)
}

func (c *Completer) suggest(preText string) []prompt.Suggest {
	if strings.TrimSpace(preText) == "" {
		return nil
	}
	words := strings.Fields(preText)
	endsWithSpace := strings.HasSuffix(preText, " ")

	switch {
	case len(words) == 1 && !endsWithSpace:
		return c.operationSuggestions(words[0])
	case strings.EqualFold(words[0], "help") && len(words) == 1:
		return c.operationSuggestions("")
	case strings.EqualFold(words[0], "help") && len(words) == 2 && !endsWithSpace:
		return c.operationSuggestions(words[1])
	}
	return nil
}
