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
	"os"
	"sync"

	"seqlist/internal/utils"
	"seqlist/pkg/seqlist"

	"github.com/vimiix/pkg/file"
)

const MaxHistory = 1000

// History keeps the most recent input lines, oldest first.
type History struct {
	mu      sync.Mutex
	path    string
	max     int
	records *seqlist.List[string]
}

// NewHistory returns a history bounded to n lines, loaded from path when
// the file exists. An empty path keeps the history in memory only.
func NewHistory(path string, n int) (*History, error) {
	if n <= 0 {
		n = MaxHistory
	}
	h := &History{
		path:    path,
		max:     n,
		records: seqlist.New[string](),
	}
	if err := h.loadRecords(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *History) Records() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.records.Values()
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.records.Len()
}

func (h *History) loadRecords() error {
	if h.path == "" || !file.Exists(h.path) {
		return nil
	}
	f, err := os.Open(h.path)
	if err != nil {
		return err
	}
	defer f.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.add(scanner.Text())
	}
	return scanner.Err()
}

// Add records s, dropping the oldest line once the bound is reached.
// Blank lines are not recorded.
func (h *History) Add(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.add(s)
}

func (h *History) add(s string) {
	if utils.EmptyStr(s) {
		return
	}
	_ = h.records.Push(s)
	for h.records.Len() > h.max {
		h.records.Shift()
	}
}

func (h *History) Persist() error {
	if h.path == "" {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := file.EnsureDirExists(h.path); err != nil {
		return err
	}
	f, err := os.Create(h.path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for s := range h.records.All() {
		_, _ = w.WriteString(s + "\n")
	}
	return w.Flush()
}
