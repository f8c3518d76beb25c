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

	"github.com/pkg/errors"
	"github.com/xo/tblfmt"
)

var listColumns = []string{"index", "value"}

// listResultSet exposes a snapshot of list values as a single result set
// with an index and a value column.
type listResultSet struct {
	values []string
	pos    int
}

func newListResultSet(values []string) *listResultSet {
	return &listResultSet{values: values, pos: -1}
}

func (rs *listResultSet) Columns() ([]string, error) {
	return listColumns, nil
}

func (rs *listResultSet) Next() bool {
	if rs.pos < len(rs.values) {
		rs.pos++
	}
	return rs.pos < len(rs.values)
}

func (rs *listResultSet) Scan(dest ...interface{}) error {
	if rs.pos < 0 || rs.pos >= len(rs.values) {
		return errors.New("scan called without a current row")
	}
	if len(dest) != len(listColumns) {
		return errors.Errorf("expected %d destinations, got %d", len(listColumns), len(dest))
	}
	row := []interface{}{int64(rs.pos), rs.values[rs.pos]}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *interface{}:
			*d = v
		case *string:
			*d = fmt.Sprint(v)
		default:
			return errors.Errorf("unsupported scan destination %T", dest[i])
		}
	}
	return nil
}

func (rs *listResultSet) Err() error {
	return nil
}

func (rs *listResultSet) Close() error {
	return nil
}

func (rs *listResultSet) NextResultSet() bool {
	return false
}

func (s *Session) render() error {
	resultSet := newListResultSet(s.list.Values())
	return tblfmt.EncodeAll(s.out, resultSet, s.cfg.PrintConfig())
}
