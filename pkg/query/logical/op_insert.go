// Copyright 2018-2024 EVA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logical

import (
	"fmt"

	"github.com/leungyukshing/eva/pkg/catalog"
)

var _ Operator = (*Insert)(nil)

// Insert appends the given values to a table. Columns and Values are aligned
// positionally.
type Insert struct {
	Table   catalog.TableRef
	Columns []Expr
	Values  []Expr
}

// NewInsert creates an Insert operator.
func NewInsert(table catalog.TableRef, columns, values []Expr) *Insert {
	return &Insert{Table: table, Columns: columns, Values: values}
}

// Type implements Operator.
func (i *Insert) Type() OpType {
	return OpInsert
}

// Children implements Operator.
func (i *Insert) Children() []Operator {
	return nil
}

// String implements fmt.Stringer.
func (i *Insert) String() string {
	return fmt.Sprintf("Insert(%s, columns=%d, values=%d)", i.Table, len(i.Columns), len(i.Values))
}
