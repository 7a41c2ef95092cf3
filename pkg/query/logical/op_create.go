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

var _ Operator = (*CreateTable)(nil)

// CreateTable registers a new table with the given column schema.
type CreateTable struct {
	Table       catalog.TableRef
	Columns     []catalog.Column
	IfNotExists bool
}

// NewCreateTable creates a CreateTable operator.
func NewCreateTable(table catalog.TableRef, columns []catalog.Column, ifNotExists bool) *CreateTable {
	return &CreateTable{Table: table, Columns: columns, IfNotExists: ifNotExists}
}

// Type implements Operator.
func (c *CreateTable) Type() OpType {
	return OpCreateTable
}

// Children implements Operator.
func (c *CreateTable) Children() []Operator {
	return nil
}

// String implements fmt.Stringer.
func (c *CreateTable) String() string {
	return fmt.Sprintf("CreateTable(%s, columns=%d, ifNotExists=%t)", c.Table, len(c.Columns), c.IfNotExists)
}
