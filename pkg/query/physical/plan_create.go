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

package physical

import (
	"fmt"

	"github.com/leungyukshing/eva/pkg/catalog"
)

var _ Plan = (*CreateTablePlan)(nil)

// CreateTablePlan registers a new table in the catalog at execution time.
type CreateTablePlan struct {
	Table       catalog.TableRef
	Columns     []catalog.Column
	IfNotExists bool
}

// NewCreateTablePlan creates a CreateTablePlan.
func NewCreateTablePlan(table catalog.TableRef, columns []catalog.Column, ifNotExists bool) *CreateTablePlan {
	return &CreateTablePlan{Table: table, Columns: columns, IfNotExists: ifNotExists}
}

// Type implements Plan.
func (c *CreateTablePlan) Type() PlanType {
	return PlanCreateTable
}

// Children implements Plan.
func (c *CreateTablePlan) Children() []Plan {
	return nil
}

// String implements fmt.Stringer.
func (c *CreateTablePlan) String() string {
	return fmt.Sprintf("CreateTablePlan(%s, columns=%d, ifNotExists=%t)", c.Table, len(c.Columns), c.IfNotExists)
}
