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
	"github.com/leungyukshing/eva/pkg/query/logical"
)

var _ Plan = (*InsertPlan)(nil)

// InsertPlan appends values to a table at execution time.
type InsertPlan struct {
	Table   catalog.TableRef
	Columns []logical.Expr
	Values  []logical.Expr
}

// NewInsertPlan creates an InsertPlan.
func NewInsertPlan(table catalog.TableRef, columns, values []logical.Expr) *InsertPlan {
	return &InsertPlan{Table: table, Columns: columns, Values: values}
}

// Type implements Plan.
func (i *InsertPlan) Type() PlanType {
	return PlanInsert
}

// Children implements Plan.
func (i *InsertPlan) Children() []Plan {
	return nil
}

// String implements fmt.Stringer.
func (i *InsertPlan) String() string {
	return fmt.Sprintf("InsertPlan(%s, columns=%d, values=%d)", i.Table, len(i.Columns), len(i.Values))
}
