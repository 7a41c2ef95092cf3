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
	"strings"

	"github.com/leungyukshing/eva/pkg/catalog"
)

var _ Operator = (*Access)(nil)

// Access reads rows of a materialized dataset. Predicate and Projection start
// empty; the pushdown rules fold the enclosing Filter and Project operators
// into these two slots, one rule per slot.
type Access struct {
	Metadata   *catalog.TableMetadata
	Predicate  Expr
	Table      catalog.TableRef
	Projection []Expr
}

// NewAccess creates an Access over the given dataset.
func NewAccess(table catalog.TableRef, metadata *catalog.TableMetadata) *Access {
	return &Access{Table: table, Metadata: metadata}
}

// Type implements Operator.
func (a *Access) Type() OpType {
	return OpAccess
}

// Children implements Operator.
func (a *Access) Children() []Operator {
	return nil
}

// WithPredicate returns a copy of a carrying the scan-time predicate.
// The receiver is left untouched so that other memo expressions referencing
// it stay valid.
func (a *Access) WithPredicate(predicate Expr) *Access {
	after := *a
	after.Predicate = predicate
	return &after
}

// WithProjection returns a copy of a carrying the output column list.
func (a *Access) WithProjection(projection []Expr) *Access {
	after := *a
	after.Projection = projection
	return &after
}

// String implements fmt.Stringer.
func (a *Access) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Access(%s", a.Table)
	if a.Predicate != nil {
		fmt.Fprintf(&b, ", predicate=%s", a.Predicate)
	}
	if len(a.Projection) > 0 {
		cols := make([]string, 0, len(a.Projection))
		for _, p := range a.Projection {
			cols = append(cols, p.String())
		}
		fmt.Fprintf(&b, ", projection=[%s]", strings.Join(cols, ", "))
	}
	b.WriteString(")")
	return b.String()
}
