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
)

var _ Operator = (*Project)(nil)

// Project narrows its input to the listed output expressions.
type Project struct {
	Input      Operator
	Projection []Expr
}

// NewProject creates a Project over input.
func NewProject(projection []Expr, input Operator) *Project {
	return &Project{Projection: projection, Input: input}
}

// Type implements Operator.
func (p *Project) Type() OpType {
	return OpProject
}

// Children implements Operator.
func (p *Project) Children() []Operator {
	return []Operator{p.Input}
}

// String implements fmt.Stringer.
func (p *Project) String() string {
	cols := make([]string, 0, len(p.Projection))
	for _, e := range p.Projection {
		cols = append(cols, e.String())
	}
	return fmt.Sprintf("Project([%s]) <- %s", strings.Join(cols, ", "), p.Input)
}
