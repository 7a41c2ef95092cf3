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

// Package optimizer implements the rule-based transformation engine at the
// heart of the query optimizer: structural patterns matched against memoized
// operator trees, rewrite rules that push predicates and projections into
// the access path, and implementation rules that turn logical operators into
// executable plan fragments.
package optimizer

import (
	"github.com/leungyukshing/eva/pkg/query/logical"
)

// OpAny is the wildcard operator tag: a pattern node tagged OpAny matches an
// expression of any operator type. It never appears on an operator itself.
const OpAny logical.OpType = 0xff

// Pattern is an immutable tree of operator tags describing the shape a rule
// matches. A pattern without children anchors on a single operator and
// matches any subtree below it.
type Pattern struct {
	op       logical.OpType
	children []*Pattern
}

// NewPattern builds a pattern node. The children are matched in order
// against the expression's child groups.
func NewPattern(op logical.OpType, children ...*Pattern) *Pattern {
	p := &Pattern{op: op}
	if len(children) > 0 {
		p.children = make([]*Pattern, len(children))
		copy(p.children, children)
	}
	return p
}

// AnyOperator returns a wildcard leaf pattern: it matches a subtree rooted at
// any operator, as long as the group holds some expression.
func AnyOperator() *Pattern {
	return NewPattern(OpAny)
}

// OpType returns the operator tag this node matches.
func (p *Pattern) OpType() logical.OpType {
	return p.op
}

// Children returns the child patterns. Callers must not modify the result.
func (p *Pattern) Children() []*Pattern {
	return p.children
}
