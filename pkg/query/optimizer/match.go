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

package optimizer

import (
	"github.com/leungyukshing/eva/pkg/query/logical"
	"github.com/leungyukshing/eva/pkg/query/optimizer/memo"
)

func matchTag(tag, op logical.OpType) bool {
	return tag == OpAny || tag == op
}

// TopMatch is the cheap single-level check: it only compares the node's
// operator tag against the pattern's root tag, with the same wildcard
// semantics as DeepMatch. The driver uses it to filter rules before paying
// for a full match.
func TopMatch(p *Pattern, op logical.Operator) bool {
	return matchTag(p.op, op.Type())
}

// DeepMatch reports whether the memoized subtree rooted at group id
// structurally matches p. A group without an expression is a plain
// non-match: a not-yet-explored subtree matches nothing, not even a
// wildcard.
func DeepMatch(p *Pattern, id memo.GroupID, ctx *Context) bool {
	g := ctx.Memo().Group(id)
	if g == nil {
		return false
	}
	expr := g.LogicalExpr()
	if expr == nil {
		return false
	}
	if !matchTag(p.op, expr.Op.Type()) {
		return false
	}
	if len(p.children) == 0 {
		// a leaf pattern anchors here without descending
		return true
	}
	if len(expr.Children) != len(p.children) {
		return false
	}
	for i, child := range p.children {
		if !DeepMatch(child, expr.Children[i], ctx) {
			return false
		}
	}
	return true
}
