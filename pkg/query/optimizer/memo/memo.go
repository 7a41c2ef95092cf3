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

// Package memo implements the group store the exploration driver walks: each
// group stands for the set of logically equivalent expressions rooted at one
// position of the query tree. Structurally identical subtrees are interned
// into the same group. The rule engine only reads the memo through
// Group/LogicalExpr; all mutation goes through the driver.
package memo

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/leungyukshing/eva/pkg/query/logical"
)

// GroupID identifies a group inside one Memo.
type GroupID uint32

// GroupExpr is a memoized expression: an operator whose children are group
// references instead of operator nodes.
type GroupExpr struct {
	Op       logical.Operator
	Children []GroupID
}

// Group stands for a set of logically equivalent expressions. A freshly
// reserved group carries no expression yet.
type Group struct {
	expr *GroupExpr
	id   GroupID
}

// ID returns the group's identifier.
func (g *Group) ID() GroupID {
	return g.id
}

// LogicalExpr returns the group's current logical expression, or nil when the
// group has not been populated yet. A nil result is an ordinary
// "not yet explored" state, never an error.
func (g *Group) LogicalExpr() *GroupExpr {
	return g.expr
}

// Memo owns the groups of one optimization run. It is not safe for
// concurrent mutation; the driver owns it for the run's duration.
type Memo struct {
	interned map[uint64]GroupID
	groups   []*Group
}

// New creates an empty Memo.
func New() *Memo {
	return &Memo{interned: make(map[uint64]GroupID)}
}

// Group resolves a group id. It returns nil for an unknown id.
func (m *Memo) Group(id GroupID) *Group {
	if int(id) >= len(m.groups) {
		return nil
	}
	return m.groups[id]
}

// GroupCount returns the number of groups allocated so far.
func (m *Memo) GroupCount() int {
	return len(m.groups)
}

// Reserve allocates an empty group standing for a not-yet-explored subtree.
func (m *Memo) Reserve() GroupID {
	id := GroupID(len(m.groups))
	m.groups = append(m.groups, &Group{id: id})
	return id
}

// Add inserts the operator tree rooted at op, interning structurally
// identical subtrees into existing groups, and returns the root group id.
// A leaf operator other than Dummy gets a single dummy child group so that
// every memoized expression owns at least one child.
func (m *Memo) Add(op logical.Operator) GroupID {
	expr := m.buildExpr(op)
	fp := fingerprint(expr)
	if id, ok := m.interned[fp]; ok {
		return id
	}
	id := m.Reserve()
	m.groups[id].expr = expr
	m.interned[fp] = id
	return id
}

// Replace swaps the expression stored for group id with the tree rooted at
// op. Child subtrees of op are interned as usual. The previous expression's
// fingerprint is retired so it can no longer alias the group.
func (m *Memo) Replace(id GroupID, op logical.Operator) {
	g := m.groups[id]
	if g.expr != nil {
		delete(m.interned, fingerprint(g.expr))
	}
	expr := m.buildExpr(op)
	g.expr = expr
	fp := fingerprint(expr)
	if _, ok := m.interned[fp]; !ok {
		m.interned[fp] = id
	}
}

// Extract rebuilds the operator tree currently stored for group id. Dummy
// child groups are dropped; they exist only as memo placeholders.
func (m *Memo) Extract(id GroupID) logical.Operator {
	g := m.Group(id)
	if g == nil || g.expr == nil {
		return nil
	}
	switch op := g.expr.Op.(type) {
	case *logical.Filter:
		return logical.NewFilter(op.Predicate, m.Extract(g.expr.Children[0]))
	case *logical.Project:
		return logical.NewProject(op.Projection, m.Extract(g.expr.Children[0]))
	default:
		return g.expr.Op
	}
}

func (m *Memo) buildExpr(op logical.Operator) *GroupExpr {
	children := op.Children()
	ids := make([]GroupID, 0, len(children))
	for _, child := range children {
		ids = append(ids, m.Add(child))
	}
	if len(ids) == 0 && op.Type() != logical.OpDummy {
		ids = append(ids, m.Add(logical.Dummy{}))
	}
	return &GroupExpr{Op: op, Children: ids}
}

// fingerprint digests the operator's rendered attributes plus its child group
// ids. Interned child ids make the digest cover the whole subtree.
func fingerprint(expr *GroupExpr) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(expr.Op.String())
	var buf [4]byte
	for _, id := range expr.Children {
		binary.LittleEndian.PutUint32(buf[:], uint32(id))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
