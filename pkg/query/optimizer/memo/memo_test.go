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

package memo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leungyukshing/eva/pkg/catalog"
	"github.com/leungyukshing/eva/pkg/query/logical"
	"github.com/leungyukshing/eva/pkg/query/optimizer/memo"
)

func newTestAccess(name string) *logical.Access {
	ref := catalog.TableRef{Name: name}
	return logical.NewAccess(ref, &catalog.TableMetadata{Ref: ref})
}

func TestAddGivesLeavesADummyChild(t *testing.T) {
	m := memo.New()
	id := m.Add(newTestAccess("videos"))

	expr := m.Group(id).LogicalExpr()
	require.NotNil(t, expr)
	require.Equal(t, logical.OpAccess, expr.Op.Type())
	require.Len(t, expr.Children, 1)

	child := m.Group(expr.Children[0]).LogicalExpr()
	require.NotNil(t, child)
	require.Equal(t, logical.OpDummy, child.Op.Type())
	// the dummy placeholder itself stays a true leaf
	require.Empty(t, child.Children)
}

func TestAddInternsIdenticalSubtrees(t *testing.T) {
	m := memo.New()
	first := m.Add(newTestAccess("videos"))
	second := m.Add(newTestAccess("videos"))
	require.Equal(t, first, second)

	other := m.Add(newTestAccess("frames"))
	require.NotEqual(t, first, other)
}

func TestAddKeepsDistinctAttributeStatesApart(t *testing.T) {
	m := memo.New()
	bare := m.Add(newTestAccess("videos"))
	filtered := m.Add(newTestAccess("videos").WithPredicate(
		logical.Eq(logical.NewColumnRef("videos", "id"), logical.NewInt64Literal(4)),
	))
	require.NotEqual(t, bare, filtered)
}

func TestReserveGroupHasNoExpression(t *testing.T) {
	m := memo.New()
	id := m.Reserve()
	g := m.Group(id)
	require.NotNil(t, g)
	require.Nil(t, g.LogicalExpr())
}

func TestGroupUnknownIDIsNil(t *testing.T) {
	m := memo.New()
	require.Nil(t, m.Group(42))
}

func TestExtractRebuildsTheTree(t *testing.T) {
	m := memo.New()
	access := newTestAccess("videos")
	pred := logical.Gt(logical.NewColumnRef("videos", "id"), logical.NewInt64Literal(10))
	root := m.Add(logical.NewProject(
		[]logical.Expr{logical.NewColumnRef("videos", "frame")},
		logical.NewFilter(pred, access),
	))

	got := m.Extract(root)
	require.NotNil(t, got)
	project, ok := got.(*logical.Project)
	require.True(t, ok)
	filter, ok := project.Input.(*logical.Filter)
	require.True(t, ok)
	require.True(t, filter.Predicate.Equal(pred))
	require.Equal(t, logical.OpAccess, filter.Input.Type())
}

func TestReplaceSwapsTheGroupExpression(t *testing.T) {
	m := memo.New()
	access := newTestAccess("videos")
	pred := logical.Eq(logical.NewColumnRef("videos", "label"), logical.NewStrLiteral("car"))
	root := m.Add(logical.NewFilter(pred, access))

	m.Replace(root, access.WithPredicate(pred))

	expr := m.Group(root).LogicalExpr()
	require.Equal(t, logical.OpAccess, expr.Op.Type())
	got, ok := m.Extract(root).(*logical.Access)
	require.True(t, ok)
	require.True(t, got.Predicate.Equal(pred))
}
