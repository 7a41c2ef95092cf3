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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/leungyukshing/eva/pkg/query/logical"
)

func TestFilterPushdownIdempotence(t *testing.T) {
	ctx := newTestContext()
	rule := newEmbedFilterIntoAccess()
	pred := newTestPredicate()
	id := ctx.Memo().Add(logical.NewFilter(pred, newTestAccess("videos")))

	require.True(t, DeepMatch(rule.Pattern(), id, ctx))
	require.True(t, rule.Check(id, ctx))

	after, err := rule.Apply(ctx.Memo().Extract(id), ctx)
	require.NoError(t, err)
	access, ok := after.(*logical.Access)
	require.True(t, ok)
	require.True(t, access.Predicate.Equal(pred))

	// once pushed down there is no filter node left to match
	ctx.Memo().Replace(id, after)
	require.False(t, DeepMatch(rule.Pattern(), id, ctx))
}

func TestProjectPushdownMovesColumns(t *testing.T) {
	ctx := newTestContext()
	rule := newEmbedProjectIntoAccess()
	cols := []logical.Expr{
		logical.NewColumnRef("videos", "id"),
		logical.NewColumnRef("videos", "frame"),
	}
	id := ctx.Memo().Add(logical.NewProject(cols, newTestAccess("videos")))

	require.True(t, DeepMatch(rule.Pattern(), id, ctx))
	after, err := rule.Apply(ctx.Memo().Extract(id), ctx)
	require.NoError(t, err)

	access, ok := after.(*logical.Access)
	require.True(t, ok)
	require.True(t, logical.ExprsEqual(cols, access.Projection))
	require.Nil(t, access.Predicate)
}

func TestPushdownsComposeWithoutOverwriting(t *testing.T) {
	filterRule := newEmbedFilterIntoAccess()
	projectRule := newEmbedProjectIntoAccess()
	ctx := newTestContext()

	pred := newTestPredicate()
	cols := []logical.Expr{logical.NewColumnRef("videos", "id")}
	tree := logical.NewProject(cols, logical.NewFilter(pred, newTestAccess("videos")))

	inner, err := filterRule.Apply(tree.Input, ctx)
	require.NoError(t, err)
	outer, err := projectRule.Apply(logical.NewProject(cols, inner), ctx)
	require.NoError(t, err)

	access, ok := outer.(*logical.Access)
	require.True(t, ok)
	require.True(t, access.Predicate.Equal(pred), "projection pushdown must keep the predicate slot")
	require.True(t, logical.ExprsEqual(cols, access.Projection))
}

func TestRewriteDoesNotMutateTheCandidate(t *testing.T) {
	ctx := newTestContext()
	rule := newEmbedFilterIntoAccess()
	access := newTestAccess("videos")
	filter := logical.NewFilter(newTestPredicate(), access)

	_, err := rule.Apply(filter, ctx)
	require.NoError(t, err)

	// the shared access operator must stay untouched for other memo
	// expressions still referencing it
	require.Nil(t, access.Predicate)
	require.Empty(t, access.Projection)
	require.Equal(t, logical.OpAccess, filter.Input.Type())
}

func TestApplyRejectsMalformedCandidates(t *testing.T) {
	ctx := newTestContext()
	tests := []struct {
		name   string
		rule   RewriteRule
		before logical.Operator
	}{
		{
			name:   "wrong root",
			rule:   newEmbedFilterIntoAccess(),
			before: newTestAccess("videos"),
		},
		{
			name:   "wrong child",
			rule:   newEmbedFilterIntoAccess(),
			before: logical.NewFilter(newTestPredicate(), logical.Dummy{}),
		},
		{
			name:   "project over non-access",
			rule:   newEmbedProjectIntoAccess(),
			before: logical.NewProject(nil, logical.Dummy{}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rule.Apply(tt.before, ctx)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformedCandidate))
		})
	}
}
