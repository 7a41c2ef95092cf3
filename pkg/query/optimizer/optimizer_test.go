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

package optimizer_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/leungyukshing/eva/pkg/catalog"
	"github.com/leungyukshing/eva/pkg/query/logical"
	"github.com/leungyukshing/eva/pkg/query/optimizer"
	"github.com/leungyukshing/eva/pkg/query/physical"
)

func videoMetadata() *catalog.TableMetadata {
	ref := catalog.TableRef{Database: "default", Name: "videos"}
	return &catalog.TableMetadata{
		Ref: ref,
		Columns: []catalog.Column{
			{Name: "id", Type: catalog.ColumnInteger},
			{Name: "label", Type: catalog.ColumnText},
			{Name: "frame", Type: catalog.ColumnNdarray, Dimensions: []int{1080, 1920, 3}},
		},
	}
}

func TestOptimizeSelectPushesBothSlotsIntoTheScan(t *testing.T) {
	md := videoMetadata()
	pred := logical.Eq(logical.NewColumnRef("videos", "label"), logical.NewStrLiteral("car"))
	cols := []logical.Expr{logical.NewColumnRef("videos", "frame")}
	tree := logical.NewProject(cols, logical.NewFilter(pred, logical.NewAccess(md.Ref, md)))

	plan, err := optimizer.New(optimizer.NewRegistry()).Optimize(tree)
	require.NoError(t, err)

	scan, ok := plan.(*physical.SeqScanPlan)
	require.True(t, ok, "expected SeqScanPlan, got %T", plan)
	require.True(t, scan.Predicate.Equal(pred))
	require.True(t, logical.ExprsEqual(cols, scan.Projection))

	children := scan.Children()
	require.Len(t, children, 1)
	storage, ok := children[0].(*physical.StoragePlan)
	require.True(t, ok)
	require.Same(t, md, storage.Metadata)
}

func TestOptimizeBareScan(t *testing.T) {
	md := videoMetadata()
	plan, err := optimizer.New(optimizer.NewRegistry()).Optimize(logical.NewAccess(md.Ref, md))
	require.NoError(t, err)

	scan, ok := plan.(*physical.SeqScanPlan)
	require.True(t, ok)
	require.Nil(t, scan.Predicate)
	require.Empty(t, scan.Projection)
}

func TestOptimizeDDLAndDML(t *testing.T) {
	md := videoMetadata()
	tests := []struct {
		name string
		tree logical.Operator
		want physical.PlanType
	}{
		{
			name: "create table",
			tree: logical.NewCreateTable(md.Ref, md.Columns, true),
			want: physical.PlanCreateTable,
		},
		{
			name: "create udf",
			tree: logical.NewCreateUDF("FastRCNN", false, nil, nil, "udfs/fastrcnn.py", "detection"),
			want: physical.PlanCreateUDF,
		},
		{
			name: "insert",
			tree: logical.NewInsert(md.Ref,
				[]logical.Expr{logical.NewColumnRef("videos", "id")},
				[]logical.Expr{logical.NewInt64Literal(1)}),
			want: physical.PlanInsert,
		},
		{
			name: "load data",
			tree: logical.NewLoadData(md, "data/ua_detrac.mp4"),
			want: physical.PlanLoadData,
		},
	}
	o := optimizer.New(optimizer.NewRegistry())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := o.Optimize(tt.tree)
			require.NoError(t, err)
			require.Equal(t, tt.want, plan.Type())
			require.Empty(t, plan.Children())
		})
	}
}

func TestOptimizeWithoutImplementationRuleFails(t *testing.T) {
	// scanning is impossible when the access implementation is masked out
	registry := optimizer.NewRegistry().Subset(
		optimizer.NewMask(optimizer.IDEmbedFilterIntoAccess, optimizer.IDEmbedProjectIntoAccess),
	)
	md := videoMetadata()
	_, err := optimizer.New(registry).Optimize(logical.NewAccess(md.Ref, md))
	require.Error(t, err)
	require.True(t, errors.Is(err, optimizer.ErrNoImplementationRule))
}

func TestOptimizeUnimplementableShapeFails(t *testing.T) {
	// with the filter pushdown masked out, the filter survives the rewrite
	// phase and no implementation rule anchors on it
	registry := optimizer.NewRegistry().Subset(
		optimizer.NewMask(optimizer.IDAccessToSeqScan),
	)
	md := videoMetadata()
	pred := logical.Eq(logical.NewColumnRef("videos", "id"), logical.NewInt64Literal(1))
	_, err := optimizer.New(registry).Optimize(logical.NewFilter(pred, logical.NewAccess(md.Ref, md)))
	require.Error(t, err)
	require.True(t, errors.Is(err, optimizer.ErrNoImplementationRule))
}
