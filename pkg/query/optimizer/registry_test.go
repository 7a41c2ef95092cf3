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

	"github.com/stretchr/testify/require"

	"github.com/leungyukshing/eva/pkg/query/logical"
	"github.com/leungyukshing/eva/pkg/query/physical"
)

func TestRegistryPartitionsRulesByKind(t *testing.T) {
	r := NewRegistry()
	require.NotEmpty(t, r.RewriteRules())
	require.NotEmpty(t, r.ImplementationRules())

	for _, rule := range r.RewriteRules() {
		require.Equal(t, KindRewrite, rule.Kind(), "%s sits in the rewrite collection", rule.ID())
	}
	for _, rule := range r.ImplementationRules() {
		require.Equal(t, KindImplementation, rule.Kind(), "%s sits in the implementation collection", rule.ID())
	}
}

func TestRegistryValidates(t *testing.T) {
	require.NoError(t, NewRegistry().Validate())
}

func TestValidateFlagsBrokenRegistrations(t *testing.T) {
	scan := physical.NewStoragePlan(nil)

	noPattern := &stubImplementation{baseRule: baseRule{
		id:   IDAccessToSeqScan,
		kind: KindImplementation,
	}, plan: scan}
	twoBits := &stubImplementation{baseRule: baseRule{
		id:      IDAccessToSeqScan | IDInsertToPhysical,
		kind:    KindImplementation,
		pattern: NewPattern(logical.OpAccess, AnyOperator()),
	}, plan: scan}

	r := &Registry{implementation: []ImplementationRule{noPattern, twoBits, noPattern}}
	err := r.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "has no pattern")
	require.Contains(t, err.Error(), "not a single bit")
	require.Contains(t, err.Error(), "registered twice")
}

func TestValidateFlagsKindCollectionMismatch(t *testing.T) {
	misfiled := &stubImplementation{baseRule: baseRule{
		id:      IDAccessToSeqScan,
		kind:    KindRewrite,
		pattern: NewPattern(logical.OpAccess, AnyOperator()),
	}}
	r := &Registry{implementation: []ImplementationRule{misfiled}}
	err := r.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "registered as implementation")
}

func TestRegistryRuleIDsAreDistinctSingleBits(t *testing.T) {
	r := NewRegistry()
	var mask Mask
	all := make([]Rule, 0)
	for _, rule := range r.RewriteRules() {
		all = append(all, rule)
	}
	for _, rule := range r.ImplementationRules() {
		all = append(all, rule)
	}
	for _, rule := range all {
		require.False(t, mask.Contains(rule.ID()), "%s reuses a bit", rule.ID())
		mask |= Mask(rule.ID())
	}
}

func TestSubsetSelectsByMask(t *testing.T) {
	r := NewRegistry()
	sub := r.Subset(NewMask(IDEmbedFilterIntoAccess, IDAccessToSeqScan))

	require.Len(t, sub.RewriteRules(), 1)
	require.Equal(t, IDEmbedFilterIntoAccess, sub.RewriteRules()[0].ID())
	require.Len(t, sub.ImplementationRules(), 1)
	require.Equal(t, IDAccessToSeqScan, sub.ImplementationRules()[0].ID())

	// the full registry is untouched
	require.Len(t, r.RewriteRules(), 2)
	require.Len(t, r.ImplementationRules(), 5)

	require.Len(t, r.Subset(MaskAll).ImplementationRules(), 5)
	require.Empty(t, r.Subset(NewMask()).RewriteRules())
}
