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
	"fmt"

	"github.com/pkg/errors"

	"github.com/leungyukshing/eva/pkg/query/logical"
	"github.com/leungyukshing/eva/pkg/query/optimizer/memo"
	"github.com/leungyukshing/eva/pkg/query/physical"
)

// ErrMalformedCandidate reports that an operator reaching Apply does not have
// the shape the rule's pattern guarantees. Apply runs only after a successful
// match, so hitting this is a programming error in the driver, and it must
// surface loudly: a silently misapplied rule corrupts query results.
var ErrMalformedCandidate = errors.New("candidate does not satisfy the rule's matched shape")

// Kind is a rule's category. It is an explicit field, not a position in some
// numeric range, so adding rules can never silently reclassify existing ones.
type Kind uint8

const (
	// KindRewrite marks rules transforming a logical operator into an
	// equivalent logical operator of a different shape.
	KindRewrite Kind = iota
	// KindImplementation marks rules transforming a logical operator into
	// executable physical plan nodes.
	KindImplementation
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindRewrite:
		return "rewrite"
	case KindImplementation:
		return "implementation"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ID identifies a rule. Every value is a distinct bit so that a caller can
// select an arbitrary subset of rules through a Mask. The bit values carry
// no ordering or category semantics; category lives in Kind.
type ID uint64

// Rule identifiers.
const (
	IDEmbedFilterIntoAccess ID = 1 << iota
	IDEmbedProjectIntoAccess
	IDCreateTableToPhysical
	IDCreateUDFToPhysical
	IDInsertToPhysical
	IDLoadDataToPhysical
	IDAccessToSeqScan
)

// String implements fmt.Stringer.
func (id ID) String() string {
	switch id {
	case IDEmbedFilterIntoAccess:
		return "embed_filter_into_access"
	case IDEmbedProjectIntoAccess:
		return "embed_project_into_access"
	case IDCreateTableToPhysical:
		return "create_table_to_physical"
	case IDCreateUDFToPhysical:
		return "create_udf_to_physical"
	case IDInsertToPhysical:
		return "insert_to_physical"
	case IDLoadDataToPhysical:
		return "load_data_to_physical"
	case IDAccessToSeqScan:
		return "access_to_seq_scan"
	default:
		return fmt.Sprintf("ID(%#x)", uint64(id))
	}
}

// Mask selects a subset of rules by their ID bits.
type Mask uint64

// MaskAll selects every rule.
const MaskAll Mask = ^Mask(0)

// NewMask builds a mask selecting exactly the given rules.
func NewMask(ids ...ID) Mask {
	var m Mask
	for _, id := range ids {
		m |= Mask(id)
	}
	return m
}

// Contains reports whether the mask selects the rule.
func (m Mask) Contains(id ID) bool {
	return m&Mask(id) != 0
}

// Promise ranks all rules, rewrite and implementation together, for conflict
// resolution: when several rules match the same group, the driver prefers
// the one with the numerically greater promise. The ranking is independent
// of Kind and is never consulted to decide applicability. Two matched rules
// with equal promises have no specified winner.
type Promise int

// Promise values. Implementation rules rank below the rewrites so that a
// structural simplification is always preferred over premature plan
// generation when both match.
const (
	PromiseInsertToPhysical Promise = iota + 1
	PromiseLoadDataToPhysical
	PromiseCreateTableToPhysical
	PromiseCreateUDFToPhysical
	PromiseAccessToSeqScan
	PromiseEmbedFilterIntoAccess
	PromiseEmbedProjectIntoAccess
)

// Rule is the behavior shared by both rule kinds. Implementations are
// stateless after construction; one instance serves the whole process, and
// every method is a pure function of its inputs.
type Rule interface {
	ID() ID
	Kind() Kind
	Pattern() *Pattern
	// Promise is consulted only to break ties among rules that already
	// matched the same group.
	Promise() Promise
	// TopMatch is the shallow admissibility filter; it agrees with
	// DeepMatch's root-level tag comparison.
	TopMatch(op logical.Operator) bool
	// Check validates semantic preconditions beyond structure. It must not
	// mutate the candidate group or the context.
	Check(id memo.GroupID, ctx *Context) bool
}

// RewriteRule transforms a logical operator into an equivalent logical
// operator. Apply must build a new node graph instead of patching the
// candidate: other memo expressions may still reference it.
type RewriteRule interface {
	Rule
	Apply(before logical.Operator, ctx *Context) (logical.Operator, error)
}

// ImplementationRule transforms a logical operator into physical plan nodes,
// possibly synthesizing children absent from the logical input.
type ImplementationRule interface {
	Rule
	Apply(before logical.Operator, ctx *Context) (physical.Plan, error)
}

// baseRule carries the static half of a rule: identity, category, promise
// and pattern. Concrete rules embed it and add Apply.
type baseRule struct {
	pattern *Pattern
	id      ID
	kind    Kind
	promise Promise
}

func (b baseRule) ID() ID {
	return b.id
}

func (b baseRule) Kind() Kind {
	return b.kind
}

func (b baseRule) Pattern() *Pattern {
	return b.pattern
}

func (b baseRule) Promise() Promise {
	return b.promise
}

func (b baseRule) TopMatch(op logical.Operator) bool {
	return TopMatch(b.pattern, op)
}

// Check defaults to true: for every current rule the pattern alone fully
// characterizes applicability.
func (b baseRule) Check(memo.GroupID, *Context) bool {
	return true
}
