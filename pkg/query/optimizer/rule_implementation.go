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
	"github.com/pkg/errors"

	"github.com/leungyukshing/eva/pkg/query/logical"
	"github.com/leungyukshing/eva/pkg/query/physical"
)

var _ ImplementationRule = (*createTableToPhysical)(nil)

// createTableToPhysical maps CreateTable onto its plan node, copying the
// target identity, column schema and if-not-exists flag verbatim.
type createTableToPhysical struct {
	baseRule
}

func newCreateTableToPhysical() ImplementationRule {
	return &createTableToPhysical{baseRule{
		id:      IDCreateTableToPhysical,
		kind:    KindImplementation,
		promise: PromiseCreateTableToPhysical,
		pattern: NewPattern(logical.OpCreateTable, AnyOperator()),
	}}
}

func (r *createTableToPhysical) Apply(before logical.Operator, _ *Context) (physical.Plan, error) {
	create, ok := before.(*logical.CreateTable)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: root is %s", r.ID(), before.Type())
	}
	return physical.NewCreateTablePlan(create.Table, create.Columns, create.IfNotExists), nil
}

var _ ImplementationRule = (*createUDFToPhysical)(nil)

// createUDFToPhysical maps CreateUDF onto its plan node.
type createUDFToPhysical struct {
	baseRule
}

func newCreateUDFToPhysical() ImplementationRule {
	return &createUDFToPhysical{baseRule{
		id:      IDCreateUDFToPhysical,
		kind:    KindImplementation,
		promise: PromiseCreateUDFToPhysical,
		pattern: NewPattern(logical.OpCreateUDF, AnyOperator()),
	}}
}

func (r *createUDFToPhysical) Apply(before logical.Operator, _ *Context) (physical.Plan, error) {
	create, ok := before.(*logical.CreateUDF)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: root is %s", r.ID(), before.Type())
	}
	return physical.NewCreateUDFPlan(create.Name, create.IfNotExists, create.Inputs, create.Outputs, create.ImplPath, create.Kind), nil
}

var _ ImplementationRule = (*insertToPhysical)(nil)

// insertToPhysical maps Insert onto its plan node.
type insertToPhysical struct {
	baseRule
}

func newInsertToPhysical() ImplementationRule {
	return &insertToPhysical{baseRule{
		id:      IDInsertToPhysical,
		kind:    KindImplementation,
		promise: PromiseInsertToPhysical,
		pattern: NewPattern(logical.OpInsert, AnyOperator()),
	}}
}

func (r *insertToPhysical) Apply(before logical.Operator, _ *Context) (physical.Plan, error) {
	insert, ok := before.(*logical.Insert)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: root is %s", r.ID(), before.Type())
	}
	return physical.NewInsertPlan(insert.Table, insert.Columns, insert.Values), nil
}

var _ ImplementationRule = (*loadDataToPhysical)(nil)

// loadDataToPhysical maps LoadData onto its plan node.
type loadDataToPhysical struct {
	baseRule
}

func newLoadDataToPhysical() ImplementationRule {
	return &loadDataToPhysical{baseRule{
		id:      IDLoadDataToPhysical,
		kind:    KindImplementation,
		promise: PromiseLoadDataToPhysical,
		pattern: NewPattern(logical.OpLoadData, AnyOperator()),
	}}
}

func (r *loadDataToPhysical) Apply(before logical.Operator, _ *Context) (physical.Plan, error) {
	load, ok := before.(*logical.LoadData)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: root is %s", r.ID(), before.Type())
	}
	return physical.NewLoadDataPlan(load.Metadata, load.Path), nil
}

var _ ImplementationRule = (*accessToSeqScan)(nil)

// accessToSeqScan maps Access onto a sequential scan with a storage-access
// node synthesized beneath it. This is the only mapping producing a
// two-level fragment: execution needs an explicit storage boundary separate
// from scan-time filtering and projection.
type accessToSeqScan struct {
	baseRule
}

func newAccessToSeqScan() ImplementationRule {
	return &accessToSeqScan{baseRule{
		id:      IDAccessToSeqScan,
		kind:    KindImplementation,
		promise: PromiseAccessToSeqScan,
		pattern: NewPattern(logical.OpAccess, AnyOperator()),
	}}
}

func (r *accessToSeqScan) Apply(before logical.Operator, _ *Context) (physical.Plan, error) {
	access, ok := before.(*logical.Access)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: root is %s", r.ID(), before.Type())
	}
	storage := physical.NewStoragePlan(access.Metadata)
	return physical.NewSeqScanPlan(access.Predicate, access.Projection, storage), nil
}
