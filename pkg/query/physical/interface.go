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

// Package physical defines the executable plan nodes produced by the
// optimizer's implementation rules. An executor consumes these; this module
// never runs them.
package physical

import (
	"fmt"
)

// PlanType identifies the variant of a physical plan node.
type PlanType uint8

// Physical plan variants.
const (
	PlanCreateTable PlanType = iota
	PlanCreateUDF
	PlanInsert
	PlanLoadData
	PlanSeqScan
	PlanStorage
)

// String implements fmt.Stringer.
func (p PlanType) String() string {
	switch p {
	case PlanCreateTable:
		return "CreateTablePlan"
	case PlanCreateUDF:
		return "CreateUDFPlan"
	case PlanInsert:
		return "InsertPlan"
	case PlanLoadData:
		return "LoadDataPlan"
	case PlanSeqScan:
		return "SeqScanPlan"
	case PlanStorage:
		return "StoragePlan"
	default:
		return fmt.Sprintf("PlanType(%d)", uint8(p))
	}
}

// Plan is a node of the executable plan tree.
type Plan interface {
	fmt.Stringer
	Type() PlanType
	Children() []Plan
}
