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

// Package logical defines the logical operator tree consumed by the
// optimizer: relational-algebra-level nodes that are independent of any
// execution strategy.
package logical

import (
	"fmt"
)

// OpType identifies the variant of a logical operator.
type OpType uint8

// Logical operator variants.
const (
	OpDummy OpType = iota
	OpAccess
	OpFilter
	OpProject
	OpCreateTable
	OpCreateUDF
	OpInsert
	OpLoadData
)

// String implements fmt.Stringer.
func (o OpType) String() string {
	switch o {
	case OpDummy:
		return "Dummy"
	case OpAccess:
		return "Access"
	case OpFilter:
		return "Filter"
	case OpProject:
		return "Project"
	case OpCreateTable:
		return "CreateTable"
	case OpCreateUDF:
		return "CreateUDF"
	case OpInsert:
		return "Insert"
	case OpLoadData:
		return "LoadData"
	default:
		return fmt.Sprintf("OpType(%d)", uint8(o))
	}
}

// Operator is a node of the logical query tree. Implementations are plain
// values; the optimizer never mutates an Operator it did not build itself.
type Operator interface {
	fmt.Stringer
	Type() OpType
	Children() []Operator
}
