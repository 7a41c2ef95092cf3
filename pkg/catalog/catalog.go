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

// Package catalog holds the metadata vocabulary shared by logical operators
// and physical plans: table references, column definitions and UDF signatures.
// The catalog service itself lives outside this module; these types are plain
// read-only values once handed to the optimizer.
package catalog

import (
	"fmt"
	"strings"
)

// ColumnType enumerates the supported column data types.
type ColumnType uint8

// Supported column data types.
const (
	ColumnBoolean ColumnType = iota
	ColumnInteger
	ColumnFloat
	ColumnText
	ColumnNdarray
)

// String implements fmt.Stringer.
func (c ColumnType) String() string {
	switch c {
	case ColumnBoolean:
		return "BOOLEAN"
	case ColumnInteger:
		return "INTEGER"
	case ColumnFloat:
		return "FLOAT"
	case ColumnText:
		return "TEXT"
	case ColumnNdarray:
		return "NDARRAY"
	default:
		return "UNKNOWN"
	}
}

// Column describes a single column of a table schema or a UDF signature.
type Column struct {
	Name string
	Type ColumnType
	// Dimensions is only meaningful for NDARRAY columns.
	Dimensions []int
}

// String implements fmt.Stringer.
func (c Column) String() string {
	if len(c.Dimensions) > 0 {
		return fmt.Sprintf("%s %s%v", c.Name, c.Type, c.Dimensions)
	}
	return fmt.Sprintf("%s %s", c.Name, c.Type)
}

// TableRef identifies a table in the catalog.
type TableRef struct {
	Database string
	Name     string
}

// String implements fmt.Stringer.
func (t TableRef) String() string {
	if t.Database == "" {
		return t.Name
	}
	return t.Database + "." + t.Name
}

// TableMetadata is the catalog entry of a materialized dataset. The optimizer
// only reads it; ownership stays with the catalog service.
type TableMetadata struct {
	Ref     TableRef
	FileURL string
	Columns []Column
	ID      uint64
}

// String implements fmt.Stringer.
func (t *TableMetadata) String() string {
	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		cols = append(cols, c.String())
	}
	return fmt.Sprintf("%s(%s)", t.Ref, strings.Join(cols, ", "))
}

// UDFKind classifies a user-defined function by the task it performs,
// e.g. "classification" or "detection".
type UDFKind string
