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

package logical

import (
	"fmt"

	"github.com/leungyukshing/eva/pkg/catalog"
)

var _ Operator = (*CreateUDF)(nil)

// CreateUDF registers a user-defined function with its input/output
// signatures and a reference to its implementation.
type CreateUDF struct {
	Name        string
	ImplPath    string
	Kind        catalog.UDFKind
	Inputs      []catalog.Column
	Outputs     []catalog.Column
	IfNotExists bool
}

// NewCreateUDF creates a CreateUDF operator.
func NewCreateUDF(name string, ifNotExists bool, inputs, outputs []catalog.Column, implPath string, kind catalog.UDFKind) *CreateUDF {
	return &CreateUDF{
		Name:        name,
		IfNotExists: ifNotExists,
		Inputs:      inputs,
		Outputs:     outputs,
		ImplPath:    implPath,
		Kind:        kind,
	}
}

// Type implements Operator.
func (c *CreateUDF) Type() OpType {
	return OpCreateUDF
}

// Children implements Operator.
func (c *CreateUDF) Children() []Operator {
	return nil
}

// String implements fmt.Stringer.
func (c *CreateUDF) String() string {
	return fmt.Sprintf("CreateUDF(%s, kind=%s, impl=%s, ifNotExists=%t)", c.Name, c.Kind, c.ImplPath, c.IfNotExists)
}
