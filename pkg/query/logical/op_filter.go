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
)

var _ Operator = (*Filter)(nil)

// Filter keeps the rows of its input that satisfy Predicate.
type Filter struct {
	Input     Operator
	Predicate Expr
}

// NewFilter creates a Filter over input.
func NewFilter(predicate Expr, input Operator) *Filter {
	return &Filter{Predicate: predicate, Input: input}
}

// Type implements Operator.
func (f *Filter) Type() OpType {
	return OpFilter
}

// Children implements Operator.
func (f *Filter) Children() []Operator {
	return []Operator{f.Input}
}

// String implements fmt.Stringer.
func (f *Filter) String() string {
	return fmt.Sprintf("Filter(%s) <- %s", f.Predicate, f.Input)
}
