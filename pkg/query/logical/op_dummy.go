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

var _ Operator = Dummy{}

// Dummy is the placeholder operator the memo stores beneath leaf operators so
// that every group expression owns at least one child group. It never appears
// in a user-visible plan.
type Dummy struct{}

// Type implements Operator.
func (Dummy) Type() OpType {
	return OpDummy
}

// Children implements Operator.
func (Dummy) Children() []Operator {
	return nil
}

// String implements fmt.Stringer.
func (Dummy) String() string {
	return "Dummy"
}
