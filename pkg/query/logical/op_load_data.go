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

var _ Operator = (*LoadData)(nil)

// LoadData bulk-loads an external file into a table.
type LoadData struct {
	Metadata *catalog.TableMetadata
	Path     string
}

// NewLoadData creates a LoadData operator.
func NewLoadData(metadata *catalog.TableMetadata, path string) *LoadData {
	return &LoadData{Metadata: metadata, Path: path}
}

// Type implements Operator.
func (l *LoadData) Type() OpType {
	return OpLoadData
}

// Children implements Operator.
func (l *LoadData) Children() []Operator {
	return nil
}

// String implements fmt.Stringer.
func (l *LoadData) String() string {
	return fmt.Sprintf("LoadData(%s, path=%s)", l.Metadata.Ref, l.Path)
}
