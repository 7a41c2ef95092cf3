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

package physical

import (
	"fmt"

	"github.com/leungyukshing/eva/pkg/catalog"
)

var _ Plan = (*LoadDataPlan)(nil)

// LoadDataPlan bulk-loads an external file into a table at execution time.
type LoadDataPlan struct {
	Metadata *catalog.TableMetadata
	Path     string
}

// NewLoadDataPlan creates a LoadDataPlan.
func NewLoadDataPlan(metadata *catalog.TableMetadata, path string) *LoadDataPlan {
	return &LoadDataPlan{Metadata: metadata, Path: path}
}

// Type implements Plan.
func (l *LoadDataPlan) Type() PlanType {
	return PlanLoadData
}

// Children implements Plan.
func (l *LoadDataPlan) Children() []Plan {
	return nil
}

// String implements fmt.Stringer.
func (l *LoadDataPlan) String() string {
	return fmt.Sprintf("LoadDataPlan(%s, path=%s)", l.Metadata.Ref, l.Path)
}
