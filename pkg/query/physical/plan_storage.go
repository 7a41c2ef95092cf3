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

var _ Plan = (*StoragePlan)(nil)

// StoragePlan is the storage-access boundary beneath a scan: it hands rows of
// the dataset identified by Metadata to its parent.
type StoragePlan struct {
	Metadata *catalog.TableMetadata
}

// NewStoragePlan creates a StoragePlan for the given dataset.
func NewStoragePlan(metadata *catalog.TableMetadata) *StoragePlan {
	return &StoragePlan{Metadata: metadata}
}

// Type implements Plan.
func (s *StoragePlan) Type() PlanType {
	return PlanStorage
}

// Children implements Plan.
func (s *StoragePlan) Children() []Plan {
	return nil
}

// String implements fmt.Stringer.
func (s *StoragePlan) String() string {
	return fmt.Sprintf("StoragePlan(%s)", s.Metadata.Ref)
}
