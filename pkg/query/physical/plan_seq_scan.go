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
	"strings"

	"github.com/leungyukshing/eva/pkg/query/logical"
)

var _ Plan = (*SeqScanPlan)(nil)

// SeqScanPlan walks the rows supplied by its storage child, applying the
// scan-time predicate and projection the rewrite phase pushed down. Its sole
// child is always a StoragePlan; the scan logic and the storage boundary are
// deliberately separate nodes.
type SeqScanPlan struct {
	Predicate  logical.Expr
	Storage    *StoragePlan
	Projection []logical.Expr
}

// NewSeqScanPlan creates a SeqScanPlan over storage.
func NewSeqScanPlan(predicate logical.Expr, projection []logical.Expr, storage *StoragePlan) *SeqScanPlan {
	return &SeqScanPlan{Predicate: predicate, Projection: projection, Storage: storage}
}

// Type implements Plan.
func (s *SeqScanPlan) Type() PlanType {
	return PlanSeqScan
}

// Children implements Plan.
func (s *SeqScanPlan) Children() []Plan {
	return []Plan{s.Storage}
}

// String implements fmt.Stringer.
func (s *SeqScanPlan) String() string {
	var b strings.Builder
	b.WriteString("SeqScanPlan(")
	if s.Predicate != nil {
		fmt.Fprintf(&b, "predicate=%s", s.Predicate)
	}
	if len(s.Projection) > 0 {
		if s.Predicate != nil {
			b.WriteString(", ")
		}
		cols := make([]string, 0, len(s.Projection))
		for _, p := range s.Projection {
			cols = append(cols, p.String())
		}
		fmt.Fprintf(&b, "projection=[%s]", strings.Join(cols, ", "))
	}
	fmt.Fprintf(&b, ") <- %s", s.Storage)
	return b.String()
}
