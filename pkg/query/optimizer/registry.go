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

package optimizer

import (
	"math/bits"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var errInvalidRule = errors.New("invalid rule registration")

// Registry owns one instance of every rule, partitioned by kind. It is an
// explicitly constructed value, not a process-wide singleton: callers build
// one during engine initialization and thread it through to the driver.
// All rules are stateless, so a Registry is safe to share across concurrent
// optimizations once constructed.
type Registry struct {
	rewrite        []RewriteRule
	implementation []ImplementationRule
}

// NewRegistry builds a registry holding the full rule set.
func NewRegistry() *Registry {
	return &Registry{
		rewrite: []RewriteRule{
			newEmbedFilterIntoAccess(),
			newEmbedProjectIntoAccess(),
		},
		implementation: []ImplementationRule{
			newCreateTableToPhysical(),
			newCreateUDFToPhysical(),
			newInsertToPhysical(),
			newLoadDataToPhysical(),
			newAccessToSeqScan(),
		},
	}
}

// RewriteRules returns the ordered rewrite collection. Callers must not
// modify the result.
func (r *Registry) RewriteRules() []RewriteRule {
	return r.rewrite
}

// ImplementationRules returns the ordered implementation collection. Callers
// must not modify the result.
func (r *Registry) ImplementationRules() []ImplementationRule {
	return r.implementation
}

// Subset returns a registry containing only the rules whose ID bit is set in
// mask, preserving order. The receiver is left untouched.
func (r *Registry) Subset(mask Mask) *Registry {
	sub := &Registry{}
	for _, rule := range r.rewrite {
		if mask.Contains(rule.ID()) {
			sub.rewrite = append(sub.rewrite, rule)
		}
	}
	for _, rule := range r.implementation {
		if mask.Contains(rule.ID()) {
			sub.implementation = append(sub.implementation, rule)
		}
	}
	return sub
}

// Validate checks the structural invariants of the registered rule set:
// every rule carries a pattern, IDs are distinct single bits, and each rule
// sits in the collection matching its kind.
func (r *Registry) Validate() error {
	var err error
	seen := make(map[ID]struct{})
	validate := func(rule Rule, kind Kind) {
		if rule.Pattern() == nil {
			err = multierr.Append(err, errors.WithMessagef(errInvalidRule, "%s has no pattern", rule.ID()))
		}
		if bits.OnesCount64(uint64(rule.ID())) != 1 {
			err = multierr.Append(err, errors.WithMessagef(errInvalidRule, "%s is not a single bit", rule.ID()))
		}
		if _, dup := seen[rule.ID()]; dup {
			err = multierr.Append(err, errors.WithMessagef(errInvalidRule, "%s registered twice", rule.ID()))
		}
		seen[rule.ID()] = struct{}{}
		if rule.Kind() != kind {
			err = multierr.Append(err, errors.WithMessagef(errInvalidRule, "%s is %s but registered as %s", rule.ID(), rule.Kind(), kind))
		}
	}
	for _, rule := range r.rewrite {
		validate(rule, KindRewrite)
	}
	for _, rule := range r.implementation {
		validate(rule, KindImplementation)
	}
	return err
}
