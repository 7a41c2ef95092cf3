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
	"github.com/pkg/errors"

	"github.com/leungyukshing/eva/pkg/query/logical"
)

var _ RewriteRule = (*embedFilterIntoAccess)(nil)

// embedFilterIntoAccess folds Filter(Access) into a single Access carrying
// the filter's predicate in its scan-time slot, eliminating one tree level.
// It writes only the predicate slot, so it composes with the projection
// pushdown in either order.
type embedFilterIntoAccess struct {
	baseRule
}

func newEmbedFilterIntoAccess() RewriteRule {
	return &embedFilterIntoAccess{baseRule{
		id:      IDEmbedFilterIntoAccess,
		kind:    KindRewrite,
		promise: PromiseEmbedFilterIntoAccess,
		pattern: NewPattern(logical.OpFilter, NewPattern(logical.OpAccess)),
	}}
}

func (r *embedFilterIntoAccess) Apply(before logical.Operator, _ *Context) (logical.Operator, error) {
	filter, ok := before.(*logical.Filter)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: root is %s", r.ID(), before.Type())
	}
	access, ok := filter.Input.(*logical.Access)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: child is %s", r.ID(), filter.Input.Type())
	}
	return access.WithPredicate(filter.Predicate), nil
}

var _ RewriteRule = (*embedProjectIntoAccess)(nil)

// embedProjectIntoAccess folds Project(Access) into a single Access carrying
// the projection's output columns, pruning columns at scan time. It writes
// only the projection slot.
type embedProjectIntoAccess struct {
	baseRule
}

func newEmbedProjectIntoAccess() RewriteRule {
	return &embedProjectIntoAccess{baseRule{
		id:      IDEmbedProjectIntoAccess,
		kind:    KindRewrite,
		promise: PromiseEmbedProjectIntoAccess,
		pattern: NewPattern(logical.OpProject, NewPattern(logical.OpAccess)),
	}}
}

func (r *embedProjectIntoAccess) Apply(before logical.Operator, _ *Context) (logical.Operator, error) {
	project, ok := before.(*logical.Project)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: root is %s", r.ID(), before.Type())
	}
	access, ok := project.Input.(*logical.Access)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedCandidate, "%s: child is %s", r.ID(), project.Input.Type())
	}
	return access.WithProjection(project.Projection), nil
}
