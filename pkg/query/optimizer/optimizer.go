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
	"sort"

	"github.com/pkg/errors"

	"github.com/leungyukshing/eva/pkg/logger"
	"github.com/leungyukshing/eva/pkg/query/logical"
	"github.com/leungyukshing/eva/pkg/query/optimizer/memo"
	"github.com/leungyukshing/eva/pkg/query/physical"
)

// ErrNoImplementationRule reports that the implementation phase found no rule
// producing a physical plan for an operator. It usually means the rewrite
// phase left a logical shape no implementation rule anchors on.
var ErrNoImplementationRule = errors.New("no implementation rule matches the expression")

// maxRewritePasses bounds the rewrite fixpoint loop. The current rule set
// strictly shrinks the tree, so the bound is never hit; it guards a future
// rule set that cycles.
const maxRewritePasses = 64

// Optimizer is the exploration driver: it memoizes the operator tree, runs
// the rewrite rules to a fixpoint, then implements the root group into a
// physical plan. The Optimizer holds no per-query state and may be shared.
type Optimizer struct {
	registry *Registry
	log      *logger.Logger
}

// New creates an Optimizer driving the given rule registry.
func New(registry *Registry) *Optimizer {
	return &Optimizer{
		registry: registry,
		log:      logger.GetLogger("optimizer"),
	}
}

// Optimize turns a logical operator tree into an executable physical plan.
func (o *Optimizer) Optimize(root logical.Operator) (physical.Plan, error) {
	ctx := NewContext(memo.New())
	rootID := ctx.Memo().Add(root)
	if err := o.rewrite(ctx); err != nil {
		return nil, err
	}
	return o.implement(ctx, rootID)
}

// rewrite repeatedly offers every group to the rewrite rules, highest
// promise first, until one full pass changes nothing.
func (o *Optimizer) rewrite(ctx *Context) error {
	rules := make([]RewriteRule, len(o.registry.RewriteRules()))
	copy(rules, o.registry.RewriteRules())
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Promise() > rules[j].Promise()
	})
	for pass := 0; pass < maxRewritePasses; pass++ {
		changed := false
		for id := memo.GroupID(0); int(id) < ctx.Memo().GroupCount(); id++ {
			g := ctx.Memo().Group(id)
			if g.LogicalExpr() == nil {
				continue
			}
			for _, rule := range rules {
				expr := g.LogicalExpr()
				if !rule.TopMatch(expr.Op) ||
					!DeepMatch(rule.Pattern(), id, ctx) ||
					!rule.Check(id, ctx) {
					continue
				}
				before := ctx.Memo().Extract(id)
				after, err := rule.Apply(before, ctx)
				if err != nil {
					return errors.WithMessagef(err, "apply %s to group %d", rule.ID(), id)
				}
				ctx.Memo().Replace(id, after)
				o.log.Debug().
					Stringer("rule", rule.ID()).
					Uint32("group", uint32(id)).
					Msg("rewrote group")
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
	return nil
}

// implement picks the best matching implementation rule for the root group
// and applies it.
func (o *Optimizer) implement(ctx *Context, id memo.GroupID) (physical.Plan, error) {
	g := ctx.Memo().Group(id)
	if g == nil || g.LogicalExpr() == nil {
		return nil, errors.WithMessagef(ErrNoImplementationRule, "group %d holds no expression", id)
	}
	expr := g.LogicalExpr()
	best := bestImplementation(o.registry.ImplementationRules(), expr.Op, id, ctx)
	if best == nil {
		return nil, errors.WithMessagef(ErrNoImplementationRule, "operator %s", expr.Op.Type())
	}
	before := ctx.Memo().Extract(id)
	plan, err := best.Apply(before, ctx)
	if err != nil {
		return nil, errors.WithMessagef(err, "implement group %d with %s", id, best.ID())
	}
	o.log.Debug().
		Stringer("rule", best.ID()).
		Uint32("group", uint32(id)).
		Msg("implemented group")
	return plan, nil
}

// bestImplementation returns the matched rule with the numerically greatest
// promise. Promise never makes a non-matching rule eligible; it only orders
// rules that already matched. Two matched rules with equal promises have no
// specified winner.
func bestImplementation(rules []ImplementationRule, op logical.Operator, id memo.GroupID, ctx *Context) ImplementationRule {
	var best ImplementationRule
	for _, rule := range rules {
		if !rule.TopMatch(op) ||
			!DeepMatch(rule.Pattern(), id, ctx) ||
			!rule.Check(id, ctx) {
			continue
		}
		if best == nil || rule.Promise() > best.Promise() {
			best = rule
		}
	}
	return best
}
