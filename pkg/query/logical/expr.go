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

// Expr is a scalar expression carried by operator attributes, e.g. a filter
// predicate or a projection target.
type Expr interface {
	fmt.Stringer
	Equal(Expr) bool
}

type binaryOp uint8

const (
	opEq binaryOp = iota
	opNe
	opLt
	opGt
	opLe
	opGe
)

func (op binaryOp) String() string {
	switch op {
	case opEq:
		return "="
	case opNe:
		return "!="
	case opLt:
		return "<"
	case opGt:
		return ">"
	case opLe:
		return "<="
	case opGe:
		return ">="
	default:
		return "?"
	}
}

var _ Expr = (*columnRef)(nil)

// columnRef is a reference to a column of the underlying dataset.
type columnRef struct {
	table string
	name  string
}

// NewColumnRef creates a reference to the named column. table may be empty
// when the column is unambiguous.
func NewColumnRef(table, name string) Expr {
	return &columnRef{table: table, name: name}
}

func (c *columnRef) Equal(expr Expr) bool {
	if other, ok := expr.(*columnRef); ok {
		return other.table == c.table && other.name == c.name
	}
	return false
}

func (c *columnRef) String() string {
	if c.table == "" {
		return "#" + c.name
	}
	return fmt.Sprintf("#%s.%s", c.table, c.name)
}

var _ Expr = (*strLiteral)(nil)

type strLiteral struct {
	string
}

// NewStrLiteral wraps a string constant.
func NewStrLiteral(v string) Expr {
	return &strLiteral{string: v}
}

func (s *strLiteral) Equal(expr Expr) bool {
	if other, ok := expr.(*strLiteral); ok {
		return other.string == s.string
	}
	return false
}

func (s *strLiteral) String() string {
	return fmt.Sprintf("%q", s.string)
}

var _ Expr = (*int64Literal)(nil)

type int64Literal struct {
	int64
}

// NewInt64Literal wraps an integer constant.
func NewInt64Literal(v int64) Expr {
	return &int64Literal{int64: v}
}

func (i *int64Literal) Equal(expr Expr) bool {
	if other, ok := expr.(*int64Literal); ok {
		return other.int64 == i.int64
	}
	return false
}

func (i *int64Literal) String() string {
	return fmt.Sprintf("%d", i.int64)
}

var _ Expr = (*binaryExpr)(nil)

// binaryExpr is composed of two operands joined by a comparison operator.
// l is normally a column reference while r is usually a literal.
type binaryExpr struct {
	l  Expr
	r  Expr
	op binaryOp
}

func (b *binaryExpr) Equal(expr Expr) bool {
	if other, ok := expr.(*binaryExpr); ok {
		return b.op == other.op && b.l.Equal(other.l) && b.r.Equal(other.r)
	}
	return false
}

func (b *binaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.l, b.op, b.r)
}

// Eq builds l = r.
func Eq(l, r Expr) Expr {
	return &binaryExpr{op: opEq, l: l, r: r}
}

// Ne builds l != r.
func Ne(l, r Expr) Expr {
	return &binaryExpr{op: opNe, l: l, r: r}
}

// Lt builds l < r.
func Lt(l, r Expr) Expr {
	return &binaryExpr{op: opLt, l: l, r: r}
}

// Gt builds l > r.
func Gt(l, r Expr) Expr {
	return &binaryExpr{op: opGt, l: l, r: r}
}

// Le builds l <= r.
func Le(l, r Expr) Expr {
	return &binaryExpr{op: opLe, l: l, r: r}
}

// Ge builds l >= r.
func Ge(l, r Expr) Expr {
	return &binaryExpr{op: opGe, l: l, r: r}
}

// ExprsEqual reports whether two expression lists are pairwise equal.
func ExprsEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
