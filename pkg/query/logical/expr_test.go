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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprEqual(t *testing.T) {
	col := NewColumnRef("videos", "label")
	tests := []struct {
		name string
		l    Expr
		r    Expr
		want bool
	}{
		{"same column", col, NewColumnRef("videos", "label"), true},
		{"different column", col, NewColumnRef("videos", "id"), false},
		{"different table", col, NewColumnRef("frames", "label"), false},
		{"same literal", NewStrLiteral("car"), NewStrLiteral("car"), true},
		{"different literal", NewStrLiteral("car"), NewStrLiteral("bus"), false},
		{"literal vs column", NewStrLiteral("car"), col, false},
		{"same comparison", Eq(col, NewStrLiteral("car")), Eq(NewColumnRef("videos", "label"), NewStrLiteral("car")), true},
		{"different operator", Eq(col, NewStrLiteral("car")), Ne(col, NewStrLiteral("car")), false},
		{"same int", NewInt64Literal(3), NewInt64Literal(3), true},
		{"different int", NewInt64Literal(3), NewInt64Literal(4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.l.Equal(tt.r))
		})
	}
}

func TestExprString(t *testing.T) {
	pred := Gt(NewColumnRef("videos", "id"), NewInt64Literal(10))
	assert.Equal(t, "#videos.id > 10", pred.String())
	assert.Equal(t, `#label = "car"`, Eq(NewColumnRef("", "label"), NewStrLiteral("car")).String())
}

func TestExprsEqual(t *testing.T) {
	a := []Expr{NewColumnRef("", "id"), NewColumnRef("", "label")}
	b := []Expr{NewColumnRef("", "id"), NewColumnRef("", "label")}
	assert.True(t, ExprsEqual(a, b))
	assert.False(t, ExprsEqual(a, b[:1]))
	assert.False(t, ExprsEqual(a, []Expr{NewColumnRef("", "id"), NewColumnRef("", "frame")}))
}
