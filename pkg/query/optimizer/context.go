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
	"github.com/leungyukshing/eva/pkg/logger"
	"github.com/leungyukshing/eva/pkg/query/optimizer/memo"
)

// Context carries the per-run collaborators a rule may consult: the memo
// handle and a logger. Rules only read it; all exploration bookkeeping stays
// with the driver that owns the memo.
type Context struct {
	memo *memo.Memo
	log  *logger.Logger
}

// NewContext creates a context around one optimization run's memo.
func NewContext(m *memo.Memo) *Context {
	return &Context{
		memo: m,
		log:  logger.GetLogger("optimizer"),
	}
}

// Memo returns the run's group store.
func (c *Context) Memo() *memo.Memo {
	return c.memo
}

// Log returns the run's logger.
func (c *Context) Log() *logger.Logger {
	return c.log
}
