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

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/leungyukshing/eva/pkg/catalog"
	"github.com/leungyukshing/eva/pkg/logger"
	"github.com/leungyukshing/eva/pkg/query/logical"
	"github.com/leungyukshing/eva/pkg/query/optimizer"
)

var errBadPredicate = errors.New("predicate must look like column=value")

var ruleIDs = map[string]optimizer.ID{
	"embed_filter_into_access":  optimizer.IDEmbedFilterIntoAccess,
	"embed_project_into_access": optimizer.IDEmbedProjectIntoAccess,
	"create_table_to_physical":  optimizer.IDCreateTableToPhysical,
	"create_udf_to_physical":    optimizer.IDCreateUDFToPhysical,
	"insert_to_physical":        optimizer.IDInsertToPhysical,
	"load_data_to_physical":     optimizer.IDLoadDataToPhysical,
	"access_to_seq_scan":        optimizer.IDAccessToSeqScan,
}

func newOptimizeCmd() *cobra.Command {
	var (
		table     string
		columns   []string
		predicate string
		rules     []string
	)
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Build a scan statement from flags, optimize it and print the physical plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.GetLogger("evactl")
			registry := optimizer.NewRegistry()
			if len(rules) > 0 {
				mask, err := parseRuleMask(rules)
				if err != nil {
					return err
				}
				registry = registry.Subset(mask)
			}
			if err := registry.Validate(); err != nil {
				return err
			}

			tree, err := buildTree(table, columns, predicate)
			if err != nil {
				return err
			}
			log.Info().Stringer("tree", tree).Msg("optimizing statement")

			plan, err := optimizer.New(registry).Optimize(tree)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), plan)
			return nil
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "table to scan")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "columns to project")
	cmd.Flags().StringVar(&predicate, "predicate", "", "filter predicate, column=value")
	cmd.Flags().StringSliceVar(&rules, "rules", nil, "rule subset to enable, default all")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}

func parseRuleMask(names []string) (optimizer.Mask, error) {
	var mask optimizer.Mask
	for _, name := range names {
		id, ok := ruleIDs[name]
		if !ok {
			return 0, errors.Errorf("unknown rule %q", name)
		}
		mask |= optimizer.Mask(id)
	}
	return mask, nil
}

func buildTree(table string, columns []string, predicate string) (logical.Operator, error) {
	ref := catalog.TableRef{Name: table}
	var tree logical.Operator = logical.NewAccess(ref, &catalog.TableMetadata{Ref: ref})
	if predicate != "" {
		pred, err := parsePredicate(table, predicate)
		if err != nil {
			return nil, err
		}
		tree = logical.NewFilter(pred, tree)
	}
	if len(columns) > 0 {
		projection := make([]logical.Expr, 0, len(columns))
		for _, c := range columns {
			projection = append(projection, logical.NewColumnRef(table, c))
		}
		tree = logical.NewProject(projection, tree)
	}
	return tree, nil
}

func parsePredicate(table, predicate string) (logical.Expr, error) {
	column, value, found := strings.Cut(predicate, "=")
	if !found || column == "" || value == "" {
		return nil, errors.WithMessagef(errBadPredicate, "got %q", predicate)
	}
	col := logical.NewColumnRef(table, column)
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return logical.Eq(col, logical.NewInt64Literal(n)), nil
	}
	return logical.Eq(col, logical.NewStrLiteral(value)), nil
}
