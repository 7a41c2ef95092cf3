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

// Package cmd implements the evactl commands.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leungyukshing/eva/pkg/logger"
	"github.com/leungyukshing/eva/pkg/version"
)

// NewRoot returns the root command.
func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "evactl",
		Short:             "evactl is the command line tool of the EVA query optimizer",
		Version:           version.Build(),
		DisableAutoGenTag: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			viper.SetEnvPrefix("eva")
			viper.AutomaticEnv()
			return logger.Init(logger.Logging{
				Env:   viper.GetString("log-env"),
				Level: viper.GetString("log-level"),
			})
		},
	}
	cmd.PersistentFlags().String("log-env", "prod", "logging environment, prod or dev")
	cmd.PersistentFlags().String("log-level", "info", "root logging level")
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
	cmd.AddCommand(newOptimizeCmd())
	return cmd
}
