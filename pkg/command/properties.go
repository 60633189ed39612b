// Copyright (c) 2024 Herschelle42 and contributors
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"os"

	"github.com/Herschelle42/vRA/pkg/inspector"
	"github.com/spf13/cobra"
)

func getPropertiesCommand() *cobra.Command {
	flagOpts := &Options{
		Connection: &ConnectionOptions{},
	}
	inspectOpts := inspector.Options{}
	var (
		fileSettingsPath string
		token            string
		opts             *Options
	)

	cmd := &cobra.Command{
		Use:   "properties [OPTIONS]",
		Short: "List software component properties.",
		Long: `List the schema properties of every software component type on the
appliance, one flattened JSON row per property.

Each software component type is fetched individually, so expect one request
per component on top of the initial listing.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			merged, err := mergeSettings(cmd, flagOpts, fileSettingsPath)
			if err != nil {
				return err
			}
			opts = merged

			token, err = resolveToken(token)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := initLogger(opts)

			client, err := getClient(opts, token)
			if err != nil {
				return err
			}

			insp, err := inspector.New(client, log)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			return insp.Inspect(cmd.Context(), inspectOpts, func(record inspector.Record) error {
				return enc.Encode(record)
			})
		},
		Example: "properties --server https://vra.example.com --filter JAVA_HOME --exact",
	}

	// Flags
	cmd.Flags().StringVarP(&inspectOpts.Filter, "filter", "f", "",
		"only report properties whose label matches this "+
			"case-insensitive pattern. Empty matches everything.")
	cmd.Flags().BoolVar(&inspectOpts.ExactMatch, "exact", false,
		"match the filter against labels by plain equality instead.")
	cmd.Flags().StringVarP(&flagOpts.Connection.Server, "server", "s", "",
		"the base URL of the vRA appliance.")
	cmd.Flags().StringVar(&token, "token", "",
		"the bearer token of an established session.")
	cmd.Flags().BoolVar(&flagOpts.Connection.Insecure, "insecure", false,
		"whether to connect to the appliance ignoring self signed certificates.")
	cmd.Flags().StringVar(&fileSettingsPath, "settings-file", "",
		"path to the file containing settings")
	cmd.Flags().IntVar(&flagOpts.Verbosity, "verbosity", 1,
		"verbosity level, from 0 to 2.")
	cmd.Flags().BoolVar(&flagOpts.PrettyLogs, "pretty-logs", false,
		"whether to log data in a slower but human readable format.")

	return cmd
}


