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

	"github.com/Herschelle42/vRA/pkg/vra-go/pkg/request"
	"github.com/Herschelle42/vRA/pkg/waiter"
	"github.com/spf13/cobra"
)

func getWaitCommand() *cobra.Command {
	flagOpts := &Options{
		Connection: &ConnectionOptions{},
	}
	waitOpts := waiter.Options{}
	var (
		fileSettingsPath string
		token            string
		opts             *Options
		requestNumbers   []int
	)

	cmd := &cobra.Command{
		Use:   "wait REQUEST-NUMBER... [OPTIONS]",
		Short: "Wait for catalog requests to settle.",
		Long: `Wait for one or more catalog requests to settle into a terminal
state, reporting one JSON row per request as soon as it settles.

Request numbers are taken from the arguments, or read one per line from
standard input when no arguments are given, so they can be piped in.
Requests are resolved strictly in input order, one at a time; polling has
no deadline unless --max-attempts is set.`,
		Args: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseRequestNumbers(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			requestNumbers = numbers
			return nil
		},
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

			w, err := waiter.New(client, log)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			return w.WaitForCompletion(cmd.Context(), requestNumbers, waitOpts,
				func(result request.Result) error {
					return enc.Encode(result)
				})
		},
		Example: "wait 1001 1002 --server https://vra.example.com --poll-interval 10s",
	}

	// Flags
	cmd.Flags().DurationVar(&waitOpts.PollInterval, "poll-interval",
		request.DefaultPollInterval,
		"the fixed sleep between status checks.")
	cmd.Flags().IntVar(&waitOpts.MaxAttempts, "max-attempts", 0,
		"maximum status re-checks per request before giving up. 0 polls forever.")
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


