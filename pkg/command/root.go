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
	"github.com/spf13/cobra"
)

func GetRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vra properties|wait [OPTIONS]",
		Short: "Helpers for a vRA appliance.",
		Long: `Inspect software component properties on a vRA appliance and wait
for catalog requests to settle into a terminal state.

Both commands need an already-established session: the appliance URL and a
bearer token obtained from an external login step.`,
		Example: "vra properties --server https://vra.example.com --filter JAVA_HOME",
	}

	// Commands
	cmd.AddCommand(getPropertiesCommand())
	cmd.AddCommand(getWaitCommand())

	return cmd
}


