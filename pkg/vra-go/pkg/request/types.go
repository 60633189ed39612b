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

package request

import "time"

const (
	DefaultPollInterval time.Duration = 30 * time.Second
)

// State is the lifecycle state of a catalog request.
type State string

// NON-EXHAUSTIVE: terminal states other than SUCCESSFUL and FAILED exist
// (e.g. rejections); anything not listed as in-flight stops the polling.
const (
	StateSuccessful         State = "SUCCESSFUL"
	StateFailed             State = "FAILED"
	StateInProgress         State = "IN_PROGRESS"
	StateSubmitted          State = "SUBMITTED"
	StateProviderCompleted  State = "PROVIDER_COMPLETED"
	StatePostApproved       State = "POST_APPROVED"
	StatePreApproved        State = "PRE_APPROVED"
	StatePendingPreApproval State = "PENDING_PRE_APPROVAL"
)

// InFlight reports whether the request is still moving through approval or
// execution, i.e. whether polling should continue.
func (s State) InFlight() bool {
	switch s {
	case StateInProgress, StateSubmitted, StateProviderCompleted,
		StatePostApproved, StatePreApproved, StatePendingPreApproval:
		return true
	default:
		return false
	}
}

// Status is the current state of a single catalog request.
type Status struct {
	RequestNumber int
	State         State
}

// WaitOptions controls how a single request is polled until it settles.
type WaitOptions struct {
	// PollInterval is the fixed sleep between status checks.
	// Defaults to DefaultPollInterval.
	PollInterval time.Duration

	// MaxAttempts bounds the number of re-polls. Zero means poll forever,
	// which is the default: a request that never settles is the caller's
	// problem, not ours.
	MaxAttempts int
}

// Result is the terminal outcome of a waited-on request.
type Result struct {
	RequestNumber    int   `json:"requestNumber"`
	CompletionStatus State `json:"completionStatus"`
}


