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

package vrago

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	ireq "github.com/Herschelle42/vRA/pkg/vra-go/internal/request"
	r "github.com/Herschelle42/vRA/pkg/vra-go/internal/requester"
	verrors "github.com/Herschelle42/vRA/pkg/vra-go/pkg/errors"
	"github.com/Herschelle42/vRA/pkg/vra-go/pkg/request"
)

type requestsOps struct {
	*r.Requester
}

func (c *Client) Requests() *requestsOps {
	return newRequestsOpsFromRequester(c.requester)
}

func newRequestsOpsFromRequester(req *r.Requester) *requestsOps {
	const (
		pathRequestsBasePath string = "catalog-service/api/consumer/requests"
	)

	return &requestsOps{
		Requester: req.CloneWithNewBasePath(pathRequestsBasePath),
	}
}

// Get fetches the current status of a catalog request.
func (q *requestsOps) Get(ctx context.Context, requestNumber int) (*request.Status, error) {
	if requestNumber <= 0 {
		return nil, verrors.ErrorNoRequestNumberProvided
	}

	resp, err := q.Do(ctx, r.WithPath(strconv.Itoa(requestNumber)))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var internalReq *ireq.InternalRequest
	if err := json.NewDecoder(resp.Body).Decode(&internalReq); err != nil {
		return nil, fmt.Errorf("%w: %s", verrors.ErrorUnmarshallingBody, err)
	}

	status := internalReq.ToStatus()
	if status.RequestNumber == 0 {
		status.RequestNumber = requestNumber
	}

	return status, nil
}

// WaitForCompletion polls a request at a fixed interval until it leaves the
// in-flight states, then returns its final status.
//
// A request that is already SUCCESSFUL on the first check returns right
// away without sleeping. Any other state goes through the loop head, so an
// already-failed request still exits on the first check; the asymmetry is
// intentional and mirrors how the helper has always behaved.
//
// By default the loop is unbounded: set opts.MaxAttempts to put a ceiling
// on the number of re-polls.
func (q *requestsOps) WaitForCompletion(ctx context.Context, requestNumber int, opts request.WaitOptions) (*request.Status, error) {
	if opts.PollInterval == 0 {
		opts.PollInterval = request.DefaultPollInterval
	}

	status, err := q.Get(ctx, requestNumber)
	if err != nil {
		return nil, err
	}

	if status.State != request.StateSuccessful {
		attempts := 0
		for status.State.InFlight() {
			if opts.MaxAttempts > 0 && attempts >= opts.MaxAttempts {
				return nil, fmt.Errorf("%w: request %d still %s",
					verrors.ErrorMaxAttemptsReached, requestNumber, status.State)
			}

			if err := sleep(ctx, opts.PollInterval); err != nil {
				return nil, err
			}

			status, err = q.Get(ctx, requestNumber)
			if err != nil {
				return nil, err
			}

			attempts++
		}
	}

	return status, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}


