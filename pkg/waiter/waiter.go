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

package waiter

import (
	"context"
	"fmt"
	"time"

	vrago "github.com/Herschelle42/vRA/pkg/vra-go"
	"github.com/Herschelle42/vRA/pkg/vra-go/pkg/request"
	"github.com/rs/zerolog"
)

// Options controls how requests are polled.
type Options struct {
	// PollInterval is the fixed sleep between status checks. Defaults to
	// request.DefaultPollInterval.
	PollInterval time.Duration

	// MaxAttempts bounds re-polls per request. Zero polls forever.
	MaxAttempts int
}

// Waiter blocks until catalog requests settle into a terminal state and
// reports their outcome.
type Waiter struct {
	client *vrago.Client
	log    zerolog.Logger
}

// New returns a new instance of the waiter. It returns an error in case the
// client passed is nil.
func New(client *vrago.Client, log zerolog.Logger) (*Waiter, error) {
	if client == nil {
		return nil, fmt.Errorf("vRA client passed is nil")
	}

	return &Waiter{
		client: client,
		log:    log.With().Str("worker", "Request Waiter").Logger(),
	}, nil
}

// WaitForCompletion resolves each request number strictly in input order:
// the next number is not even fetched until the current one has settled.
// emit is called with each outcome as soon as it is known. The first fetch
// or emit failure aborts the remaining numbers.
//
// Processing one request at a time is deliberately slow and simple; nothing
// here runs in parallel.
func (w *Waiter) WaitForCompletion(ctx context.Context, requestNumbers []int, opts Options, emit func(request.Result) error) error {
	ops := w.client.Requests()

	for _, requestNumber := range requestNumbers {
		w.log.Debug().
			Int("request", requestNumber).
			Str("poll-interval", w.interval(opts).String()).
			Msg("waiting for request to settle")

		status, err := ops.WaitForCompletion(ctx, requestNumber, request.WaitOptions{
			PollInterval: opts.PollInterval,
			MaxAttempts:  opts.MaxAttempts,
		})
		if err != nil {
			return fmt.Errorf("error while waiting for request %d: %w", requestNumber, err)
		}

		w.log.Info().
			Int("request", requestNumber).
			Str("state", string(status.State)).
			Msg("request settled")

		if err := emit(request.Result{
			RequestNumber:    requestNumber,
			CompletionStatus: status.State,
		}); err != nil {
			return err
		}
	}

	return nil
}

func (w *Waiter) interval(opts Options) time.Duration {
	if opts.PollInterval == 0 {
		return request.DefaultPollInterval
	}

	return opts.PollInterval
}


