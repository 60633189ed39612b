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
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	verrors "github.com/Herschelle42/vRA/pkg/vra-go/pkg/errors"
	"github.com/Herschelle42/vRA/pkg/vra-go/pkg/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestStatusServer serves a scripted sequence of states per request
// number and counts how often each one was fetched. Once a sequence is
// exhausted its last state keeps being served.
type requestStatusServer struct {
	*httptest.Server
	fetches map[string]int
}

func newRequestStatusServer(t *testing.T, sequences map[string][]request.State) *requestStatusServer {
	t.Helper()

	s := &requestStatusServer{fetches: map[string]int{}}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		number := r.URL.Path[len("/catalog-service/api/consumer/requests/"):]
		sequence, exists := sequences[number]
		if !exists {
			http.NotFound(w, r)
			return
		}

		i := s.fetches[number]
		if i >= len(sequence) {
			i = len(sequence) - 1
		}
		s.fetches[number]++

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": "req-%s", "requestNumber": %s, "state": %q}`,
			number, number, sequence[i])
	}))

	return s
}

func TestRequestsGet(t *testing.T) {
	server := newRequestStatusServer(t, map[string][]request.State{
		"1001": {request.StateInProgress},
	})
	defer server.Close()

	client := newClientForTesting(t, server.Server)

	status, err := client.Requests().Get(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, 1001, status.RequestNumber)
	assert.Equal(t, request.StateInProgress, status.State)
	assert.True(t, status.State.InFlight())
}

func TestRequestsGetNoNumber(t *testing.T) {
	server := newRequestStatusServer(t, map[string][]request.State{})
	defer server.Close()

	client := newClientForTesting(t, server.Server)

	_, err := client.Requests().Get(context.Background(), 0)
	assert.ErrorIs(t, err, verrors.ErrorNoRequestNumberProvided)
	assert.Zero(t, len(server.fetches))
}

func TestWaitForCompletionPollsUntilSuccessful(t *testing.T) {
	server := newRequestStatusServer(t, map[string][]request.State{
		"1001": {request.StateSubmitted, request.StateInProgress, request.StateSuccessful},
	})
	defer server.Close()

	client := newClientForTesting(t, server.Server)

	status, err := client.Requests().WaitForCompletion(context.Background(), 1001,
		request.WaitOptions{PollInterval: 5 * time.Millisecond})
	require.NoError(t, err)

	assert.Equal(t, request.StateSuccessful, status.State)
	// One initial fetch plus one per sleep.
	assert.Equal(t, 3, server.fetches["1001"])
}

func TestWaitForCompletionAlreadySuccessful(t *testing.T) {
	server := newRequestStatusServer(t, map[string][]request.State{
		"2002": {request.StateSuccessful},
	})
	defer server.Close()

	client := newClientForTesting(t, server.Server)

	start := time.Now()
	status, err := client.Requests().WaitForCompletion(context.Background(), 2002,
		request.WaitOptions{PollInterval: time.Second})
	require.NoError(t, err)

	assert.Equal(t, request.StateSuccessful, status.State)
	assert.Equal(t, 1, server.fetches["2002"])
	assert.Less(t, time.Since(start), time.Second)
}

func TestWaitForCompletionFailedExitsOnFirstCheck(t *testing.T) {
	server := newRequestStatusServer(t, map[string][]request.State{
		"1002": {request.StateFailed},
	})
	defer server.Close()

	client := newClientForTesting(t, server.Server)

	status, err := client.Requests().WaitForCompletion(context.Background(), 1002,
		request.WaitOptions{PollInterval: time.Second})
	require.NoError(t, err)

	assert.Equal(t, request.StateFailed, status.State)
	assert.Equal(t, 1, server.fetches["1002"])
}

func TestWaitForCompletionMaxAttempts(t *testing.T) {
	server := newRequestStatusServer(t, map[string][]request.State{
		"3003": {request.StateInProgress},
	})
	defer server.Close()

	client := newClientForTesting(t, server.Server)

	_, err := client.Requests().WaitForCompletion(context.Background(), 3003,
		request.WaitOptions{PollInterval: time.Millisecond, MaxAttempts: 3})
	assert.ErrorIs(t, err, verrors.ErrorMaxAttemptsReached)

	// Initial fetch plus the three allowed re-polls.
	assert.Equal(t, 4, server.fetches["3003"])
}

func TestWaitForCompletionContextCancelled(t *testing.T) {
	server := newRequestStatusServer(t, map[string][]request.State{
		"3003": {request.StateInProgress},
	})
	defer server.Close()

	client := newClientForTesting(t, server.Server)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Requests().WaitForCompletion(ctx, 3003,
		request.WaitOptions{PollInterval: time.Hour})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForCompletionFetchFailure(t *testing.T) {
	server := newRequestStatusServer(t, map[string][]request.State{})
	defer server.Close()

	client := newClientForTesting(t, server.Server)

	_, err := client.Requests().WaitForCompletion(context.Background(), 9999,
		request.WaitOptions{PollInterval: time.Millisecond})
	assert.ErrorIs(t, err, verrors.ErrorNotFound)
}


