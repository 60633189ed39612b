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

package errors

import (
	"fmt"
	"strings"
)

var (
	ErrorNotConnected            error = fmt.Errorf("no active connection: a server URL and bearer token must be provided")
	ErrorUpstreamRequest         error = fmt.Errorf("upstream request failed")
	ErrorSessionExpired          error = fmt.Errorf("session expired or not authenticated: the server answered with a login page")
	ErrorParsingBody             error = fmt.Errorf("could not read the response body")
	ErrorUnmarshallingBody       error = fmt.Errorf("could not unmarshal the response body")
	ErrorNoIDProvided            error = fmt.Errorf("no ID provided")
	ErrorNoRequestNumberProvided error = fmt.Errorf("no request number provided")
	ErrorNotFound                error = fmt.Errorf("resource not found")
	ErrorMaxAttemptsReached      error = fmt.Errorf("maximum number of polling attempts reached")
)

// VraError is the error envelope that vRA services return on non-2xx
// responses, e.g. {"errors":[{"code":50505,"message":"...","systemMessage":"..."}]}.
type VraError struct {
	Errors []VraErrorEntry `json:"errors"`
}

type VraErrorEntry struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	SystemMessage string `json:"systemMessage"`
}

func (v *VraError) Error() string {
	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msg := e.Message
		if msg == "" {
			msg = e.SystemMessage
		}

		msgs = append(msgs, fmt.Sprintf("code: %d, message: %s", e.Code, msg))
	}

	return strings.Join(msgs, "; ")
}

// Unwrap makes every decoded vRA error envelope match ErrorUpstreamRequest.
func (v *VraError) Unwrap() error {
	return ErrorUpstreamRequest
}


