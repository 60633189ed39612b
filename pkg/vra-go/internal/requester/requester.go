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

package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	verrors "github.com/Herschelle42/vRA/pkg/vra-go/pkg/errors"
)

type Requester struct {
	baseURL    url.URL
	httpClient *http.Client
	token      string
}

func NewRequester(baseURL *url.URL, httpClient *http.Client, token string) *Requester {
	return &Requester{
		baseURL:    *baseURL,
		httpClient: httpClient,
		token:      token,
	}
}

// Do performs a single request. There are no retries: the session is managed
// externally and a failure is always surfaced to the caller as-is.
func (r *Requester) Do(ctx context.Context, opts ...WithRequestOption) (*http.Response, error) {
	// ----------------------------------
	// Prepare options
	// ----------------------------------

	reqOptions := &RequestOptions{
		method:  http.MethodGet,
		body:    http.NoBody,
		headers: http.Header{},
	}

	for _, opt := range opts {
		opt(reqOptions)
	}

	if _, exists := reqOptions.headers["Content-Type"]; !exists {
		reqOptions.headers.Add("Content-Type", "application/json")
	}
	reqOptions.headers.Set("Accept", "application/json")
	reqOptions.headers.Set("Authorization", "Bearer "+r.token)

	// Make the URL
	u := r.baseURL
	u.Path = path.Join(r.baseURL.Path, reqOptions.path)
	if len(reqOptions.queryParams) > 0 {
		u.RawQuery = reqOptions.queryParams.Encode()
	}

	// ----------------------------------
	// Create and make the request
	// ----------------------------------

	req, err := http.NewRequestWithContext(ctx, reqOptions.method, u.String(), reqOptions.body)
	if err != nil {
		return nil, fmt.Errorf("error while creating request: %w", err)
	}
	req.Header = reqOptions.headers

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", verrors.ErrorUpstreamRequest, err)
	}

	// ----------------------------------
	// Parse the response
	// ----------------------------------

	bodyResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, fmt.Errorf("%w: %s", verrors.ErrorParsingBody, err)
	}
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(bodyResp))

	// vRA answers with an HTML SSO page instead of JSON when the session
	// is gone. Detect that and say so, instead of failing on a JSON decode
	// much later with a confusing message.
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if loginPage, _ := isLoginPage(bytes.NewReader(bodyResp)); loginPage {
			return resp, verrors.ErrorSessionExpired
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusNotFound {
			return resp, verrors.ErrorNotFound
		}

		// Try the vRA error envelope first, so the caller sees the
		// server's own message when there is one.
		var vraErr verrors.VraError
		if parseErr := json.Unmarshal(bodyResp, &vraErr); parseErr == nil && len(vraErr.Errors) > 0 {
			return resp, &vraErr
		}

		return resp, fmt.Errorf("%w: unexpected status %d from %s",
			verrors.ErrorUpstreamRequest, resp.StatusCode, u.Path)
	}

	// Strip the body down to a single field of the response envelope when
	// the caller asked for one, e.g. the "content" array of a paged listing.
	if reqOptions.respField != "" {
		rawMessage := map[string]json.RawMessage{}
		if unmarshErr := json.Unmarshal(bodyResp, &rawMessage); unmarshErr == nil {
			if data, exists := rawMessage[reqOptions.respField]; exists {
				resp.Body = io.NopCloser(bytes.NewReader(data))
			}
		}
	}

	return resp, nil
}

// Get is just a shortcut for Do(ctx, WithGET())
func (r *Requester) Get(ctx context.Context, opts ...WithRequestOption) (*http.Response, error) {
	opts = append(opts, WithGET())
	return r.Do(ctx, opts...)
}

func (r *Requester) CloneWithNewBasePath(newPath string) *Requester {
	newRequester := *r
	newRequester.baseURL.Path = newPath

	return &newRequester
}


