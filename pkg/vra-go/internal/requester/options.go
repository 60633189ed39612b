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
	"io"
	"net/http"
	"net/url"
	"path"
)

type RequestOptions struct {
	method      string
	path        string
	body        io.Reader
	headers     http.Header
	respField   string
	queryParams url.Values
}

type WithRequestOption func(r *RequestOptions)

func WithGET() WithRequestOption {
	return func(r *RequestOptions) {
		r.method = http.MethodGet
	}
}

func WithPath(urlPath string) WithRequestOption {
	return func(r *RequestOptions) {
		r.path = path.Join(urlPath)
	}
}

func WithHeader(key string, values ...string) WithRequestOption {
	return func(r *RequestOptions) {
		if len(r.headers) == 0 {
			r.headers = http.Header{}
		}

		for _, value := range values {
			r.headers.Add(key, value)
		}
	}
}

// WithResponseField unwraps a single field of the JSON response envelope
// into the body handed back to the caller.
func WithResponseField(field string) WithRequestOption {
	return func(r *RequestOptions) {
		r.respField = field
	}
}

func WithQueryParameter(key string, values ...string) WithRequestOption {
	return func(r *RequestOptions) {
		if len(r.queryParams) == 0 {
			r.queryParams = url.Values{}
		}

		for _, value := range values {
			r.queryParams.Add(key, value)
		}
	}
}


