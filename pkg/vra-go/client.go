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
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"

	r "github.com/Herschelle42/vRA/pkg/vra-go/internal/requester"
	verrors "github.com/Herschelle42/vRA/pkg/vra-go/pkg/errors"
)

// Connection is an already-established vRA session: the appliance URL and a
// bearer token obtained by an external login step. The client never creates,
// refreshes or tears down the session itself.
type Connection struct {
	BaseURL string
	Token   string
}

type Client struct {
	requester *r.Requester
}

type ClientOptions struct {
	SkipInsecure bool
	HTTPClient   *http.Client
}

type ClientOption func(*ClientOptions)

func WithSkipInsecure() ClientOption {
	return func(opts *ClientOptions) {
		opts.SkipInsecure = true
	}
}

// WithHTTPClient makes the client perform requests with the provided
// http.Client instead of a default one.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = httpClient
	}
}

// NewClient returns a client bound to the provided connection. It fails with
// ErrorNotConnected when no usable connection is provided, before any
// network traffic happens.
func NewClient(conn *Connection, opts ...ClientOption) (*Client, error) {
	options := &ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if conn == nil || conn.BaseURL == "" || conn.Token == "" {
		return nil, verrors.ErrorNotConnected
	}

	vurl, err := url.Parse(conn.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base URL doesn't look valid: %w", err)
	}

	client := options.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	if options.SkipInsecure {
		client.Transport = getInsecureSkipVerifyConfig()
	}

	return &Client{
		requester: r.NewRequester(vurl, client, conn.Token),
	}, nil
}

func getInsecureSkipVerifyConfig() (customTransport *http.Transport) {
	customTransport = http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	return
}


