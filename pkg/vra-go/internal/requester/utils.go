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
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// isLoginPage reports whether the HTML body is the vRA SSO login form, which
// is what the appliance serves when the bearer token is missing or expired.
func isLoginPage(reader io.Reader) (bool, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return false, fmt.Errorf("cannot open HTML document: %w", err)
	}

	if doc.FindMatcher(goquery.Single("form#loginForm")).Length() == 1 {
		return true, nil
	}

	// Older appliances render the form without the id, but always with a
	// username input.
	return doc.FindMatcher(goquery.Single("input[name='username']")).Length() == 1, nil
}


