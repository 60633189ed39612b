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
	"testing"

	verrors "github.com/Herschelle42/vRA/pkg/vra-go/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewClientNoConnection(t *testing.T) {
	client, err := NewClient(nil)
	assert.ErrorIs(t, err, verrors.ErrorNotConnected)
	assert.Nil(t, client)
}

func TestNewClientNoServer(t *testing.T) {
	client, err := NewClient(&Connection{Token: "abc"})
	assert.ErrorIs(t, err, verrors.ErrorNotConnected)
	assert.Nil(t, client)
}

func TestNewClientNoToken(t *testing.T) {
	client, err := NewClient(&Connection{BaseURL: "https://vra.example.com"})
	assert.ErrorIs(t, err, verrors.ErrorNotConnected)
	assert.Nil(t, client)
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(&Connection{
		BaseURL: "https://vra.example.com",
		Token:   "abc",
	})
	assert.NoError(t, err)
	assert.NotNil(t, client)
}


