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

package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestNumbersFromArgs(t *testing.T) {
	numbers, err := parseRequestNumbers([]string{"1001", "2002"}, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, []int{1001, 2002}, numbers)
}

func TestParseRequestNumbersFromReader(t *testing.T) {
	numbers, err := parseRequestNumbers(nil, strings.NewReader("1001\n\n 2002 \n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1001, 2002}, numbers)
}

func TestParseRequestNumbersInvalid(t *testing.T) {
	_, err := parseRequestNumbers([]string{"not-a-number"}, strings.NewReader(""))
	assert.ErrorContains(t, err, "invalid request number")

	_, err = parseRequestNumbers(nil, strings.NewReader("1001\noops\n"))
	assert.ErrorContains(t, err, "invalid request number")
}

func TestParseRequestNumbersEmpty(t *testing.T) {
	_, err := parseRequestNumbers(nil, strings.NewReader(""))
	assert.ErrorContains(t, err, "no request numbers provided")
}

func TestGetSettingsFromFile(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`
connection:
  server: https://vra.example.com
  insecure: true
verbosity: 2
prettyLogs: true
`), 0o600))

	settings, err := getSettingsFromFile(settingsPath)
	require.NoError(t, err)

	assert.Equal(t, "https://vra.example.com", settings.Connection.Server)
	assert.True(t, settings.Connection.Insecure)
	assert.Equal(t, 2, settings.Verbosity)
	assert.True(t, settings.PrettyLogs)
}

func TestGetSettingsFromFileMissing(t *testing.T) {
	_, err := getSettingsFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestGetSettingsFromFileDirectory(t *testing.T) {
	_, err := getSettingsFromFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}

func TestGetSettingsFromFileNoConnection(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("verbosity: 0\n"), 0o600))

	settings, err := getSettingsFromFile(settingsPath)
	require.NoError(t, err)
	require.NotNil(t, settings.Connection)
	assert.Empty(t, settings.Connection.Server)
}


