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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	vrago "github.com/Herschelle42/vRA/pkg/vra-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	defaultVerbosity int = 1

	tokenEnvVar string = "VRA_TOKEN"
)

type ConnectionOptions struct {
	Server   string `yaml:"server"`
	Insecure bool   `yaml:"insecure"`
}

type Options struct {
	Connection *ConnectionOptions `yaml:"connection,omitempty"`
	Verbosity  int                `yaml:"verbosity"`
	PrettyLogs bool               `yaml:"prettyLogs"`
}

func initLogger(opts *Options) (log zerolog.Logger) {
	logLevels := [3]zerolog.Level{
		zerolog.DebugLevel,
		zerolog.InfoLevel,
		zerolog.ErrorLevel,
	}

	if opts.Verbosity < 0 || opts.Verbosity > 2 {
		fmt.Println("invalid verbosity level provided, using default...")
		opts.Verbosity = defaultVerbosity
	}

	if opts.PrettyLogs {
		log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	log = log.Level(logLevels[opts.Verbosity])
	return log
}

func getSettingsFromFile(settingsPath string) (*Options, error) {
	file, err := os.Open(settingsPath)
	switch {
	case err == nil:
		stat, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("could not check file path: %w", err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("provided file path is a directory")
		}
	case os.IsNotExist(err):
		return nil, fmt.Errorf("provided file path does not exist")
	default:
		return nil, fmt.Errorf("could not open file path: %w", err)
	}

	defer file.Close()

	var settings Options
	if err := yaml.NewDecoder(file).Decode(&settings); err != nil {
		return nil, fmt.Errorf("could not unmarshal settings file: %w", err)
	}

	if settings.Connection == nil {
		settings.Connection = &ConnectionOptions{}
	}

	return &settings, nil
}

// mergeSettings overlays flag values on top of file settings: a flag wins
// only when the user actually changed it.
func mergeSettings(cmd *cobra.Command, flagOpts *Options, fileSettingsPath string) (*Options, error) {
	opts := &Options{
		Connection: &ConnectionOptions{},
		Verbosity:  defaultVerbosity,
	}

	if fileSettingsPath != "" {
		f, err := getSettingsFromFile(fileSettingsPath)
		if err != nil {
			return nil, err
		}
		opts = f
	}

	if cmd.Flag("server").Changed || opts.Connection.Server == "" {
		opts.Connection.Server = flagOpts.Connection.Server
	}

	if cmd.Flag("insecure").Changed {
		opts.Connection.Insecure = flagOpts.Connection.Insecure
	}

	if cmd.Flag("verbosity").Changed {
		opts.Verbosity = flagOpts.Verbosity
	}

	if cmd.Flag("pretty-logs").Changed {
		opts.PrettyLogs = flagOpts.PrettyLogs
	}

	if opts.Connection.Server == "" {
		return nil, fmt.Errorf("no server URL provided")
	}

	return opts, nil
}

// resolveToken picks the bearer token from the flag, then the environment,
// and finally an interactive prompt. Tokens never come from the settings
// file because that's sensitive information.
func resolveToken(token string) (string, error) {
	if token != "" {
		return token, nil
	}

	if envToken := os.Getenv(tokenEnvVar); envToken != "" {
		return envToken, nil
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("no bearer token provided: use --token or %s", tokenEnvVar)
	}

	fmt.Print("Please enter your vRA bearer token (input will be hidden): ")
	byteToken, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("could not read token: %w", err)
	}

	if len(byteToken) == 0 {
		return "", fmt.Errorf("token provided is invalid")
	}

	return string(byteToken), nil
}

func getClient(opts *Options, token string) (*vrago.Client, error) {
	vOpts := []vrago.ClientOption{}
	if opts.Connection.Insecure {
		vOpts = append(vOpts, vrago.WithSkipInsecure())
	}

	return vrago.NewClient(&vrago.Connection{
		BaseURL: opts.Connection.Server,
		Token:   token,
	}, vOpts...)
}

// parseRequestNumbers reads request numbers from the positional arguments,
// or one per line from the reader (usually stdin) when no arguments were
// given, so numbers can be piped in.
func parseRequestNumbers(args []string, in io.Reader) ([]int, error) {
	numbers := []int{}

	if len(args) > 0 {
		for _, arg := range args {
			number, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid request number provided: %s", arg)
			}

			numbers = append(numbers, number)
		}

		return numbers, nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		number, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("invalid request number provided: %s", line)
		}

		numbers = append(numbers, number)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read request numbers: %w", err)
	}

	if len(numbers) == 0 {
		return nil, fmt.Errorf("no request numbers provided")
	}

	return numbers, nil
}


