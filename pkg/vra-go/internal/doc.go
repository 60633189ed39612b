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

// Package internal contains the types used to unmarshal data received from
// vRA. The wire format is verbose and inconsistent -- schema facet values are
// wrapped in several layers of typed envelopes, and listing and detail
// endpoints disagree on field shapes -- so these types act as a middle step
// where data lands first and is then converted into the public, more polished
// format found in the "pkg" folder.
package internal


