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

package request

import (
	req "github.com/Herschelle42/vRA/pkg/vra-go/pkg/request"
)

type InternalRequest struct {
	ID            string `json:"id,omitempty"`
	RequestNumber int    `json:"requestNumber"`
	State         string `json:"state"`
	Phase         string `json:"phase,omitempty"`
	Description   string `json:"description,omitempty"`
	RequestedBy   string `json:"requestedBy,omitempty"`
}

func (r *InternalRequest) ToStatus() *req.Status {
	return &req.Status{
		RequestNumber: r.RequestNumber,
		State:         req.State(r.State),
	}
}


