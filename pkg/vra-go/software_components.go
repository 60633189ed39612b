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
	"context"
	"encoding/json"
	"fmt"

	r "github.com/Herschelle42/vRA/pkg/vra-go/internal/requester"
	isc "github.com/Herschelle42/vRA/pkg/vra-go/internal/softwarecomponent"
	verrors "github.com/Herschelle42/vRA/pkg/vra-go/pkg/errors"
	sc "github.com/Herschelle42/vRA/pkg/vra-go/pkg/softwarecomponent"
)

type softwareComponentsOps struct {
	*r.Requester
}

func (c *Client) SoftwareComponents() *softwareComponentsOps {
	return newSoftwareComponentsOpsFromRequester(c.requester)
}

func newSoftwareComponentsOpsFromRequester(req *r.Requester) *softwareComponentsOps {
	const (
		pathSoftwareComponentTypesBasePath string = "software-service/api/softwarecomponenttypes"
	)

	return &softwareComponentsOps{
		Requester: req.CloneWithNewBasePath(pathSoftwareComponentTypesBasePath),
	}
}

// List returns the first page of software component types, up to 100 entries.
// A single page is all the helper ever asks for.
func (s *softwareComponentsOps) List(ctx context.Context) ([]*sc.Summary, error) {
	resp, err := s.Do(ctx,
		r.WithQueryParameter("page", "1"),
		r.WithQueryParameter("limit", "100"),
		r.WithResponseField("content"),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	summaries := []*sc.Summary{}
	{
		var _summaries []*isc.InternalSummary
		if err := json.NewDecoder(resp.Body).Decode(&_summaries); err != nil {
			return nil, fmt.Errorf("%w: %s", verrors.ErrorUnmarshallingBody, err)
		}

		for _, _summary := range _summaries {
			summaries = append(summaries, _summary.ToSummary())
		}
	}

	return summaries, nil
}

// Get fetches the full definition of a software component type, including
// its schema fields in server-declared order.
func (s *softwareComponentsOps) Get(ctx context.Context, id string) (*sc.Component, error) {
	if id == "" {
		return nil, verrors.ErrorNoIDProvided
	}

	resp, err := s.Do(ctx, r.WithPath(id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var component *isc.InternalComponent
	if err := json.NewDecoder(resp.Body).Decode(&component); err != nil {
		return nil, fmt.Errorf("%w: %s", verrors.ErrorUnmarshallingBody, err)
	}

	return component.ToComponent(), nil
}


