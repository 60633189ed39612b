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

package softwarecomponent

import (
	"encoding/json"

	sc "github.com/Herschelle42/vRA/pkg/vra-go/pkg/softwarecomponent"
)

type InternalSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *InternalSummary) ToSummary() *sc.Summary {
	return &sc.Summary{
		ID:   s.ID,
		Name: s.Name,
	}
}

type InternalComponent struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Schema InternalSchema `json:"schema"`
}

type InternalSchema struct {
	Fields []InternalField `json:"fields"`
}

type InternalField struct {
	ID          string            `json:"id,omitempty"`
	Label       string            `json:"label"`
	Description string            `json:"description,omitempty"`
	DataType    InternalDataType  `json:"dataType"`
	Facets      []json.RawMessage `json:"facets,omitempty"`
}

type InternalDataType struct {
	Type   string `json:"type"`
	TypeID string `json:"typeId,omitempty"`
}

func (c *InternalComponent) ToComponent() *sc.Component {
	return &sc.Component{
		ID:   c.ID,
		Name: c.Name,
		Fields: func() []sc.Field {
			fields := []sc.Field{}
			for _, f := range c.Schema.Fields {
				fields = append(fields, sc.Field{
					Label:       f.Label,
					Description: f.Description,
					DataType: sc.DataType{
						Type:   f.DataType.Type,
						TypeID: f.DataType.TypeID,
					},
					Facets: func() []sc.Facet {
						facets := []sc.Facet{}
						for _, raw := range f.Facets {
							var facet struct {
								Type  string          `json:"type"`
								Value json.RawMessage `json:"value"`
							}
							if err := json.Unmarshal(raw, &facet); err != nil || facet.Type == "" {
								// Unknown shape, nothing we can do with it.
								continue
							}

							facets = append(facets, sc.Facet{
								Kind:  sc.FacetKind(facet.Type),
								Value: unwrapScalar(facet.Value),
							})
						}
						return facets
					}(),
				})
			}
			return fields
		}(),
	}
}

// unwrapScalar digs through the nested value wrappers the schema uses, e.g.
// {"type":"constant","value":{"type":"string","value":"apache"}}, and
// returns the innermost scalar.
func unwrapScalar(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}

	var wrapper struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Value != nil {
		return unwrapScalar(wrapper.Value)
	}

	var scalar any
	if err := json.Unmarshal(raw, &scalar); err != nil {
		return nil
	}

	return scalar
}


