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

package inspector

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	vrago "github.com/Herschelle42/vRA/pkg/vra-go"
	sc "github.com/Herschelle42/vRA/pkg/vra-go/pkg/softwarecomponent"
	"github.com/rs/zerolog"
)

const (
	// The type ID vRA assigns to encrypted property values.
	secureStringTypeID string = "SECURE_STRING"
)

// Options selects which schema fields are reported.
type Options struct {
	// Filter is matched against each field's label. Empty matches
	// everything.
	Filter string

	// ExactMatch switches from case-insensitive pattern matching to plain
	// equality.
	ExactMatch bool
}

// Record is one flattened row per schema field of a software component.
type Record struct {
	ComponentName string `json:"componentName"`
	ComponentID   string `json:"componentId"`
	PropertyName  string `json:"propertyName"`
	Description   string `json:"description,omitempty"`
	TypeID        string `json:"typeId"`
	Value         any    `json:"value,omitempty"`
	Encrypted     bool   `json:"encrypted"`
	Overrideable  bool   `json:"overrideable"`
	Required      bool   `json:"required"`
	Computed      bool   `json:"computed"`
}

// Inspector lists software component types and flattens their schema fields
// into one Record per matching property.
type Inspector struct {
	client *vrago.Client
	log    zerolog.Logger
}

// New returns a new instance of the inspector. It returns an error in case
// the client passed is nil.
func New(client *vrago.Client, log zerolog.Logger) (*Inspector, error) {
	if client == nil {
		return nil, fmt.Errorf("vRA client passed is nil")
	}

	return &Inspector{
		client: client,
		log:    log.With().Str("worker", "Property Inspector").Logger(),
	}, nil
}

// Inspect walks every software component type and calls emit once per
// matching schema field, as soon as the record is built. Components are
// visited sorted by name, fields in schema-declared order, so output is
// deterministic. The first failed fetch or emit aborts the whole walk.
func (i *Inspector) Inspect(ctx context.Context, opts Options, emit func(Record) error) error {
	matches, err := newLabelMatcher(opts)
	if err != nil {
		return fmt.Errorf("invalid property filter provided: %w", err)
	}

	ops := i.client.SoftwareComponents()

	summaries, err := ops.List(ctx)
	if err != nil {
		return fmt.Errorf("could not list software component types: %w", err)
	}

	sort.Slice(summaries, func(a, b int) bool {
		return summaries[a].Name < summaries[b].Name
	})

	i.log.Debug().Int("components", len(summaries)).Msg("retrieved software component types")

	for _, summary := range summaries {
		component, err := ops.Get(ctx, summary.ID)
		if err != nil {
			return fmt.Errorf("could not fetch software component type %s: %w", summary.ID, err)
		}

		for _, field := range component.Fields {
			if field.IsReference() {
				continue
			}

			if !matches(field.Label) {
				continue
			}

			if err := emit(buildRecord(component, field)); err != nil {
				return err
			}
		}
	}

	return nil
}

func newLabelMatcher(opts Options) (func(string) bool, error) {
	if opts.Filter == "" {
		return func(string) bool { return true }, nil
	}

	if opts.ExactMatch {
		return func(label string) bool { return label == opts.Filter }, nil
	}

	pattern, err := regexp.Compile("(?i)" + opts.Filter)
	if err != nil {
		return nil, err
	}

	return pattern.MatchString, nil
}

func buildRecord(component *sc.Component, field sc.Field) Record {
	value := any(nil)
	if derived, ok := field.Facet(sc.FacetDerivedValue); ok {
		value = derived.Value
	} else if def, ok := field.Facet(sc.FacetDefaultValue); ok {
		value = def.Value
	}

	_, hasDefault := field.Facet(sc.FacetDefaultValue)

	required := false
	if mandatory, ok := field.Facet(sc.FacetMandatory); ok {
		required = sc.Truthy(mandatory.Value)
	}

	// Computed keys on the *presence* of the editable facet alone, never on
	// its value. That reads inverted for a flag called "computed", but it is
	// how these rows have always been reported, and consumers depend on it.
	_, hasEditable := field.Facet(sc.FacetEditable)

	return Record{
		ComponentName: component.Name,
		ComponentID:   component.ID,
		PropertyName:  field.Label,
		Description:   field.Description,
		TypeID:        field.DataType.TypeID,
		Value:         value,
		Encrypted:     field.DataType.TypeID == secureStringTypeID,
		Overrideable:  hasDefault,
		Required:      required,
		Computed:      hasEditable,
	}
}


