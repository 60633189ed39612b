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

// Summary is a lightweight listing entry of a software component type.
type Summary struct {
	ID   string
	Name string
}

// Component is the full definition of a software component type, with its
// schema fields in the order the server declares them.
type Component struct {
	ID     string
	Name   string
	Fields []Field
}

// The data type a field holds, e.g. {primitive, STRING} or
// {primitive, SECURE_STRING}. Relationship fields have Type "ref".
type DataType struct {
	Type   string
	TypeID string
}

type FacetKind string

// NON-EXHAUSTIVE: the server may attach facet kinds we do not know about.
const (
	FacetDerivedValue FacetKind = "derivedValue"
	FacetDefaultValue FacetKind = "defaultValue"
	FacetMandatory    FacetKind = "mandatory"
	FacetEditable     FacetKind = "editable"
)

// Facet is a named sub-attribute of a field. Value holds the innermost
// scalar of the server's nested value wrappers, already unwrapped.
type Facet struct {
	Kind  FacetKind
	Value any
}

type Field struct {
	Label       string
	Description string
	DataType    DataType
	Facets      []Facet
}

// IsReference reports whether the field is an internal relationship field.
// Such fields never represent a user-visible property.
func (f Field) IsReference() bool {
	return f.DataType.Type == "ref"
}

// Facet returns the first facet of the given kind. Facets are unordered and
// at most one of each kind is expected, but duplicates can happen; the first
// match wins.
func (f Field) Facet(kind FacetKind) (Facet, bool) {
	for _, facet := range f.Facets {
		if facet.Kind == kind {
			return facet, true
		}
	}

	return Facet{}, false
}

// Truthy coerces a facet scalar to a boolean: true for boolean true, a
// non-empty string and a non-zero number; false for nil and everything else.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		// encoding/json decodes every JSON number as float64.
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	default:
		return false
	}
}


