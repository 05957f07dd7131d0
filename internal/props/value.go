/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Value is a property value: a string, a number or a boolean.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	s    string
	n    float64
	b    bool
}

func String(s string) Value  { return Value{kind: KindString, s: s} }
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. Only meaningful for KindString.
func (v Value) Str() string { return v.s }

// Num returns the numeric payload. Only meaningful for KindNumber.
func (v Value) Num() float64 { return v.n }

// BoolVal returns the boolean payload. Only meaningful for KindBool.
func (v Value) BoolVal() bool { return v.b }

// String renders the value as shown in the property list. Whole numbers have
// no fractional part and booleans print as "true" or "false".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// IsDigits reports whether the value is a non-empty string made only of
// ASCII digits.
func (v Value) IsDigits() bool {
	if v.kind != KindString || v.s == "" {
		return false
	}
	for _, r := range v.s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Int interprets the value as a whole number. Strings are parsed after
// trimming; fractional numbers are truncated. Booleans never convert.
func (v Value) Int() (int, bool) {
	switch v.kind {
	case KindNumber:
		return int(v.n), true
	case KindString:
		n, err := strconv.Atoi(strings.TrimSpace(v.s))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Equal compares kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.n == o.n
	case KindBool:
		return v.b == o.b
	default:
		return v.s == o.s
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.n)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return json.Marshal(v.s)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case string:
		*v = String(x)
	case float64:
		*v = Number(x)
	case bool:
		*v = Bool(x)
	default:
		return fmt.Errorf("props: unsupported value %s", string(data))
	}
	return nil
}
