/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"image/color"
	"testing"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Number(10), "10"},
		{Number(2.5), "2.5"},
		{Bool(true), "true"},
		{String("flat"), "flat"},
		{Value{}, ""},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestValueIsDigitsAndInt(t *testing.T) {
	if !String("120").IsDigits() || String("12a").IsDigits() || String("").IsDigits() || Number(5).IsDigits() {
		t.Fatalf("IsDigits mismatch")
	}
	if n, ok := String(" 42 ").Int(); !ok || n != 42 {
		t.Fatalf("Int() of string = %d,%v", n, ok)
	}
	if _, ok := String("wide").Int(); ok {
		t.Fatalf("non-numeric string should not convert")
	}
	if _, ok := Bool(true).Int(); ok {
		t.Fatalf("bool should not convert")
	}
}

func TestParseFont(t *testing.T) {
	cases := []struct {
		in   string
		want Font
	}{
		{"TkDefaultFont", Font{"TkDefaultFont", 10, "normal"}},
		{"Arial, 14, bold", Font{"Arial", 14, "bold"}},
		{"Courier, big", Font{"Courier", 10, "normal"}},
		{"Go Mono, 9, bold italic", Font{"Go Mono", 9, "bold italic"}},
		{"", DefaultFont()},
	}
	for _, c := range cases {
		if got := ParseFont(c.in); got != c.want {
			t.Errorf("ParseFont(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
	f := Font{Family: "Arial", Size: 12, Style: "bold italic"}
	if f.String() != "Arial, 12, bold italic" || !f.Bold() || !f.Italic() {
		t.Fatalf("font formatting mismatch: %s", f)
	}
}

func TestColors(t *testing.T) {
	c, ok := ParseColor("#FF8000")
	if !ok || c != (color.RGBA{255, 128, 0, 255}) {
		t.Fatalf("ParseColor = %v,%v", c, ok)
	}
	if c, ok := ParseColor("#abc"); !ok || c != (color.RGBA{0xaa, 0xbb, 0xcc, 255}) {
		t.Fatalf("short form = %v,%v", c, ok)
	}
	for _, bad := range []string{"red", "#12", "#GGHHII"} {
		if _, ok := ParseColor(bad); ok {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
	if FormatColor(color.RGBA{0x33, 0x99, 0xFF, 0xff}) != "#3399ff" {
		t.Fatalf("FormatColor mismatch")
	}
}
