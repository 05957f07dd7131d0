/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFontFamily is the toolkit's stock font name.
const DefaultFontFamily = "TkDefaultFont"

// FontSizes are the sizes offered by the font dialog.
var FontSizes = []int{8, 9, 10, 11, 12, 14, 16, 18, 20, 22, 24, 26, 28, 36, 48, 72}

// FontStyles are the styles offered by the font dialog.
var FontStyles = []string{"normal", "bold", "italic", "bold italic"}

// Font is the structured form of a "family, size, style" font value.
type Font struct {
	Family string
	Size   int
	Style  string
}

// DefaultFont is used when a value cannot be parsed.
func DefaultFont() Font { return Font{Family: DefaultFontFamily, Size: 10, Style: "normal"} }

// ParseFont reads "family, size, style". Missing parts fall back to the
// defaults; a value without a comma is taken as the family only. A size that
// is not a whole number leaves the default in place.
func ParseFont(s string) Font {
	f := DefaultFont()
	if !strings.Contains(s, ",") {
		if t := strings.TrimSpace(s); t != "" {
			f.Family = t
		}
		return f
	}
	parts := strings.Split(s, ",")
	if fam := strings.TrimSpace(parts[0]); fam != "" {
		f.Family = fam
	}
	if len(parts) > 1 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			f.Size = n
		}
	}
	if len(parts) > 2 {
		if st := strings.TrimSpace(parts[2]); st != "" {
			f.Style = st
		}
	}
	return f
}

func (f Font) String() string {
	return fmt.Sprintf("%s, %d, %s", f.Family, f.Size, f.Style)
}

// Bold and Italic decode the style.
func (f Font) Bold() bool   { return strings.Contains(f.Style, "bold") }
func (f Font) Italic() bool { return strings.Contains(f.Style, "italic") }
