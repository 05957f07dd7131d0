/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package catalog

// SizeClass groups widget types that share a default drop size.
type SizeClass int

const (
	Small SizeClass = iota
	Container
	Medium
	Strip
)

func (s SizeClass) String() string {
	switch s {
	case Container:
		return "container"
	case Medium:
		return "medium"
	case Strip:
		return "strip"
	default:
		return "small"
	}
}

var sizeClasses = map[Type]SizeClass{
	"Frame":          Container,
	"Panel":          Container,
	"GroupBox":       Container,
	"TabControl":     Container,
	"SplitContainer": Container,
	"TextBox":        Medium,
	"DataGridView":   Medium,
	"ListView":       Medium,
	"TreeView":       Medium,
	"MenuStrip":      Strip,
	"ToolStrip":      Strip,
	"StatusStrip":    Strip,
}

// ClassOf returns the size class of t. Anything not listed is Small.
func ClassOf(t Type) SizeClass { return sizeClasses[t] }

// Size returns the width and height of a size class before snapping.
func (s SizeClass) Size() (w, h float64) {
	switch s {
	case Container:
		return 200, 150
	case Medium:
		return 150, 100
	case Strip:
		return 200, 25
	default:
		return 100, 30
	}
}

// DefaultSize is ClassOf(t).Size().
func DefaultSize(t Type) (w, h float64) { return ClassOf(t).Size() }
