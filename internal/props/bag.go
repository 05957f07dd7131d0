/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Bag is an insertion-ordered property set. Setting an existing name keeps
// its position; new names are appended.
type Bag struct {
	names  []string
	values map[string]Value
}

func NewBag() *Bag { return &Bag{values: map[string]Value{}} }

func (b *Bag) Get(name string) (Value, bool) {
	if b == nil {
		return Value{}, false
	}
	v, ok := b.values[name]
	return v, ok
}

func (b *Bag) Has(name string) bool {
	_, ok := b.Get(name)
	return ok
}

func (b *Bag) Set(name string, v Value) {
	if b.values == nil {
		b.values = map[string]Value{}
	}
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = v
}

func (b *Bag) Delete(name string) {
	if _, ok := b.values[name]; !ok {
		return
	}
	delete(b.values, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			break
		}
	}
}

// Names returns the property names in insertion order.
func (b *Bag) Names() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.names...)
}

func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// Clone returns a deep copy.
func (b *Bag) Clone() *Bag {
	c := &Bag{names: make([]string, 0, b.Len()), values: make(map[string]Value, b.Len())}
	if b == nil {
		return c
	}
	c.names = append(c.names, b.names...)
	for k, v := range b.values {
		c.values[k] = v
	}
	return c
}

// Merge sets every entry of o on b, in o's order.
func (b *Bag) Merge(o *Bag) {
	for _, n := range o.Names() {
		v, _ := o.Get(n)
		b.Set(n, v)
	}
}

// Replace makes b an exact copy of o.
func (b *Bag) Replace(o *Bag) {
	c := o.Clone()
	b.names, b.values = c.names, c.values
}

// Equal reports whether both bags hold the same entries in the same order.
func (b *Bag) Equal(o *Bag) bool {
	if b.Len() != o.Len() {
		return false
	}
	if b.Len() == 0 {
		return true
	}
	for i, n := range b.names {
		if o.names[i] != n || !b.values[n].Equal(o.values[n]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the bag as a JSON object keeping insertion order.
func (b *Bag) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range b.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := b.values[n].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order.
func (b *Bag) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("props: expected object, got %v", tok)
	}
	nb := NewBag()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("props: expected key, got %v", tok)
		}
		var v Value
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("props: value for %q: %w", name, err)
		}
		nb.Set(name, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*b = *nb
	return nil
}
