package ast

import (
	"sort"
	"strings"
)

type mapEntry struct {
	key string
	val Value
}

// MapValue is an immutable mapping from String keys to Value. Keys are
// unique and iteration always proceeds in sorted-key order (spec §3.2):
// unlike the teacher's insertion-ordered goMap, entries are kept as a
// sorted slice so that observable iteration order and wire encoding order
// coincide without a separate sort pass.
type MapValue struct {
	entries []mapEntry
}

// NewMap builds a MapValue from a Go map, normalizing to sorted order.
func NewMap(m map[string]Value) MapValue {
	entries := make([]mapEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, mapEntry{key: k, val: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return MapValue{entries: entries}
}

// EmptyMap is the empty MapValue.
var EmptyMap = MapValue{}

func (m MapValue) search(key string) (int, bool) {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key >= key })
	if i < len(m.entries) && m.entries[i].key == key {
		return i, true
	}
	return i, false
}

// Len returns the number of entries.
func (m MapValue) Len() int { return len(m.entries) }

// Get looks up a key.
func (m MapValue) Get(key string) (Value, bool) {
	i, ok := m.search(key)
	if !ok {
		return nil, false
	}
	return m.entries[i].val, true
}

// Set returns a new MapValue with key bound to val.
func (m MapValue) Set(key string, val Value) MapValue {
	i, exists := m.search(key)
	out := make([]mapEntry, len(m.entries), len(m.entries)+1)
	copy(out, m.entries)
	if exists {
		out[i] = mapEntry{key: key, val: val}
		return MapValue{entries: out}
	}
	out = append(out, mapEntry{})
	copy(out[i+1:], out[i:len(out)-1])
	out[i] = mapEntry{key: key, val: val}
	return MapValue{entries: out}
}

// Delete returns a new MapValue without key.
func (m MapValue) Delete(key string) MapValue {
	i, exists := m.search(key)
	if !exists {
		return m
	}
	out := make([]mapEntry, 0, len(m.entries)-1)
	out = append(out, m.entries[:i]...)
	out = append(out, m.entries[i+1:]...)
	return MapValue{entries: out}
}

// Keys returns the keys in sorted order.
func (m MapValue) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Each calls f for every entry in sorted-key order.
func (m MapValue) Each(f func(key string, val Value)) {
	for _, e := range m.entries {
		f(e.key, e.val)
	}
}

// SortedValues returns the values in sorted-key order: the flattening
// used by ToList (spec §3.3).
func (m MapValue) SortedValues() []Value {
	vals := make([]Value, len(m.entries))
	for i, e := range m.entries {
		vals[i] = e.val
	}
	return vals
}

func (MapValue) Kind() Kind { return KindMap }

func (m MapValue) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteString(": ")
		b.WriteString(e.val.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (m MapValue) Truthy() bool { return len(m.entries) > 0 }

func (m MapValue) Equal(other Value) bool {
	o, ok := other.(MapValue)
	if !ok || len(o.entries) != len(m.entries) {
		return false
	}
	for i, e := range m.entries {
		if e.key != o.entries[i].key || !e.val.Equal(o.entries[i].val) {
			return false
		}
	}
	return true
}
