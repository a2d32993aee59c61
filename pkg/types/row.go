package types

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Row is one record of the source or mapping table, field name to value,
// in header order.
type Row = orderedmap.OrderedMap[string, string]

// Attributes is a set of key/value attributes shared by a group of rows.
type Attributes = orderedmap.OrderedMap[string, string]

// Item is a single key/value pair of a Row
type Item struct {
	Key   string
	Value string
}

// NewRow creates an empty row
func NewRow() *Row {
	return orderedmap.New[string, string]()
}

// NewAttributes creates an empty attribute set
func NewAttributes() *Attributes {
	return orderedmap.New[string, string]()
}

// RowOf builds a row from alternating keys and values.
// It panics on an odd number of arguments.
func RowOf(kv ...string) *Row {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("types.RowOf: odd number of arguments (%d)", len(kv)))
	}
	r := NewRow()
	for i := 0; i < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

// Clone returns a shallow copy of r preserving its order. A nil row clones
// to an empty one.
func Clone(r *Row) *Row {
	out := NewRow()
	if r == nil {
		return out
	}
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	return out
}

// Items returns the pairs of r in order
func Items(r *Row) []Item {
	if r == nil {
		return []Item{}
	}
	items := make([]Item, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, Item{Key: pair.Key, Value: pair.Value})
	}
	return items
}

// Keys returns the field names of r in order
func Keys(r *Row) []string {
	if r == nil {
		return []string{}
	}
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// ToMap converts r to a plain, unordered map
func ToMap(r *Row) map[string]string {
	m := make(map[string]string)
	if r == nil {
		return m
	}
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}
