// Package formdata holds the live data object edited through the preview.
// Every reachable data field has an entry; fields that were never touched map
// to NoValue so renderers can tell "untouched" from "cleared".
package formdata

import "sort"

// Absent is the type of NoValue.
type Absent struct{}

// NoValue marks a field that exists but holds no value yet.
var NoValue = Absent{}

// MarshalJSON encodes NoValue as null.
func (Absent) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalYAML encodes NoValue as null.
func (Absent) MarshalYAML() (any, error) {
	return nil, nil
}

// IsAbsent reports whether v is NoValue.
func IsAbsent(v any) bool {
	_, ok := v.(Absent)
	return ok
}

// Data maps field ids to values. Values are replaced wholesale: functions in
// this package return copies and never edit their input.
type Data map[string]any

// Empty returns a data object without entries.
func Empty() Data {
	return Data{}
}

// Seed returns a copy of d with id mapped to NoValue.
func Seed(d Data, id string) Data {
	out := d.Clone()
	if id != "" {
		out[id] = NoValue
	}
	return out
}

// Reconcile returns a copy of d without the removed ids.
func Reconcile(d Data, removed []string) Data {
	out := d.Clone()
	for _, id := range removed {
		delete(out, id)
	}
	return out
}

// Set returns a copy of d with id mapped to value. A nil value is stored as
// NoValue.
func Set(d Data, id string, value any) Data {
	out := d.Clone()
	if value == nil {
		value = NoValue
	}
	out[id] = value
	return out
}

// Clone returns a shallow copy of d; a nil map yields an empty one.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Keys lists the ids held by d in sorted order.
func (d Data) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
