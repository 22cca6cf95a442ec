package dataset

// NameColumn is the reserved attribute key that holds the Pokémon's display
// name. Every row appended to a Table is expected to carry a non-empty value
// for this key, and it is always the first column of the destination table.
const NameColumn = "Pokemon Name"

// AttributeMap is an insertion-ordered mapping from attribute name to
// attribute value, both strings. One instance describes one Pokémon.
//
// Design decision: Go maps do not preserve insertion order, but column order
// in the destination table must follow the order attributes were first seen.
// We therefore pair a key slice with a lookup map instead of using a bare map.
type AttributeMap struct {
	keys   []string
	values map[string]string
}

// NewAttributeMap returns an empty AttributeMap.
// Each Pokémon gets a fresh map; maps are never reused across entities so
// attributes from one page cannot leak into the next.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{
		values: make(map[string]string),
	}
}

// Set stores value under key. Setting an existing key overwrites the value
// in place and keeps the key's original position (last-write-wins without
// reordering, matching how later attribute tables override earlier ones).
func (m *AttributeMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *AttributeMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the attribute keys in insertion order.
// The returned slice is a copy; mutating it does not affect the map.
func (m *AttributeMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of attributes in the map.
func (m *AttributeMap) Len() int {
	return len(m.keys)
}
