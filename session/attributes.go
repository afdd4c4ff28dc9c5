package session

import (
	"fmt"
	"strconv"
	"sync"
)

// Attributes is a mutable key/value store scoped to a session's lifetime.
// Keys keep their insertion order, values may be of any type, and the
// converting getters coerce between common scalar representations. All
// methods are safe for concurrent use; consistency is per key, with no
// atomicity across keys.
type Attributes struct {
	mu    sync.RWMutex
	names []string
	vals  map[string]any
}

// NewAttributes returns an empty attribute store.
func NewAttributes() *Attributes {
	return &Attributes{vals: make(map[string]any)}
}

// Set stores value under name, replacing any previous value. A replaced
// key keeps its original position in the insertion order.
func (a *Attributes) Set(name string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.vals[name]; !ok {
		a.names = append(a.names, name)
	}
	a.vals[name] = value
}

// Get returns the value stored under name and whether it exists.
func (a *Attributes) Get(name string) (any, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.vals[name]
	return v, ok
}

// Contains reports whether a value is stored under name.
func (a *Attributes) Contains(name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.vals[name]
	return ok
}

// Remove deletes the value stored under name, returning it and whether it
// existed.
func (a *Attributes) Remove(name string) (any, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.vals[name]
	if !ok {
		return nil, false
	}
	delete(a.vals, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
	return v, true
}

// Clear removes all stored values.
func (a *Attributes) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.names = nil
	a.vals = make(map[string]any)
}

// Names returns the stored keys in insertion order.
func (a *Attributes) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, len(a.names))
	copy(names, a.names)
	return names
}

// Len returns the number of stored values.
func (a *Attributes) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.vals)
}

// String returns the value under name converted to a string. Conversion
// succeeds for strings, byte slices, fmt.Stringer values, booleans, and
// numeric types.
func (a *Attributes) String(name string) (string, bool) {
	v, ok := a.Get(name)
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case fmt.Stringer:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", s), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	}
	return "", false
}

// Int returns the value under name converted to an int.
func (a *Attributes) Int(name string) (int, bool) {
	n, ok := a.Int64(name)
	return int(n), ok
}

// Int64 returns the value under name converted to an int64. Conversion
// succeeds for integer types, floats with no fractional part in range, and
// strings parseable as base-10 integers.
func (a *Attributes) Int64(name string) (int64, bool) {
	v, ok := a.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float32:
		return int64(n), float32(int64(n)) == n
	case float64:
		return int64(n), float64(int64(n)) == n
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		return parsed, err == nil
	}
	return 0, false
}

// Float64 returns the value under name converted to a float64.
func (a *Attributes) Float64(name string) (float64, bool) {
	v, ok := a.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		return parsed, err == nil
	}
	return 0, false
}

// Bool returns the value under name converted to a bool. Strings are parsed
// with strconv.ParseBool.
func (a *Attributes) Bool(name string) (bool, bool) {
	v, ok := a.Get(name)
	if !ok {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		return parsed, err == nil
	}
	return false, false
}
