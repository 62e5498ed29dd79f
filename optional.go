package worldpay_cg_hosted

import "sort"

// OptionalData is a set of named values restricted to a whitelist fixed at
// construction. A key that was set to a zero value is still reported as set.
type OptionalData struct {
	declared []string
	allowed  map[string]struct{}
	values   map[string]any
}

// NewOptionalData creates a container accepting only the declared keys and
// seeds it with initial. Every undeclared key in initial is reported in a
// single UnsupportedParameterError.
func NewOptionalData(declared []string, initial map[string]any) (*OptionalData, error) {
	d := &OptionalData{
		declared: append([]string(nil), declared...),
		allowed:  make(map[string]struct{}, len(declared)),
		values:   make(map[string]any, len(initial)),
	}
	for _, k := range declared {
		d.allowed[k] = struct{}{}
	}

	var unknown []string
	for k := range initial {
		if _, ok := d.allowed[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnsupportedParameterError{Keys: unknown}
	}

	for k, v := range initial {
		d.values[k] = v
	}
	return d, nil
}

// Set stores value under key, replacing any previous value.
func (d *OptionalData) Set(key string, value any) error {
	if !d.Declares(key) {
		return &UnsupportedParameterError{Keys: []string{key}}
	}
	d.values[key] = value
	return nil
}

// Declares reports whether key is part of the whitelist.
func (d *OptionalData) Declares(key string) bool {
	_, ok := d.allowed[key]
	return ok
}

// IsSet reports whether key has been explicitly set.
func (d *OptionalData) IsSet(key string) bool {
	_, ok := d.values[key]
	return ok
}

// HasProperties reports whether at least one key has been set.
func (d *OptionalData) HasProperties() bool {
	return len(d.values) != 0
}

// Get returns the value stored under key, or a NotSetError if it was never set.
func (d *OptionalData) Get(key string) (any, error) {
	v, ok := d.values[key]
	if !ok {
		return nil, &NotSetError{Key: key}
	}
	return v, nil
}

// Keys returns the set keys in declaration order.
func (d *OptionalData) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for _, k := range d.declared {
		if d.IsSet(k) {
			keys = append(keys, k)
		}
	}
	return keys
}
