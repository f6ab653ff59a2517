package provider

import "sort"

// Registry maps vendor keys to adapters. The table is fixed at
// construction and read-only afterwards, so concurrent resolution needs
// no locking.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry returns a registry seeded with every supported vendor.
func NewRegistry() *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	r.register(NewBedrockConverse())
	r.register(NewOpenAIChat())
	return r
}

func (r *Registry) register(a Adapter) {
	r.adapters[a.Key()] = a
}

// Resolve looks up an adapter by its exact, case-sensitive vendor key.
// Unknown keys fail with a ConfigurationError naming the key and the
// supported set; there is no partial or fuzzy matching.
func (r *Registry) Resolve(key string) (Adapter, error) {
	a, ok := r.adapters[key]
	if !ok {
		return nil, &ConfigurationError{Key: key, Supported: r.Keys()}
	}
	return a, nil
}

// Keys returns the supported vendor keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.adapters))
	for k := range r.adapters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
