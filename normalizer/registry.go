package normalizer

// Registry is the ordered collection of hoisted shared definitions, keyed
// by field name. Its definitions are the same mappings stored under
// components.schemas in the normalized document.
type Registry struct {
	names []string
	defs  map[string]map[string]any
}

func newRegistry() *Registry {
	return &Registry{defs: make(map[string]map[string]any)}
}

// set registers or replaces the definition of name, keeping the position
// of the first registration.
func (r *Registry) set(name string, def map[string]any) {
	if _, ok := r.defs[name]; !ok {
		r.names = append(r.names, name)
	}
	r.defs[name] = def
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return r.names
}

// Get returns the definition registered for name.
func (r *Registry) Get(name string) (map[string]any, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.names)
}
