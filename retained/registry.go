package retained

// registry is an insertion-ordered map. Entries are never removed.
type registry[K comparable, V any] struct {
	order []V
	items map[K]V
}

func newRegistry[K comparable, V any]() registry[K, V] {
	return registry[K, V]{items: make(map[K]V)}
}

// add stores v under k and reports whether k was new.
// An existing entry is left untouched.
func (r *registry[K, V]) add(k K, v V) bool {
	if _, exists := r.items[k]; exists {
		return false
	}
	r.items[k] = v
	r.order = append(r.order, v)
	return true
}

func (r *registry[K, V]) get(k K) (V, bool) {
	v, ok := r.items[k]
	return v, ok
}

func (r *registry[K, V]) len() int {
	return len(r.order)
}
